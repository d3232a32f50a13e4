package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  file-secret \n"), 0o600); err != nil {
		t.Fatalf("writing secret file: %v", err)
	}

	secret, err := Load(Source{Name: "api key", File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "file-secret" {
		t.Fatalf("expected file to win, got %q", secret)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRADER_TEST_API_KEY", " env-secret ")

	secret, err := Load(Source{Name: "api key", Env: "GRADER_TEST_API_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "env-secret" {
		t.Fatalf("expected env secret, got %q", secret)
	}
}

func TestLoadInlineBeatsEnv(t *testing.T) {
	t.Setenv("GRADER_TEST_API_KEY", "env-secret")

	secret, err := Load(Source{Name: "api key", Value: "inline-secret", Env: "GRADER_TEST_API_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "inline-secret" {
		t.Fatalf("expected inline secret to win, got %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api key"}); err == nil {
		t.Fatal("expected error for empty source")
	}

	if _, err := Load(Source{Name: "api key", Env: "GRADER_TEST_UNSET_VAR"}); err == nil {
		t.Fatal("expected error for unset environment variable")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("   "), 0o600); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}

	if _, err := Load(Source{Name: "api key", File: empty}); err == nil {
		t.Fatal("expected error for empty secret file")
	}

	if _, err := Load(Source{Name: "api key", File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatal("expected error for missing secret file")
	}
}
