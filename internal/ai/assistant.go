package ai

import "context"

// Request describes a single chat-style exchange with an LLM provider.
type Request struct {
	// Model overrides the generator's default model when set.
	Model string
	// System carries the system instruction for the exchange.
	System string
	// Message is the user-facing prompt text.
	Message string
	// JSONOutput asks the provider to reply with a structured JSON object.
	JSONOutput bool
}

// Generator sends a single request to an LLM provider and returns the
// generated text.
type Generator interface {
	GenerateContent(ctx context.Context, req Request) (string, error)
}
