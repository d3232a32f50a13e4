package grading

import (
	"strings"

	_ "embed"
)

//go:embed prompts/extract_system.md
var extractSystemTemplate string

//go:embed prompts/extract_user.md
var extractUserTemplate string

//go:embed prompts/grade_system.md
var gradeSystemPrompt string

//go:embed prompts/grade_user.md
var gradeUserTemplate string

//go:embed prompts/analysis_system.md
var analysisSystemPrompt string

//go:embed prompts/analysis_user.md
var analysisUserTemplate string

func extractSystemPrompt() string {
	return strings.ReplaceAll(extractSystemTemplate, "{{NO_ANSWER}}", modelNoAnswer)
}

func buildExtractPrompt(questionsJSON, transcript string) string {
	prompt := strings.ReplaceAll(extractUserTemplate, "{{QUESTIONS_JSON}}", questionsJSON)
	return strings.ReplaceAll(prompt, "{{TRANSCRIPT}}", transcript)
}

func buildGradePrompt(pair QAPair) string {
	prompt := strings.ReplaceAll(gradeUserTemplate, "{{QUESTION}}", pair.Question)
	prompt = strings.ReplaceAll(prompt, "{{ANSWER}}", pair.Answer)
	prompt = strings.ReplaceAll(prompt, "{{GREAT}}", pair.Examples.Great)
	prompt = strings.ReplaceAll(prompt, "{{ALRIGHT}}", pair.Examples.Alright)
	return strings.ReplaceAll(prompt, "{{BAD}}", pair.Examples.Bad)
}

func buildAnalysisPrompt(resultsJSON string) string {
	return strings.ReplaceAll(analysisUserTemplate, "{{RESULTS_JSON}}", resultsJSON)
}
