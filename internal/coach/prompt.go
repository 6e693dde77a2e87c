package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/microlearn/internal/catalog"
	"github.com/abhisek/microlearn/internal/llm"
)

const explainSystemPrompt = `You are a patient tutor inside a command-line micro-learning app.
Given one quiz task (question, canonical answer, and an optional short note),
write a deeper explanation a curious adult learner would enjoy.

Rules:
- Be correct and concrete. Never contradict the canonical answer.
- Plain text only: no markdown, no headings, no bullet characters.
- Keep the summary to at most two sentences.
- The example must apply the same idea to a different case.`

// buildExplainUserMessage renders one task as the user message.
func buildExplainUserMessage(task *catalog.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", task.Category)
	fmt.Fprintf(&b, "Question: %s\n", task.Question)
	fmt.Fprintf(&b, "Answer: %s\n", task.Answer)
	if task.Explanation != "" {
		fmt.Fprintf(&b, "Existing note: %s\n", task.Explanation)
	}
	return b.String()
}

// ExplanationSchema defines the JSON schema for task explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "task-explanation",
	Description: "A deeper explanation of a quiz task",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "The key idea in 1-2 sentences",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Full walkthrough of why the answer is what it is (3-6 sentences)",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A related example applying the same idea to a different case",
			},
		},
		"required":             []any{"summary", "explanation", "example"},
		"additionalProperties": false,
	},
}
