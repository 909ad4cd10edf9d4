package tutor

import "github.com/akarpov/mentora/internal/llm"

// ExplanationSchema defines the JSON schema for tutoring explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "tutor-explanation",
	Description: "A tutoring explanation with worked steps and a check question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Direct answer to the student's question in 3-5 simple sentences",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "One concrete example worked through, one step per entry",
			},
			"check_question": map[string]any{
				"type":        "string",
				"description": "One short question to confirm understanding, without its answer",
			},
		},
		"required":             []any{"explanation", "steps", "check_question"},
		"additionalProperties": false,
	},
}
