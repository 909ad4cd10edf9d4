package quizgen

import "github.com/akarpov/mentora/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A set of quiz questions with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in delivery order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the student, in plain ASCII",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple choice, one matching the answer. Empty array for free-response questions.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer in simplest form. For multiple choice: the text of the correct option.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Step-by-step worked solution, age-appropriate for the grade",
						},
					},
					"required":             []any{"prompt", "choices", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
