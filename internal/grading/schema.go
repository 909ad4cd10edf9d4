package grading

import "github.com/akarpov/mentora/internal/llm"

// JudgmentSchema defines the JSON schema for LLM answer-judgment responses.
var JudgmentSchema = &llm.Schema{
	Name:        "answer-judgment",
	Description: "Whether a student's free-text answer is correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "true if the student's answer is equivalent to the correct answer",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief one-sentence justification for the judgment",
			},
		},
		"required":             []any{"correct", "reasoning"},
		"additionalProperties": false,
	},
}
