package quizgen

import (
	"fmt"

	"github.com/akarpov/mentora/internal/curriculum"
)

const (
	// DefaultQuestionCount is used when a request does not ask for a
	// specific number of questions.
	DefaultQuestionCount = 5

	// MaxQuestionCount caps a single quiz. Larger requests are clamped.
	MaxQuestionCount = 10
)

// Question is one generated quiz question ready for delivery.
type Question struct {
	ID string `json:"id"`

	// Prompt is the question text shown to the student.
	// Plain ASCII, e.g. "What is 345 + 278?" or "Which fraction is larger: 3/4 or 2/3?"
	Prompt string `json:"prompt"`

	// Choices holds exactly 4 options for multiple-choice questions,
	// one of which matches Answer. Empty for free-response questions.
	Choices []string `json:"choices,omitempty"`

	// Answer is the canonical correct answer as a string, in simplest
	// form ("623", "0.75", "3/4").
	Answer string `json:"answer"`

	// Explanation is a brief worked solution shown after grading.
	Explanation string `json:"explanation"`
}

// Quiz is a generated set of questions on one topic at one difficulty.
type Quiz struct {
	ID         string                `json:"id"`
	Topic      string                `json:"topic"`
	Difficulty curriculum.Difficulty `json:"difficulty"`
	Questions  []Question            `json:"questions"`
}

// Request holds the context for one quiz generation call.
type Request struct {
	// Topic is the curriculum topic to quiz on.
	Topic curriculum.Topic

	// Difficulty overrides the adaptive default when set.
	Difficulty curriculum.Difficulty

	// Count is the number of questions wanted. Zero means
	// DefaultQuestionCount; values above MaxQuestionCount are clamped.
	Count int

	// RecentOutcomes is the student's trailing pass/fail history on this
	// topic, oldest first. It drives the difficulty default.
	RecentOutcomes []bool

	// PriorPrompts contains question texts recently shown to this
	// student, used for deduplication in the prompt.
	PriorPrompts []string
}

// ValidationError describes why a generated quiz failed a structural check.
type ValidationError struct {
	Check   string // which structural check failed
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quiz check %q: %s", e.Check, e.Message)
}
