package tutor

import (
	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/curriculum"
)

// Input holds all context needed to answer one student question.
type Input struct {
	Topic    curriculum.Topic
	Question string

	// Mastery is the student's current standing on the topic. The
	// explanation is pitched at this band.
	Mastery adaptive.MasteryResult
}

// Explanation is a tutoring answer to one student question.
type Explanation struct {
	Topic         string   `json:"topic"`
	Explanation   string   `json:"explanation"`
	Steps         []string `json:"steps"`
	CheckQuestion string   `json:"check_question"`
}
