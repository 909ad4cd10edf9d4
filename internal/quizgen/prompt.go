package quizgen

import (
	"fmt"
	"strings"

	"github.com/akarpov/mentora/internal/curriculum"
)

const systemPrompt = `You are a math tutor writing short quizzes for students in grades K-8.

Rules:
- Write exactly the requested number of questions for the given topic, grade, and difficulty.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- Every question must be clear, self-contained, and age-appropriate for the grade.
- Every answer must be correct and in simplest form (reduce fractions, no trailing zeros on decimals).
- Every explanation should show the solution step by step.
- Use multiple choice for conceptual, comparison, or identification questions: exactly 4 options where exactly one is correct, with distractors that reflect common mistakes rather than random values.
- Leave choices empty for computation questions the student answers directly.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message for one generation call.
func buildUserMessage(topic curriculum.Topic, difficulty curriculum.Difficulty, count int, prior []string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", topic.Description)
	fmt.Fprintf(&b, "Subject: %s\n", curriculum.SubjectDisplayName(topic.Subject))
	fmt.Fprintf(&b, "Grade: %d\n", topic.Grade)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", count)

	b.WriteString("\nAlready asked:\n")
	b.WriteString(formatPrior(prior, cfg.MaxPriorPrompts))

	return b.String()
}

// formatPrior formats prior question texts for the prompt, keeping only
// the most recent max entries. Returns "None" when there are none.
func formatPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, p := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
