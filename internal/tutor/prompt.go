package tutor

import (
	"fmt"
	"strings"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/curriculum"
)

const tutorSystemPrompt = `You are a patient, encouraging math tutor for students in grades K-8. A student is asking a question about a topic they are studying.

Rules:
- Answer the student's actual question. Do not recite a generic lesson on the topic.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication.
- Keep the explanation to 3-5 sentences in simple language.
- Work through one concrete example in the steps, one step per entry.
- End with a single short check question the student can answer to confirm they understood. Do not include its answer.
- Follow the tone guidance in the request: the same question gets a slower, gentler answer for a struggling student than for one close to mastery.`

// buildUserMessage constructs the user message for one explanation call.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Topic.Description)
	fmt.Fprintf(&b, "Subject: %s\n", curriculum.SubjectDisplayName(input.Topic.Subject))
	fmt.Fprintf(&b, "Grade: %d\n", input.Topic.Grade)

	fmt.Fprintf(&b, "\nStudent's level: %s\n", levelLine(input.Mastery))
	fmt.Fprintf(&b, "Tone guidance: %s\n", registerFor(input.Mastery.Status))

	fmt.Fprintf(&b, "\nStudent's question:\n%s", input.Question)

	return b.String()
}

// levelLine summarizes the student's standing on the topic for the prompt.
func levelLine(m adaptive.MasteryResult) string {
	if m.TotalAttempts == 0 {
		return "no practice on this topic yet"
	}
	return fmt.Sprintf("%s (%d attempts, %.0f%% recent accuracy)", m.Status, m.TotalAttempts, m.RecentAccuracy*100)
}

// registerFor maps a mastery band to the tone the explanation should take.
func registerFor(status adaptive.Status) string {
	switch status {
	case adaptive.StatusNotStarted:
		return "This is the student's first contact with the topic. Start from zero, define every term you use, and keep all numbers small."
	case adaptive.StatusNeedsSupport, adaptive.StatusStruggling:
		return "The student has practiced this and keeps getting it wrong. Go slowly, re-explain the basics, and point out the mistake students usually make here."
	case adaptive.StatusDeveloping:
		return "The student knows the basics. Keep any recap to one sentence and spend the steps on the part the question is actually about."
	case adaptive.StatusProficient:
		return "The student is comfortable with this topic. Skip the basics, answer the question directly, and add one observation that deepens their understanding."
	case adaptive.StatusMastered:
		return "The student has mastered this topic. Be concise, and make the check question a genuine challenge."
	default:
		return "Pitch the explanation at a typical student of this grade."
	}
}
