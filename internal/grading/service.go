package grading

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/quizgen"
	"github.com/akarpov/mentora/internal/store"
)

// Item is one question under grading.
type Item struct {
	Topic         string
	Question      string
	Choices       []string
	CorrectAnswer string
	StudentAnswer string
}

// ItemsFromQuiz pairs a quiz's questions with the student's submitted
// answers, positionally.
func ItemsFromQuiz(quiz *quizgen.Quiz, answers []string) ([]Item, error) {
	if len(answers) != len(quiz.Questions) {
		return nil, fmt.Errorf("expected %d answers, got %d", len(quiz.Questions), len(answers))
	}
	items := make([]Item, len(answers))
	for i, q := range quiz.Questions {
		items[i] = Item{
			Topic:         quiz.Topic,
			Question:      q.Prompt,
			Choices:       q.Choices,
			CorrectAnswer: q.Answer,
			StudentAnswer: answers[i],
		}
	}
	return items, nil
}

// Service grades submissions and records the results as events.
type Service struct {
	judge       *Judge
	attempts    store.AttemptRepo
	assessments store.AssessmentRepo
}

// NewService creates a grading service. A nil judge disables the LLM
// fallback: inconclusive free-text answers then grade as incorrect.
func NewService(judge *Judge, attempts store.AttemptRepo, assessments store.AssessmentRepo) *Service {
	return &Service{judge: judge, attempts: attempts, assessments: assessments}
}

// Grade grades the items and records one assessment event plus one
// attempt event per topic, so that assessments move mastery the same way
// practice does. The assessment's minutes are split evenly across its
// topics, remainder to the earliest.
func (s *Service) Grade(ctx context.Context, studentID string, items []Item, minutes int) (*adaptive.AssessmentResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("nothing to grade")
	}
	if minutes < 0 {
		minutes = 0
	}

	result := &adaptive.AssessmentResult{
		Results:        make([]adaptive.QuestionResult, len(items)),
		TotalQuestions: len(items),
	}

	type tally struct{ correct, total int }
	perTopic := make(map[string]*tally)
	var topicOrder []string

	for i, it := range items {
		ok, err := s.gradeItem(ctx, it)
		if err != nil {
			return nil, err
		}
		if ok {
			result.Score++
		}
		result.Results[i] = adaptive.QuestionResult{
			Topic:         it.Topic,
			IsCorrect:     ok,
			Question:      it.Question,
			StudentAnswer: it.StudentAnswer,
			CorrectAnswer: it.CorrectAnswer,
		}

		t := perTopic[it.Topic]
		if t == nil {
			t = &tally{}
			perTopic[it.Topic] = t
			topicOrder = append(topicOrder, it.Topic)
		}
		t.total++
		if ok {
			t.correct++
		}
	}

	err := s.assessments.Append(ctx, store.AssessmentEventData{
		StudentID:      studentID,
		AssessmentID:   uuid.NewString(),
		TopicIDs:       topicOrder,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Results:        result.Results,
	})
	if err != nil {
		return nil, fmt.Errorf("record assessment: %w", err)
	}

	base := minutes / len(topicOrder)
	extra := minutes % len(topicOrder)
	for i, topic := range topicOrder {
		m := base
		if i < extra {
			m++
		}
		t := perTopic[topic]
		err := s.attempts.Append(ctx, store.AttemptEventData{
			StudentID: studentID,
			TopicID:   topic,
			Correct:   t.correct,
			Total:     t.total,
			Minutes:   m,
			Source:    store.SourceAssessment,
		})
		if err != nil {
			return nil, fmt.Errorf("record attempt for %s: %w", topic, err)
		}
	}

	return result, nil
}

// gradeItem runs the deterministic pass, falling back to the LLM judge
// only when normalization is inconclusive.
func (s *Service) gradeItem(ctx context.Context, it Item) (bool, error) {
	q := quizgen.Question{Prompt: it.Question, Choices: it.Choices, Answer: it.CorrectAnswer}

	switch Check(it.StudentAnswer, q) {
	case VerdictCorrect:
		return true, nil
	case VerdictIncorrect:
		return false, nil
	}

	if s.judge == nil {
		return false, nil
	}
	return s.judge.Judge(ctx, q, it.StudentAnswer)
}
