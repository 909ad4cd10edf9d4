package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/grading"
	"github.com/akarpov/mentora/internal/llm"
	"github.com/akarpov/mentora/internal/quizgen"
)

// recentAssessmentLimit bounds how many past assessments feed the
// duplicate-question list for quiz generation.
const recentAssessmentLimit = 5

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	if s.quizzes == nil {
		writeError(w, http.StatusBadGateway, codeLLMFailure, "no language model provider is configured")
		return
	}

	var req struct {
		Topic      string `json:"topic"`
		Count      int    `json:"count"`
		Difficulty string `json:"difficulty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	topic, known := s.graph.Topic(req.Topic)
	if !known {
		notFound(w, "unknown topic %q", req.Topic)
		return
	}
	difficulty := curriculum.Difficulty(req.Difficulty)
	if req.Difficulty != "" && !difficulty.Valid() {
		unprocessable(w, "difficulty must be easy, medium or hard")
		return
	}

	history, err := s.progress.TopicAttempts(r.Context(), rec.PublicID, topic.ID)
	if err != nil {
		s.internalError(w, err)
		return
	}
	prior, err := s.priorPrompts(r.Context(), rec.PublicID, topic.ID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	quiz, err := s.quizzes.Generate(r.Context(), quizgen.Request{
		Topic:          topic,
		Difficulty:     difficulty,
		Count:          req.Count,
		RecentOutcomes: outcomesOf(history),
		PriorPrompts:   prior,
	})
	if err != nil {
		llmError(w, "quiz generation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// outcomesOf flattens attempt batches into the per-question pass/fail
// sequence the difficulty adapter expects, misses ordered last within a
// batch.
func outcomesOf(attempts []adaptive.Attempt) []bool {
	var out []bool
	for _, a := range attempts {
		for i := 0; i < a.Total; i++ {
			out = append(out, i < a.Correct)
		}
	}
	return out
}

// priorPrompts collects question texts the student has already seen on
// this topic so the generator can avoid repeats.
func (s *Server) priorPrompts(ctx context.Context, studentID, topicID string) ([]string, error) {
	records, err := s.assessments.ListByStudent(ctx, studentID, recentAssessmentLimit)
	if err != nil {
		return nil, err
	}
	var prompts []string
	for _, rec := range records {
		for _, q := range rec.Results {
			if q.Topic == topicID {
				prompts = append(prompts, q.Question)
			}
		}
	}
	return prompts, nil
}

type submitItem struct {
	Topic         string   `json:"topic"`
	Question      string   `json:"question"`
	Choices       []string `json:"choices,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	StudentAnswer string   `json:"student_answer"`
}

func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	var req struct {
		Quiz    *quizgen.Quiz `json:"quiz"`
		Answers []string      `json:"answers"`
		Items   []submitItem  `json:"items"`
		Minutes int           `json:"minutes"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Minutes < 0 {
		unprocessable(w, "minutes cannot be negative")
		return
	}

	items, ok := s.itemsFromRequest(w, req.Quiz, req.Answers, req.Items)
	if !ok {
		return
	}

	result, err := s.grader.Grade(r.Context(), rec.PublicID, items, req.Minutes)
	if err != nil {
		if isProviderError(err) {
			llmError(w, "grading failed", err)
		} else {
			s.internalError(w, err)
		}
		return
	}

	unlocked := s.refreshAchievements(r.Context(), rec.PublicID)
	records, err := s.assessments.ListByStudent(r.Context(), rec.PublicID, 0)
	if err != nil {
		s.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Student         string                     `json:"student"`
		Results         []adaptive.QuestionResult  `json:"results"`
		Score           int                        `json:"score"`
		TotalQuestions  int                        `json:"total_questions"`
		Gaps            gapsResponse               `json:"gap_report"`
		NewAchievements []achievements.Achievement `json:"new_achievements,omitempty"`
	}{
		Student:         rec.PublicID,
		Results:         result.Results,
		Score:           result.Score,
		TotalQuestions:  result.TotalQuestions,
		Gaps:            gapReport(rec.PublicID, records),
		NewAchievements: unlocked,
	})
}

// itemsFromRequest accepts either a quiz echoed back with positional
// answers, or free-form graded items for multi-topic assessments.
func (s *Server) itemsFromRequest(w http.ResponseWriter, quiz *quizgen.Quiz, answers []string, raw []submitItem) ([]grading.Item, bool) {
	if quiz != nil {
		if _, known := s.graph.Topic(quiz.Topic); !known {
			notFound(w, "unknown topic %q", quiz.Topic)
			return nil, false
		}
		items, err := grading.ItemsFromQuiz(quiz, answers)
		if err != nil {
			unprocessable(w, "%v", err)
			return nil, false
		}
		return items, true
	}

	if len(raw) == 0 {
		unprocessable(w, "provide either a quiz with answers or a list of items")
		return nil, false
	}
	items := make([]grading.Item, len(raw))
	for i, it := range raw {
		if _, known := s.graph.Topic(it.Topic); !known {
			notFound(w, "unknown topic %q", it.Topic)
			return nil, false
		}
		if it.Question == "" || it.CorrectAnswer == "" {
			unprocessable(w, "item %d is missing its question or correct answer", i+1)
			return nil, false
		}
		items[i] = grading.Item{
			Topic:         it.Topic,
			Question:      it.Question,
			Choices:       it.Choices,
			CorrectAnswer: it.CorrectAnswer,
			StudentAnswer: it.StudentAnswer,
		}
	}
	return items, true
}

// isProviderError reports whether err originated in an LLM provider call,
// as opposed to the event store.
func isProviderError(err error) bool {
	var (
		rateLimit   *llm.ErrRateLimit
		invalid     *llm.ErrInvalidResponse
		unavailable *llm.ErrProviderUnavailable
		truncated   *llm.ErrMaxTokensExceeded
	)
	return errors.As(err, &rateLimit) ||
		errors.As(err, &invalid) ||
		errors.As(err, &unavailable) ||
		errors.As(err, &truncated)
}
