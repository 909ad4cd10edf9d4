package httpapi

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/store"
)

func (s *Server) handleMastery(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	prog, err := s.progress.Progress(r.Context(), rec.PublicID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	// Every curriculum topic appears, so untouched topics show up as
	// not-started instead of being absent.
	mastery := make(map[string]adaptive.MasteryResult, s.graph.Len())
	for _, t := range s.graph.Topics() {
		mastery[t.ID] = adaptive.ComputeMastery(prog[t.ID].Attempts)
	}

	writeJSON(w, http.StatusOK, struct {
		Student string                            `json:"student"`
		Mastery map[string]adaptive.MasteryResult `json:"mastery"`
	}{rec.PublicID, mastery})
}

func (s *Server) handleTopicMastery(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	topic, ok := s.topicFromPath(w, r, "topic")
	if !ok {
		return
	}
	attempts, err := s.progress.TopicAttempts(r.Context(), rec.PublicID, topic.ID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Student string                 `json:"student"`
		Topic   string                 `json:"topic"`
		Mastery adaptive.MasteryResult `json:"mastery"`
	}{rec.PublicID, topic.ID, adaptive.ComputeMastery(attempts)})
}

func (s *Server) handleNextTopic(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	prog, err := s.progress.Progress(r.Context(), rec.PublicID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	// A nil recommendation means the curriculum is exhausted. That is an
	// empty answer, not an error.
	type response struct {
		Recommendation *adaptive.TopicRecommendation `json:"recommendation"`
		Message        string                        `json:"message,omitempty"`
	}
	if next := adaptive.NextTopic(prog, s.graph); next != nil {
		writeJSON(w, http.StatusOK, response{Recommendation: next})
		return
	}
	writeJSON(w, http.StatusOK, response{Message: "no recommendation available"})
}

func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	timeframe, err := queryInt(r, "timeframe", 0)
	if err != nil {
		unprocessable(w, "%v", err)
		return
	}
	daily, err := queryInt(r, "daily", 0)
	if err != nil {
		unprocessable(w, "%v", err)
		return
	}

	var targets []string
	for _, id := range strings.Split(r.URL.Query().Get("topics"), ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, known := s.graph.Topic(id); !known {
			notFound(w, "unknown topic %q", id)
			return
		}
		targets = append(targets, id)
	}

	prog, err := s.progress.Progress(r.Context(), rec.PublicID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	path := adaptive.GeneratePath(adaptive.PathRequest{
		Progress:      prog,
		Graph:         s.graph,
		TargetTopics:  targets,
		TimeframeDays: timeframe,
		DailyMinutes:  daily,
	})
	writeJSON(w, http.StatusOK, path)
}

func (s *Server) handleGaps(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	records, err := s.assessments.ListByStudent(r.Context(), rec.PublicID, 0)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gapReport(rec.PublicID, records))
}

type gapsResponse struct {
	Student             string                 `json:"student"`
	Gaps                []adaptive.LearningGap `json:"gaps"`
	AssessmentsAnalyzed int                    `json:"assessments_analyzed"`
}

// gapReport runs the gap analyzer over stored assessment events, oldest
// first.
func gapReport(studentID string, records []store.AssessmentRecord) gapsResponse {
	results := make([]adaptive.AssessmentResult, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		results = append(results, adaptive.AssessmentResult{
			Results:        rec.Results,
			Score:          rec.Score,
			TotalQuestions: rec.TotalQuestions,
		})
	}
	return gapsResponse{
		Student:             studentID,
		Gaps:                adaptive.IdentifyGaps(results),
		AssessmentsAnalyzed: len(records),
	}
}

func (s *Server) handleVelocity(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	weeks, err := queryInt(r, "weeks", adaptive.DefaultVelocityWeeks)
	if err != nil {
		unprocessable(w, "%v", err)
		return
	}
	prog, err := s.progress.Progress(r.Context(), rec.PublicID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Student  string                  `json:"student"`
		Weeks    int                     `json:"weeks"`
		Velocity adaptive.VelocityReport `json:"velocity"`
	}{rec.PublicID, weeks, adaptive.ComputeVelocity(prog, weeks, s.now())})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	topic, ok := s.topicFromPath(w, r, "topic")
	if !ok {
		return
	}
	prog, err := s.progress.Progress(r.Context(), rec.PublicID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	velocity := adaptive.ComputeVelocity(prog, adaptive.DefaultVelocityWeeks, s.now())
	writeJSON(w, http.StatusOK, struct {
		Student       string `json:"student"`
		Topic         string `json:"topic"`
		CurrentLevel  int    `json:"current_level"`
		DaysToMastery int    `json:"days_to_mastery"`
	}{
		Student:       rec.PublicID,
		Topic:         topic.ID,
		CurrentLevel:  adaptive.ComputeMastery(prog[topic.ID].Attempts).Level,
		DaysToMastery: adaptive.PredictDaysToMastery(topic.ID, prog, velocity),
	})
}

func (s *Server) handleLogAttempt(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	var req struct {
		Topic   string `json:"topic"`
		Correct int    `json:"correct"`
		Total   int    `json:"total"`
		Minutes int    `json:"minutes"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	topic, known := s.graph.Topic(req.Topic)
	if !known {
		notFound(w, "unknown topic %q", req.Topic)
		return
	}
	if req.Total <= 0 {
		unprocessable(w, "total must be positive")
		return
	}
	if req.Correct < 0 || req.Correct > req.Total {
		unprocessable(w, "correct must be between 0 and total")
		return
	}
	if req.Minutes < 0 {
		unprocessable(w, "minutes cannot be negative")
		return
	}

	err := s.attempts.Append(r.Context(), store.AttemptEventData{
		StudentID: rec.PublicID,
		TopicID:   topic.ID,
		Correct:   req.Correct,
		Total:     req.Total,
		Minutes:   req.Minutes,
		Source:    store.SourcePractice,
	})
	if err != nil {
		s.internalError(w, err)
		return
	}

	unlocked := s.refreshAchievements(r.Context(), rec.PublicID)
	attempts, err := s.progress.TopicAttempts(r.Context(), rec.PublicID, topic.ID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Topic           string                     `json:"topic"`
		Mastery         adaptive.MasteryResult     `json:"mastery"`
		NewAchievements []achievements.Achievement `json:"new_achievements,omitempty"`
	}{topic.ID, adaptive.ComputeMastery(attempts), unlocked})
}

// refreshAchievements runs the unlock pass after a write. The event is
// already durable at this point and a failed refresh only delays unlocks
// until the next one, so errors are logged rather than failing the request.
func (s *Server) refreshAchievements(ctx context.Context, studentID string) []achievements.Achievement {
	unlocked, err := s.badges.Refresh(ctx, studentID, s.now())
	if err != nil {
		log.Printf("[http] refresh achievements for %s: %v", studentID, err)
		return nil
	}
	return unlocked
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	if _, err := s.badges.Refresh(r.Context(), rec.PublicID, s.now()); err != nil {
		s.internalError(w, err)
		return
	}
	entries, err := s.badges.Status(r.Context(), rec.PublicID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	unlocked := 0
	for _, e := range entries {
		if e.Unlocked {
			unlocked++
		}
	}
	writeJSON(w, http.StatusOK, struct {
		Student      string                     `json:"student"`
		Unlocked     int                        `json:"unlocked"`
		Total        int                        `json:"total"`
		Achievements []achievements.StatusEntry `json:"achievements"`
	}{rec.PublicID, unlocked, len(entries), entries})
}
