package httpapi

import (
	"net/http"
	"strings"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/tutor"
)

func (s *Server) handleTutor(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	if s.explainer == nil {
		writeError(w, http.StatusBadGateway, codeLLMFailure, "no language model provider is configured")
		return
	}

	var req struct {
		Topic    string `json:"topic"`
		Question string `json:"question"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	topic, known := s.graph.Topic(req.Topic)
	if !known {
		notFound(w, "unknown topic %q", req.Topic)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		unprocessable(w, "question is required")
		return
	}

	attempts, err := s.progress.TopicAttempts(r.Context(), rec.PublicID, topic.ID)
	if err != nil {
		s.internalError(w, err)
		return
	}

	explanation, err := s.explainer.Explain(r.Context(), tutor.Input{
		Topic:    topic,
		Question: req.Question,
		Mastery:  adaptive.ComputeMastery(attempts),
	})
	if err != nil {
		llmError(w, "explanation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, explanation)
}
