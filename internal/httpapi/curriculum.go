package httpapi

import (
	"net/http"

	"github.com/akarpov/mentora/internal/curriculum"
)

type topicView struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Subject       curriculum.Subject    `json:"subject"`
	Grade         int                   `json:"grade"`
	Difficulty    curriculum.Difficulty `json:"difficulty"`
	Importance    int                   `json:"importance"`
	Prerequisites []string              `json:"prerequisites"`
}

func viewOf(t curriculum.Topic) topicView {
	return topicView{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Subject:       t.Subject,
		Grade:         t.Grade,
		Difficulty:    t.Difficulty,
		Importance:    t.Importance,
		Prerequisites: t.Prerequisites,
	}
}

func (s *Server) handleCurriculum(w http.ResponseWriter, _ *http.Request) {
	topics := s.graph.Topics()
	views := make([]topicView, len(topics))
	for i, t := range topics {
		views[i] = viewOf(t)
	}
	writeJSON(w, http.StatusOK, struct {
		Count  int         `json:"count"`
		Topics []topicView `json:"topics"`
	}{len(views), views})
}

func (s *Server) handleCurriculumTopic(w http.ResponseWriter, r *http.Request) {
	topic, ok := s.topicFromPath(w, r, "topic")
	if !ok {
		return
	}

	dependents := s.graph.Dependents(topic.ID)
	ids := make([]string, len(dependents))
	for i, d := range dependents {
		ids[i] = d.ID
	}
	writeJSON(w, http.StatusOK, struct {
		topicView
		Dependents []string `json:"dependents"`
	}{viewOf(topic), ids})
}
