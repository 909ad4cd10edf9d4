// Package httpapi serves the JSON API: auth, student progress, quiz
// generation, assessment grading, tutoring and the curriculum catalog.
// Handlers translate between HTTP and the domain services; every error
// leaves as a {"error": {"code", "message"}} envelope.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/auth"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/grading"
	"github.com/akarpov/mentora/internal/quizgen"
	"github.com/akarpov/mentora/internal/store"
	"github.com/akarpov/mentora/internal/tutor"
)

// Deps carries everything the server needs. Quizzes and Tutor may be nil
// when no LLM provider is configured; their routes then answer 502. All
// other fields are required.
type Deps struct {
	Students     store.StudentRepo
	Attempts     store.AttemptRepo
	Assessments  store.AssessmentRepo
	Progress     store.ProgressReader
	Sessions     *auth.SessionStore
	Graph        *curriculum.Graph
	Quizzes      quizgen.Generator
	Grader       *grading.Service
	Tutor        *tutor.Service
	Achievements *achievements.Service
	Version      string
}

// Server holds the handler set for the JSON API.
type Server struct {
	students    store.StudentRepo
	attempts    store.AttemptRepo
	assessments store.AssessmentRepo
	progress    store.ProgressReader
	sessions    *auth.SessionStore
	graph       *curriculum.Graph
	quizzes     quizgen.Generator
	grader      *grading.Service
	explainer   *tutor.Service
	badges      *achievements.Service
	version     string

	now func() time.Time
}

func NewServer(d Deps) *Server {
	return &Server{
		students:    d.Students,
		attempts:    d.Attempts,
		assessments: d.Assessments,
		progress:    d.Progress,
		sessions:    d.Sessions,
		graph:       d.Graph,
		quizzes:     d.Quizzes,
		grader:      d.Grader,
		explainer:   d.Tutor,
		badges:      d.Achievements,
		version:     d.Version,
		now:         time.Now,
	}
}

// Router builds the route tree. /health and /auth/login are public;
// everything else sits behind bearer-token auth.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		notFound(w, "route not found")
	})

	r.Get("/health", s.handleHealth)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.sessions))

		r.Post("/auth/logout", s.handleLogout)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/students", s.handleCreateStudent)
			r.Route("/students/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetStudent)
				r.Get("/mastery", s.handleMastery)
				r.Get("/mastery/{topic}", s.handleTopicMastery)
				r.Get("/next-topic", s.handleNextTopic)
				r.Get("/learning-path", s.handleLearningPath)
				r.Get("/gaps", s.handleGaps)
				r.Get("/velocity", s.handleVelocity)
				r.Get("/predict/{topic}", s.handlePredict)
				r.Get("/achievements", s.handleAchievements)
				r.Post("/attempts", s.handleLogAttempt)
				r.Post("/quiz", s.handleGenerateQuiz)
				r.Post("/assessments", s.handleSubmitAssessment)
				r.Post("/tutor", s.handleTutor)
			})
			r.Get("/curriculum", s.handleCurriculum)
			r.Get("/curriculum/{topic}", s.handleCurriculumTopic)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

// topicFromPath resolves a topic path parameter against the curriculum,
// writing the 404 envelope for unknown ids.
func (s *Server) topicFromPath(w http.ResponseWriter, r *http.Request, param string) (curriculum.Topic, bool) {
	id := chi.URLParam(r, param)
	t, ok := s.graph.Topic(id)
	if !ok {
		notFound(w, "unknown topic %q", id)
		return curriculum.Topic{}, false
	}
	return t, true
}
