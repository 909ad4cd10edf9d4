package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov/mentora/internal/auth"
	"github.com/akarpov/mentora/internal/store"
)

// Student grades the curriculum covers. Kindergarten enrolls as grade 0.
const (
	minGrade = 0
	maxGrade = 8
)

// studentProfile is the account view returned by the API. The password
// hash never leaves the store layer.
type studentProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Grade     int       `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}

func profileOf(rec *store.StudentRecord) studentProfile {
	return studentProfile{
		ID:        rec.PublicID,
		Name:      rec.Name,
		Grade:     rec.Grade,
		CreatedAt: rec.CreatedAt,
	}
}

// studentFromPath resolves the {id} path parameter to a student record,
// writing the 404 envelope when there is no match.
func (s *Server) studentFromPath(w http.ResponseWriter, r *http.Request) (*store.StudentRecord, bool) {
	id := chi.URLParam(r, "id")
	rec, err := s.students.ByPublicID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(w, "unknown student %q", id)
		} else {
			s.internalError(w, err)
		}
		return nil, false
	}
	return rec, true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Student  string `json:"student"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	req.Student = strings.TrimSpace(req.Student)
	if req.Student == "" || req.Password == "" {
		unprocessable(w, "student and password are required")
		return
	}

	// The login field accepts either the public id or the account name.
	rec, err := s.students.ByPublicID(r.Context(), req.Student)
	if errors.Is(err, store.ErrNotFound) {
		rec, err = s.students.ByName(r.Context(), req.Student)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid credentials")
		} else {
			s.internalError(w, err)
		}
		return
	}
	if !auth.CheckPassword(rec.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid credentials")
		return
	}

	sess := s.sessions.Create(rec.PublicID, rec.Name)
	writeJSON(w, http.StatusOK, struct {
		Token     string         `json:"token"`
		ExpiresAt time.Time      `json:"expires_at"`
		Student   studentProfile `json:"student"`
	}{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		Student:   profileOf(rec),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess := auth.FromContext(r.Context()); sess != nil {
		s.sessions.Delete(sess.Token)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Grade    int    `json:"grade"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		unprocessable(w, "name is required")
		return
	}
	if req.Grade < minGrade || req.Grade > maxGrade {
		unprocessable(w, "grade must be between %d and %d", minGrade, maxGrade)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		unprocessable(w, "%v", err)
		return
	}

	// Names double as login identifiers, so duplicates are rejected up
	// front rather than surfacing as a constraint error.
	if _, err := s.students.ByName(r.Context(), req.Name); err == nil {
		unprocessable(w, "name %q is already taken", req.Name)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		s.internalError(w, err)
		return
	}

	rec, err := s.students.Create(r.Context(), store.StudentData{
		Name:         req.Name,
		Grade:        req.Grade,
		PasswordHash: hash,
	})
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profileOf(rec))
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.studentFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, profileOf(rec))
}
