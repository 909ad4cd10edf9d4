package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// echoStudent writes the student id Middleware attached to the context.
func echoStudent(w http.ResponseWriter, r *http.Request) {
	session := FromContext(r.Context())
	if session == nil {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(session.StudentID))
}

func TestMiddleware_ValidToken(t *testing.T) {
	store := NewSessionStore(0)
	defer store.Close()
	session := store.Create("stu-1", "ada")

	handler := Middleware(store)(http.HandlerFunc(echoStudent))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/stu-1/mastery", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "stu-1" {
		t.Errorf("body = %q, want stu-1", rec.Body.String())
	}
}

func TestMiddleware_MissingToken(t *testing.T) {
	store := NewSessionStore(0)
	defer store.Close()

	handler := Middleware(store)(http.HandlerFunc(echoStudent))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/stu-1/mastery", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if body.Error.Code != "unauthorized" || body.Error.Message == "" {
		t.Errorf("envelope = %+v", body)
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	store := NewSessionStore(0)
	defer store.Close()

	handler := Middleware(store)(http.HandlerFunc(echoStudent))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)
	defer store.Close()
	session := store.Create("stu-1", "ada")
	time.Sleep(30 * time.Millisecond)

	handler := Middleware(store)(http.HandlerFunc(echoStudent))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
