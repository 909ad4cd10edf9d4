package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/auth"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/grading"
	"github.com/akarpov/mentora/internal/store"
)

// fixedNow pins the server clock so velocity windows are deterministic.
var fixedNow = time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

func testGraph() *curriculum.Graph {
	return curriculum.MustNew([]curriculum.Topic{
		{
			ID:          "counting",
			Name:        "Counting & Place Value",
			Description: "Read, write and compare whole numbers.",
			Subject:     curriculum.SubjectArithmetic,
			Grade:       3,
			Difficulty:  curriculum.DifficultyEasy,
			Importance:  10,
		},
		{
			ID:            "addition",
			Name:          "Addition",
			Description:   "Multi-digit addition with regrouping.",
			Subject:       curriculum.SubjectArithmetic,
			Grade:         3,
			Difficulty:    curriculum.DifficultyEasy,
			Importance:    9,
			Prerequisites: []string{"counting"},
		},
		{
			ID:            "add-fractions",
			Name:          "Adding Fractions",
			Description:   "Add fractions with like and unlike denominators.",
			Subject:       curriculum.SubjectFractions,
			Grade:         4,
			Difficulty:    curriculum.DifficultyMedium,
			Importance:    8,
			Prerequisites: []string{"addition"},
		},
	})
}

// Hashing is slow enough that the shared test password is hashed once.
var testHash = sync.OnceValue(func() string {
	hash, err := auth.HashPassword("sunshine")
	if err != nil {
		panic(err)
	}
	return hash
})

type fakeStudents struct {
	records []*store.StudentRecord
	nextID  int
}

func (f *fakeStudents) Create(_ context.Context, data store.StudentData) (*store.StudentRecord, error) {
	f.nextID++
	rec := &store.StudentRecord{
		ID:           f.nextID,
		PublicID:     fmt.Sprintf("stu-%d", f.nextID),
		Name:         data.Name,
		Grade:        data.Grade,
		PasswordHash: data.PasswordHash,
		CreatedAt:    fixedNow,
	}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeStudents) ByPublicID(_ context.Context, publicID string) (*store.StudentRecord, error) {
	for _, rec := range f.records {
		if rec.PublicID == publicID {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("student %q: %w", publicID, store.ErrNotFound)
}

func (f *fakeStudents) ByName(_ context.Context, name string) (*store.StudentRecord, error) {
	for _, rec := range f.records {
		if rec.Name == name {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("student %q: %w", name, store.ErrNotFound)
}

func (f *fakeStudents) List(_ context.Context) ([]store.StudentRecord, error) {
	out := make([]store.StudentRecord, len(f.records))
	for i, rec := range f.records {
		out[i] = *rec
	}
	return out, nil
}

// fakeAttempts is an in-memory attempt log. Like the real store it also
// serves as the ProgressReader, deriving progress from the log.
type fakeAttempts struct {
	seq     int64
	stamp   time.Time
	records []store.AttemptRecord
}

func newFakeAttempts() *fakeAttempts {
	return &fakeAttempts{stamp: fixedNow.Add(-24 * time.Hour)}
}

func (f *fakeAttempts) Append(_ context.Context, data store.AttemptEventData) error {
	f.seq++
	f.stamp = f.stamp.Add(time.Minute)
	f.records = append(f.records, store.AttemptRecord{
		Sequence:  f.seq,
		Timestamp: f.stamp,
		StudentID: data.StudentID,
		TopicID:   data.TopicID,
		Correct:   data.Correct,
		Total:     data.Total,
		Minutes:   data.Minutes,
		Source:    data.Source,
	})
	return nil
}

func (f *fakeAttempts) ListByStudent(_ context.Context, studentID string) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for _, rec := range f.records {
		if rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttempts) ListByStudentTopic(_ context.Context, studentID, topicID string) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for _, rec := range f.records {
		if rec.StudentID == studentID && rec.TopicID == topicID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttempts) Progress(_ context.Context, studentID string) (adaptive.StudentProgress, error) {
	prog := make(adaptive.StudentProgress)
	for _, rec := range f.records {
		if rec.StudentID != studentID {
			continue
		}
		tp := prog[rec.TopicID]
		tp.Attempts = append(tp.Attempts, adaptive.Attempt{
			Correct:   rec.Correct,
			Total:     rec.Total,
			Timestamp: rec.Timestamp,
		})
		tp.TimeSpent += rec.Minutes
		prog[rec.TopicID] = tp
	}
	return prog, nil
}

func (f *fakeAttempts) TopicAttempts(_ context.Context, studentID, topicID string) ([]adaptive.Attempt, error) {
	var out []adaptive.Attempt
	for _, rec := range f.records {
		if rec.StudentID == studentID && rec.TopicID == topicID {
			out = append(out, adaptive.Attempt{
				Correct:   rec.Correct,
				Total:     rec.Total,
				Timestamp: rec.Timestamp,
			})
		}
	}
	return out, nil
}

type fakeAssessments struct {
	seq     int64
	records []store.AssessmentRecord
}

func (f *fakeAssessments) Append(_ context.Context, data store.AssessmentEventData) error {
	f.seq++
	f.records = append(f.records, store.AssessmentRecord{
		Sequence:       f.seq,
		Timestamp:      fixedNow,
		StudentID:      data.StudentID,
		AssessmentID:   data.AssessmentID,
		TopicIDs:       data.TopicIDs,
		Score:          data.Score,
		TotalQuestions: data.TotalQuestions,
		Results:        data.Results,
	})
	return nil
}

func (f *fakeAssessments) ListByStudent(_ context.Context, studentID string, limit int) ([]store.AssessmentRecord, error) {
	var out []store.AssessmentRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].StudentID != studentID {
			continue
		}
		out = append(out, f.records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeUnlocks struct {
	seq       int64
	byStudent map[string][]store.AchievementRecord
}

func newFakeUnlocks() *fakeUnlocks {
	return &fakeUnlocks{byStudent: make(map[string][]store.AchievementRecord)}
}

func (f *fakeUnlocks) Append(_ context.Context, studentID, achievementID string) error {
	f.seq++
	f.byStudent[studentID] = append(f.byStudent[studentID], store.AchievementRecord{
		AchievementID: achievementID,
		Sequence:      f.seq,
		Timestamp:     fixedNow,
	})
	return nil
}

func (f *fakeUnlocks) ListByStudent(_ context.Context, studentID string) ([]store.AchievementRecord, error) {
	return f.byStudent[studentID], nil
}

// fixture wires a Server over in-memory fakes with one enrolled student.
type fixture struct {
	t           *testing.T
	students    *fakeStudents
	attempts    *fakeAttempts
	assessments *fakeAssessments
	unlocks     *fakeUnlocks
	sessions    *auth.SessionStore
	server      *Server
	handler     http.Handler
	student     *store.StudentRecord
	token       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		t:           t,
		students:    &fakeStudents{},
		attempts:    newFakeAttempts(),
		assessments: &fakeAssessments{},
		unlocks:     newFakeUnlocks(),
		sessions:    auth.NewSessionStore(time.Hour),
	}
	t.Cleanup(f.sessions.Close)

	var err error
	f.student, err = f.students.Create(context.Background(), store.StudentData{
		Name:         "maya",
		Grade:        4,
		PasswordHash: testHash(),
	})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}

	f.server = NewServer(Deps{
		Students:     f.students,
		Attempts:     f.attempts,
		Assessments:  f.assessments,
		Progress:     f.attempts,
		Sessions:     f.sessions,
		Graph:        testGraph(),
		Grader:       grading.NewService(nil, f.attempts, f.assessments),
		Achievements: achievements.NewService(f.unlocks, f.attempts, f.attempts),
		Version:      "test",
	})
	f.server.now = func() time.Time { return fixedNow }
	f.handler = f.server.Router()

	f.token = f.sessions.Create(f.student.PublicID, f.student.Name).Token
	return f
}

func (f *fixture) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	f.t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			f.t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

// get issues an authenticated GET as the fixture student.
func (f *fixture) get(path string) *httptest.ResponseRecorder {
	return f.do(http.MethodGet, path, nil, f.token)
}

// post issues an authenticated POST as the fixture student.
func (f *fixture) post(path string, body any) *httptest.ResponseRecorder {
	return f.do(http.MethodPost, path, body, f.token)
}

// addAttempt seeds the attempt log directly, bypassing the API.
func (f *fixture) addAttempt(topic string, correct, total, minutes int) {
	f.t.Helper()
	err := f.attempts.Append(context.Background(), store.AttemptEventData{
		StudentID: f.student.PublicID,
		TopicID:   topic,
		Correct:   correct,
		Total:     total,
		Minutes:   minutes,
		Source:    store.SourcePractice,
	})
	if err != nil {
		f.t.Fatalf("seed attempt: %v", err)
	}
}

// studentPath builds a path under the fixture student's API prefix.
func (f *fixture) studentPath(suffix string) string {
	return "/api/v1/students/" + f.student.PublicID + suffix
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// errorCode extracts the code from an error envelope.
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope errorEnvelope
	decodeInto(t, w, &envelope)
	if envelope.Error.Message == "" {
		t.Fatalf("error envelope %q has no message", w.Body.String())
	}
	return envelope.Error.Code
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	decodeInto(t, w, &resp)
	if resp["status"] != "ok" {
		t.Errorf("status field = %q, want ok", resp["status"])
	}
	if resp["version"] != "test" {
		t.Errorf("version = %q, want test", resp["version"])
	}
}

func TestAuthRequired(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, f.studentPath("/mastery"), nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errorCode(t, w); code != "unauthorized" {
		t.Errorf("error code = %q, want unauthorized", code)
	}
}

func TestRouteNotFound(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/nope", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if code := errorCode(t, w); code != "not_found" {
		t.Errorf("error code = %q, want not_found", code)
	}
}
