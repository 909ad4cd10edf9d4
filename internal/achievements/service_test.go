package achievements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/store"
)

type mockUnlockRepo struct {
	records   []store.AchievementRecord
	appended  []string
	listErr   error
	appendErr error
}

func (m *mockUnlockRepo) Append(_ context.Context, _, achievementID string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, achievementID)
	return nil
}

func (m *mockUnlockRepo) ListByStudent(context.Context, string) ([]store.AchievementRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

type mockAttemptRepo struct {
	records []store.AttemptRecord
}

func (m *mockAttemptRepo) Append(context.Context, store.AttemptEventData) error { return nil }

func (m *mockAttemptRepo) ListByStudent(context.Context, string) ([]store.AttemptRecord, error) {
	return m.records, nil
}

func (m *mockAttemptRepo) ListByStudentTopic(context.Context, string, string) ([]store.AttemptRecord, error) {
	return nil, nil
}

type mockProgressReader struct {
	progress adaptive.StudentProgress
}

func (m *mockProgressReader) Progress(context.Context, string) (adaptive.StudentProgress, error) {
	return m.progress, nil
}

func (m *mockProgressReader) TopicAttempts(context.Context, string, string) ([]adaptive.Attempt, error) {
	return nil, nil
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// perfectHistory builds n fully-correct attempts ending the day before
// testNow.
func perfectHistory(n int) []adaptive.Attempt {
	attempts := make([]adaptive.Attempt, n)
	for i := range attempts {
		attempts[i] = adaptive.Attempt{
			Correct:   5,
			Total:     5,
			Timestamp: testNow.AddDate(0, 0, -(n - i)),
		}
	}
	return attempts
}

func TestService_RefreshUnlocks(t *testing.T) {
	unlocks := &mockUnlockRepo{}
	attempts := &mockAttemptRepo{records: []store.AttemptRecord{
		{TopicID: "add-fractions", Correct: 5, Total: 5},
		{TopicID: "add-fractions", Correct: 5, Total: 5},
		{TopicID: "add-fractions", Correct: 5, Total: 5},
	}}
	progress := &mockProgressReader{progress: adaptive.StudentProgress{
		"add-fractions": {Attempts: perfectHistory(3), TimeSpent: 30},
	}}
	svc := NewService(unlocks, attempts, progress)

	newly, err := svc.Refresh(context.Background(), "stu-1", testNow)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	want := []string{"first-steps", "on-a-roll", "breakthrough"}
	got := ids(newly)
	if len(got) != len(want) {
		t.Fatalf("unlocked %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unlocked %v, want %v", got, want)
		}
	}
	if len(unlocks.appended) != 3 {
		t.Errorf("appended %v, want one event per unlock", unlocks.appended)
	}
}

func TestService_RefreshIdempotent(t *testing.T) {
	unlocks := &mockUnlockRepo{records: []store.AchievementRecord{
		{AchievementID: "first-steps", Timestamp: testNow},
		{AchievementID: "on-a-roll", Timestamp: testNow},
		{AchievementID: "breakthrough", Timestamp: testNow},
	}}
	attempts := &mockAttemptRepo{records: []store.AttemptRecord{
		{TopicID: "add-fractions", Correct: 5, Total: 5},
		{TopicID: "add-fractions", Correct: 5, Total: 5},
		{TopicID: "add-fractions", Correct: 5, Total: 5},
	}}
	progress := &mockProgressReader{progress: adaptive.StudentProgress{
		"add-fractions": {Attempts: perfectHistory(3), TimeSpent: 30},
	}}
	svc := NewService(unlocks, attempts, progress)

	newly, err := svc.Refresh(context.Background(), "stu-1", testNow)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(newly) != 0 {
		t.Errorf("re-unlocked %v", ids(newly))
	}
	if len(unlocks.appended) != 0 {
		t.Errorf("appended %v on an idempotent refresh", unlocks.appended)
	}
}

func TestService_RefreshListError(t *testing.T) {
	unlocks := &mockUnlockRepo{listErr: errors.New("db closed")}
	svc := NewService(unlocks, &mockAttemptRepo{}, &mockProgressReader{})

	if _, err := svc.Refresh(context.Background(), "stu-1", testNow); err == nil {
		t.Fatal("expected error")
	}
}

func TestService_Status(t *testing.T) {
	unlockTime := testNow.Add(-time.Hour)
	unlocks := &mockUnlockRepo{records: []store.AchievementRecord{
		{AchievementID: "first-steps", Timestamp: unlockTime},
	}}
	svc := NewService(unlocks, &mockAttemptRepo{}, &mockProgressReader{})

	entries, err := svc.Status(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if len(entries) != len(Catalog()) {
		t.Fatalf("entries = %d, want the whole catalog (%d)", len(entries), len(Catalog()))
	}

	if !entries[0].Unlocked || entries[0].ID != "first-steps" {
		t.Errorf("expected first-steps unlocked, got %+v", entries[0])
	}
	if entries[0].UnlockedAt == nil || !entries[0].UnlockedAt.Equal(unlockTime) {
		t.Errorf("unlocked at = %v, want %v", entries[0].UnlockedAt, unlockTime)
	}
	if entries[1].Unlocked || entries[1].UnlockedAt != nil {
		t.Errorf("expected %s locked, got %+v", entries[1].ID, entries[1])
	}
}

func TestBuildSnapshot(t *testing.T) {
	// A miss splits the perfect runs: the best is the later run of four.
	records := []store.AttemptRecord{
		{TopicID: "a", Correct: 5, Total: 5},
		{TopicID: "b", Correct: 5, Total: 5},
		{TopicID: "a", Correct: 3, Total: 5},
		{TopicID: "a", Correct: 5, Total: 5},
		{TopicID: "b", Correct: 4, Total: 4},
		{TopicID: "a", Correct: 2, Total: 2},
		{TopicID: "b", Correct: 1, Total: 1},
	}
	progress := adaptive.StudentProgress{
		"a": {Attempts: perfectHistory(4), TimeSpent: 45},
		"b": {Attempts: perfectHistory(3), TimeSpent: 20},
	}

	snap := BuildSnapshot(progress, records, testNow)

	if snap.TotalAttempts != 7 {
		t.Errorf("total attempts = %d, want 7", snap.TotalAttempts)
	}
	if snap.TopicsStarted != 2 {
		t.Errorf("topics started = %d, want 2", snap.TopicsStarted)
	}
	if snap.TopicsMastered != 2 {
		t.Errorf("topics mastered = %d, want 2", snap.TopicsMastered)
	}
	if snap.TotalMinutes != 65 {
		t.Errorf("total minutes = %d, want 65", snap.TotalMinutes)
	}
	if snap.BestPerfectRun != 4 {
		t.Errorf("best perfect run = %d, want 4", snap.BestPerfectRun)
	}
}

func TestBuildSnapshot_FastPaceUnlocksPacesetter(t *testing.T) {
	progress := adaptive.StudentProgress{}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		progress[id] = adaptive.TopicProgress{Attempts: perfectHistory(2), TimeSpent: 15}
	}

	snap := BuildSnapshot(progress, nil, testNow)

	if snap.Velocity.Pace != adaptive.PaceFast {
		t.Fatalf("pace = %q, want fast", snap.Velocity.Pace)
	}
	unlocked := ids(Evaluate(snap, nil))
	found := false
	for _, id := range unlocked {
		if id == "pacesetter" {
			found = true
		}
	}
	if !found {
		t.Errorf("pacesetter not in %v", unlocked)
	}
}
