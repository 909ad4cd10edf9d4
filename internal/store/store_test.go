package store

import (
	"context"
	"errors"
	"testing"

	"github.com/akarpov/mentora/internal/adaptive"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"students",
		"attempt_events",
		"assessment_events",
		"llm_request_events",
		"achievement_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestStudentCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Students()

	created, err := repo.Create(ctx, StudentData{Name: "maya", Grade: 4, PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PublicID == "" {
		t.Fatal("expected a generated public id")
	}

	byID, err := repo.ByPublicID(ctx, created.PublicID)
	if err != nil {
		t.Fatalf("by public id: %v", err)
	}
	if byID.Name != "maya" || byID.Grade != 4 {
		t.Errorf("got %+v, want name maya grade 4", byID)
	}

	byName, err := repo.ByName(ctx, "maya")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if byName.PublicID != created.PublicID {
		t.Errorf("public id = %q, want %q", byName.PublicID, created.PublicID)
	}
	if byName.PasswordHash != "hash" {
		t.Errorf("password hash = %q, want %q", byName.PasswordHash, "hash")
	}
}

func TestStudentNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Students().ByPublicID(ctx, "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ByPublicID error = %v, want ErrNotFound", err)
	}

	_, err = s.Students().ByName(ctx, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ByName error = %v, want ErrNotFound", err)
	}
}

func TestStudentDuplicateNameRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Students()

	if _, err := repo.Create(ctx, StudentData{Name: "sam", PasswordHash: "h"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, StudentData{Name: "sam", PasswordHash: "h"}); err == nil {
		t.Fatal("expected error creating duplicate name")
	}
}

func TestStudentList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Students()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := repo.Create(ctx, StudentData{Name: name, PasswordHash: "h"}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	students, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("len = %d, want 3", len(students))
	}
}

func TestAttemptAppendPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Attempts()

	// Interleave two topics; per-topic order must match append order.
	batches := []AttemptEventData{
		{StudentID: "stu-1", TopicID: "fractions", Correct: 1, Total: 4, Minutes: 10, Source: SourcePractice},
		{StudentID: "stu-1", TopicID: "decimals", Correct: 2, Total: 4, Minutes: 5, Source: SourcePractice},
		{StudentID: "stu-1", TopicID: "fractions", Correct: 3, Total: 4, Minutes: 10, Source: SourceAssessment},
		{StudentID: "stu-1", TopicID: "fractions", Correct: 4, Total: 4, Minutes: 15, Source: SourcePractice},
	}
	for i, b := range batches {
		if err := repo.Append(ctx, b); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.ListByStudent(ctx, "stu-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("len = %d, want 4", len(records))
	}
	for i, r := range records {
		if r.Sequence != int64(i+1) {
			t.Errorf("records[%d].Sequence = %d, want %d", i, r.Sequence, i+1)
		}
	}

	fractions, err := repo.ListByStudentTopic(ctx, "stu-1", "fractions")
	if err != nil {
		t.Fatalf("list topic: %v", err)
	}
	wantCorrect := []int{1, 3, 4}
	if len(fractions) != len(wantCorrect) {
		t.Fatalf("fractions len = %d, want %d", len(fractions), len(wantCorrect))
	}
	for i, r := range fractions {
		if r.Correct != wantCorrect[i] {
			t.Errorf("fractions[%d].Correct = %d, want %d", i, r.Correct, wantCorrect[i])
		}
	}
}

func TestProgressGroupsByTopic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Attempts()

	batches := []AttemptEventData{
		{StudentID: "stu-1", TopicID: "fractions", Correct: 1, Total: 4, Minutes: 10, Source: SourcePractice},
		{StudentID: "stu-2", TopicID: "fractions", Correct: 4, Total: 4, Minutes: 20, Source: SourcePractice},
		{StudentID: "stu-1", TopicID: "fractions", Correct: 2, Total: 4, Minutes: 10, Source: SourcePractice},
		{StudentID: "stu-1", TopicID: "geometry", Correct: 3, Total: 3, Minutes: 5, Source: SourcePractice},
	}
	for i, b := range batches {
		if err := repo.Append(ctx, b); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	progress, err := s.Progress().Progress(ctx, "stu-1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("topics = %d, want 2", len(progress))
	}

	fractions := progress["fractions"]
	if len(fractions.Attempts) != 2 {
		t.Fatalf("fractions attempts = %d, want 2", len(fractions.Attempts))
	}
	if fractions.Attempts[0].Correct != 1 || fractions.Attempts[1].Correct != 2 {
		t.Errorf("fractions attempts out of order: %+v", fractions.Attempts)
	}
	if fractions.TimeSpent != 20 {
		t.Errorf("fractions TimeSpent = %d, want 20", fractions.TimeSpent)
	}

	other, err := s.Progress().Progress(ctx, "stu-2")
	if err != nil {
		t.Fatalf("progress stu-2: %v", err)
	}
	if len(other) != 1 || len(other["fractions"].Attempts) != 1 {
		t.Errorf("stu-2 progress = %+v, want one fractions attempt", other)
	}
}

func TestTopicAttempts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Attempts()

	for i, b := range []AttemptEventData{
		{StudentID: "stu-1", TopicID: "algebra", Correct: 1, Total: 2, Source: SourcePractice},
		{StudentID: "stu-1", TopicID: "shapes", Correct: 2, Total: 2, Source: SourcePractice},
		{StudentID: "stu-1", TopicID: "algebra", Correct: 2, Total: 2, Source: SourcePractice},
	} {
		if err := repo.Append(ctx, b); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	attempts, err := s.Progress().TopicAttempts(ctx, "stu-1", "algebra")
	if err != nil {
		t.Fatalf("topic attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("len = %d, want 2", len(attempts))
	}
	if attempts[0].Correct != 1 || attempts[1].Correct != 2 {
		t.Errorf("attempts out of order: %+v", attempts)
	}
}

func TestProgressEmptyStudent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	progress, err := s.Progress().Progress(ctx, "never-seen")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(progress) != 0 {
		t.Errorf("len = %d, want 0", len(progress))
	}
}

func TestAssessmentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Assessments()

	first := AssessmentEventData{
		StudentID:      "stu-1",
		AssessmentID:   "assess-1",
		TopicIDs:       []string{"fractions", "decimals"},
		Score:          3,
		TotalQuestions: 5,
		Results: []adaptive.QuestionResult{
			{Topic: "fractions", Question: "1/2 + 1/4?", StudentAnswer: "3/4", CorrectAnswer: "3/4", IsCorrect: true},
			{Topic: "decimals", Question: "0.5 as a fraction?", StudentAnswer: "1/5", CorrectAnswer: "1/2", IsCorrect: false},
		},
	}
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	second := AssessmentEventData{
		StudentID:      "stu-1",
		AssessmentID:   "assess-2",
		TopicIDs:       []string{"geometry"},
		Score:          4,
		TotalQuestions: 4,
	}
	if err := repo.Append(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	records, err := repo.ListByStudent(ctx, "stu-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}

	// Newest first.
	if records[0].AssessmentID != "assess-2" {
		t.Errorf("records[0].AssessmentID = %q, want assess-2", records[0].AssessmentID)
	}

	got := records[1]
	if got.Score != 3 || got.TotalQuestions != 5 {
		t.Errorf("score = %d/%d, want 3/5", got.Score, got.TotalQuestions)
	}
	if len(got.TopicIDs) != 2 || got.TopicIDs[0] != "fractions" {
		t.Errorf("topic ids = %v", got.TopicIDs)
	}
	if len(got.Results) != 2 {
		t.Fatalf("results len = %d, want 2", len(got.Results))
	}
	if got.Results[1].IsCorrect || got.Results[1].Topic != "decimals" {
		t.Errorf("results[1] = %+v", got.Results[1])
	}

	limited, err := repo.ListByStudent(ctx, "stu-1", 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 || limited[0].AssessmentID != "assess-2" {
		t.Errorf("limited = %+v, want only assess-2", limited)
	}
}

func TestAchievementAppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Achievements()

	if err := repo.Append(ctx, "stu-1", "first-steps"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "stu-1", "topic-master"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "stu-2", "first-steps"); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.ListByStudent(ctx, "stu-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].AchievementID != "first-steps" || records[1].AchievementID != "topic-master" {
		t.Errorf("unlock order wrong: %+v", records)
	}
	if records[0].Sequence >= records[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", records[0].Sequence, records[1].Sequence)
	}
}

func TestLLMEventAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.LLMEvents().Append(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "quiz-gen",
		InputTokens:  900,
		OutputTokens: 400,
		CostUSD:      0.0087,
		DurationMs:   1200,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.Client().LLMRequestEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	e := events[0]
	if e.Provider != "anthropic" || e.Purpose != "quiz-gen" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", e.Sequence)
	}
}
