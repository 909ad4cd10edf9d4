package adaptive

import (
	"testing"

	"github.com/akarpov/mentora/internal/curriculum"
)

func mustGraph(t *testing.T, topics []curriculum.Topic) *curriculum.Graph {
	t.Helper()
	g, err := curriculum.New(topics)
	if err != nil {
		t.Fatalf("building test graph: %v", err)
	}
	return g
}

// perfectAttempts returns n fully correct attempts.
func perfectAttempts(n int) []Attempt {
	attempts := make([]Attempt, n)
	for i := range attempts {
		attempts[i] = at(4, 4)
	}
	return attempts
}

func TestNextTopic_UnlocksAfterPrerequisite(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "a", Subject: curriculum.SubjectArithmetic},
		{ID: "b", Subject: curriculum.SubjectArithmetic, Prerequisites: []string{"a"}},
	})
	progress := StudentProgress{
		"a": {Attempts: perfectAttempts(5)},
	}

	rec := NextTopic(progress, g)
	if rec == nil {
		t.Fatal("expected a recommendation, got nil")
	}
	if rec.Topic != "b" {
		t.Errorf("Topic = %q, want %q", rec.Topic, "b")
	}
	if rec.CurrentMastery != 0 {
		t.Errorf("CurrentMastery = %d, want 0", rec.CurrentMastery)
	}
	if rec.Status != StatusNotStarted {
		t.Errorf("Status = %q, want %q", rec.Status, StatusNotStarted)
	}
}

func TestNextTopic_NilWhenAllMastered(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "a", Subject: curriculum.SubjectArithmetic},
		{ID: "b", Subject: curriculum.SubjectArithmetic, Prerequisites: []string{"a"}},
	})
	progress := StudentProgress{
		"a": {Attempts: perfectAttempts(5)},
		"b": {Attempts: perfectAttempts(5)},
	}

	if rec := NextTopic(progress, g); rec != nil {
		t.Errorf("expected nil recommendation, got %+v", rec)
	}
}

func TestNextTopic_LockedBehindUnmasteredPrereq(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "a", Subject: curriculum.SubjectArithmetic},
		{ID: "b", Subject: curriculum.SubjectArithmetic, Prerequisites: []string{"a"}},
	})

	// Nothing attempted: only the root is available.
	rec := NextTopic(StudentProgress{}, g)
	if rec == nil {
		t.Fatal("expected a recommendation, got nil")
	}
	if rec.Topic != "a" {
		t.Errorf("Topic = %q, want %q", rec.Topic, "a")
	}
}

func TestNextTopic_InProgressBeatsImportance(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "important", Subject: curriculum.SubjectArithmetic, Importance: 10},
		{ID: "started", Subject: curriculum.SubjectArithmetic, Importance: 3},
	})
	// One half-correct attempt puts "started" at level 65: inside the
	// in-progress band, which outranks raw importance.
	progress := StudentProgress{
		"started": {Attempts: []Attempt{at(1, 2)}},
	}

	rec := NextTopic(progress, g)
	if rec == nil {
		t.Fatal("expected a recommendation, got nil")
	}
	if rec.Topic != "started" {
		t.Errorf("Topic = %q, want %q", rec.Topic, "started")
	}
	if rec.CurrentMastery != 65 {
		t.Errorf("CurrentMastery = %d, want 65", rec.CurrentMastery)
	}
}

func TestNextTopic_ImportanceDescending(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "low", Subject: curriculum.SubjectArithmetic, Importance: 3},
		{ID: "high", Subject: curriculum.SubjectArithmetic, Importance: 9},
		{ID: "mid", Subject: curriculum.SubjectArithmetic, Importance: 5},
	})

	rec := NextTopic(StudentProgress{}, g)
	if rec == nil {
		t.Fatal("expected a recommendation, got nil")
	}
	if rec.Topic != "high" {
		t.Errorf("Topic = %q, want %q", rec.Topic, "high")
	}
	if rec.Importance != 9 {
		t.Errorf("Importance = %d, want 9", rec.Importance)
	}
}

func TestNextTopic_TiesKeepDeclarationOrder(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "first", Subject: curriculum.SubjectArithmetic, Importance: 5},
		{ID: "second", Subject: curriculum.SubjectArithmetic, Importance: 5},
	})

	rec := NextTopic(StudentProgress{}, g)
	if rec == nil {
		t.Fatal("expected a recommendation, got nil")
	}
	if rec.Topic != "first" {
		t.Errorf("Topic = %q, want %q (declaration order tiebreak)", rec.Topic, "first")
	}
}

func TestNextTopic_AppliesDeclaredDefaults(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "bare", Subject: curriculum.SubjectArithmetic},
	})

	rec := NextTopic(StudentProgress{}, g)
	if rec == nil {
		t.Fatal("expected a recommendation, got nil")
	}
	if rec.Difficulty != curriculum.DefaultDifficulty {
		t.Errorf("Difficulty = %q, want %q", rec.Difficulty, curriculum.DefaultDifficulty)
	}
	if rec.Importance != curriculum.DefaultImportance {
		t.Errorf("Importance = %d, want %d", rec.Importance, curriculum.DefaultImportance)
	}
}

func TestNextTopic_DegenerateInputs(t *testing.T) {
	if rec := NextTopic(StudentProgress{}, nil); rec != nil {
		t.Errorf("nil graph: expected nil, got %+v", rec)
	}

	empty := mustGraph(t, nil)
	if rec := NextTopic(StudentProgress{}, empty); rec != nil {
		t.Errorf("empty graph: expected nil, got %+v", rec)
	}
}

func TestNextTopic_RepeatedCallsAdvance(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "a", Subject: curriculum.SubjectArithmetic},
		{ID: "b", Subject: curriculum.SubjectArithmetic, Prerequisites: []string{"a"}},
		{ID: "c", Subject: curriculum.SubjectArithmetic, Prerequisites: []string{"b"}},
	})
	progress := StudentProgress{}

	order := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		rec := NextTopic(progress, g)
		if rec == nil {
			t.Fatalf("call %d: expected a recommendation, got nil", i+1)
		}
		order = append(order, rec.Topic)
		progress[rec.Topic] = TopicProgress{Attempts: perfectAttempts(3)}
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("recommendation %d = %q, want %q", i+1, order[i], want[i])
		}
	}
	if rec := NextTopic(progress, g); rec != nil {
		t.Errorf("after mastering everything: expected nil, got %+v", rec)
	}
}
