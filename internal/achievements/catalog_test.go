package achievements

import (
	"testing"

	"github.com/akarpov/mentora/internal/adaptive"
)

func ids(as []Achievement) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func TestCatalogWellFormed(t *testing.T) {
	if len(Catalog()) == 0 {
		t.Fatal("empty catalog")
	}
	for _, a := range Catalog() {
		if a.ID == "" || a.Name == "" || a.Description == "" {
			t.Errorf("incomplete entry %+v", a)
		}
		if a.Check == nil {
			t.Errorf("entry %s has no check", a.ID)
		}
		got := ByID(a.ID)
		if got == nil || got.ID != a.ID {
			t.Errorf("ByID(%q) did not round-trip", a.ID)
		}
	}
	if ByID("no-such-badge") != nil {
		t.Error("ByID returned an entry for an unknown id")
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].ID = "mutated"
	if Catalog()[0].ID == "mutated" {
		t.Error("Catalog() exposed the underlying slice")
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want []string
	}{
		{
			name: "no activity",
			snap: Snapshot{},
			want: nil,
		},
		{
			name: "first attempt",
			snap: Snapshot{TotalAttempts: 1},
			want: []string{"first-steps"},
		},
		{
			name: "streaks stack",
			snap: Snapshot{TotalAttempts: 12, TopicsStarted: 5, BestPerfectRun: 5},
			want: []string{"first-steps", "explorer", "on-a-roll", "hot-streak"},
		},
		{
			name: "four mastered stays below collector",
			snap: Snapshot{TotalAttempts: 20, TopicsStarted: 4, TopicsMastered: 4},
			want: []string{"first-steps", "breakthrough"},
		},
		{
			name: "everything",
			snap: Snapshot{
				TotalAttempts:  40,
				TopicsStarted:  12,
				TopicsMastered: 10,
				TotalMinutes:   700,
				BestPerfectRun: 10,
				Velocity:       adaptive.VelocityReport{Pace: adaptive.PaceFast},
			},
			want: []string{
				"first-steps", "explorer", "on-a-roll", "hot-streak",
				"unstoppable", "breakthrough", "collector", "scholar",
				"pacesetter", "marathon",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Evaluate(tt.snap, nil))
			if len(got) != len(tt.want) {
				t.Fatalf("unlocked %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("unlocked %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEvaluate_SkipsUnlocked(t *testing.T) {
	snap := Snapshot{TotalAttempts: 1, TopicsMastered: 1}
	got := ids(Evaluate(snap, map[string]bool{"first-steps": true}))
	if len(got) != 1 || got[0] != "breakthrough" {
		t.Errorf("unlocked %v, want [breakthrough]", got)
	}
}
