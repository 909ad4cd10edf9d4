package achievements

import (
	"fmt"

	"github.com/akarpov/mentora/internal/adaptive"
)

// catalog lists every achievement in display order. Never mutated after
// init.
var catalog = []Achievement{
	{
		ID:          "first-steps",
		Name:        "First Steps",
		Description: "Complete your first practice session",
		Category:    CategoryStarter,
		Check:       func(s Snapshot) bool { return s.TotalAttempts >= 1 },
	},
	{
		ID:          "explorer",
		Name:        "Explorer",
		Description: "Practice five different topics",
		Category:    CategoryStarter,
		Check:       func(s Snapshot) bool { return s.TopicsStarted >= 5 },
	},
	{
		ID:          "on-a-roll",
		Name:        "On a Roll",
		Description: "Three perfect practice sessions in a row",
		Category:    CategoryStreak,
		Check:       func(s Snapshot) bool { return s.BestPerfectRun >= 3 },
	},
	{
		ID:          "hot-streak",
		Name:        "Hot Streak",
		Description: "Five perfect practice sessions in a row",
		Category:    CategoryStreak,
		Check:       func(s Snapshot) bool { return s.BestPerfectRun >= 5 },
	},
	{
		ID:          "unstoppable",
		Name:        "Unstoppable",
		Description: "Ten perfect practice sessions in a row",
		Category:    CategoryStreak,
		Check:       func(s Snapshot) bool { return s.BestPerfectRun >= 10 },
	},
	{
		ID:          "breakthrough",
		Name:        "Breakthrough",
		Description: "Master your first topic",
		Category:    CategoryMastery,
		Check:       func(s Snapshot) bool { return s.TopicsMastered >= 1 },
	},
	{
		ID:          "collector",
		Name:        "Collector",
		Description: "Master five topics",
		Category:    CategoryMastery,
		Check:       func(s Snapshot) bool { return s.TopicsMastered >= 5 },
	},
	{
		ID:          "scholar",
		Name:        "Scholar",
		Description: "Master ten topics",
		Category:    CategoryMastery,
		Check:       func(s Snapshot) bool { return s.TopicsMastered >= 10 },
	},
	{
		ID:          "pacesetter",
		Name:        "Pacesetter",
		Description: "Keep a fast learning pace over the last month",
		Category:    CategoryVelocity,
		Check:       func(s Snapshot) bool { return s.Velocity.Pace == adaptive.PaceFast },
	},
	{
		ID:          "marathon",
		Name:        "Marathon",
		Description: "Ten hours of recorded study time",
		Category:    CategoryVelocity,
		Check:       func(s Snapshot) bool { return s.TotalMinutes >= 600 },
	},
}

// byID indexes the catalog for lookups.
var byID map[string]*Achievement

func init() {
	byID = make(map[string]*Achievement, len(catalog))
	for i := range catalog {
		a := &catalog[i]
		if a.ID == "" || a.Name == "" || a.Description == "" || a.Check == nil {
			panic(fmt.Sprintf("achievements: incomplete catalog entry at index %d", i))
		}
		if _, dup := byID[a.ID]; dup {
			panic(fmt.Sprintf("achievements: duplicate achievement id %q", a.ID))
		}
		byID[a.ID] = a
	}
}

// Catalog returns every achievement in display order.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// ByID returns the achievement with the given id, or nil.
func ByID(id string) *Achievement {
	return byID[id]
}

// Evaluate returns the achievements the snapshot satisfies that are not in
// the unlocked set, in catalog order.
func Evaluate(snap Snapshot, unlocked map[string]bool) []Achievement {
	var newly []Achievement
	for _, a := range catalog {
		if unlocked[a.ID] {
			continue
		}
		if a.Check(snap) {
			newly = append(newly, a)
		}
	}
	return newly
}
