// Package achievements awards badges for practice milestones. The catalog
// is immutable configuration validated at init; unlock state lives in the
// achievement event log, one event per student and badge.
package achievements

import (
	"github.com/akarpov/mentora/internal/adaptive"
)

// Category groups achievements for display.
type Category string

const (
	CategoryStarter  Category = "starter"
	CategoryStreak   Category = "streak"
	CategoryMastery  Category = "mastery"
	CategoryVelocity Category = "velocity"
)

// Achievement is one unlockable badge.
type Achievement struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	// Check reports whether a snapshot satisfies the unlock condition.
	// Unlocks never revert, even if a later snapshot stops satisfying it.
	Check func(s Snapshot) bool `json:"-"`
}

// Snapshot condenses a student's full record into the evidence the catalog
// checks against.
type Snapshot struct {
	// TotalAttempts is the number of recorded attempt batches.
	TotalAttempts int

	// TopicsStarted counts topics with at least one attempt.
	TopicsStarted int

	// TopicsMastered counts topics whose current status is mastered.
	TopicsMastered int

	// TotalMinutes is the study time summed over all topics.
	TotalMinutes int

	// BestPerfectRun is the longest run of consecutive fully-correct
	// attempt batches across all topics, in recording order.
	BestPerfectRun int

	// Velocity is the trailing-window velocity report.
	Velocity adaptive.VelocityReport
}
