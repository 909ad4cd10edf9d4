package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/store"
)

// StatusEntry pairs a catalog achievement with a student's unlock state.
type StatusEntry struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// Service evaluates the catalog against stored progress and records
// unlocks.
type Service struct {
	unlocks  store.AchievementRepo
	attempts store.AttemptRepo
	progress store.ProgressReader
}

// NewService creates an achievement service over the given repos.
func NewService(unlocks store.AchievementRepo, attempts store.AttemptRepo, progress store.ProgressReader) *Service {
	return &Service{unlocks: unlocks, attempts: attempts, progress: progress}
}

// Refresh re-evaluates the catalog for a student and records any new
// unlocks. Returns the newly unlocked achievements in catalog order.
// Recorded unlocks are never appended a second time.
func (s *Service) Refresh(ctx context.Context, studentID string, now time.Time) ([]Achievement, error) {
	records, err := s.unlocks.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	unlocked := make(map[string]bool, len(records))
	for _, r := range records {
		unlocked[r.AchievementID] = true
	}

	snap, err := s.snapshot(ctx, studentID, now)
	if err != nil {
		return nil, err
	}

	newly := Evaluate(snap, unlocked)
	for _, a := range newly {
		if err := s.unlocks.Append(ctx, studentID, a.ID); err != nil {
			return nil, fmt.Errorf("record unlock %s: %w", a.ID, err)
		}
	}
	return newly, nil
}

// Status returns the whole catalog with the student's unlock state.
func (s *Service) Status(ctx context.Context, studentID string) ([]StatusEntry, error) {
	records, err := s.unlocks.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	unlockedAt := make(map[string]time.Time, len(records))
	for _, r := range records {
		unlockedAt[r.AchievementID] = r.Timestamp
	}

	entries := make([]StatusEntry, 0, len(catalog))
	for _, a := range catalog {
		entry := StatusEntry{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Category:    a.Category,
		}
		if ts, ok := unlockedAt[a.ID]; ok {
			entry.Unlocked = true
			t := ts
			entry.UnlockedAt = &t
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Service) snapshot(ctx context.Context, studentID string, now time.Time) (Snapshot, error) {
	attempts, err := s.attempts.ListByStudent(ctx, studentID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list attempts: %w", err)
	}
	progress, err := s.progress.Progress(ctx, studentID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read progress: %w", err)
	}
	return BuildSnapshot(progress, attempts, now), nil
}

// BuildSnapshot condenses a student's record into the evidence the catalog
// checks. Attempts must be in sequence order; the interleaved order is what
// the perfect-run streak is measured over.
func BuildSnapshot(progress adaptive.StudentProgress, attempts []store.AttemptRecord, now time.Time) Snapshot {
	snap := Snapshot{
		TotalAttempts: len(attempts),
		TopicsStarted: len(progress),
		Velocity:      adaptive.ComputeVelocity(progress, adaptive.DefaultVelocityWeeks, now),
	}

	for _, tp := range progress {
		snap.TotalMinutes += tp.TimeSpent
		if adaptive.ComputeMastery(tp.Attempts).Status == adaptive.StatusMastered {
			snap.TopicsMastered++
		}
	}

	run := 0
	for _, a := range attempts {
		if a.Total > 0 && a.Correct == a.Total {
			run++
			if run > snap.BestPerfectRun {
				snap.BestPerfectRun = run
			}
		} else {
			run = 0
		}
	}

	return snap
}
