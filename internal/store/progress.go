package store

import (
	"context"
	"fmt"

	"github.com/akarpov/mentora/ent"
	"github.com/akarpov/mentora/ent/attemptevent"
	"github.com/akarpov/mentora/internal/adaptive"
)

// progressReader assembles adaptive-core inputs from the attempt log.
type progressReader struct {
	client *ent.Client
}

// Progress scans the student's attempt events in global sequence order and
// groups them by topic. Within each topic the slice order is therefore
// chronological, which is the ordering contract the mastery math depends on.
func (r *progressReader) Progress(ctx context.Context, studentID string) (adaptive.StudentProgress, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.StudentID(studentID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	progress := make(adaptive.StudentProgress)
	for _, e := range events {
		tp := progress[e.TopicID]
		tp.Attempts = append(tp.Attempts, adaptive.Attempt{
			Correct:   e.Correct,
			Total:     e.Total,
			Timestamp: e.Timestamp,
		})
		tp.TimeSpent += e.Minutes
		progress[e.TopicID] = tp
	}
	return progress, nil
}

func (r *progressReader) TopicAttempts(ctx context.Context, studentID, topicID string) ([]adaptive.Attempt, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.StudentID(studentID),
			attemptevent.TopicID(topicID),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic attempts: %w", err)
	}

	attempts := make([]adaptive.Attempt, len(events))
	for i, e := range events {
		attempts[i] = adaptive.Attempt{
			Correct:   e.Correct,
			Total:     e.Total,
			Timestamp: e.Timestamp,
		}
	}
	return attempts, nil
}
