package store

import (
	"context"
	"fmt"

	"github.com/akarpov/mentora/ent"
	"github.com/akarpov/mentora/ent/achievementevent"
)

// achievementRepo implements AchievementRepo backed by ent and the
// global sequence counter.
type achievementRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *achievementRepo) Append(ctx context.Context, studentID, achievementID string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetStudentID(studentID).
		SetAchievementID(achievementID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *achievementRepo) ListByStudent(ctx context.Context, studentID string) ([]AchievementRecord, error) {
	events, err := r.client.AchievementEvent.Query().
		Where(achievementevent.StudentID(studentID)).
		Order(ent.Asc(achievementevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}

	records := make([]AchievementRecord, len(events))
	for i, e := range events {
		records[i] = AchievementRecord{
			AchievementID: e.AchievementID,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}
