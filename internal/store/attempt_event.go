package store

import (
	"context"
	"fmt"

	"github.com/akarpov/mentora/ent"
	"github.com/akarpov/mentora/ent/attemptevent"
)

// attemptRepo implements AttemptRepo backed by ent and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetTopicID(data.TopicID).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetMinutes(data.Minutes).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByStudent(ctx context.Context, studentID string) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.StudentID(studentID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return attemptRecords(events), nil
}

func (r *attemptRepo) ListByStudentTopic(ctx context.Context, studentID, topicID string) ([]AttemptRecord, error) {
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
	return attemptRecords(events), nil
}

func attemptRecords(events []*ent.AttemptEvent) []AttemptRecord {
	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			StudentID: e.StudentID,
			TopicID:   e.TopicID,
			Correct:   e.Correct,
			Total:     e.Total,
			Minutes:   e.Minutes,
			Source:    e.Source,
		}
	}
	return records
}
