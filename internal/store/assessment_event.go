package store

import (
	"context"
	"fmt"

	"github.com/akarpov/mentora/ent"
	"github.com/akarpov/mentora/ent/assessmentevent"
	entschema "github.com/akarpov/mentora/ent/schema"
	"github.com/akarpov/mentora/internal/adaptive"
)

// assessmentRepo implements AssessmentRepo backed by ent and the global
// sequence counter.
type assessmentRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *assessmentRepo) Append(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var results []entschema.QuestionOutcome
	for _, q := range data.Results {
		results = append(results, entschema.QuestionOutcome{
			Topic:         q.Topic,
			Question:      q.Question,
			StudentAnswer: q.StudentAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       q.IsCorrect,
		})
	}

	builder := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetAssessmentID(data.AssessmentID).
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions)

	if len(data.TopicIDs) > 0 {
		builder = builder.SetTopicIds(data.TopicIDs)
	}
	if len(results) > 0 {
		builder = builder.SetResults(results)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *assessmentRepo) ListByStudent(ctx context.Context, studentID string, limit int) ([]AssessmentRecord, error) {
	query := r.client.AssessmentEvent.Query().
		Where(assessmentevent.StudentID(studentID)).
		Order(ent.Desc(assessmentevent.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	records := make([]AssessmentRecord, len(events))
	for i, e := range events {
		results := make([]adaptive.QuestionResult, len(e.Results))
		for j, q := range e.Results {
			results[j] = adaptive.QuestionResult{
				Topic:         q.Topic,
				Question:      q.Question,
				StudentAnswer: q.StudentAnswer,
				CorrectAnswer: q.CorrectAnswer,
				IsCorrect:     q.Correct,
			}
		}
		records[i] = AssessmentRecord{
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
			StudentID:      e.StudentID,
			AssessmentID:   e.AssessmentID,
			TopicIDs:       e.TopicIds,
			Score:          e.Score,
			TotalQuestions: e.TotalQuestions,
			Results:        results,
		}
	}
	return records, nil
}
