package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpov/mentora/ent"
	"github.com/akarpov/mentora/ent/student"
)

// studentRepo implements StudentRepo using the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Create(ctx context.Context, data StudentData) (*StudentRecord, error) {
	s, err := r.client.Student.Create().
		SetPublicID(uuid.NewString()).
		SetName(data.Name).
		SetGrade(data.Grade).
		SetPasswordHash(data.PasswordHash).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return entStudentToRecord(s), nil
}

func (r *studentRepo) ByPublicID(ctx context.Context, publicID string) (*StudentRecord, error) {
	s, err := r.client.Student.Query().
		Where(student.PublicID(publicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("student %q: %w", publicID, ErrNotFound)
		}
		return nil, fmt.Errorf("query student by public id: %w", err)
	}
	return entStudentToRecord(s), nil
}

func (r *studentRepo) ByName(ctx context.Context, name string) (*StudentRecord, error) {
	s, err := r.client.Student.Query().
		Where(student.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("student %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("query student by name: %w", err)
	}
	return entStudentToRecord(s), nil
}

func (r *studentRepo) List(ctx context.Context) ([]StudentRecord, error) {
	students, err := r.client.Student.Query().
		Order(ent.Asc(student.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	records := make([]StudentRecord, len(students))
	for i, s := range students {
		records[i] = *entStudentToRecord(s)
	}
	return records, nil
}

func entStudentToRecord(s *ent.Student) *StudentRecord {
	return &StudentRecord{
		ID:           s.ID,
		PublicID:     s.PublicID,
		Name:         s.Name,
		Grade:        s.Grade,
		PasswordHash: s.PasswordHash,
		CreatedAt:    s.CreatedAt,
	}
}
