// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/akarpov/mentora/ent/assessmentevent"
	"github.com/akarpov/mentora/ent/predicate"
	"github.com/akarpov/mentora/ent/schema"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentEventUpdate) SetStudentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableStudentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdate) SetAssessmentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAssessmentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *AssessmentEventUpdate) SetTopicIds(v []string) *AssessmentEventUpdate {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *AssessmentEventUpdate) AppendTopicIds(v []string) *AssessmentEventUpdate {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// ClearTopicIds clears the value of the "topic_ids" field.
func (_u *AssessmentEventUpdate) ClearTopicIds() *AssessmentEventUpdate {
	_u.mutation.ClearTopicIds()
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdate) SetScore(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScore(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdate) AddScore(v int) *AssessmentEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AssessmentEventUpdate) SetTotalQuestions(v int) *AssessmentEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTotalQuestions(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AssessmentEventUpdate) AddTotalQuestions(v int) *AssessmentEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *AssessmentEventUpdate) SetResults(v []schema.QuestionOutcome) *AssessmentEventUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *AssessmentEventUpdate) AppendResults(v []schema.QuestionOutcome) *AssessmentEventUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *AssessmentEventUpdate) ClearResults() *AssessmentEventUpdate {
	_u.mutation.ClearResults()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := assessmentevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(assessmentevent.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldTopicIds, value)
		})
	}
	if _u.mutation.TopicIdsCleared() {
		_spec.ClearField(assessmentevent.FieldTopicIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(assessmentevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(assessmentevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(assessmentevent.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(assessmentevent.FieldResults, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentEventUpdateOne) SetStudentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableStudentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdateOne) SetAssessmentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAssessmentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *AssessmentEventUpdateOne) SetTopicIds(v []string) *AssessmentEventUpdateOne {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *AssessmentEventUpdateOne) AppendTopicIds(v []string) *AssessmentEventUpdateOne {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// ClearTopicIds clears the value of the "topic_ids" field.
func (_u *AssessmentEventUpdateOne) ClearTopicIds() *AssessmentEventUpdateOne {
	_u.mutation.ClearTopicIds()
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdateOne) SetScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScore(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdateOne) AddScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AssessmentEventUpdateOne) SetTotalQuestions(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTotalQuestions(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AssessmentEventUpdateOne) AddTotalQuestions(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *AssessmentEventUpdateOne) SetResults(v []schema.QuestionOutcome) *AssessmentEventUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *AssessmentEventUpdateOne) AppendResults(v []schema.QuestionOutcome) *AssessmentEventUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *AssessmentEventUpdateOne) ClearResults() *AssessmentEventUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := assessmentevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(assessmentevent.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldTopicIds, value)
		})
	}
	if _u.mutation.TopicIdsCleared() {
		_spec.ClearField(assessmentevent.FieldTopicIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(assessmentevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(assessmentevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(assessmentevent.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(assessmentevent.FieldResults, field.TypeJSON)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
