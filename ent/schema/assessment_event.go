package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one completed, graded assessment.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// QuestionOutcome is the serialized form of one graded question for
// persistence.
type QuestionOutcome struct {
	Topic         string `json:"topic"`
	Question      string `json:"question"`
	StudentAnswer string `json:"student_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Public id of the student"),
		field.String("assessment_id").
			NotEmpty().
			Comment("UUID assigned when the assessment was graded"),
		field.JSON("topic_ids", []string{}).
			Optional().
			Comment("Topics the assessment covered"),
		field.Int("score").
			Default(0).
			Comment("Questions answered correctly"),
		field.Int("total_questions").
			Default(0).
			Comment("Questions in the assessment"),
		field.JSON("results", []QuestionOutcome{}).
			Optional().
			Comment("Per-question grading detail"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("assessment_id"),
	}
}
