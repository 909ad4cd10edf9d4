package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded batch of questions a student worked
// through on a topic. Both practice quizzes and assessments append
// these; mastery is always recomputed from the full per-topic sequence.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Public id of the student"),
		field.String("topic_id").
			NotEmpty().
			Comment("Curriculum topic attempted"),
		field.Int("correct").
			Comment("Questions answered correctly in the batch"),
		field.Int("total").
			Comment("Questions in the batch"),
		field.Int("minutes").
			Default(0).
			Comment("Study time spent, in minutes"),
		field.String("source").
			NotEmpty().
			Comment("practice or assessment"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("topic_id"),
		index.Fields("student_id", "topic_id"),
	}
}
