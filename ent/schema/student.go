package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Student is a registered learner account. Not an event: rows are
// created once and looked up by public id or name.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID exposed through the API and MCP tools"),
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Login name"),
		field.Int("grade").
			Default(0).
			Comment("School grade, 0 when unknown"),
		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("bcrypt hash"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
