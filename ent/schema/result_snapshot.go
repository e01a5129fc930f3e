package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultSnapshot stores a completed assessment result: the full TestScores
// artifact as JSON plus the fields the history views filter on.
type ResultSnapshot struct {
	ent.Schema
}

func (ResultSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			Unique().
			NotEmpty().
			Comment("UUID of the result"),
		field.String("session_id").
			NotEmpty().
			Comment("Session that produced the result"),
		field.String("assessment_id").
			NotEmpty().
			Comment("Which assessment was scored"),
		field.String("type_code").
			Default("").
			Comment("Derived type code, if the assessment produces one"),
		field.Bool("flagged").
			Default(false).
			Comment("Attention-check failures reached the invalidity threshold"),
		field.Time("taken_at").
			Default(time.Now).
			Comment("When the assessment was completed"),
		field.JSON("scores", map[string]any{}).
			Comment("Full TestScores artifact as JSON"),
	}
}

func (ResultSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("taken_at"),
	}
}
