package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single submitted answer within a session.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("assessment_id").
			NotEmpty().
			Comment("Which assessment the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("The question answered"),
		field.String("kind").
			NotEmpty().
			Comment("rating, choice, or text"),
		field.String("value").
			Comment("Submitted answer: rating digits, dimension id, option value, or free text"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("assessment_id"),
		index.Fields("question_id"),
	}
}
