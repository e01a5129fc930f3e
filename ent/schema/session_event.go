package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records assessment session lifecycle events (start/complete/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("assessment_id").
			NotEmpty().
			Comment("Which assessment the session ran"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abandon"),
		field.Int("questions_answered").
			Default(0).
			Comment("Answers collected (on complete only)"),
		field.Int("attention_failures").
			Default(0).
			Comment("Failed attention checks (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("assessment_id"),
		index.Fields("action"),
	}
}
