package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records every applied schedule adaptation, append-only.
// Preview-only analyses are never logged; a row here means the student's
// calendar was actually mutated.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("classification").
			NotEmpty().
			Comment("Pace class that drove the adaptation: on-pace, falling-behind, ahead-of-pace, struggling"),
		field.String("urgency").
			NotEmpty().
			Comment("info, advisory, or urgent"),
		field.Int("mutation_count").
			Default(0).
			Comment("Number of events touched by the apply step"),
		field.String("rationale").
			Default("").
			Comment("Human-readable explanation shown to the learner"),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("classification"),
	}
}
