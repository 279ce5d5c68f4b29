package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CalendarEvent is one scheduled study session bound to a learning unit.
// Rows are created in bulk at enrollment, mutated by completion/edit
// operations and by cascade reschedules, and deleted on abandonment.
type CalendarEvent struct {
	ent.Schema
}

func (CalendarEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("course_id").
			NotEmpty().
			Immutable(),
		field.String("unit_id").
			NotEmpty().
			Immutable().
			Comment("Learning unit this session covers"),
		field.Int("unit_position").
			Immutable().
			Comment("Sequence position of the unit within the course"),
		field.Time("scheduled_at").
			Comment("Planned start of the session, UTC"),
		field.Int("planned_minutes").
			Positive(),
		field.Int("difficulty").
			Range(1, 5).
			Comment("Difficulty tier copied from the unit"),
		field.Bool("completed").
			Default(false),
		field.Int("actual_minutes").
			Optional().
			Nillable().
			Comment("Set only when completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CalendarEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "scheduled_at"),
		index.Fields("student_id", "completed"),
		index.Fields("course_id"),
		index.Fields("unit_id"),
	}
}
