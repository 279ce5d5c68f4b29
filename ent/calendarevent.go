// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/studyloop/studyloop/ent/calendarevent"
)

// CalendarEvent is the model entity for the CalendarEvent schema.
type CalendarEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// Learning unit this session covers
	UnitID string `json:"unit_id,omitempty"`
	// Sequence position of the unit within the course
	UnitPosition int `json:"unit_position,omitempty"`
	// Planned start of the session, UTC
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	// PlannedMinutes holds the value of the "planned_minutes" field.
	PlannedMinutes int `json:"planned_minutes,omitempty"`
	// Difficulty tier copied from the unit
	Difficulty int `json:"difficulty,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Set only when completed
	ActualMinutes *int `json:"actual_minutes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarevent.FieldCompleted:
			values[i] = new(sql.NullBool)
		case calendarevent.FieldUnitPosition, calendarevent.FieldPlannedMinutes, calendarevent.FieldDifficulty, calendarevent.FieldActualMinutes:
			values[i] = new(sql.NullInt64)
		case calendarevent.FieldStudentID, calendarevent.FieldCourseID, calendarevent.FieldUnitID:
			values[i] = new(sql.NullString)
		case calendarevent.FieldScheduledAt, calendarevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case calendarevent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarEvent fields.
func (_m *CalendarEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case calendarevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case calendarevent.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case calendarevent.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case calendarevent.FieldUnitPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_position", values[i])
			} else if value.Valid {
				_m.UnitPosition = int(value.Int64)
			}
		case calendarevent.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = value.Time
			}
		case calendarevent.FieldPlannedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field planned_minutes", values[i])
			} else if value.Valid {
				_m.PlannedMinutes = int(value.Int64)
			}
		case calendarevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case calendarevent.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case calendarevent.FieldActualMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_minutes", values[i])
			} else if value.Valid {
				_m.ActualMinutes = new(int)
				*_m.ActualMinutes = int(value.Int64)
			}
		case calendarevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalendarEvent.
// Note that you need to call CalendarEvent.Unwrap() before calling this method if this CalendarEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarEvent) Update() *CalendarEventUpdateOne {
	return NewCalendarEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarEvent) Unwrap() *CalendarEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("unit_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPosition))
	builder.WriteString(", ")
	builder.WriteString("scheduled_at=")
	builder.WriteString(_m.ScheduledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("planned_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannedMinutes))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	if v := _m.ActualMinutes; v != nil {
		builder.WriteString("actual_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarEvents is a parsable slice of CalendarEvent.
type CalendarEvents []*CalendarEvent
