// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyloop/studyloop/ent/adaptationevent"
)

// AdaptationEvent is the model entity for the AdaptationEvent schema.
type AdaptationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Pace class that drove the adaptation: on-pace, falling-behind, ahead-of-pace, struggling
	Classification string `json:"classification,omitempty"`
	// info, advisory, or urgent
	Urgency string `json:"urgency,omitempty"`
	// Number of events touched by the apply step
	MutationCount int `json:"mutation_count,omitempty"`
	// Human-readable explanation shown to the learner
	Rationale    string `json:"rationale,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID, adaptationevent.FieldSequence, adaptationevent.FieldMutationCount:
			values[i] = new(sql.NullInt64)
		case adaptationevent.FieldStudentID, adaptationevent.FieldClassification, adaptationevent.FieldUrgency, adaptationevent.FieldRationale:
			values[i] = new(sql.NullString)
		case adaptationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptationEvent fields.
func (_m *AdaptationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case adaptationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adaptationevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case adaptationevent.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = value.String
			}
		case adaptationevent.FieldUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = value.String
			}
		case adaptationevent.FieldMutationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mutation_count", values[i])
			} else if value.Valid {
				_m.MutationCount = int(value.Int64)
			}
		case adaptationevent.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptationEvent.
// Note that you need to call AdaptationEvent.Unwrap() before calling this method if this AdaptationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptationEvent) Update() *AdaptationEventUpdateOne {
	return NewAdaptationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptationEvent) Unwrap() *AdaptationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(_m.Classification)
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(_m.Urgency)
	builder.WriteString(", ")
	builder.WriteString("mutation_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MutationCount))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteByte(')')
	return builder.String()
}

// AdaptationEvents is a parsable slice of AdaptationEvent.
type AdaptationEvents []*AdaptationEvent
