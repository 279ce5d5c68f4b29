// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptationevent type in the database.
	Label = "adaptation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldMutationCount holds the string denoting the mutation_count field in the database.
	FieldMutationCount = "mutation_count"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// Table holds the table name of the adaptationevent in the database.
	Table = "adaptation_events"
)

// Columns holds all SQL columns for adaptationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldClassification,
	FieldUrgency,
	FieldMutationCount,
	FieldRationale,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	ClassificationValidator func(string) error
	// UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	UrgencyValidator func(string) error
	// DefaultMutationCount holds the default value on creation for the "mutation_count" field.
	DefaultMutationCount int
	// DefaultRationale holds the default value on creation for the "rationale" field.
	DefaultRationale string
)

// OrderOption defines the ordering options for the AdaptationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByMutationCount orders the results by the mutation_count field.
func ByMutationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMutationCount, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}
