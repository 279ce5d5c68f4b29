// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studyloop/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldStudentID, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldClassification, v))
}

// Urgency applies equality check predicate on the "urgency" field. It's identical to UrgencyEQ.
func Urgency(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUrgency, v))
}

// MutationCount applies equality check predicate on the "mutation_count" field. It's identical to MutationCountEQ.
func MutationCount(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldMutationCount, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldRationale, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldClassification, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldUrgency, vs...))
}

// UrgencyGT applies the GT predicate on the "urgency" field.
func UrgencyGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldUrgency, v))
}

// UrgencyGTE applies the GTE predicate on the "urgency" field.
func UrgencyGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldUrgency, v))
}

// UrgencyLT applies the LT predicate on the "urgency" field.
func UrgencyLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldUrgency, v))
}

// UrgencyLTE applies the LTE predicate on the "urgency" field.
func UrgencyLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldUrgency, v))
}

// UrgencyContains applies the Contains predicate on the "urgency" field.
func UrgencyContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldUrgency, v))
}

// UrgencyHasPrefix applies the HasPrefix predicate on the "urgency" field.
func UrgencyHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldUrgency, v))
}

// UrgencyHasSuffix applies the HasSuffix predicate on the "urgency" field.
func UrgencyHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldUrgency, v))
}

// UrgencyEqualFold applies the EqualFold predicate on the "urgency" field.
func UrgencyEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldUrgency, v))
}

// UrgencyContainsFold applies the ContainsFold predicate on the "urgency" field.
func UrgencyContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldUrgency, v))
}

// MutationCountEQ applies the EQ predicate on the "mutation_count" field.
func MutationCountEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldMutationCount, v))
}

// MutationCountNEQ applies the NEQ predicate on the "mutation_count" field.
func MutationCountNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldMutationCount, v))
}

// MutationCountIn applies the In predicate on the "mutation_count" field.
func MutationCountIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldMutationCount, vs...))
}

// MutationCountNotIn applies the NotIn predicate on the "mutation_count" field.
func MutationCountNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldMutationCount, vs...))
}

// MutationCountGT applies the GT predicate on the "mutation_count" field.
func MutationCountGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldMutationCount, v))
}

// MutationCountGTE applies the GTE predicate on the "mutation_count" field.
func MutationCountGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldMutationCount, v))
}

// MutationCountLT applies the LT predicate on the "mutation_count" field.
func MutationCountLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldMutationCount, v))
}

// MutationCountLTE applies the LTE predicate on the "mutation_count" field.
func MutationCountLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldMutationCount, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldRationale, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.NotPredicates(p))
}
