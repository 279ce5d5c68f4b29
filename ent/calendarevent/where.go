// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/studyloop/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStudentID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCourseID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitPosition applies equality check predicate on the "unit_position" field. It's identical to UnitPositionEQ.
func UnitPosition(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUnitPosition, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldScheduledAt, v))
}

// PlannedMinutes applies equality check predicate on the "planned_minutes" field. It's identical to PlannedMinutesEQ.
func PlannedMinutes(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldPlannedMinutes, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCompleted, v))
}

// ActualMinutes applies equality check predicate on the "actual_minutes" field. It's identical to ActualMinutesEQ.
func ActualMinutes(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldActualMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldCourseID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// UnitPositionEQ applies the EQ predicate on the "unit_position" field.
func UnitPositionEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUnitPosition, v))
}

// UnitPositionNEQ applies the NEQ predicate on the "unit_position" field.
func UnitPositionNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldUnitPosition, v))
}

// UnitPositionIn applies the In predicate on the "unit_position" field.
func UnitPositionIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldUnitPosition, vs...))
}

// UnitPositionNotIn applies the NotIn predicate on the "unit_position" field.
func UnitPositionNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldUnitPosition, vs...))
}

// UnitPositionGT applies the GT predicate on the "unit_position" field.
func UnitPositionGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldUnitPosition, v))
}

// UnitPositionGTE applies the GTE predicate on the "unit_position" field.
func UnitPositionGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldUnitPosition, v))
}

// UnitPositionLT applies the LT predicate on the "unit_position" field.
func UnitPositionLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldUnitPosition, v))
}

// UnitPositionLTE applies the LTE predicate on the "unit_position" field.
func UnitPositionLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldUnitPosition, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldScheduledAt, v))
}

// PlannedMinutesEQ applies the EQ predicate on the "planned_minutes" field.
func PlannedMinutesEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldPlannedMinutes, v))
}

// PlannedMinutesNEQ applies the NEQ predicate on the "planned_minutes" field.
func PlannedMinutesNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldPlannedMinutes, v))
}

// PlannedMinutesIn applies the In predicate on the "planned_minutes" field.
func PlannedMinutesIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldPlannedMinutes, vs...))
}

// PlannedMinutesNotIn applies the NotIn predicate on the "planned_minutes" field.
func PlannedMinutesNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldPlannedMinutes, vs...))
}

// PlannedMinutesGT applies the GT predicate on the "planned_minutes" field.
func PlannedMinutesGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldPlannedMinutes, v))
}

// PlannedMinutesGTE applies the GTE predicate on the "planned_minutes" field.
func PlannedMinutesGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldPlannedMinutes, v))
}

// PlannedMinutesLT applies the LT predicate on the "planned_minutes" field.
func PlannedMinutesLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldPlannedMinutes, v))
}

// PlannedMinutesLTE applies the LTE predicate on the "planned_minutes" field.
func PlannedMinutesLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldPlannedMinutes, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldDifficulty, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldCompleted, v))
}

// ActualMinutesEQ applies the EQ predicate on the "actual_minutes" field.
func ActualMinutesEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldActualMinutes, v))
}

// ActualMinutesNEQ applies the NEQ predicate on the "actual_minutes" field.
func ActualMinutesNEQ(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldActualMinutes, v))
}

// ActualMinutesIn applies the In predicate on the "actual_minutes" field.
func ActualMinutesIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldActualMinutes, vs...))
}

// ActualMinutesNotIn applies the NotIn predicate on the "actual_minutes" field.
func ActualMinutesNotIn(vs ...int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldActualMinutes, vs...))
}

// ActualMinutesGT applies the GT predicate on the "actual_minutes" field.
func ActualMinutesGT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldActualMinutes, v))
}

// ActualMinutesGTE applies the GTE predicate on the "actual_minutes" field.
func ActualMinutesGTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldActualMinutes, v))
}

// ActualMinutesLT applies the LT predicate on the "actual_minutes" field.
func ActualMinutesLT(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldActualMinutes, v))
}

// ActualMinutesLTE applies the LTE predicate on the "actual_minutes" field.
func ActualMinutesLTE(v int) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldActualMinutes, v))
}

// ActualMinutesIsNil applies the IsNil predicate on the "actual_minutes" field.
func ActualMinutesIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldActualMinutes))
}

// ActualMinutesNotNil applies the NotNil predicate on the "actual_minutes" field.
func ActualMinutesNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldActualMinutes))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.NotPredicates(p))
}
