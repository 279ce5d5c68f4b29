// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/studyloop/studyloop/ent/adaptationevent"
	"github.com/studyloop/studyloop/ent/calendarevent"
	"github.com/studyloop/studyloop/ent/llmrequestevent"
	"github.com/studyloop/studyloop/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescTimestamp is the schema descriptor for timestamp field.
	adaptationeventDescTimestamp := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adaptationevent.DefaultTimestamp = adaptationeventDescTimestamp.Default.(func() time.Time)
	// adaptationeventDescStudentID is the schema descriptor for student_id field.
	adaptationeventDescStudentID := adaptationeventFields[0].Descriptor()
	// adaptationevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	adaptationevent.StudentIDValidator = adaptationeventDescStudentID.Validators[0].(func(string) error)
	// adaptationeventDescClassification is the schema descriptor for classification field.
	adaptationeventDescClassification := adaptationeventFields[1].Descriptor()
	// adaptationevent.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	adaptationevent.ClassificationValidator = adaptationeventDescClassification.Validators[0].(func(string) error)
	// adaptationeventDescUrgency is the schema descriptor for urgency field.
	adaptationeventDescUrgency := adaptationeventFields[2].Descriptor()
	// adaptationevent.UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	adaptationevent.UrgencyValidator = adaptationeventDescUrgency.Validators[0].(func(string) error)
	// adaptationeventDescMutationCount is the schema descriptor for mutation_count field.
	adaptationeventDescMutationCount := adaptationeventFields[3].Descriptor()
	// adaptationevent.DefaultMutationCount holds the default value on creation for the mutation_count field.
	adaptationevent.DefaultMutationCount = adaptationeventDescMutationCount.Default.(int)
	// adaptationeventDescRationale is the schema descriptor for rationale field.
	adaptationeventDescRationale := adaptationeventFields[4].Descriptor()
	// adaptationevent.DefaultRationale holds the default value on creation for the rationale field.
	adaptationevent.DefaultRationale = adaptationeventDescRationale.Default.(string)
	calendareventFields := schema.CalendarEvent{}.Fields()
	_ = calendareventFields
	// calendareventDescStudentID is the schema descriptor for student_id field.
	calendareventDescStudentID := calendareventFields[1].Descriptor()
	// calendarevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	calendarevent.StudentIDValidator = calendareventDescStudentID.Validators[0].(func(string) error)
	// calendareventDescCourseID is the schema descriptor for course_id field.
	calendareventDescCourseID := calendareventFields[2].Descriptor()
	// calendarevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	calendarevent.CourseIDValidator = calendareventDescCourseID.Validators[0].(func(string) error)
	// calendareventDescUnitID is the schema descriptor for unit_id field.
	calendareventDescUnitID := calendareventFields[3].Descriptor()
	// calendarevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	calendarevent.UnitIDValidator = calendareventDescUnitID.Validators[0].(func(string) error)
	// calendareventDescPlannedMinutes is the schema descriptor for planned_minutes field.
	calendareventDescPlannedMinutes := calendareventFields[6].Descriptor()
	// calendarevent.PlannedMinutesValidator is a validator for the "planned_minutes" field. It is called by the builders before save.
	calendarevent.PlannedMinutesValidator = calendareventDescPlannedMinutes.Validators[0].(func(int) error)
	// calendareventDescDifficulty is the schema descriptor for difficulty field.
	calendareventDescDifficulty := calendareventFields[7].Descriptor()
	// calendarevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	calendarevent.DifficultyValidator = calendareventDescDifficulty.Validators[0].(func(int) error)
	// calendareventDescCompleted is the schema descriptor for completed field.
	calendareventDescCompleted := calendareventFields[8].Descriptor()
	// calendarevent.DefaultCompleted holds the default value on creation for the completed field.
	calendarevent.DefaultCompleted = calendareventDescCompleted.Default.(bool)
	// calendareventDescCreatedAt is the schema descriptor for created_at field.
	calendareventDescCreatedAt := calendareventFields[10].Descriptor()
	// calendarevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarevent.DefaultCreatedAt = calendareventDescCreatedAt.Default.(func() time.Time)
	// calendareventDescID is the schema descriptor for id field.
	calendareventDescID := calendareventFields[0].Descriptor()
	// calendarevent.DefaultID holds the default value on creation for the id field.
	calendarevent.DefaultID = calendareventDescID.Default.(func() uuid.UUID)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
}
