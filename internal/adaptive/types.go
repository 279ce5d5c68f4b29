package adaptive

import (
	"time"

	"github.com/google/uuid"
)

// PaceClass is the categorical judgment of a student's adherence to plan.
type PaceClass string

const (
	PaceOnPace        PaceClass = "on-pace"
	PaceFallingBehind PaceClass = "falling-behind"
	PaceAheadOfPace   PaceClass = "ahead-of-pace"
	PaceStruggling    PaceClass = "struggling"
)

// Urgency tags how strongly a suggestion should be surfaced to the student.
type Urgency string

const (
	UrgencyInfo     Urgency = "info"
	UrgencyAdvisory Urgency = "advisory"
	UrgencyUrgent   Urgency = "urgent"
)

// MutationKind identifies what a mutation changes.
type MutationKind string

const (
	MutationReschedule  MutationKind = "reschedule"
	MutationSetDuration MutationKind = "set-duration"
)

// Mutation is one proposed change to a future, not-yet-completed event.
type Mutation struct {
	EventID           uuid.UUID
	Kind              MutationKind
	NewScheduledAt    *time.Time
	NewPlannedMinutes *int
}

// Suggestion is the outcome of an analysis run: a classification, a set of
// proposed mutations, and a learner-facing rationale. Analysis never
// mutates the calendar; Apply is the separate, explicit commit step.
type Suggestion struct {
	StudentID      string
	Classification PaceClass
	Urgency        Urgency
	Rationale      string
	Mutations      []Mutation

	// InsufficientHistory marks the neutral suggestion returned when
	// fewer than the minimum completed events exist.
	InsufficientHistory bool

	// ExtendsPastTarget is set when compression could not preserve the
	// original completion date at one session per day.
	ExtendsPastTarget bool
}
