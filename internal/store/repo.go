package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is one scheduled study session bound to a learning unit. This is
// the engine-facing shape; the ent row is an implementation detail of the
// repo implementations.
type Event struct {
	ID             uuid.UUID
	StudentID      string
	CourseID       string
	UnitID         string
	UnitPosition   int
	ScheduledAt    time.Time
	PlannedMinutes int
	Difficulty     int
	Completed      bool
	ActualMinutes  *int // set only on completion
	CreatedAt      time.Time
}

// EndsAt returns the planned end of the session.
func (e Event) EndsAt() time.Time {
	return e.ScheduledAt.Add(time.Duration(e.PlannedMinutes) * time.Minute)
}

// Overlaps reports whether two sessions intersect in time.
func (e Event) Overlaps(other Event) bool {
	return e.ScheduledAt.Before(other.EndsAt()) && other.ScheduledAt.Before(e.EndsAt())
}

// EventFilter narrows Query results. Zero values mean "no filter".
type EventFilter struct {
	StudentID string
	CourseID  string
	UnitID    string
	From      time.Time // scheduled_at >= From
	To        time.Time // scheduled_at <= To
	Completed *bool
	Limit     int // 0 = unlimited
}

// EventPatch describes a direct field mutation for UpdateEvent.
// Nil fields are left unchanged. Completion state is not patchable here;
// use MarkComplete.
type EventPatch struct {
	ScheduledAt    *time.Time
	PlannedMinutes *int
	Difficulty     *int
}

// EventChange is one row-level mutation inside a bulk adjustment. Applied
// transactionally with its siblings.
type EventChange struct {
	EventID           uuid.UUID
	NewScheduledAt    *time.Time
	NewPlannedMinutes *int
}

// CalendarRepo owns the canonical set of scheduled events per student.
//
// Reschedule with cascade=true and BulkAdjust serialize per student: a
// second concurrent call for the same student fails with
// ErrConcurrentModification rather than interleaving partial writes.
type CalendarRepo interface {
	// InsertEvents persists a generated schedule in one transaction.
	InsertEvents(ctx context.Context, events []Event) error

	// GetEvent returns a single event or ErrNotFound.
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)

	// MarkComplete sets completed=true and records the actual duration.
	// Returns ErrAlreadyCompleted (carrying the unchanged event) when
	// re-invoked, and ErrInvalidDuration when actualMinutes <= 0.
	MarkComplete(ctx context.Context, id uuid.UUID, actualMinutes int) (*Event, error)

	// Reschedule moves one event to newStart. Without cascade the move
	// fails with ErrOverlapViolation on any collision or unit-order break.
	// With cascade, every subsequent incomplete event of the same student
	// shifts by the same delta, atomically. Returns the moved events.
	Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time, cascade bool) ([]Event, error)

	// UpdateEvent applies a direct field patch to one event.
	UpdateEvent(ctx context.Context, id uuid.UUID, patch EventPatch) (*Event, error)

	// DeleteEvent removes one event. Siblings are not renumbered or re-dated.
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// DeleteCourseEvents removes all of a student's events for a course
	// (abandonment). Returns the number of rows deleted.
	DeleteCourseEvents(ctx context.Context, studentID, courseID string) (int, error)

	// Query returns events matching the filter, ordered by scheduled
	// date-time ascending.
	Query(ctx context.Context, f EventFilter) ([]Event, error)

	// Upcoming returns incomplete events scheduled at or after now,
	// ascending, capped at limit.
	Upcoming(ctx context.Context, studentID string, now time.Time, limit int) ([]Event, error)

	// BulkAdjust applies a set of event changes for one student in a
	// single transaction, under the student's lock.
	BulkAdjust(ctx context.Context, studentID string, changes []EventChange) error
}

// AdaptationEventData captures one applied schedule adaptation for the
// append-only audit log.
type AdaptationEventData struct {
	StudentID      string
	Classification string
	Urgency        string
	MutationCount  int
	Rationale      string
}

// AdaptationEventRecord is a logged adaptation as returned by queries.
type AdaptationEventRecord struct {
	Sequence       int64
	Timestamp      time.Time
	StudentID      string
	Classification string
	Urgency        string
	MutationCount  int
	Rationale      string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// AuditRepo provides append access to the engine's audit events.
type AuditRepo interface {
	// AppendAdaptationEvent records an applied adaptation.
	AppendAdaptationEvent(ctx context.Context, data AdaptationEventData) error

	// QueryAdaptationEvents returns a student's applied adaptations,
	// newest first, capped at limit (0 = unlimited).
	QueryAdaptationEvents(ctx context.Context, studentID string, limit int) ([]AdaptationEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns recorded LLM calls, newest first, capped
	// at limit (0 = unlimited).
	QueryLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventRecord, error)
}
