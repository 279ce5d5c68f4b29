package store

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound indicates the requested event does not exist.
type ErrNotFound struct {
	EventID uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("event not found: %s", e.EventID)
}

// ErrAlreadyCompleted is a soft condition: MarkComplete was re-invoked on a
// completed event. It carries the unchanged row so callers can treat the
// call as an observable no-op instead of a failure.
type ErrAlreadyCompleted struct {
	Event Event
}

func (e *ErrAlreadyCompleted) Error() string {
	return fmt.Sprintf("event already completed: %s", e.Event.ID)
}

// ErrInvalidDuration indicates a non-positive actual duration.
type ErrInvalidDuration struct {
	Minutes int
}

func (e *ErrInvalidDuration) Error() string {
	return fmt.Sprintf("invalid duration: %d minutes (must be > 0)", e.Minutes)
}

// ErrOverlapViolation indicates a non-cascade reschedule would collide with
// another event or break the unit-order invariant relative to a neighbor.
type ErrOverlapViolation struct {
	EventID    uuid.UUID
	ConflictID uuid.UUID
	Reason     string
}

func (e *ErrOverlapViolation) Error() string {
	return fmt.Sprintf("reschedule of %s conflicts with %s: %s", e.EventID, e.ConflictID, e.Reason)
}

// ErrConcurrentModification indicates a cascade or bulk adjustment is
// already running for the student. Callers retry with fresh data.
type ErrConcurrentModification struct {
	StudentID string
}

func (e *ErrConcurrentModification) Error() string {
	return fmt.Sprintf("concurrent schedule modification for student %s", e.StudentID)
}

// ErrStorage wraps an underlying persistence failure. The engine never
// retries; retry policy belongs to the caller.
type ErrStorage struct {
	Op  string
	Err error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *ErrStorage) Unwrap() error { return e.Err }

// storageErr wraps err as an ErrStorage unless it is nil.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ErrStorage{Op: op, Err: err}
}
