package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/studyloop/studyloop/ent"
	"github.com/studyloop/studyloop/ent/calendarevent"
)

// calendarRepo implements CalendarRepo using the ent client.
type calendarRepo struct {
	client *ent.Client
	locks  *studentLocks
}

func (r *calendarRepo) InsertEvents(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}
	builders := make([]*ent.CalendarEventCreate, len(events))
	for i, e := range events {
		b := r.client.CalendarEvent.Create().
			SetID(e.ID).
			SetStudentID(e.StudentID).
			SetCourseID(e.CourseID).
			SetUnitID(e.UnitID).
			SetUnitPosition(e.UnitPosition).
			SetScheduledAt(e.ScheduledAt).
			SetPlannedMinutes(e.PlannedMinutes).
			SetDifficulty(e.Difficulty).
			SetCompleted(e.Completed).
			SetCreatedAt(e.CreatedAt)
		if e.ActualMinutes != nil {
			b = b.SetActualMinutes(*e.ActualMinutes)
		}
		builders[i] = b
	}
	_, err := r.client.CalendarEvent.CreateBulk(builders...).Save(ctx)
	return storageErr("insert events", err)
}

func (r *calendarRepo) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	row, err := r.client.CalendarEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrNotFound{EventID: id}
		}
		return nil, storageErr("get event", err)
	}
	e := fromRow(row)
	return &e, nil
}

func (r *calendarRepo) MarkComplete(ctx context.Context, id uuid.UUID, actualMinutes int) (*Event, error) {
	if actualMinutes <= 0 {
		return nil, &ErrInvalidDuration{Minutes: actualMinutes}
	}

	row, err := r.client.CalendarEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrNotFound{EventID: id}
		}
		return nil, storageErr("get event", err)
	}
	if row.Completed {
		return nil, &ErrAlreadyCompleted{Event: fromRow(row)}
	}

	updated, err := row.Update().
		SetCompleted(true).
		SetActualMinutes(actualMinutes).
		Save(ctx)
	if err != nil {
		return nil, storageErr("mark complete", err)
	}
	e := fromRow(updated)
	return &e, nil
}

func (r *calendarRepo) Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time, cascade bool) ([]Event, error) {
	target, err := r.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.Completed {
		return nil, &ErrAlreadyCompleted{Event: *target}
	}

	if !cascade {
		return r.rescheduleSingle(ctx, *target, newStart)
	}
	return r.rescheduleCascade(ctx, *target, newStart)
}

// rescheduleSingle moves only the target event. Validation happens before
// any mutation: the new slot must not collide with a sibling event and must
// not break the unit-order invariant relative to same-course neighbors.
func (r *calendarRepo) rescheduleSingle(ctx context.Context, target Event, newStart time.Time) ([]Event, error) {
	siblings, err := r.Query(ctx, EventFilter{StudentID: target.StudentID})
	if err != nil {
		return nil, err
	}

	moved := target
	moved.ScheduledAt = newStart

	for _, s := range siblings {
		if s.ID == target.ID {
			continue
		}
		if moved.Overlaps(s) {
			return nil, &ErrOverlapViolation{
				EventID:    target.ID,
				ConflictID: s.ID,
				Reason:     "time slots overlap",
			}
		}
		if s.CourseID != target.CourseID {
			continue
		}
		if s.UnitPosition < target.UnitPosition && s.ScheduledAt.After(newStart) {
			return nil, &ErrOverlapViolation{
				EventID:    target.ID,
				ConflictID: s.ID,
				Reason:     "earlier unit would be scheduled later",
			}
		}
		if s.UnitPosition > target.UnitPosition && s.ScheduledAt.Before(newStart) {
			return nil, &ErrOverlapViolation{
				EventID:    target.ID,
				ConflictID: s.ID,
				Reason:     "later unit would be scheduled earlier",
			}
		}
	}

	row, err := r.client.CalendarEvent.UpdateOneID(target.ID).
		SetScheduledAt(newStart).
		Save(ctx)
	if err != nil {
		return nil, storageErr("reschedule event", err)
	}
	return []Event{fromRow(row)}, nil
}

// rescheduleCascade shifts the target and every subsequent incomplete event
// of the same student by the same delta, preserving relative spacing and
// order. Completed events never move. All updates happen in one transaction
// under the student's lock.
func (r *calendarRepo) rescheduleCascade(ctx context.Context, target Event, newStart time.Time) ([]Event, error) {
	release, err := r.locks.TryAcquire(target.StudentID)
	if err != nil {
		return nil, err
	}
	defer release()

	delta := newStart.Sub(target.ScheduledAt)

	var moved []Event
	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		rows, err := tx.CalendarEvent.Query().
			Where(
				calendarevent.StudentID(target.StudentID),
				calendarevent.Completed(false),
				calendarevent.ScheduledAtGTE(target.ScheduledAt),
			).
			Order(ent.Asc(calendarevent.FieldScheduledAt)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load cascade window: %w", err)
		}

		for _, row := range rows {
			updated, err := tx.CalendarEvent.UpdateOne(row).
				SetScheduledAt(row.ScheduledAt.Add(delta)).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("shift event %s: %w", row.ID, err)
			}
			moved = append(moved, fromRow(updated))
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("cascade reschedule", err)
	}

	sort.Slice(moved, func(i, j int) bool {
		return moved[i].ScheduledAt.Before(moved[j].ScheduledAt)
	})
	return moved, nil
}

func (r *calendarRepo) UpdateEvent(ctx context.Context, id uuid.UUID, patch EventPatch) (*Event, error) {
	upd := r.client.CalendarEvent.UpdateOneID(id)
	if patch.ScheduledAt != nil {
		upd = upd.SetScheduledAt(*patch.ScheduledAt)
	}
	if patch.PlannedMinutes != nil {
		if *patch.PlannedMinutes <= 0 {
			return nil, &ErrInvalidDuration{Minutes: *patch.PlannedMinutes}
		}
		upd = upd.SetPlannedMinutes(*patch.PlannedMinutes)
	}
	if patch.Difficulty != nil {
		upd = upd.SetDifficulty(*patch.Difficulty)
	}

	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrNotFound{EventID: id}
		}
		return nil, storageErr("update event", err)
	}
	e := fromRow(row)
	return &e, nil
}

func (r *calendarRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	err := r.client.CalendarEvent.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ErrNotFound{EventID: id}
		}
		return storageErr("delete event", err)
	}
	return nil
}

func (r *calendarRepo) DeleteCourseEvents(ctx context.Context, studentID, courseID string) (int, error) {
	n, err := r.client.CalendarEvent.Delete().
		Where(
			calendarevent.StudentID(studentID),
			calendarevent.CourseID(courseID),
		).
		Exec(ctx)
	if err != nil {
		return 0, storageErr("delete course events", err)
	}
	return n, nil
}

func (r *calendarRepo) Query(ctx context.Context, f EventFilter) ([]Event, error) {
	q := r.client.CalendarEvent.Query()
	if f.StudentID != "" {
		q = q.Where(calendarevent.StudentID(f.StudentID))
	}
	if f.CourseID != "" {
		q = q.Where(calendarevent.CourseID(f.CourseID))
	}
	if f.UnitID != "" {
		q = q.Where(calendarevent.UnitID(f.UnitID))
	}
	if !f.From.IsZero() {
		q = q.Where(calendarevent.ScheduledAtGTE(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where(calendarevent.ScheduledAtLTE(f.To))
	}
	if f.Completed != nil {
		q = q.Where(calendarevent.Completed(*f.Completed))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.Order(ent.Asc(calendarevent.FieldScheduledAt)).All(ctx)
	if err != nil {
		return nil, storageErr("query events", err)
	}
	return fromRows(rows), nil
}

func (r *calendarRepo) Upcoming(ctx context.Context, studentID string, now time.Time, limit int) ([]Event, error) {
	q := r.client.CalendarEvent.Query().
		Where(
			calendarevent.StudentID(studentID),
			calendarevent.Completed(false),
			calendarevent.ScheduledAtGTE(now),
		).
		Order(ent.Asc(calendarevent.FieldScheduledAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, storageErr("upcoming events", err)
	}
	return fromRows(rows), nil
}

func (r *calendarRepo) BulkAdjust(ctx context.Context, studentID string, changes []EventChange) error {
	if len(changes) == 0 {
		return nil
	}

	release, err := r.locks.TryAcquire(studentID)
	if err != nil {
		return err
	}
	defer release()

	err = withTx(ctx, r.client, func(tx *ent.Tx) error {
		for _, ch := range changes {
			row, err := tx.CalendarEvent.Get(ctx, ch.EventID)
			if err != nil {
				if ent.IsNotFound(err) {
					return &ErrNotFound{EventID: ch.EventID}
				}
				return fmt.Errorf("load event %s: %w", ch.EventID, err)
			}
			if row.StudentID != studentID {
				return fmt.Errorf("event %s does not belong to student %s", ch.EventID, studentID)
			}
			if row.Completed {
				return &ErrAlreadyCompleted{Event: fromRow(row)}
			}

			upd := tx.CalendarEvent.UpdateOne(row)
			if ch.NewScheduledAt != nil {
				upd = upd.SetScheduledAt(*ch.NewScheduledAt)
			}
			if ch.NewPlannedMinutes != nil {
				if *ch.NewPlannedMinutes <= 0 {
					return &ErrInvalidDuration{Minutes: *ch.NewPlannedMinutes}
				}
				upd = upd.SetPlannedMinutes(*ch.NewPlannedMinutes)
			}
			if _, err := upd.Save(ctx); err != nil {
				return fmt.Errorf("adjust event %s: %w", ch.EventID, err)
			}
		}
		return nil
	})
	if err != nil {
		// Typed validation errors pass through; anything else is storage.
		switch err.(type) {
		case *ErrNotFound, *ErrAlreadyCompleted, *ErrInvalidDuration:
			return err
		}
		return storageErr("bulk adjust", err)
	}
	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func fromRow(row *ent.CalendarEvent) Event {
	return Event{
		ID:             row.ID,
		StudentID:      row.StudentID,
		CourseID:       row.CourseID,
		UnitID:         row.UnitID,
		UnitPosition:   row.UnitPosition,
		ScheduledAt:    row.ScheduledAt,
		PlannedMinutes: row.PlannedMinutes,
		Difficulty:     row.Difficulty,
		Completed:      row.Completed,
		ActualMinutes:  row.ActualMinutes,
		CreatedAt:      row.CreatedAt,
	}
}

func fromRows(rows []*ent.CalendarEvent) []Event {
	events := make([]Event, len(rows))
	for i, row := range rows {
		events[i] = fromRow(row)
	}
	return events
}
