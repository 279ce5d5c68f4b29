package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var baseTime = time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC)

// seedPlan inserts n hour-long sessions two days apart for one student.
func seedPlan(t *testing.T, repo CalendarRepo, studentID string, n int) []Event {
	t.Helper()
	events := make([]Event, n)
	for i := range events {
		events[i] = Event{
			ID:             uuid.New(),
			StudentID:      studentID,
			CourseID:       "go-foundations",
			UnitID:         uuid.NewString(),
			UnitPosition:   i + 1,
			ScheduledAt:    baseTime.AddDate(0, 0, 2*i),
			PlannedMinutes: 60,
			Difficulty:     1 + i%3,
			CreatedAt:      baseTime,
		}
	}
	if err := repo.InsertEvents(context.Background(), events); err != nil {
		t.Fatalf("insert events: %v", err)
	}
	return events
}

func TestInsertAndQuery(t *testing.T) {
	repo := newTestStore(t).CalendarRepo()
	ctx := context.Background()
	seeded := seedPlan(t, repo, "s1", 5)
	seedPlan(t, repo, "s2", 3)

	got, err := repo.Query(ctx, EventFilter{StudentID: "s1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("query returned %d events, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].ScheduledAt.Before(got[i].ScheduledAt) {
			t.Errorf("events not in ascending schedule order at %d", i)
		}
	}
	if got[0].ID != seeded[0].ID {
		t.Errorf("first event = %s, want %s", got[0].ID, seeded[0].ID)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := newTestStore(t).CalendarRepo()
	_, err := repo.GetEvent(context.Background(), uuid.New())
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *ErrNotFound", err)
	}
}

func TestMarkComplete(t *testing.T) {
	repo := newTestStore(t).CalendarRepo()
	ctx := context.Background()
	events := seedPlan(t, repo, "s1", 2)

	got, err := repo.MarkComplete(ctx, events[0].ID, 75)
	if err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if !got.Completed || got.ActualMinutes == nil || *got.ActualMinutes != 75 {
		t.Errorf("completed event = %+v", got)
	}

	t.Run("idempotent re-completion", func(t *testing.T) {
		_, err := repo.MarkComplete(ctx, events[0].ID, 90)
		var ac *ErrAlreadyCompleted
		if !errors.As(err, &ac) {
			t.Fatalf("error = %v, want *ErrAlreadyCompleted", err)
		}
		// The carried event is the unchanged row.
		if ac.Event.ActualMinutes == nil || *ac.Event.ActualMinutes != 75 {
			t.Errorf("carried event = %+v, want actual 75", ac.Event)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		for _, minutes := range []int{0, -30} {
			_, err := repo.MarkComplete(ctx, events[1].ID, minutes)
			var id *ErrInvalidDuration
			if !errors.As(err, &id) {
				t.Fatalf("minutes=%d: error = %v, want *ErrInvalidDuration", minutes, err)
			}
		}
		// The failed call must not have touched the row.
		e, err := repo.GetEvent(ctx, events[1].ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if e.Completed || e.ActualMinutes != nil {
			t.Errorf("event mutated by invalid completion: %+v", e)
		}
	})
}

func TestRescheduleSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("moves into a free slot", func(t *testing.T) {
		repo := newTestStore(t).CalendarRepo()
		events := seedPlan(t, repo, "s1", 3)

		newStart := events[0].ScheduledAt.Add(3 * time.Hour)
		moved, err := repo.Reschedule(ctx, events[0].ID, newStart, false)
		if err != nil {
			t.Fatalf("reschedule: %v", err)
		}
		if len(moved) != 1 || !moved[0].ScheduledAt.Equal(newStart) {
			t.Errorf("moved = %+v", moved)
		}
	})

	t.Run("rejects overlap", func(t *testing.T) {
		repo := newTestStore(t).CalendarRepo()
		events := seedPlan(t, repo, "s1", 3)

		// Land inside event[1]'s hour.
		newStart := events[1].ScheduledAt.Add(30 * time.Minute)
		_, err := repo.Reschedule(ctx, events[0].ID, newStart, false)
		var ov *ErrOverlapViolation
		if !errors.As(err, &ov) {
			t.Fatalf("error = %v, want *ErrOverlapViolation", err)
		}
		if ov.ConflictID != events[1].ID {
			t.Errorf("conflict = %s, want %s", ov.ConflictID, events[1].ID)
		}
	})

	t.Run("rejects unit-order break", func(t *testing.T) {
		repo := newTestStore(t).CalendarRepo()
		events := seedPlan(t, repo, "s1", 3)

		// Unit 1 would land after unit 3.
		newStart := events[2].ScheduledAt.AddDate(0, 0, 1)
		_, err := repo.Reschedule(ctx, events[0].ID, newStart, false)
		var ov *ErrOverlapViolation
		if !errors.As(err, &ov) {
			t.Fatalf("error = %v, want *ErrOverlapViolation", err)
		}
	})

	t.Run("rejects completed target", func(t *testing.T) {
		repo := newTestStore(t).CalendarRepo()
		events := seedPlan(t, repo, "s1", 2)
		if _, err := repo.MarkComplete(ctx, events[0].ID, 60); err != nil {
			t.Fatalf("mark complete: %v", err)
		}

		_, err := repo.Reschedule(ctx, events[0].ID, baseTime.AddDate(0, 1, 0), false)
		var ac *ErrAlreadyCompleted
		if !errors.As(err, &ac) {
			t.Fatalf("error = %v, want *ErrAlreadyCompleted", err)
		}
	})
}

func TestRescheduleCascade(t *testing.T) {
	repo := newTestStore(t).CalendarRepo()
	ctx := context.Background()
	events := seedPlan(t, repo, "s1", 4)

	// Complete the first event, then push the second out by three days.
	if _, err := repo.MarkComplete(ctx, events[0].ID, 60); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	delta := 3 * 24 * time.Hour
	newStart := events[1].ScheduledAt.Add(delta)

	moved, err := repo.Reschedule(ctx, events[1].ID, newStart, true)
	if err != nil {
		t.Fatalf("cascade: %v", err)
	}
	if len(moved) != 3 {
		t.Fatalf("moved %d events, want 3", len(moved))
	}
	for i, m := range moved {
		orig := events[i+1]
		want := orig.ScheduledAt.Add(delta)
		if !m.ScheduledAt.Equal(want) {
			t.Errorf("event %d at %v, want %v", i+1, m.ScheduledAt, want)
		}
	}

	// The completed event never moves.
	first, err := repo.GetEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !first.ScheduledAt.Equal(events[0].ScheduledAt) {
		t.Errorf("completed event moved to %v", first.ScheduledAt)
	}

	// Relative spacing is preserved.
	got, err := repo.Query(ctx, EventFilter{StudentID: "s1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for i := 2; i < len(got); i++ {
		gap := got[i].ScheduledAt.Sub(got[i-1].ScheduledAt)
		if gap != 2*24*time.Hour {
			t.Errorf("gap %d = %v, want 48h", i, gap)
		}
	}
}

func TestRescheduleCascade_Concurrent(t *testing.T) {
	st := newTestStore(t)
	repo := st.CalendarRepo()
	ctx := context.Background()
	events := seedPlan(t, repo, "s1", 3)

	release, err := st.locks.TryAcquire("s1")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	_, err = repo.Reschedule(ctx, events[0].ID, baseTime.AddDate(0, 0, 30), true)
	var cm *ErrConcurrentModification
	if !errors.As(err, &cm) {
		t.Fatalf("error = %v, want *ErrConcurrentModification", err)
	}
	if cm.StudentID != "s1" {
		t.Errorf("StudentID = %q", cm.StudentID)
	}

	// A different student is unaffected.
	other := seedPlan(t, repo, "s2", 2)
	if _, err := repo.Reschedule(ctx, other[0].ID, baseTime.AddDate(0, 0, 30), true); err != nil {
		t.Errorf("other student blocked: %v", err)
	}
}

func TestUpcoming(t *testing.T) {
	repo := newTestStore(t).CalendarRepo()
	ctx := context.Background()
	events := seedPlan(t, repo, "s1", 5)
	if _, err := repo.MarkComplete(ctx, events[0].ID, 60); err != nil {
		t.Fatalf("mark complete: %v", err)
	}

	now := events[1].ScheduledAt.Add(time.Hour) // between events 1 and 2
	got, err := repo.Upcoming(ctx, "s1", now, 2)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].ID != events[2].ID || got[1].ID != events[3].ID {
		t.Errorf("upcoming = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestDeleteCourseEvents(t *testing.T) {
	repo := newTestStore(t).CalendarRepo()
	ctx := context.Background()
	seedPlan(t, repo, "s1", 4)
	seedPlan(t, repo, "s2", 2)

	n, err := repo.DeleteCourseEvents(ctx, "s1", "go-foundations")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 4 {
		t.Errorf("deleted %d, want 4", n)
	}

	left, err := repo.Query(ctx, EventFilter{StudentID: "s2"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(left) != 2 {
		t.Errorf("other student has %d events, want 2", len(left))
	}
}

func TestBulkAdjust(t *testing.T) {
	ctx := context.Background()

	t.Run("applies all changes", func(t *testing.T) {
		repo := newTestStore(t).CalendarRepo()
		events := seedPlan(t, repo, "s1", 3)

		t0 := events[0].ScheduledAt.AddDate(0, 0, 1)
		mins := 90
		err := repo.BulkAdjust(ctx, "s1", []EventChange{
			{EventID: events[0].ID, NewScheduledAt: &t0},
			{EventID: events[1].ID, NewPlannedMinutes: &mins},
		})
		if err != nil {
			t.Fatalf("bulk adjust: %v", err)
		}

		e0, _ := repo.GetEvent(ctx, events[0].ID)
		e1, _ := repo.GetEvent(ctx, events[1].ID)
		if !e0.ScheduledAt.Equal(t0) {
			t.Errorf("event 0 at %v, want %v", e0.ScheduledAt, t0)
		}
		if e1.PlannedMinutes != 90 {
			t.Errorf("event 1 minutes = %d, want 90", e1.PlannedMinutes)
		}
	})

	t.Run("rolls back on completed row", func(t *testing.T) {
		repo := newTestStore(t).CalendarRepo()
		events := seedPlan(t, repo, "s1", 3)
		if _, err := repo.MarkComplete(ctx, events[2].ID, 60); err != nil {
			t.Fatalf("mark complete: %v", err)
		}

		t0 := events[0].ScheduledAt.AddDate(0, 0, 1)
		t2 := events[2].ScheduledAt.AddDate(0, 0, 1)
		err := repo.BulkAdjust(ctx, "s1", []EventChange{
			{EventID: events[0].ID, NewScheduledAt: &t0},
			{EventID: events[2].ID, NewScheduledAt: &t2},
		})
		var ac *ErrAlreadyCompleted
		if !errors.As(err, &ac) {
			t.Fatalf("error = %v, want *ErrAlreadyCompleted", err)
		}

		// First change must have been rolled back with the failed one.
		e0, _ := repo.GetEvent(ctx, events[0].ID)
		if !e0.ScheduledAt.Equal(events[0].ScheduledAt) {
			t.Errorf("event 0 mutated despite rollback: %v", e0.ScheduledAt)
		}
	})

	t.Run("rejects foreign student's event", func(t *testing.T) {
		repo := newTestStore(t).CalendarRepo()
		seedPlan(t, repo, "s1", 1)
		other := seedPlan(t, repo, "s2", 1)

		t0 := other[0].ScheduledAt.AddDate(0, 0, 1)
		err := repo.BulkAdjust(ctx, "s1", []EventChange{
			{EventID: other[0].ID, NewScheduledAt: &t0},
		})
		if err == nil {
			t.Fatal("want error, got nil")
		}
	})
}
