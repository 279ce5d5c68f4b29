package stats

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studyloop/studyloop/internal/store"
)

// mockCalendarRepo serves a fixed event slice for stat computation.
type mockCalendarRepo struct {
	events []store.Event
}

func (m *mockCalendarRepo) InsertEvents(_ context.Context, _ []store.Event) error { return nil }
func (m *mockCalendarRepo) GetEvent(_ context.Context, _ uuid.UUID) (*store.Event, error) {
	return nil, &store.ErrNotFound{}
}
func (m *mockCalendarRepo) MarkComplete(_ context.Context, _ uuid.UUID, _ int) (*store.Event, error) {
	return nil, &store.ErrNotFound{}
}
func (m *mockCalendarRepo) Reschedule(_ context.Context, _ uuid.UUID, _ time.Time, _ bool) ([]store.Event, error) {
	return nil, nil
}
func (m *mockCalendarRepo) UpdateEvent(_ context.Context, _ uuid.UUID, _ store.EventPatch) (*store.Event, error) {
	return nil, &store.ErrNotFound{}
}
func (m *mockCalendarRepo) DeleteEvent(_ context.Context, _ uuid.UUID) error { return nil }
func (m *mockCalendarRepo) DeleteCourseEvents(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}
func (m *mockCalendarRepo) Query(_ context.Context, _ store.EventFilter) ([]store.Event, error) {
	return m.events, nil
}
func (m *mockCalendarRepo) Upcoming(_ context.Context, _ string, _ time.Time, _ int) ([]store.Event, error) {
	return nil, nil
}
func (m *mockCalendarRepo) BulkAdjust(_ context.Context, _ string, _ []store.EventChange) error {
	return nil
}

var statsNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

// session builds an event daysAgo days before statsNow. actual < 0 means
// not completed.
func session(daysAgo, planned, actual int) store.Event {
	e := store.Event{
		ID:             uuid.New(),
		StudentID:      "s1",
		CourseID:       "c1",
		PlannedMinutes: planned,
		ScheduledAt:    statsNow.AddDate(0, 0, -daysAgo),
		CreatedAt:      statsNow.AddDate(0, 0, -365),
	}
	if actual >= 0 {
		e.Completed = true
		e.ActualMinutes = &actual
	}
	return e
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestCompute(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		session(10, 60, 60),
		session(8, 60, 90), // +50%
		session(6, 60, -1), // missed
		session(4, 60, 30), // -50%
		session(2, 60, 60),
		session(-3, 60, -1), // future, not yet due
	}}
	svc := NewService(repo, DefaultConfig())

	st, err := svc.Compute(context.Background(), "s1", statsNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if st.TotalCount != 6 || st.DueCount != 5 || st.CompletedCount != 4 {
		t.Errorf("counts = %d/%d/%d, want 6/5/4", st.TotalCount, st.DueCount, st.CompletedCount)
	}
	approx(t, "CompletionRate", st.CompletionRate, 0.8)
	if st.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", st.CurrentStreak)
	}
	if st.PlannedMinutes != 240 || st.ActualMinutes != 240 {
		t.Errorf("minutes = %d/%d, want 240/240", st.PlannedMinutes, st.ActualMinutes)
	}
	approx(t, "AvgVariance", st.AvgVariance, 0)
	// Last 3 completions: +50%, -50%, 0%.
	approx(t, "RecentVariance", st.RecentVariance, 0)
	// Completed at days -10, -8, -4, -2: gaps 2d, 4d, 2d.
	if st.MedianInterval != 48*time.Hour {
		t.Errorf("MedianInterval = %v, want 48h", st.MedianInterval)
	}
	if st.GapSinceLastCompleted != 48*time.Hour {
		t.Errorf("GapSinceLastCompleted = %v, want 48h", st.GapSinceLastCompleted)
	}
}

func TestCompute_Empty(t *testing.T) {
	svc := NewService(&mockCalendarRepo{}, DefaultConfig())
	st, err := svc.Compute(context.Background(), "s1", statsNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if st.TotalCount != 0 || st.CompletionRate != 0 || st.CurrentStreak != 0 {
		t.Errorf("empty stats not zero: %+v", st)
	}
}

func TestCompute_StreakBrokenByMiss(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		session(6, 30, 30),
		session(4, 30, 30),
		session(2, 30, -1), // most recent due session missed
	}}
	svc := NewService(repo, DefaultConfig())

	st, err := svc.Compute(context.Background(), "s1", statsNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if st.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", st.CurrentStreak)
	}
}

func TestCompute_WindowExcludesOldEvents(t *testing.T) {
	cfg := Config{TrailingWindowDays: 30}
	repo := &mockCalendarRepo{events: []store.Event{
		func() store.Event {
			e := session(60, 60, 60) // outside the 30-day window
			e.CreatedAt = statsNow.AddDate(0, 0, -90)
			return e
		}(),
		func() store.Event {
			e := session(5, 60, 60)
			e.CreatedAt = statsNow.AddDate(0, 0, -90)
			return e
		}(),
	}}
	svc := NewService(repo, cfg)

	st, err := svc.Compute(context.Background(), "s1", statsNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if st.DueCount != 1 || st.CompletedCount != 1 {
		t.Errorf("windowed counts = %d/%d, want 1/1", st.DueCount, st.CompletedCount)
	}
}

func TestCompute_VarianceSkew(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		session(8, 60, 90),
		session(6, 60, 90),
		session(4, 60, 90),
		session(2, 60, 90),
	}}
	svc := NewService(repo, DefaultConfig())

	st, err := svc.Compute(context.Background(), "s1", statsNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	approx(t, "AvgVariance", st.AvgVariance, 0.5)
	approx(t, "RecentVariance", st.RecentVariance, 0.5)
}
