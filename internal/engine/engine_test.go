package engine

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/calendar"
	"github.com/studyloop/studyloop/internal/catalog"
	"github.com/studyloop/studyloop/internal/store"
)

var engineNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "engine.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	eng := New(catalog.NewSeeded(), st, DefaultConfig(), nil)
	eng.now = func() time.Time { return engineNow }
	return eng
}

func enrollPayload(student, course string) json.RawMessage {
	return json.RawMessage(`{
		"studentId": "` + student + `",
		"courseId": "` + course + `",
		"availableHoursPerWeek": 5,
		"targetCompletionWeeks": 6
	}`)
}

func TestEngine_EnrollmentFlow(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	sched, err := eng.GenerateFromPayload(ctx, enrollPayload("s1", "go-foundations"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(sched.Events) == 0 {
		t.Fatal("empty schedule")
	}

	// The schedule is persisted and queryable.
	stored, err := eng.Query(ctx, store.EventFilter{StudentID: "s1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stored) != len(sched.Events) {
		t.Fatalf("stored %d events, generated %d", len(stored), len(sched.Events))
	}

	up, err := eng.Upcoming(ctx, "s1", 3)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(up) != 3 {
		t.Fatalf("upcoming = %d events, want 3", len(up))
	}

	if _, err := eng.MarkComplete(ctx, up[0].ID, 55); err != nil {
		t.Fatalf("complete: %v", err)
	}

	st, err := eng.Stats(ctx, "s1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.CompletedCount != 1 {
		t.Errorf("completed count = %d, want 1", st.CompletedCount)
	}
}

func TestEngine_UnknownCourse(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.GenerateFromPayload(context.Background(), enrollPayload("s1", "no-such-course"))
	var nf *catalog.ErrCourseNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *ErrCourseNotFound", err)
	}
}

func TestEngine_RejectsMalformedPayload(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.GenerateFromPayload(context.Background(), json.RawMessage(`{"studentId":"s1"}`))
	var ic *calendar.ErrInvalidConstraints
	if !errors.As(err, &ic) {
		t.Fatalf("error = %v, want *ErrInvalidConstraints", err)
	}
}

func TestEngine_AnalyzeAndApply(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.GenerateFromPayload(ctx, enrollPayload("s1", "go-foundations")); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Jump three weeks forward without completing anything: the whole early
	// plan is overdue.
	eng.now = func() time.Time { return engineNow.AddDate(0, 0, 21) }

	sug, err := eng.Analyze(ctx, "s1")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if sug.Classification != "falling-behind" {
		t.Fatalf("classification = %s, want falling-behind", sug.Classification)
	}
	if len(sug.Mutations) == 0 {
		t.Fatal("no mutations suggested for an overdue backlog")
	}

	n, err := eng.Apply(ctx, sug)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n != len(sug.Mutations) {
		t.Errorf("applied = %d, want %d", n, len(sug.Mutations))
	}

	// No session may remain overdue after the adaptation.
	now := eng.now()
	events, err := eng.Query(ctx, store.EventFilter{StudentID: "s1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for _, e := range events {
		if !e.Completed && e.ScheduledAt.Before(now) {
			t.Errorf("event %s still overdue at %v", e.ID, e.ScheduledAt)
		}
	}

	hist, err := eng.History(ctx, "s1", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("history = %d records, want 1", len(hist))
	}
	if hist[0].Classification != "falling-behind" || hist[0].MutationCount != len(sug.Mutations) {
		t.Errorf("history record = %+v", hist[0])
	}
}

func TestEngine_Abandon(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	sched, err := eng.GenerateFromPayload(ctx, enrollPayload("s1", "go-foundations"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	n, err := eng.Abandon(ctx, "s1", "go-foundations")
	if err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if n != len(sched.Events) {
		t.Errorf("deleted %d, want %d", n, len(sched.Events))
	}

	left, err := eng.Query(ctx, store.EventFilter{StudentID: "s1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("%d events left after abandonment", len(left))
	}

	// Re-enrollment starts from a clean slate.
	again, err := eng.GenerateFromPayload(ctx, enrollPayload("s1", "go-foundations"))
	if err != nil {
		t.Fatalf("re-enroll: %v", err)
	}
	if len(again.Events) != len(sched.Events) {
		t.Errorf("re-enrollment generated %d events, want %d", len(again.Events), len(sched.Events))
	}
}
