// Package engine is the caller-facing surface of the scheduling engine.
// Request handlers construct one Engine per process and invoke its
// operations synchronously; every operation is scoped to a single student
// and either completes or fails with one of the typed error kinds.
package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/studyloop/studyloop/internal/adaptive"
	"github.com/studyloop/studyloop/internal/calendar"
	"github.com/studyloop/studyloop/internal/catalog"
	"github.com/studyloop/studyloop/internal/stats"
	"github.com/studyloop/studyloop/internal/store"
)

// Config aggregates the tunable policy of all engine components.
type Config struct {
	Generator calendar.Config
	Stats     stats.Config
	Adaptive  adaptive.Config
}

// DefaultConfig returns the default policy for every component.
func DefaultConfig() Config {
	return Config{
		Generator: calendar.DefaultConfig(),
		Stats:     stats.DefaultConfig(),
		Adaptive:  adaptive.DefaultConfig(),
	}
}

// Engine wires the catalog, generator, store, and adaptive scheduler.
type Engine struct {
	catalog  catalog.Catalog
	repo     store.CalendarRepo
	audit    store.AuditRepo
	stats    *stats.Service
	adaptive *adaptive.Service
	cfg      Config
	now      func() time.Time
}

// New creates an Engine. phraser may be nil; suggestion rationales then
// use their deterministic template form.
func New(cat catalog.Catalog, st *store.Store, cfg Config, phraser adaptive.Phraser) *Engine {
	repo := st.CalendarRepo()
	audit := st.AuditRepo()
	statsSvc := stats.NewService(repo, cfg.Stats)
	return &Engine{
		catalog:  cat,
		repo:     repo,
		audit:    audit,
		stats:    statsSvc,
		adaptive: adaptive.NewService(repo, audit, statsSvc, cfg.Adaptive, phraser),
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Generate builds and persists the initial schedule for an enrollment.
func (e *Engine) Generate(ctx context.Context, cs calendar.OnboardingConstraints) (*calendar.Schedule, error) {
	units, err := e.catalog.Units(ctx, cs.CourseID)
	if err != nil {
		return nil, err
	}

	sched, err := calendar.Generate(cs, units, e.now(), e.cfg.Generator)
	if err != nil {
		return nil, err
	}

	if err := e.repo.InsertEvents(ctx, sched.Events); err != nil {
		return nil, err
	}
	return sched, nil
}

// GenerateFromPayload validates a loosely-typed onboarding payload at the
// boundary and then generates. Malformed payloads are rejected, not coerced.
func (e *Engine) GenerateFromPayload(ctx context.Context, raw json.RawMessage) (*calendar.Schedule, error) {
	cs, err := calendar.ParseConstraints(raw)
	if err != nil {
		return nil, err
	}
	return e.Generate(ctx, cs)
}

// MarkComplete records a finished session with its actual duration.
func (e *Engine) MarkComplete(ctx context.Context, eventID uuid.UUID, actualMinutes int) (*store.Event, error) {
	return e.repo.MarkComplete(ctx, eventID, actualMinutes)
}

// Reschedule moves an event, optionally cascading the shift to all
// subsequent incomplete events of the student.
func (e *Engine) Reschedule(ctx context.Context, eventID uuid.UUID, newStart time.Time, cascade bool) ([]store.Event, error) {
	return e.repo.Reschedule(ctx, eventID, newStart, cascade)
}

// Update applies a direct field patch to one event.
func (e *Engine) Update(ctx context.Context, eventID uuid.UUID, patch store.EventPatch) (*store.Event, error) {
	return e.repo.UpdateEvent(ctx, eventID, patch)
}

// Delete removes one event without re-dating siblings.
func (e *Engine) Delete(ctx context.Context, eventID uuid.UUID) error {
	return e.repo.DeleteEvent(ctx, eventID)
}

// Abandon removes all of a student's events for a course. A later
// re-enrollment generates fresh rows; nothing is resurrected.
func (e *Engine) Abandon(ctx context.Context, studentID, courseID string) (int, error) {
	return e.repo.DeleteCourseEvents(ctx, studentID, courseID)
}

// Query returns events matching the filter, ascending by scheduled time.
func (e *Engine) Query(ctx context.Context, f store.EventFilter) ([]store.Event, error) {
	return e.repo.Query(ctx, f)
}

// Upcoming returns the student's next incomplete sessions.
func (e *Engine) Upcoming(ctx context.Context, studentID string, limit int) ([]store.Event, error) {
	return e.repo.Upcoming(ctx, studentID, e.now(), limit)
}

// Stats derives StudyStats over the trailing window.
func (e *Engine) Stats(ctx context.Context, studentID string) (*stats.StudyStats, error) {
	return e.stats.Compute(ctx, studentID, e.now())
}

// Analyze classifies the student's pace and returns a suggestion without
// touching the calendar.
func (e *Engine) Analyze(ctx context.Context, studentID string) (*adaptive.Suggestion, error) {
	return e.adaptive.Analyze(ctx, studentID, e.now())
}

// Apply commits a previously previewed suggestion.
func (e *Engine) Apply(ctx context.Context, sug *adaptive.Suggestion) (int, error) {
	return e.adaptive.Apply(ctx, sug)
}

// History returns the student's applied adaptations, newest first.
func (e *Engine) History(ctx context.Context, studentID string, limit int) ([]store.AdaptationEventRecord, error) {
	return e.audit.QueryAdaptationEvents(ctx, studentID, limit)
}
