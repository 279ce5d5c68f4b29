package adaptive

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studyloop/studyloop/internal/stats"
	"github.com/studyloop/studyloop/internal/store"
)

// mockCalendarRepo serves canned events and records bulk adjustments.
type mockCalendarRepo struct {
	events   []store.Event
	adjusted []store.EventChange
}

func (m *mockCalendarRepo) InsertEvents(_ context.Context, _ []store.Event) error { return nil }
func (m *mockCalendarRepo) GetEvent(_ context.Context, id uuid.UUID) (*store.Event, error) {
	return nil, &store.ErrNotFound{EventID: id}
}
func (m *mockCalendarRepo) MarkComplete(_ context.Context, id uuid.UUID, _ int) (*store.Event, error) {
	return nil, &store.ErrNotFound{EventID: id}
}
func (m *mockCalendarRepo) Reschedule(_ context.Context, _ uuid.UUID, _ time.Time, _ bool) ([]store.Event, error) {
	return nil, nil
}
func (m *mockCalendarRepo) UpdateEvent(_ context.Context, id uuid.UUID, _ store.EventPatch) (*store.Event, error) {
	return nil, &store.ErrNotFound{EventID: id}
}
func (m *mockCalendarRepo) DeleteEvent(_ context.Context, _ uuid.UUID) error { return nil }
func (m *mockCalendarRepo) DeleteCourseEvents(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

func (m *mockCalendarRepo) Query(_ context.Context, f store.EventFilter) ([]store.Event, error) {
	var out []store.Event
	for _, e := range m.events {
		if f.Completed != nil && e.Completed != *f.Completed {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockCalendarRepo) Upcoming(_ context.Context, _ string, _ time.Time, _ int) ([]store.Event, error) {
	return nil, nil
}

func (m *mockCalendarRepo) BulkAdjust(_ context.Context, _ string, changes []store.EventChange) error {
	m.adjusted = append(m.adjusted, changes...)
	return nil
}

// mockAuditRepo records appended adaptation events.
type mockAuditRepo struct {
	adaptations []store.AdaptationEventData
}

func (m *mockAuditRepo) AppendAdaptationEvent(_ context.Context, data store.AdaptationEventData) error {
	m.adaptations = append(m.adaptations, data)
	return nil
}
func (m *mockAuditRepo) QueryAdaptationEvents(_ context.Context, _ string, _ int) ([]store.AdaptationEventRecord, error) {
	return nil, nil
}
func (m *mockAuditRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockAuditRepo) QueryLLMRequests(_ context.Context, _ int) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

var adaptNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *mockCalendarRepo, audit *mockAuditRepo) *Service {
	statsSvc := stats.NewService(repo, stats.DefaultConfig())
	return NewService(repo, audit, statsSvc, DefaultConfig(), nil)
}

// planEvent builds an event offset days from adaptNow (negative = past).
// actual < 0 means incomplete.
func planEvent(offsetDays, planned, actual, difficulty int) store.Event {
	e := store.Event{
		ID:             uuid.New(),
		StudentID:      "s1",
		CourseID:       "c1",
		PlannedMinutes: planned,
		Difficulty:     difficulty,
		ScheduledAt:    adaptNow.AddDate(0, 0, offsetDays),
		CreatedAt:      adaptNow.AddDate(0, 0, -60),
	}
	if actual >= 0 {
		e.Completed = true
		e.ActualMinutes = &actual
	}
	return e
}

func TestAnalyze_InsufficientHistory(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		planEvent(-1, 60, 60, 1),
		planEvent(2, 60, -1, 1),
		planEvent(4, 60, -1, 2),
	}}
	svc := newTestService(repo, &mockAuditRepo{})

	sug, err := svc.Analyze(context.Background(), "s1", adaptNow)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !sug.InsufficientHistory {
		t.Error("InsufficientHistory = false, want true")
	}
	if sug.Classification != PaceOnPace || sug.Urgency != UrgencyInfo {
		t.Errorf("class/urgency = %s/%s", sug.Classification, sug.Urgency)
	}
	if len(sug.Mutations) != 0 {
		t.Errorf("mutations = %d, want 0", len(sug.Mutations))
	}
	if sug.Rationale == "" {
		t.Error("rationale is empty")
	}
}

func TestAnalyze_OverdueBacklogWithoutHistory(t *testing.T) {
	// Five sessions due, none completed: the missing history is itself the
	// signal, and the backlog must be pulled forward.
	repo := &mockCalendarRepo{events: []store.Event{
		planEvent(-10, 60, -1, 1),
		planEvent(-8, 60, -1, 1),
		planEvent(-6, 60, -1, 2),
		planEvent(-4, 60, -1, 2),
		planEvent(-2, 60, -1, 3),
	}}
	svc := newTestService(repo, &mockAuditRepo{})

	sug, err := svc.Analyze(context.Background(), "s1", adaptNow)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if sug.Classification != PaceFallingBehind {
		t.Fatalf("classification = %s, want %s", sug.Classification, PaceFallingBehind)
	}
	if sug.Urgency != UrgencyUrgent {
		t.Errorf("urgency = %s, want %s", sug.Urgency, UrgencyUrgent)
	}
	if len(sug.Mutations) != 5 {
		t.Fatalf("mutations = %d, want 5", len(sug.Mutations))
	}
	if !sug.ExtendsPastTarget {
		t.Error("ExtendsPastTarget = false, want true")
	}

	prev := adaptNow
	for i, m := range sug.Mutations {
		if m.Kind != MutationReschedule || m.NewScheduledAt == nil {
			t.Fatalf("mutation %d is not a reschedule", i)
		}
		if !m.NewScheduledAt.After(prev) {
			t.Errorf("mutation %d at %v not after %v", i, m.NewScheduledAt, prev)
		}
		prev = *m.NewScheduledAt
	}
}

func TestAnalyze_OnPaceHasNoMutations(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		planEvent(-6, 60, 63, 1), // +5%
		planEvent(-4, 60, 63, 1),
		planEvent(-2, 60, 63, 2),
		planEvent(2, 60, -1, 2),
	}}
	svc := newTestService(repo, &mockAuditRepo{})

	sug, err := svc.Analyze(context.Background(), "s1", adaptNow)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if sug.Classification != PaceOnPace {
		t.Fatalf("classification = %s, want %s", sug.Classification, PaceOnPace)
	}
	if len(sug.Mutations) != 0 {
		t.Errorf("mutations = %d, want 0", len(sug.Mutations))
	}
	if sug.InsufficientHistory {
		t.Error("InsufficientHistory = true, want false")
	}
}

func TestAnalyze_AheadOfPacePullsForward(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		planEvent(-6, 60, 35, 1), // well under plan
		planEvent(-4, 60, 35, 1),
		planEvent(-2, 60, 35, 2),
		planEvent(5, 60, -1, 2),
		planEvent(8, 60, -1, 3),
		planEvent(11, 60, -1, 3),
	}}
	svc := newTestService(repo, &mockAuditRepo{})

	sug, err := svc.Analyze(context.Background(), "s1", adaptNow)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if sug.Classification != PaceAheadOfPace {
		t.Fatalf("classification = %s, want %s", sug.Classification, PaceAheadOfPace)
	}
	if len(sug.Mutations) != 2 {
		t.Fatalf("mutations = %d, want 2", len(sug.Mutations))
	}
	for i, m := range sug.Mutations {
		if m.NewPlannedMinutes != nil {
			t.Errorf("mutation %d changes duration; ahead-of-pace must not", i)
		}
		if m.NewScheduledAt == nil || !m.NewScheduledAt.After(adaptNow) {
			t.Errorf("mutation %d does not stay in the future", i)
		}
	}
	// The first pulled session lands a day out, before its original slot.
	if got := *sug.Mutations[0].NewScheduledAt; !got.Before(adaptNow.AddDate(0, 0, 5)) {
		t.Errorf("first session at %v was not pulled earlier", got)
	}
}

func TestAnalyze_StrugglingGrowsDurations(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		planEvent(-6, 60, 100, 1), // ~+67% overrun
		planEvent(-4, 60, 100, 1),
		planEvent(-2, 60, 100, 2),
		planEvent(2, 60, -1, 2),
		planEvent(4, 60, -1, 3), // difficulty step-up
	}}
	svc := newTestService(repo, &mockAuditRepo{})

	sug, err := svc.Analyze(context.Background(), "s1", adaptNow)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if sug.Classification != PaceStruggling {
		t.Fatalf("classification = %s, want %s", sug.Classification, PaceStruggling)
	}
	if sug.Urgency != UrgencyAdvisory {
		t.Errorf("urgency = %s, want %s", sug.Urgency, UrgencyAdvisory)
	}
	if len(sug.Mutations) != 2 {
		t.Fatalf("mutations = %d, want 2", len(sug.Mutations))
	}

	first := sug.Mutations[0]
	if first.NewPlannedMinutes == nil || *first.NewPlannedMinutes <= 60 {
		t.Errorf("first duration not grown: %v", first.NewPlannedMinutes)
	}
	if *first.NewPlannedMinutes > 120 {
		t.Errorf("duration %d exceeds growth cap", *first.NewPlannedMinutes)
	}

	second := sug.Mutations[1]
	if second.NewScheduledAt == nil {
		t.Fatal("difficulty step-up got no reinforcement gap")
	}
	want := adaptNow.AddDate(0, 0, 4).Add(24 * time.Hour)
	if !second.NewScheduledAt.Equal(want) {
		t.Errorf("step-up moved to %v, want %v", second.NewScheduledAt, want)
	}
}

func TestAnalyze_IsSideEffectFree(t *testing.T) {
	repo := &mockCalendarRepo{events: []store.Event{
		planEvent(-10, 60, -1, 1),
		planEvent(-8, 60, -1, 1),
		planEvent(-6, 60, -1, 2),
	}}
	audit := &mockAuditRepo{}
	svc := newTestService(repo, audit)

	if _, err := svc.Analyze(context.Background(), "s1", adaptNow); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(repo.adjusted) != 0 {
		t.Errorf("Analyze adjusted %d events", len(repo.adjusted))
	}
	if len(audit.adaptations) != 0 {
		t.Errorf("Analyze wrote %d audit records", len(audit.adaptations))
	}
}

func TestApply(t *testing.T) {
	repo := &mockCalendarRepo{}
	audit := &mockAuditRepo{}
	svc := newTestService(repo, audit)

	newAt := adaptNow.Add(24 * time.Hour)
	newMins := 90
	sug := &Suggestion{
		StudentID:      "s1",
		Classification: PaceStruggling,
		Urgency:        UrgencyAdvisory,
		Rationale:      "sessions are overrunning",
		Mutations: []Mutation{
			{EventID: uuid.New(), Kind: MutationSetDuration, NewPlannedMinutes: &newMins},
			{EventID: uuid.New(), Kind: MutationReschedule, NewScheduledAt: &newAt},
		},
	}

	n, err := svc.Apply(context.Background(), sug)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 2 {
		t.Errorf("applied = %d, want 2", n)
	}
	if len(repo.adjusted) != 2 {
		t.Fatalf("BulkAdjust received %d changes", len(repo.adjusted))
	}
	if repo.adjusted[0].NewPlannedMinutes == nil || *repo.adjusted[0].NewPlannedMinutes != 90 {
		t.Errorf("change 0 = %+v", repo.adjusted[0])
	}

	if len(audit.adaptations) != 1 {
		t.Fatalf("audit records = %d, want 1", len(audit.adaptations))
	}
	rec := audit.adaptations[0]
	if rec.Classification != string(PaceStruggling) || rec.MutationCount != 2 {
		t.Errorf("audit record = %+v", rec)
	}
}

func TestApply_NoMutationsStillAudited(t *testing.T) {
	repo := &mockCalendarRepo{}
	audit := &mockAuditRepo{}
	svc := newTestService(repo, audit)

	n, err := svc.Apply(context.Background(), &Suggestion{
		StudentID:      "s1",
		Classification: PaceOnPace,
		Urgency:        UrgencyInfo,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 0 {
		t.Errorf("applied = %d, want 0", n)
	}
	if len(repo.adjusted) != 0 {
		t.Errorf("BulkAdjust called with %d changes", len(repo.adjusted))
	}
	if len(audit.adaptations) != 1 {
		t.Errorf("audit records = %d, want 1", len(audit.adaptations))
	}
}

func TestCompress_NeverDelaysFutureSessions(t *testing.T) {
	svc := newTestService(&mockCalendarRepo{}, &mockAuditRepo{})

	remaining := []store.Event{
		planEvent(-3, 60, -1, 1),
		planEvent(3, 60, -1, 1),
		planEvent(20, 60, -1, 2),
	}
	muts, _ := svc.compress(remaining, adaptNow)

	byID := make(map[uuid.UUID]store.Event)
	for _, e := range remaining {
		byID[e.ID] = e
	}
	for _, m := range muts {
		orig := byID[m.EventID]
		if orig.ScheduledAt.After(adaptNow) && m.NewScheduledAt.After(orig.ScheduledAt) {
			t.Errorf("future event %s delayed from %v to %v", m.EventID, orig.ScheduledAt, m.NewScheduledAt)
		}
	}
}

func TestCompress_BacklogNeverPassesLaterUnits(t *testing.T) {
	svc := newTestService(&mockCalendarRepo{}, &mockAuditRepo{})

	// One session overdue, the next due in twelve hours. Pulling the
	// backlog to tomorrow must not land it after the imminent session.
	overdue := planEvent(-3, 60, -1, 1)
	imminent := planEvent(1, 60, -1, 2)
	imminent.ScheduledAt = adaptNow.Add(12 * time.Hour)

	muts, extends := svc.compress([]store.Event{overdue, imminent}, adaptNow)

	finalAt := map[uuid.UUID]time.Time{
		overdue.ID:  overdue.ScheduledAt,
		imminent.ID: imminent.ScheduledAt,
	}
	for _, m := range muts {
		if m.Kind != MutationReschedule || m.NewScheduledAt == nil {
			t.Fatalf("mutation for %s is not a reschedule", m.EventID)
		}
		finalAt[m.EventID] = *m.NewScheduledAt
	}

	wantFirst := adaptNow.Add(24 * time.Hour)
	if !finalAt[overdue.ID].Equal(wantFirst) {
		t.Errorf("overdue session at %v, want %v", finalAt[overdue.ID], wantFirst)
	}
	if !finalAt[imminent.ID].After(finalAt[overdue.ID]) {
		t.Errorf("unit order broken: second unit at %v not after first at %v",
			finalAt[imminent.ID], finalAt[overdue.ID])
	}
	if got := finalAt[imminent.ID].Sub(finalAt[overdue.ID]); got < 24*time.Hour {
		t.Errorf("gap between compressed sessions = %v, want >= 24h", got)
	}
	if !extends {
		t.Error("ExtendsPastTarget = false, want true")
	}
}
