package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/catalog"
)

func flatUnits(n, minutes int) []catalog.LearningUnit {
	units := make([]catalog.LearningUnit, n)
	for i := range units {
		units[i] = catalog.LearningUnit{
			ID:               string(rune('a'+i)) + "-unit",
			Name:             "Unit",
			SequencePosition: i + 1,
			DurationMinutes:  minutes,
			DifficultyTier:   1 + i%5,
		}
	}
	return units
}

func baseConstraints() OnboardingConstraints {
	return OnboardingConstraints{
		StudentID:             "s1",
		CourseID:              "c1",
		AvailableHoursPerWeek: 5,
		TargetCompletionWeeks: 4,
		PreferredHour:         18,
	}
}

var genStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) // a Monday

func TestGenerate_FeasiblePlan(t *testing.T) {
	// 8 one-hour units against 5 h/week over 4 weeks: 2 sessions/week.
	sched, err := Generate(baseConstraints(), flatUnits(8, 60), genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := len(sched.Events); got != 8 {
		t.Fatalf("event count = %d, want 8", got)
	}
	if sched.SessionsPerWeek != 2 {
		t.Errorf("sessions/week = %d, want 2", sched.SessionsPerWeek)
	}
	if len(sched.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", sched.Warnings)
	}

	targetEnd := genStart.AddDate(0, 0, 7*4)
	last := sched.Events[len(sched.Events)-1]
	if last.EndsAt().After(targetEnd) {
		t.Errorf("plan ends %v, after target %v", last.EndsAt(), targetEnd)
	}
}

func TestGenerate_StrictOrdering(t *testing.T) {
	sched, err := Generate(baseConstraints(), flatUnits(10, 45), genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i := 1; i < len(sched.Events); i++ {
		prev, cur := sched.Events[i-1], sched.Events[i]
		if !prev.ScheduledAt.Before(cur.ScheduledAt) {
			t.Errorf("event %d at %v not after event %d at %v", i, cur.ScheduledAt, i-1, prev.ScheduledAt)
		}
		if prev.Overlaps(cur) {
			t.Errorf("events %d and %d overlap", i-1, i)
		}
		if prev.UnitPosition >= cur.UnitPosition {
			t.Errorf("unit order broken at %d: %d then %d", i, prev.UnitPosition, cur.UnitPosition)
		}
	}
}

func TestGenerate_LongSessionsSameDayDoNotOverlap(t *testing.T) {
	// Units longer than the intra-day gap, two sessions a day: the second
	// slot must wait for the first session to end.
	cs := baseConstraints()
	cs.AvailableHoursPerWeek = 20
	cs.TargetCompletionWeeks = 1
	cs.DailySessionCap = 2

	sched, err := Generate(cs, flatUnits(4, 200), genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := len(sched.Events); got != 4 {
		t.Fatalf("event count = %d, want 4", got)
	}

	for i := 1; i < len(sched.Events); i++ {
		prev, cur := sched.Events[i-1], sched.Events[i]
		if !prev.ScheduledAt.Before(cur.ScheduledAt) {
			t.Errorf("event %d at %v not after event %d at %v", i, cur.ScheduledAt, i-1, prev.ScheduledAt)
		}
		if prev.Overlaps(cur) {
			t.Errorf("events %d and %d overlap: %v+%dm then %v",
				i-1, i, prev.ScheduledAt, prev.PlannedMinutes, cur.ScheduledAt)
		}
	}

	// Same-day pair: the second session starts exactly where the first ends.
	if first, second := sched.Events[0], sched.Events[1]; !second.ScheduledAt.Equal(first.EndsAt()) {
		t.Errorf("second session at %v, want %v", second.ScheduledAt, first.EndsAt())
	}
}

func TestGenerate_UnsortedUnitsAreOrdered(t *testing.T) {
	units := flatUnits(5, 30)
	units[0], units[4] = units[4], units[0]
	units[1], units[3] = units[3], units[1]

	sched, err := Generate(baseConstraints(), units, genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, e := range sched.Events {
		if e.UnitPosition != i+1 {
			t.Errorf("position %d = unit %d, want %d", i, e.UnitPosition, i+1)
		}
	}
}

func TestGenerate_WeeklyBudgetRespected(t *testing.T) {
	cs := baseConstraints()
	cs.AvailableHoursPerWeek = 2 // 120 min/week against 8x60 min units
	cfg := DefaultConfig()

	sched, err := Generate(cs, flatUnits(8, 60), genStart, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	budget := int(cs.AvailableHoursPerWeek*60) + cfg.SlackMinutes
	for i, e := range sched.Events {
		windowStart := e.ScheduledAt.AddDate(0, 0, -7)
		sum := 0
		for _, other := range sched.Events[:i+1] {
			if other.ScheduledAt.After(windowStart) && !other.ScheduledAt.After(e.ScheduledAt) {
				sum += other.PlannedMinutes
			}
		}
		if sum > budget {
			t.Errorf("window ending at event %d carries %d min, budget %d", i, sum, budget)
		}
	}
}

func TestGenerate_OvercommittedWarning(t *testing.T) {
	cs := baseConstraints()
	cs.AvailableHoursPerWeek = 1
	cs.TargetCompletionWeeks = 2

	// 10 hours of work cannot fit 2 weeks at 1 h/week: the span extends
	// and the schedule carries a warning instead of blowing the cap.
	sched, err := Generate(cs, flatUnits(10, 60), genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	found := false
	for _, w := range sched.Warnings {
		if w == WarnOvercommitted {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want %v", sched.Warnings, WarnOvercommitted)
	}
	if got := len(sched.Events); got != 10 {
		t.Errorf("event count = %d, want 10", got)
	}
}

func TestGenerate_OversizedUnitStillPlaced(t *testing.T) {
	cs := baseConstraints()
	cs.AvailableHoursPerWeek = 1

	// A single 3-hour unit exceeds the weekly budget on its own but must
	// still occupy one session at full duration.
	sched, err := Generate(cs, flatUnits(1, 180), genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(sched.Events) != 1 || sched.Events[0].PlannedMinutes != 180 {
		t.Fatalf("got %+v, want one 180-minute event", sched.Events)
	}
}

func TestGenerate_PreferredDays(t *testing.T) {
	cs := baseConstraints()
	cs.PreferredDays = []time.Weekday{time.Monday, time.Thursday}

	sched, err := Generate(cs, flatUnits(6, 45), genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, e := range sched.Events {
		wd := e.ScheduledAt.Weekday()
		if wd != time.Monday && wd != time.Thursday {
			t.Errorf("event %d on %v, want Monday or Thursday", i, wd)
		}
	}
}

func TestGenerate_PreferredHour(t *testing.T) {
	cs := baseConstraints()
	cs.PreferredHour = 7

	sched, err := Generate(cs, flatUnits(4, 30), genStart, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, e := range sched.Events {
		if e.ScheduledAt.Hour() != 7 {
			t.Errorf("event %d at hour %d, want 7", i, e.ScheduledAt.Hour())
		}
	}
}

func TestGenerate_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OnboardingConstraints)
		units  []catalog.LearningUnit
	}{
		{"zero hours", func(c *OnboardingConstraints) { c.AvailableHoursPerWeek = 0 }, flatUnits(3, 30)},
		{"zero weeks", func(c *OnboardingConstraints) { c.TargetCompletionWeeks = 0 }, flatUnits(3, 30)},
		{"bad hour", func(c *OnboardingConstraints) { c.PreferredHour = 24 }, flatUnits(3, 30)},
		{"empty student", func(c *OnboardingConstraints) { c.StudentID = "" }, flatUnits(3, 30)},
		{"no units", func(*OnboardingConstraints) {}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := baseConstraints()
			tt.mutate(&cs)
			_, err := Generate(cs, tt.units, genStart, DefaultConfig())
			if err == nil {
				t.Fatal("want error, got nil")
			}
			var ic *ErrInvalidConstraints
			if !errors.As(err, &ic) {
				t.Fatalf("error type = %T, want *ErrInvalidConstraints", err)
			}
		})
	}
}
