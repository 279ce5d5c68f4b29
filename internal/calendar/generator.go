package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/studyloop/studyloop/internal/catalog"
	"github.com/studyloop/studyloop/internal/store"
)

// Warning flags a constraint the generator could not fully honor.
type Warning string

const (
	// WarnOvercommitted means total estimated study time exceeds available
	// hours x target weeks. The span was extended past the target rather
	// than overcommitting any week; the weekly-hours cap always wins.
	WarnOvercommitted Warning = "overcommitted"
)

// Schedule is the generator output. Events are unpersisted; writing them
// to the store is the caller's responsibility.
type Schedule struct {
	Events          []store.Event
	Warnings        []Warning
	SessionsPerWeek int
}

// Generate produces the initial event sequence for a student enrolling in
// a course. Pure function of its inputs: no clock reads, no persistence.
//
// Units are placed greedily in course order into cadence slots starting at
// start. A unit is pushed to a later slot whenever adding it would lift the
// trailing 7-day committed time above the weekly cap plus slack, unless the
// window is otherwise empty (a single oversized unit still occupies one
// session with its full duration).
func Generate(cs OnboardingConstraints, units []catalog.LearningUnit, start time.Time, cfg Config) (*Schedule, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, &ErrInvalidConstraints{Field: "units", Reason: "course has no learning units"}
	}

	ordered := make([]catalog.LearningUnit, len(units))
	copy(ordered, units)
	catalog.SortUnits(ordered)

	weeklyBudget := int(cs.AvailableHoursPerWeek * 60)
	sessionsPerWeek := targetSessionsPerWeek(cs, ordered, weeklyBudget)

	cursor := newSlotCursor(cs, cfg, start, sessionsPerWeek)

	events := make([]store.Event, 0, len(ordered))
	for _, u := range ordered {
		slot := cursor.Next(u.DurationMinutes)
		for !fitsWeeklyBudget(events, slot, u.DurationMinutes, weeklyBudget+cfg.SlackMinutes) {
			slot = cursor.Next(u.DurationMinutes)
		}
		events = append(events, store.Event{
			ID:             uuid.New(),
			StudentID:      cs.StudentID,
			CourseID:       cs.CourseID,
			UnitID:         u.ID,
			UnitPosition:   u.SequencePosition,
			ScheduledAt:    slot,
			PlannedMinutes: u.DurationMinutes,
			Difficulty:     u.DifficultyTier,
			CreatedAt:      start,
		})
	}

	sched := &Schedule{Events: events, SessionsPerWeek: sessionsPerWeek}

	targetEnd := start.AddDate(0, 0, 7*cs.TargetCompletionWeeks)
	if last := events[len(events)-1]; last.EndsAt().After(targetEnd) {
		sched.Warnings = append(sched.Warnings, WarnOvercommitted)
	}
	return sched, nil
}

// targetSessionsPerWeek derives the pace: enough sessions to finish within
// the target span, but never so many that the average committed week blows
// the hours budget.
func targetSessionsPerWeek(cs OnboardingConstraints, units []catalog.LearningUnit, weeklyBudget int) int {
	needed := (len(units) + cs.TargetCompletionWeeks - 1) / cs.TargetCompletionWeeks
	if needed < 1 {
		needed = 1
	}

	total := 0
	for _, u := range units {
		total += u.DurationMinutes
	}
	avg := total / len(units)
	if avg < 1 {
		avg = 1
	}
	maxByBudget := weeklyBudget / avg
	if maxByBudget < 1 {
		maxByBudget = 1
	}

	if needed > maxByBudget {
		return maxByBudget
	}
	return needed
}

// fitsWeeklyBudget reports whether placing minutes at slot keeps the
// trailing 7-day committed time within budget. An otherwise-empty window
// always fits: the weekly cap is a soft target, not a per-event limiter.
func fitsWeeklyBudget(placed []store.Event, slot time.Time, minutes, budget int) bool {
	windowStart := slot.AddDate(0, 0, -7)
	sum := 0
	for _, e := range placed {
		if e.ScheduledAt.After(windowStart) && !e.ScheduledAt.After(slot) {
			sum += e.PlannedMinutes
		}
	}
	if sum == 0 {
		return true
	}
	return sum+minutes <= budget
}

// slotCursor emits strictly increasing candidate session times honoring
// the student's preferred days, time of day, and daily session cap.
type slotCursor struct {
	cs        OnboardingConstraints
	cfg       Config
	day       time.Time // current day at the preferred hour
	onDay     int       // sessions already emitted for day
	offsetMin int       // minutes into day of the next slot
	dailyCap  int
	stepDays  int
}

func newSlotCursor(cs OnboardingConstraints, cfg Config, start time.Time, sessionsPerWeek int) *slotCursor {
	stepDays := 1
	if len(cs.PreferredDays) == 0 && sessionsPerWeek < 7 {
		stepDays = 7 / sessionsPerWeek
		if stepDays < 1 {
			stepDays = 1
		}
	}

	dailyCap := cs.DailySessionCap
	if dailyCap == 0 {
		dailyCap = 1
		if sessionsPerWeek > 7 {
			dailyCap = cfg.MaxSessionsPerDay
		}
	}

	c := &slotCursor{
		cs:       cs,
		cfg:      cfg,
		dailyCap: dailyCap,
		stepDays: stepDays,
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), cs.PreferredHour, 0, 0, 0, start.Location())
	if !day.After(start) {
		day = day.AddDate(0, 0, 1)
	}
	for !c.allowedDay(day) {
		day = day.AddDate(0, 0, 1)
	}
	c.day = day
	return c
}

// Next returns the next candidate slot for a session of the given length.
// Slots within a day are separated by at least the intra-day gap; a session
// longer than the gap pushes the next same-day slot past its end. Days
// advance by the cadence step, skipping days outside the student's
// preference.
func (c *slotCursor) Next(minutes int) time.Time {
	slot := c.day.Add(time.Duration(c.offsetMin) * time.Minute)
	step := c.cfg.IntraDayGapMinutes
	if minutes > step {
		step = minutes
	}
	c.offsetMin += step
	c.onDay++
	if c.onDay >= c.dailyCap {
		c.advanceDay()
	}
	return slot
}

func (c *slotCursor) advanceDay() {
	c.onDay = 0
	c.offsetMin = 0
	c.day = c.day.AddDate(0, 0, c.stepDays)
	for !c.allowedDay(c.day) {
		c.day = c.day.AddDate(0, 0, 1)
	}
}

func (c *slotCursor) allowedDay(d time.Time) bool {
	if len(c.cs.PreferredDays) == 0 {
		return true
	}
	for _, wd := range c.cs.PreferredDays {
		if d.Weekday() == wd {
			return true
		}
	}
	return false
}
