// Package stats derives behavioral statistics from a student's calendar.
// StudyStats is computed on demand over a trailing window and never stored.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/studyloop/studyloop/internal/store"
)

// Config holds stats derivation settings.
type Config struct {
	// TrailingWindowDays bounds how far back completed events are
	// considered. The effective window is the shorter of this and the
	// span since enrollment.
	TrailingWindowDays int
}

// DefaultConfig returns sensible stats defaults.
func DefaultConfig() Config {
	return Config{TrailingWindowDays: 90}
}

// StudyStats summarizes planned-versus-actual behavior over the trailing
// window. Derived, never persisted.
type StudyStats struct {
	StudentID string

	WindowStart time.Time
	WindowEnd   time.Time

	// Planned and actual minutes across completed events in the window.
	PlannedMinutes int
	ActualMinutes  int

	// CompletionRate is completed / due, where due counts events whose
	// scheduled time has passed. 0 when nothing is due yet.
	CompletionRate float64

	// CurrentStreak counts consecutive completed sessions walking
	// backward from the most recently due event.
	CurrentStreak int

	// AvgVariance is the mean signed (actual-planned)/planned across
	// completed events. +0.25 means sessions run 25% over plan.
	AvgVariance float64

	// RecentVariance is the same measure over the last 3 completed events.
	RecentVariance float64

	// MedianInterval is the median gap between consecutive completed
	// sessions' scheduled times. Zero when fewer than 2 completions.
	MedianInterval time.Duration

	// GapSinceLastCompleted is now minus the scheduled time of the most
	// recent completed event. Zero when nothing is completed.
	GapSinceLastCompleted time.Duration

	CompletedCount int
	DueCount       int
	TotalCount     int
}

// recentVarianceEvents is how many trailing completions feed RecentVariance.
const recentVarianceEvents = 3

// Service computes StudyStats from the calendar repo.
type Service struct {
	repo store.CalendarRepo
	cfg  Config
}

// NewService creates a stats service.
func NewService(repo store.CalendarRepo, cfg Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Compute derives StudyStats for a student as of now.
func (s *Service) Compute(ctx context.Context, studentID string, now time.Time) (*StudyStats, error) {
	events, err := s.repo.Query(ctx, store.EventFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}

	windowStart := now.AddDate(0, 0, -s.cfg.TrailingWindowDays)
	if enrolled, ok := enrollmentTime(events); ok && enrolled.After(windowStart) {
		windowStart = enrolled
	}

	st := &StudyStats{
		StudentID:   studentID,
		WindowStart: windowStart,
		WindowEnd:   now,
		TotalCount:  len(events),
	}

	var due, completed []store.Event
	for _, e := range events {
		if e.ScheduledAt.Before(windowStart) {
			continue
		}
		if !e.ScheduledAt.After(now) {
			due = append(due, e)
		}
		if e.Completed {
			completed = append(completed, e)
		}
	}
	st.DueCount = len(due)
	st.CompletedCount = len(completed)

	for _, e := range completed {
		st.PlannedMinutes += e.PlannedMinutes
		if e.ActualMinutes != nil {
			st.ActualMinutes += *e.ActualMinutes
		}
	}

	if len(due) > 0 {
		n := 0
		for _, e := range due {
			if e.Completed {
				n++
			}
		}
		st.CompletionRate = float64(n) / float64(len(due))
	}

	st.CurrentStreak = streak(due)
	st.AvgVariance = meanVariance(completed)
	st.RecentVariance = meanVariance(lastN(completed, recentVarianceEvents))
	st.MedianInterval = medianInterval(completed)
	if len(completed) > 0 {
		st.GapSinceLastCompleted = now.Sub(completed[len(completed)-1].ScheduledAt)
	}

	return st, nil
}

// enrollmentTime returns the earliest creation timestamp across events.
func enrollmentTime(events []store.Event) (time.Time, bool) {
	if len(events) == 0 {
		return time.Time{}, false
	}
	min := events[0].CreatedAt
	for _, e := range events[1:] {
		if e.CreatedAt.Before(min) {
			min = e.CreatedAt
		}
	}
	return min, true
}

// streak counts consecutive completed sessions from the most recently due
// event backward. A single missed session breaks the streak.
func streak(due []store.Event) int {
	n := 0
	for i := len(due) - 1; i >= 0; i-- {
		if !due[i].Completed {
			break
		}
		n++
	}
	return n
}

// meanVariance averages (actual-planned)/planned over completed events.
func meanVariance(completed []store.Event) float64 {
	var sum float64
	n := 0
	for _, e := range completed {
		if e.ActualMinutes == nil || e.PlannedMinutes <= 0 {
			continue
		}
		sum += float64(*e.ActualMinutes-e.PlannedMinutes) / float64(e.PlannedMinutes)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func lastN(events []store.Event, n int) []store.Event {
	if len(events) <= n {
		return events
	}
	return events[len(events)-n:]
}

// medianInterval returns the median gap between consecutive completed
// sessions' scheduled times.
func medianInterval(completed []store.Event) time.Duration {
	if len(completed) < 2 {
		return 0
	}
	gaps := make([]time.Duration, 0, len(completed)-1)
	for i := 1; i < len(completed); i++ {
		gaps = append(gaps, completed[i].ScheduledAt.Sub(completed[i-1].ScheduledAt))
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i] < gaps[j] })
	mid := len(gaps) / 2
	if len(gaps)%2 == 1 {
		return gaps[mid]
	}
	return (gaps[mid-1] + gaps[mid]) / 2
}
