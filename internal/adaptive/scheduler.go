package adaptive

import (
	"context"
	"math"
	"time"

	"github.com/studyloop/studyloop/internal/stats"
	"github.com/studyloop/studyloop/internal/store"
)

// Service closes the feedback loop between planned and actual behavior.
// Analyze is side-effect-free; Apply commits a previewed suggestion.
type Service struct {
	repo        store.CalendarRepo
	audit       store.AuditRepo
	stats       *stats.Service
	cfg         Config
	classifiers []Classifier
	phraser     Phraser
}

// NewService creates an adaptive scheduler. phraser may be nil; rationales
// then stay in their deterministic template form.
func NewService(repo store.CalendarRepo, audit store.AuditRepo, statsSvc *stats.Service, cfg Config, phraser Phraser) *Service {
	return &Service{
		repo:        repo,
		audit:       audit,
		stats:       statsSvc,
		cfg:         cfg,
		classifiers: DefaultClassifiers(),
		phraser:     phraser,
	}
}

// Analyze computes StudyStats, classifies the student's pace, and returns
// a suggestion. The calendar is never mutated here; callers preview the
// suggestion and commit it with Apply.
func (s *Service) Analyze(ctx context.Context, studentID string, now time.Time) (*Suggestion, error) {
	st, err := s.stats.Compute(ctx, studentID, now)
	if err != nil {
		return nil, err
	}

	incomplete := false
	remaining, err := s.repo.Query(ctx, store.EventFilter{
		StudentID: studentID,
		Completed: &incomplete,
	})
	if err != nil {
		return nil, err
	}

	if st.CompletedCount < s.cfg.MinHistory {
		// An overdue backlog is classification evidence even without
		// completion history; otherwise return the neutral suggestion.
		if st.DueCount > 0 && st.CompletionRate < s.cfg.BehindCompletionRate {
			return s.suggest(ctx, PaceFallingBehind, st, remaining, now), nil
		}
		sug := &Suggestion{
			StudentID:           studentID,
			Classification:      PaceOnPace,
			Urgency:             UrgencyInfo,
			InsufficientHistory: true,
		}
		sug.Rationale = s.phrase(ctx, sug, st)
		return sug, nil
	}

	class, _ := RunClassifiers(s.classifiers, st, s.cfg)
	return s.suggest(ctx, class, st, remaining, now), nil
}

func (s *Service) suggest(ctx context.Context, class PaceClass, st *stats.StudyStats, remaining []store.Event, now time.Time) *Suggestion {
	sug := &Suggestion{
		StudentID:      st.StudentID,
		Classification: class,
		Urgency:        urgencyFor(class),
	}

	switch class {
	case PaceFallingBehind:
		sug.Mutations, sug.ExtendsPastTarget = s.compress(remaining, now)
	case PaceAheadOfPace:
		sug.Mutations = s.pullForward(remaining, now)
	case PaceStruggling:
		sug.Mutations = s.relieve(remaining, st.RecentVariance)
	case PaceOnPace:
		// Informational only.
	}

	sug.Rationale = s.phrase(ctx, sug, st)
	return sug
}

// Apply commits a suggestion's mutations in one transaction under the
// student's lock and records the adaptation in the audit log. Returns the
// number of events mutated.
func (s *Service) Apply(ctx context.Context, sug *Suggestion) (int, error) {
	if len(sug.Mutations) > 0 {
		changes := make([]store.EventChange, len(sug.Mutations))
		for i, m := range sug.Mutations {
			changes[i] = store.EventChange{
				EventID:           m.EventID,
				NewScheduledAt:    m.NewScheduledAt,
				NewPlannedMinutes: m.NewPlannedMinutes,
			}
		}
		if err := s.repo.BulkAdjust(ctx, sug.StudentID, changes); err != nil {
			return 0, err
		}
	}

	_ = s.audit.AppendAdaptationEvent(ctx, store.AdaptationEventData{
		StudentID:      sug.StudentID,
		Classification: string(sug.Classification),
		Urgency:        string(sug.Urgency),
		MutationCount:  len(sug.Mutations),
		Rationale:      sug.Rationale,
	})
	return len(sug.Mutations), nil
}

// compress re-spaces all incomplete events evenly between tomorrow and the
// current plan end, pulling the overdue backlog forward. Gaps never shrink
// below MinSessionGap and assigned times stay monotone in course order; an
// imminent session is delayed only when the backlog ahead of it would
// otherwise pass it. When the plan end cannot be preserved, the span
// extends and the suggestion is flagged.
func (s *Service) compress(remaining []store.Event, now time.Time) ([]Mutation, bool) {
	n := len(remaining)
	if n == 0 {
		return nil, false
	}

	start := now.Add(s.cfg.MinSessionGap)
	targetEnd := remaining[n-1].ScheduledAt

	gap := s.cfg.MinSessionGap
	if n > 1 && targetEnd.After(start) {
		gap = targetEnd.Sub(start) / time.Duration(n-1)
		if gap < s.cfg.MinSessionGap {
			gap = s.cfg.MinSessionGap
		}
	}

	var muts []Mutation
	var prev, last time.Time
	for i, e := range remaining {
		assigned := start.Add(time.Duration(i) * gap)
		// Imminent future work stays at its original time rather than
		// being pushed out, as long as the sequence stays monotone:
		// an event never lands before an earlier unit's new slot.
		if e.ScheduledAt.After(now) && e.ScheduledAt.Before(assigned) {
			assigned = e.ScheduledAt
		}
		if i > 0 {
			if floor := prev.Add(s.cfg.MinSessionGap); assigned.Before(floor) {
				assigned = floor
			}
		}
		prev = assigned
		last = assigned
		if assigned.Equal(e.ScheduledAt) {
			continue
		}
		t := assigned
		muts = append(muts, Mutation{
			EventID:        e.ID,
			Kind:           MutationReschedule,
			NewScheduledAt: &t,
		})
	}
	return muts, last.After(targetEnd)
}

// pullForward moves the next 1-2 incomplete future sessions earlier.
// Difficulty is never altered for a student running ahead.
func (s *Service) pullForward(remaining []store.Event, now time.Time) []Mutation {
	var muts []Mutation
	slot := now.Add(s.cfg.MinSessionGap)
	for _, e := range remaining {
		if len(muts) >= s.cfg.PullForwardSessions {
			break
		}
		if !e.ScheduledAt.After(now) {
			continue
		}
		if slot.Before(e.ScheduledAt) {
			t := slot
			muts = append(muts, Mutation{
				EventID:        e.ID,
				Kind:           MutationReschedule,
				NewScheduledAt: &t,
			})
		}
		slot = slot.Add(s.cfg.MinSessionGap)
	}
	return muts
}

// relieve grows upcoming planned durations proportionally to the observed
// overrun and inserts a reinforcement gap before each difficulty step-up.
func (s *Service) relieve(remaining []store.Event, recentVariance float64) []Mutation {
	growth := 1 + recentVariance
	if growth > s.cfg.MaxDurationGrowth {
		growth = s.cfg.MaxDurationGrowth
	}

	var muts []Mutation
	var shift time.Duration
	for i, e := range remaining {
		if i > 0 && e.Difficulty > remaining[i-1].Difficulty {
			shift += s.cfg.ReviewGap
		}

		var newAt *time.Time
		if shift > 0 {
			t := e.ScheduledAt.Add(shift)
			newAt = &t
		}

		var newMins *int
		if grown := int(math.Ceil(float64(e.PlannedMinutes) * growth)); grown != e.PlannedMinutes {
			m := grown
			newMins = &m
		}

		if newAt == nil && newMins == nil {
			continue
		}
		kind := MutationSetDuration
		if newAt != nil {
			kind = MutationReschedule
		}
		muts = append(muts, Mutation{
			EventID:           e.ID,
			Kind:              kind,
			NewScheduledAt:    newAt,
			NewPlannedMinutes: newMins,
		})
	}
	return muts
}

func urgencyFor(class PaceClass) Urgency {
	switch class {
	case PaceFallingBehind:
		return UrgencyUrgent
	case PaceStruggling:
		return UrgencyAdvisory
	default:
		return UrgencyInfo
	}
}
