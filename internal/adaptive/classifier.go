package adaptive

import (
	"time"

	"github.com/studyloop/studyloop/internal/stats"
)

// Classifier is a rule-based pace classifier. Returns the matched class
// and true, or ("", false) if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(st *stats.StudyStats, cfg Config) (PaceClass, bool)
}

// DefaultClassifiers returns classifiers in priority order. Struggling has
// highest priority: a student whose sessions badly overrun the plan needs
// duration relief even when their completion rate looks healthy.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&StrugglingClassifier{},
		&FallingBehindClassifier{},
		&AheadOfPaceClassifier{},
	}
}

// RunClassifiers executes classifiers in order and returns the first
// match. Falls back to on-pace when no rule applies.
func RunClassifiers(classifiers []Classifier, st *stats.StudyStats, cfg Config) (PaceClass, string) {
	for _, c := range classifiers {
		if class, ok := c.Classify(st, cfg); ok {
			return class, c.Name()
		}
	}
	return PaceOnPace, "on-pace-fallback"
}

// StrugglingClassifier fires when recent actual durations exceed plan by
// more than the struggling threshold, independent of completion rate.
type StrugglingClassifier struct{}

func (c *StrugglingClassifier) Name() string { return "struggling" }

func (c *StrugglingClassifier) Classify(st *stats.StudyStats, cfg Config) (PaceClass, bool) {
	if st.RecentVariance > cfg.StrugglingVariance {
		return PaceStruggling, true
	}
	return "", false
}

// FallingBehindClassifier fires on a low completion rate, or on a stalled
// student whose gap since the last completed session exceeds the configured
// multiple of their median inter-session interval.
type FallingBehindClassifier struct{}

func (c *FallingBehindClassifier) Name() string { return "falling-behind" }

func (c *FallingBehindClassifier) Classify(st *stats.StudyStats, cfg Config) (PaceClass, bool) {
	if st.CompletionRate < cfg.BehindCompletionRate {
		return PaceFallingBehind, true
	}
	if st.MedianInterval > 0 {
		threshold := time.Duration(float64(st.MedianInterval) * cfg.GapFactor)
		if st.GapSinceLastCompleted > threshold {
			return PaceFallingBehind, true
		}
	}
	return "", false
}

// AheadOfPaceClassifier fires when completion is healthy and sessions run
// meaningfully shorter than planned.
type AheadOfPaceClassifier struct{}

func (c *AheadOfPaceClassifier) Name() string { return "ahead-of-pace" }

func (c *AheadOfPaceClassifier) Classify(st *stats.StudyStats, cfg Config) (PaceClass, bool) {
	if st.CompletionRate >= cfg.OnPaceCompletionRate && st.AvgVariance < -cfg.VarianceTolerance {
		return PaceAheadOfPace, true
	}
	return "", false
}
