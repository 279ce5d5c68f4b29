package adaptive

import "time"

// Config holds the pace-classification thresholds and adaptation knobs.
// These are policy, not protocol: deployments tune them without touching
// the classification or suggestion logic.
type Config struct {
	// OnPaceCompletionRate is the minimum completion rate for on-pace
	// and ahead-of-pace classifications.
	OnPaceCompletionRate float64

	// BehindCompletionRate is the completion rate below which a student
	// is falling behind.
	BehindCompletionRate float64

	// GapFactor flags falling-behind when the gap since the last
	// completed session exceeds this multiple of the median interval.
	GapFactor float64

	// VarianceTolerance bounds the average duration variance considered
	// on-pace, and marks ahead-of-pace when undershot by more than it.
	VarianceTolerance float64

	// StrugglingVariance is the recent-variance overshoot that marks a
	// student struggling, independent of completion rate.
	StrugglingVariance float64

	// MinHistory is the number of completed events required before
	// classification is attempted.
	MinHistory int

	// MinSessionGap floors compressed inter-session gaps; the compressed
	// schedule never exceeds one session per day by default.
	MinSessionGap time.Duration

	// PullForwardSessions is how many upcoming sessions an ahead-of-pace
	// suggestion may pull earlier.
	PullForwardSessions int

	// MaxDurationGrowth caps struggling duration increases relative to
	// the original plan.
	MaxDurationGrowth float64

	// ReviewGap is the reinforcement pause inserted before a difficulty
	// tier increase for struggling students.
	ReviewGap time.Duration
}

// DefaultConfig returns the default adaptation policy.
func DefaultConfig() Config {
	return Config{
		OnPaceCompletionRate: 0.8,
		BehindCompletionRate: 0.6,
		GapFactor:            1.5,
		VarianceTolerance:    0.20,
		StrugglingVariance:   0.50,
		MinHistory:           2,
		MinSessionGap:        24 * time.Hour,
		PullForwardSessions:  2,
		MaxDurationGrowth:    2.0,
		ReviewGap:            24 * time.Hour,
	}
}
