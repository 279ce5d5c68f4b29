package adaptive

import (
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/stats"
)

func TestRunClassifiers(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		st   stats.StudyStats
		want PaceClass
	}{
		{
			name: "healthy student stays on pace",
			st:   stats.StudyStats{CompletionRate: 0.9, AvgVariance: 0.05, RecentVariance: 0.05},
			want: PaceOnPace,
		},
		{
			name: "middling completion is still on pace",
			st:   stats.StudyStats{CompletionRate: 0.7, AvgVariance: 0},
			want: PaceOnPace,
		},
		{
			name: "low completion rate falls behind",
			st:   stats.StudyStats{CompletionRate: 0.4},
			want: PaceFallingBehind,
		},
		{
			name: "zero of five completed falls behind",
			st:   stats.StudyStats{CompletionRate: 0},
			want: PaceFallingBehind,
		},
		{
			name: "stalled gap falls behind despite good rate",
			st: stats.StudyStats{
				CompletionRate:        0.9,
				MedianInterval:        48 * time.Hour,
				GapSinceLastCompleted: 8 * 24 * time.Hour,
			},
			want: PaceFallingBehind,
		},
		{
			name: "gap under threshold does not fire",
			st: stats.StudyStats{
				CompletionRate:        0.9,
				MedianInterval:        48 * time.Hour,
				GapSinceLastCompleted: 60 * time.Hour,
			},
			want: PaceOnPace,
		},
		{
			name: "fast sessions with high completion run ahead",
			st:   stats.StudyStats{CompletionRate: 0.9, AvgVariance: -0.3},
			want: PaceAheadOfPace,
		},
		{
			name: "fast sessions with poor completion do not run ahead",
			st:   stats.StudyStats{CompletionRate: 0.5, AvgVariance: -0.3},
			want: PaceFallingBehind,
		},
		{
			name: "heavy overruns struggle regardless of completion",
			st:   stats.StudyStats{CompletionRate: 0.95, RecentVariance: 0.6},
			want: PaceStruggling,
		},
		{
			name: "struggling outranks falling behind",
			st:   stats.StudyStats{CompletionRate: 0.3, RecentVariance: 0.7},
			want: PaceStruggling,
		},
		{
			name: "overrun at the threshold does not struggle",
			st:   stats.StudyStats{CompletionRate: 0.9, RecentVariance: 0.5},
			want: PaceOnPace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := RunClassifiers(DefaultClassifiers(), &tt.st, cfg)
			if got != tt.want {
				t.Errorf("classification = %s, want %s", got, tt.want)
			}
		})
	}
}
