package adaptive

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/studyloop/studyloop/internal/stats"
)

type stubPhraser struct {
	text string
	err  error
}

func (p *stubPhraser) Phrase(_ context.Context, _ PaceClass, _ string) (string, error) {
	return p.text, p.err
}

func TestTemplateRationale(t *testing.T) {
	st := &stats.StudyStats{
		CompletionRate: 0.4,
		DueCount:       5,
		AvgVariance:    -0.3,
		RecentVariance: 0.6,
	}

	tests := []struct {
		name string
		sug  Suggestion
		want string
	}{
		{"insufficient history", Suggestion{InsufficientHistory: true}, "Not enough completed sessions"},
		{"falling behind", Suggestion{Classification: PaceFallingBehind}, "completed 2 of 5 due sessions"},
		{"falling behind extended", Suggestion{Classification: PaceFallingBehind, ExtendsPastTarget: true}, "finish date isn't reachable"},
		{"ahead of pace", Suggestion{Classification: PaceAheadOfPace}, "30% shorter"},
		{"struggling", Suggestion{Classification: PaceStruggling}, "60% over"},
		{"on pace", Suggestion{Classification: PaceOnPace}, "No changes needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := templateRationale(&tt.sug, st)
			if !strings.Contains(got, tt.want) {
				t.Errorf("rationale %q does not contain %q", got, tt.want)
			}
		})
	}
}

func TestPhrase_FallsBackOnError(t *testing.T) {
	st := &stats.StudyStats{CompletionRate: 1}
	sug := &Suggestion{Classification: PaceOnPace}

	tests := []struct {
		name    string
		phraser Phraser
		want    string
	}{
		{"nil phraser", nil, "No changes needed"},
		{"failing phraser", &stubPhraser{err: errors.New("api down")}, "No changes needed"},
		{"empty response", &stubPhraser{text: ""}, "No changes needed"},
		{"working phraser", &stubPhraser{text: "You're doing great."}, "You're doing great."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{phraser: tt.phraser}
			got := svc.phrase(context.Background(), sug, st)
			if !strings.Contains(got, tt.want) {
				t.Errorf("phrase = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
