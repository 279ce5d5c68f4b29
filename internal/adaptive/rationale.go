package adaptive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studyloop/studyloop/internal/llm"
	"github.com/studyloop/studyloop/internal/stats"
)

// Phraser rewrites a deterministic rationale into learner-facing prose.
// Implementations must be best-effort: any failure falls back to the
// template text.
type Phraser interface {
	Phrase(ctx context.Context, class PaceClass, rationale string) (string, error)
}

// phrase builds the template rationale for a suggestion and, when a
// phraser is configured, rewrites it. Failures keep the template.
func (s *Service) phrase(ctx context.Context, sug *Suggestion, st *stats.StudyStats) string {
	text := templateRationale(sug, st)
	if s.phraser == nil {
		return text
	}
	phrased, err := s.phraser.Phrase(ctx, sug.Classification, text)
	if err != nil || phrased == "" {
		return text
	}
	return phrased
}

func templateRationale(sug *Suggestion, st *stats.StudyStats) string {
	switch {
	case sug.InsufficientHistory:
		return "Not enough completed sessions yet to judge your pace. Keep going; the plan adapts after a couple of sessions."
	case sug.Classification == PaceFallingBehind && sug.ExtendsPastTarget:
		return fmt.Sprintf(
			"You've completed %d of %d due sessions. Even at one session per day the original finish date isn't reachable, so the remaining %d sessions were re-spaced and the plan end moved out.",
			completedOfDue(st), st.DueCount, len(sug.Mutations))
	case sug.Classification == PaceFallingBehind:
		return fmt.Sprintf(
			"You've completed %d of %d due sessions, so the remaining schedule was compressed to protect your target finish date.",
			completedOfDue(st), st.DueCount)
	case sug.Classification == PaceAheadOfPace:
		return fmt.Sprintf(
			"Sessions are running about %.0f%% shorter than planned with a %.0f%% completion rate. The next %d sessions can move up.",
			-st.AvgVariance*100, st.CompletionRate*100, len(sug.Mutations))
	case sug.Classification == PaceStruggling:
		return fmt.Sprintf(
			"Recent sessions ran about %.0f%% over their planned time. Upcoming sessions were lengthened to match, with a breather before harder material.",
			st.RecentVariance*100)
	default:
		return fmt.Sprintf(
			"On pace: %.0f%% completion with session times close to plan. No changes needed.",
			st.CompletionRate*100)
	}
}

func completedOfDue(st *stats.StudyStats) int {
	return int(st.CompletionRate * float64(st.DueCount))
}

// LLMPhraser rewrites rationales with an LLM provider. Output is plain
// prose; length is capped by the provider's MaxTokens.
type LLMPhraser struct {
	Provider llm.Provider
	Timeout  time.Duration
}

const phraserSystem = "You rewrite scheduling notifications for an adult learner. " +
	"Keep every number and fact intact, stay under two sentences, and be encouraging without being saccharine."

func (p *LLMPhraser) Phrase(ctx context.Context, class PaceClass, rationale string) (string, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "rationale")

	resp, err := p.Provider.Generate(ctx, llm.Request{
		System: phraserSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Pace: %s. Draft: %s", class, rationale)},
		},
		MaxTokens: 128,
	})
	if err != nil {
		return "", err
	}

	// Raw-text responses arrive as a JSON string.
	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	return text, nil
}
