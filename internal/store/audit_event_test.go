package store

import (
	"context"
	"testing"
)

func TestAdaptationEventLog(t *testing.T) {
	repo := newTestStore(t).AuditRepo()
	ctx := context.Background()

	records := []AdaptationEventData{
		{StudentID: "s1", Classification: "falling-behind", Urgency: "urgent", MutationCount: 5, Rationale: "backlog"},
		{StudentID: "s1", Classification: "on-pace", Urgency: "info", MutationCount: 0, Rationale: "steady"},
		{StudentID: "s2", Classification: "struggling", Urgency: "advisory", MutationCount: 2, Rationale: "overruns"},
	}
	for _, r := range records {
		if err := repo.AppendAdaptationEvent(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryAdaptationEvents(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Newest first.
	if got[0].Classification != "on-pace" || got[1].Classification != "falling-behind" {
		t.Errorf("order = %s, %s", got[0].Classification, got[1].Classification)
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("sequence not monotonic: %d then %d", got[0].Sequence, got[1].Sequence)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	limited, err := repo.QueryAdaptationEvents(ctx, "s1", 1)
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Classification != "on-pace" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestLLMRequestLog(t *testing.T) {
	repo := newTestStore(t).AuditRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "rationale",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    800,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "rationale",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.QueryLLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Success || got[0].ErrorMessage != "rate limited" {
		t.Errorf("newest record = %+v", got[0])
	}
	if got[1].InputTokens != 120 || got[1].LatencyMs != 800 {
		t.Errorf("oldest record = %+v", got[1])
	}
}
