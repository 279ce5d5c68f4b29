package store

import (
	"context"
	"fmt"

	"github.com/studyloop/studyloop/ent"
	"github.com/studyloop/studyloop/ent/adaptationevent"
	"github.com/studyloop/studyloop/ent/llmrequestevent"
)

// auditRepo implements AuditRepo using the ent client.
type auditRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *auditRepo) AppendAdaptationEvent(ctx context.Context, data AdaptationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return storageErr("next sequence", err)
	}

	_, err = r.client.AdaptationEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetClassification(data.Classification).
		SetUrgency(data.Urgency).
		SetMutationCount(data.MutationCount).
		SetRationale(data.Rationale).
		Save(ctx)
	if err != nil {
		return storageErr("save adaptation event", err)
	}
	return nil
}

func (r *auditRepo) QueryAdaptationEvents(ctx context.Context, studentID string, limit int) ([]AdaptationEventRecord, error) {
	q := r.client.AdaptationEvent.Query().
		Where(adaptationevent.StudentID(studentID)).
		Order(ent.Desc(adaptationevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, storageErr("query adaptation events", err)
	}

	records := make([]AdaptationEventRecord, len(rows))
	for i, row := range rows {
		records[i] = AdaptationEventRecord{
			Sequence:       row.Sequence,
			Timestamp:      row.Timestamp,
			StudentID:      row.StudentID,
			Classification: row.Classification,
			Urgency:        row.Urgency,
			MutationCount:  row.MutationCount,
			Rationale:      row.Rationale,
		}
	}
	return records, nil
}

func (r *auditRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *auditRepo) QueryLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, storageErr("query llm request events", err)
	}

	records := make([]LLMRequestEventRecord, len(rows))
	for i, row := range rows {
		records[i] = LLMRequestEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		}
	}
	return records, nil
}
