package store

import (
	"context"
	"fmt"

	"github.com/akarpov/mentora/ent"
)

// llmEventRepo implements LLMEventRepo backed by ent and the global
// sequence counter.
type llmEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *llmEventRepo) Append(ctx context.Context, data LLMRequestEventData) error {
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
		SetCostUsd(data.CostUSD).
		SetDurationMs(data.DurationMs).
		SetSuccess(data.Success).
		SetErrorKind(data.ErrorKind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}
