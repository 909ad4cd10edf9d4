package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/akarpov/mentora/internal/store"
)

// capturingEventRepo implements store.LLMEventRepo and records every
// appended event.
type capturingEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (c *capturingEventRepo) Append(_ context.Context, data store.LLMRequestEventData) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, data)
	return nil
}

// staticProvider returns a fixed response or error, with a controllable
// name and model.
type staticProvider struct {
	name  string
	model string
	resp  *Response
	err   error
}

func (s *staticProvider) Generate(context.Context, Request) (*Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *staticProvider) Name() string    { return s.name }
func (s *staticProvider) ModelID() string { return s.model }

func TestLogging_RecordsSuccessEvent(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 1000, OutputTokens: 500, TotalTokens: 1500},
		},
	)
	repo := &capturingEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), PurposeQuizGen)
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "mock" {
		t.Errorf("provider = %q, want %q", ev.Provider, "mock")
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q, want %q", ev.Model, "mock")
	}
	if ev.Purpose != "quiz-gen" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "quiz-gen")
	}
	if !ev.Success {
		t.Error("expected success")
	}
	if ev.ErrorKind != "" {
		t.Errorf("error kind = %q, want empty", ev.ErrorKind)
	}
	if ev.InputTokens != 1000 || ev.OutputTokens != 500 {
		t.Errorf("tokens = %d/%d, want 1000/500", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailureEvent(t *testing.T) {
	inner := &staticProvider{
		name:  "anthropic",
		model: "claude-haiku-4-5-20251001",
		err:   &ErrRateLimit{Err: errors.New("429")},
	}
	repo := &capturingEventRepo{}
	p := WithLogging(inner, repo)

	ctx := WithPurpose(context.Background(), PurposeGrading)
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure")
	}
	if ev.ErrorKind != "rate-limit" {
		t.Errorf("error kind = %q, want %q", ev.ErrorKind, "rate-limit")
	}
	if ev.Provider != "anthropic" {
		t.Errorf("provider = %q, want %q", ev.Provider, "anthropic")
	}
	if ev.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("model = %q, want %q", ev.Model, "claude-haiku-4-5-20251001")
	}
	if ev.Purpose != "grading" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "grading")
	}
}

func TestLogging_ComputesCostForPricedModel(t *testing.T) {
	inner := &staticProvider{
		name:  "openai",
		model: "gpt-4o-mini",
		resp: &Response{
			Content:    json.RawMessage(`{}`),
			Model:      "gpt-4o-mini",
			StopReason: "end",
			Usage:      Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000},
		},
	}
	repo := &capturingEventRepo{}
	p := WithLogging(inner, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// gpt-4o-mini: $0.15/MTok in, $0.60/MTok out.
	ev := repo.events[0]
	if ev.CostUSD < 0.749 || ev.CostUSD > 0.751 {
		t.Errorf("cost = %f, want 0.75", ev.CostUSD)
	}
}

func TestLogging_UnknownModelCostsZero(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 100, OutputTokens: 100}},
	)
	repo := &capturingEventRepo{}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.events[0].CostUSD; got != 0 {
		t.Errorf("cost = %f, want 0", got)
	}
}

func TestLogging_NilRepoStillWorks(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithLogging(mock, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestLogging_AppendFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	repo := &capturingEventRepo{err: errors.New("disk full")}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogging_IdentityDelegates(t *testing.T) {
	inner := &staticProvider{name: "gemini", model: "gemini-2.0-flash"}
	p := WithLogging(inner, nil)

	if p.Name() != "gemini" {
		t.Fatalf("name = %q, want %q", p.Name(), "gemini")
	}
	if p.ModelID() != "gemini-2.0-flash" {
		t.Fatalf("model = %q, want %q", p.ModelID(), "gemini-2.0-flash")
	}
}
