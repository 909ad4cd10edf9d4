package grading

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/akarpov/mentora/internal/llm"
	"github.com/akarpov/mentora/internal/quizgen"
)

func TestJudge_AcceptsEquivalentAnswer(t *testing.T) {
	resp := json.RawMessage(`{"correct":true,"reasoning":"A dozen is 12."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	j := NewJudge(mock, DefaultJudgeConfig())

	q := quizgen.Question{Prompt: "How many eggs are in a dozen?", Answer: "12"}
	ok, err := j.Judge(context.Background(), q, "a dozen")
	if err != nil {
		t.Fatalf("Judge failed: %v", err)
	}
	if !ok {
		t.Error("expected the answer to be accepted")
	}

	userMsg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"How many eggs are in a dozen?", "Correct answer: 12", "Student's answer: a dozen"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("expected prompt to contain %q, got:\n%s", want, userMsg)
		}
	}
}

func TestJudge_RejectsWrongAnswer(t *testing.T) {
	resp := json.RawMessage(`{"correct":false,"reasoning":"Half a dozen is 6, not 12."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	j := NewJudge(mock, DefaultJudgeConfig())

	q := quizgen.Question{Prompt: "How many eggs are in a dozen?", Answer: "12"}
	ok, err := j.Judge(context.Background(), q, "six")
	if err != nil {
		t.Fatalf("Judge failed: %v", err)
	}
	if ok {
		t.Error("expected the answer to be rejected")
	}
}

func TestJudge_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	j := NewJudge(mock, DefaultJudgeConfig())

	q := quizgen.Question{Prompt: "test", Answer: "1"}
	_, err := j.Judge(context.Background(), q, "one")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "LLM judgment failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestJudge_UsesSchemaAndConfig(t *testing.T) {
	resp := json.RawMessage(`{"correct":true,"reasoning":"ok"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	cfg := JudgeConfig{MaxTokens: 128, Temperature: 0.2}
	j := NewJudge(mock, cfg)

	q := quizgen.Question{Prompt: "test", Answer: "1"}
	if _, err := j.Judge(context.Background(), q, "one"); err != nil {
		t.Fatalf("Judge failed: %v", err)
	}

	call := mock.Calls[0]
	if call.Schema != JudgmentSchema {
		t.Error("expected the judgment schema on the request")
	}
	if call.MaxTokens != 128 {
		t.Errorf("expected MaxTokens 128, got %d", call.MaxTokens)
	}
	if call.Temperature != 0.2 {
		t.Errorf("expected Temperature 0.2, got %f", call.Temperature)
	}
}
