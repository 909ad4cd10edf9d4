package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"explanation": "To add fractions with the same denominator, add the numerators and keep the denominator.",
		"steps": [
			"Start with 1/4 + 2/4.",
			"Add the numerators: 1 + 2 = 3.",
			"Keep the denominator: the answer is 3/4."
		],
		"check_question": "What is 2/5 + 1/5?"
	}`)
}

func fractionsTopic() curriculum.Topic {
	return curriculum.Topic{
		ID:          "add-fractions",
		Name:        "Adding Fractions",
		Description: "Adding fractions with like and unlike denominators",
		Subject:     curriculum.SubjectFractions,
		Grade:       4,
	}
}

func TestService_Explain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Explain(context.Background(), Input{
		Topic:    fractionsTopic(),
		Question: "Why do I keep the denominator the same?",
		Mastery:  adaptive.MasteryResult{Status: adaptive.StatusDeveloping, TotalAttempts: 6, RecentAccuracy: 0.7},
	})
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	if got.Topic != "add-fractions" {
		t.Errorf("topic = %q, want add-fractions", got.Topic)
	}
	if got.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
	if len(got.Steps) != 3 {
		t.Errorf("steps = %d, want 3", len(got.Steps))
	}
	if got.CheckQuestion != "What is 2/5 + 1/5?" {
		t.Errorf("check question = %q", got.CheckQuestion)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.Schema == nil || call.Schema.Name != "tutor-explanation" {
		t.Error("expected the tutor-explanation schema on the request")
	}
	if call.MaxTokens != 1024 {
		t.Errorf("max tokens = %d, want 1024", call.MaxTokens)
	}
}

func TestService_RegisterFollowsMastery(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Content: validExplanationJSON()},
	)
	svc := NewService(mock, DefaultConfig())

	base := Input{Topic: fractionsTopic(), Question: "How do I add fractions?"}

	struggling := base
	struggling.Mastery = adaptive.MasteryResult{Status: adaptive.StatusStruggling, TotalAttempts: 10, RecentAccuracy: 0.3}
	if _, err := svc.Explain(context.Background(), struggling); err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	mastered := base
	mastered.Mastery = adaptive.MasteryResult{Status: adaptive.StatusMastered, TotalAttempts: 30, RecentAccuracy: 0.95}
	if _, err := svc.Explain(context.Background(), mastered); err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	first := mock.Calls[0].Messages[0].Content
	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(first, "keeps getting it wrong") {
		t.Errorf("struggling prompt missing slow-down guidance:\n%s", first)
	}
	if !strings.Contains(second, "mastered this topic") {
		t.Errorf("mastered prompt missing brevity guidance:\n%s", second)
	}
	if first == second {
		t.Error("expected different prompts for different mastery bands")
	}
}

func TestService_EmptyQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Explain(context.Background(), Input{Topic: fractionsTopic(), Question: "   "}); err == nil {
		t.Fatal("expected error for empty question")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Explain(context.Background(), Input{Topic: fractionsTopic(), Question: "Why?"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "explanation failed") {
		t.Errorf("error = %v", err)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Explain(context.Background(), Input{Topic: fractionsTopic(), Question: "Why?"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestService_EmptyExplanationRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"  ","steps":[],"check_question":""}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Explain(context.Background(), Input{Topic: fractionsTopic(), Question: "Why?"}); err == nil {
		t.Fatal("expected error for blank explanation")
	}
}
