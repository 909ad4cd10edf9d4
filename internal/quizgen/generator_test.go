package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/llm"
)

func fractionsTopic() curriculum.Topic {
	return curriculum.Topic{
		ID:          "add-fractions",
		Name:        "Adding Fractions",
		Description: "Addition of fractions with like and unlike denominators",
		Subject:     curriculum.SubjectFractions,
		Grade:       4,
		Difficulty:  curriculum.DifficultyMedium,
		Importance:  7,
	}
}

// quizJSON builds a valid free-response quiz response with n questions.
func quizJSON(n int) json.RawMessage {
	qs := make([]map[string]any, n)
	for i := range qs {
		qs[i] = map[string]any{
			"prompt":      fmt.Sprintf("What is %d/8 + %d/8?", i+1, i+2),
			"choices":     []string{},
			"answer":      fmt.Sprintf("%d/8", 2*i+3),
			"explanation": "Add the numerators and keep the denominator.",
		}
	}
	b, _ := json.Marshal(map[string]any{"questions": qs})
	return b
}

func mcQuizJSON() json.RawMessage {
	return json.RawMessage(`{"questions":[{
		"prompt": "Which fraction is largest?",
		"choices": ["1/2", "1/3", "1/4", "1/8"],
		"answer": "1/2",
		"explanation": "1/2 is the largest because halves are bigger pieces than thirds, fourths, or eighths."
	}]}`)
}

func TestGenerate_Defaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(DefaultQuestionCount)})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), Request{Topic: fractionsTopic()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.ID == "" {
		t.Error("expected non-empty quiz ID")
	}
	if quiz.Topic != "add-fractions" {
		t.Errorf("expected topic add-fractions, got %q", quiz.Topic)
	}
	if quiz.Difficulty != curriculum.DifficultyEasy {
		t.Errorf("expected easy for empty history, got %q", quiz.Difficulty)
	}
	if len(quiz.Questions) != DefaultQuestionCount {
		t.Fatalf("expected %d questions, got %d", DefaultQuestionCount, len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.ID == "" {
			t.Errorf("question %d has empty ID", i+1)
		}
	}
}

func TestGenerate_DifficultyFromOutcomes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(DefaultQuestionCount)})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), Request{
		Topic:          fractionsTopic(),
		RecentOutcomes: []bool{true, true, true, true, true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.Difficulty != curriculum.DifficultyHard {
		t.Errorf("expected hard for a perfect streak, got %q", quiz.Difficulty)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "Difficulty: hard") {
		t.Errorf("expected prompt to carry the derived difficulty, got:\n%s", userMsg)
	}
}

func TestGenerate_ExplicitDifficultyWins(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(DefaultQuestionCount)})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), Request{
		Topic:          fractionsTopic(),
		Difficulty:     curriculum.DifficultyMedium,
		RecentOutcomes: []bool{true, true, true, true, true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.Difficulty != curriculum.DifficultyMedium {
		t.Errorf("expected the explicit difficulty, got %q", quiz.Difficulty)
	}
}

func TestGenerate_InvalidDifficulty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(DefaultQuestionCount)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{
		Topic:      fractionsTopic(),
		Difficulty: "brutal",
	})
	if err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM call, got %d", mock.CallCount())
	}
}

func TestGenerate_CountClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(MaxQuestionCount)})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), Request{
		Topic: fractionsTopic(),
		Count: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != MaxQuestionCount {
		t.Fatalf("expected %d questions, got %d", MaxQuestionCount, len(quiz.Questions))
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, fmt.Sprintf("Number of questions: %d", MaxQuestionCount)) {
		t.Errorf("expected prompt to ask for the clamped count, got:\n%s", userMsg)
	}
}

func TestGenerate_CountMismatchRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(1)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{
		Topic: fractionsTopic(),
		Count: 2,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Check != "count" {
		t.Errorf("expected count check, got %q", verr.Check)
	}
}

func TestGenerate_EmptyPromptRejected(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{
		"prompt": "   ",
		"choices": [],
		"answer": "5",
		"explanation": "2 + 3 = 5."
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Topic: fractionsTopic(), Count: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Check != "prompt" {
		t.Errorf("expected prompt check, got %q", verr.Check)
	}
}

func TestGenerate_MultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcQuizJSON()})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), Request{Topic: fractionsTopic(), Count: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := quiz.Questions[0]
	if len(q.Choices) != 4 {
		t.Fatalf("expected 4 choices, got %d", len(q.Choices))
	}
	if q.Answer != "1/2" {
		t.Errorf("expected answer 1/2, got %q", q.Answer)
	}
}

func TestGenerate_ChoiceConstraints(t *testing.T) {
	tests := []struct {
		name    string
		choices string
		answer  string
	}{
		{"three choices", `["1/2", "1/3", "1/4"]`, "1/2"},
		{"duplicate choices", `["1/2", "1/2", "1/4", "1/8"]`, "1/2"},
		{"answer missing", `["1/3", "1/4", "1/5", "1/8"]`, "1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := json.RawMessage(fmt.Sprintf(`{"questions":[{
				"prompt": "Which fraction is largest?",
				"choices": %s,
				"answer": %q,
				"explanation": "Compare the denominators."
			}]}`, tt.choices, tt.answer))
			mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
			gen := New(mock, DefaultConfig())

			_, err := gen.Generate(context.Background(), Request{Topic: fractionsTopic(), Count: 1})
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Check != "choices" {
				t.Errorf("expected choices check, got %q", verr.Check)
			}
		})
	}
}

func TestGenerate_PriorPromptsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(DefaultQuestionCount)})
	gen := New(mock, DefaultConfig())

	priors := []string{"What is 1/2 + 1/2?", "What is 1/4 + 2/4?", "What is 3/8 + 1/8?"}
	_, err := gen.Generate(context.Background(), Request{
		Topic:        fractionsTopic(),
		PriorPrompts: priors,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, p := range priors {
		if !strings.Contains(userMsg, p) {
			t.Errorf("expected user message to contain %q", p)
		}
	}
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(DefaultQuestionCount)})
	cfg := DefaultConfig()
	cfg.MaxTokens = 512
	cfg.Temperature = 0.5
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), Request{Topic: fractionsTopic()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.Calls[0].MaxTokens != 512 {
		t.Errorf("expected MaxTokens 512, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("expected Temperature 0.5, got %f", mock.Calls[0].Temperature)
	}
	if mock.Calls[0].Schema != QuizSchema {
		t.Error("expected the quiz schema on the request")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Topic: fractionsTopic()})
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "quiz generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected wrapped ErrProviderUnavailable, got %T", err)
	}
}
