package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akarpov/mentora/internal/llm"
)

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended explanation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.6,
	}
}

// Service answers student questions with LLM-generated explanations.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutoring service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type explanationOutput struct {
	Explanation   string   `json:"explanation"`
	Steps         []string `json:"steps"`
	CheckQuestion string   `json:"check_question"`
}

// Explain answers one student question about a topic. The prompt carries
// the student's mastery band so the answer is pitched at their level.
func (s *Service) Explain(ctx context.Context, input Input) (*Explanation, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, fmt.Errorf("empty question")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explanation failed: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse explanation response: %w", err)
	}
	if strings.TrimSpace(out.Explanation) == "" {
		return nil, fmt.Errorf("explanation response has no explanation text")
	}

	return &Explanation{
		Topic:         input.Topic.ID,
		Explanation:   out.Explanation,
		Steps:         out.Steps,
		CheckQuestion: out.CheckQuestion,
	}, nil
}
