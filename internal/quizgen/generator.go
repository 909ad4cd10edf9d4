package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/llm"
)

// Generator produces quizzes using an LLM provider.
type Generator interface {
	// Generate produces a quiz for the given request in a single LLM
	// call. The result has passed schema validation and the structural
	// checks before it is returned.
	Generate(ctx context.Context, req Request) (*Quiz, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorPrompts caps how many prior question texts go into the
	// prompt for deduplication.
	MaxPriorPrompts int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       2048,
		Temperature:     0.7,
		MaxPriorPrompts: 8,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Generate produces a quiz for the given request.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Quiz, error) {
	count := req.Count
	if count <= 0 {
		count = DefaultQuestionCount
	}
	if count > MaxQuestionCount {
		count = MaxQuestionCount
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = adaptive.OptimalDifficulty(req.RecentOutcomes)
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req.Topic, difficulty, count, req.PriorPrompts, g.config)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}

	if verr := validateQuiz(raw, count); verr != nil {
		return nil, verr
	}

	quiz := &Quiz{
		ID:         uuid.NewString(),
		Topic:      req.Topic.ID,
		Difficulty: difficulty,
		Questions:  make([]Question, len(raw.Questions)),
	}
	for i, q := range raw.Questions {
		quiz.Questions[i] = Question{
			ID:          uuid.NewString(),
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		}
	}
	return quiz, nil
}

// validateQuiz runs the structural checks the JSON schema cannot express.
func validateQuiz(raw quizOutput, want int) *ValidationError {
	if len(raw.Questions) != want {
		return &ValidationError{
			Check:   "count",
			Message: fmt.Sprintf("expected %d questions, got %d", want, len(raw.Questions)),
		}
	}

	for i, q := range raw.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return &ValidationError{
				Check:   "prompt",
				Message: fmt.Sprintf("question %d has an empty prompt", i+1),
			}
		}
		if len(q.Prompt) > 500 {
			return &ValidationError{
				Check:   "prompt",
				Message: fmt.Sprintf("question %d prompt exceeds 500 characters", i+1),
			}
		}
		if strings.TrimSpace(q.Answer) == "" {
			return &ValidationError{
				Check:   "answer",
				Message: fmt.Sprintf("question %d has an empty answer", i+1),
			}
		}
		if strings.TrimSpace(q.Explanation) == "" {
			return &ValidationError{
				Check:   "explanation",
				Message: fmt.Sprintf("question %d has an empty explanation", i+1),
			}
		}
		if len(q.Choices) > 0 {
			if verr := validateChoices(i, q); verr != nil {
				return verr
			}
		}
	}
	return nil
}

// validateChoices enforces the multiple-choice constraints: exactly 4
// distinct non-empty options, one of which matches the answer.
func validateChoices(i int, q questionOutput) *ValidationError {
	if len(q.Choices) != 4 {
		return &ValidationError{
			Check:   "choices",
			Message: fmt.Sprintf("question %d must have exactly 4 choices, got %d", i+1, len(q.Choices)),
		}
	}

	seen := make(map[string]bool, 4)
	answerKey := strings.ToLower(strings.TrimSpace(q.Answer))
	found := false
	for j, c := range q.Choices {
		c = strings.TrimSpace(c)
		if c == "" {
			return &ValidationError{
				Check:   "choices",
				Message: fmt.Sprintf("question %d choice %d is empty", i+1, j+1),
			}
		}
		key := strings.ToLower(c)
		if seen[key] {
			return &ValidationError{
				Check:   "choices",
				Message: fmt.Sprintf("question %d has duplicate choice %q", i+1, c),
			}
		}
		seen[key] = true
		if key == answerKey {
			found = true
		}
	}
	if !found {
		return &ValidationError{
			Check:   "choices",
			Message: fmt.Sprintf("question %d answer %q not found in choices", i+1, q.Answer),
		}
	}
	return nil
}
