package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/akarpov/mentora/internal/llm"
	"github.com/akarpov/mentora/internal/quizgen"
)

// JudgeConfig holds configuration for the LLM judge.
type JudgeConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultJudgeConfig returns sensible defaults. Temperature is kept low:
// grading should be as deterministic as the model allows.
func DefaultJudgeConfig() JudgeConfig {
	return JudgeConfig{
		MaxTokens:   256,
		Temperature: 0.1,
	}
}

// Judge settles free-text answers that deterministic normalization could
// not decide.
type Judge struct {
	provider llm.Provider
	cfg      JudgeConfig
}

// NewJudge creates an LLM-based answer judge.
func NewJudge(provider llm.Provider, cfg JudgeConfig) *Judge {
	return &Judge{provider: provider, cfg: cfg}
}

const judgeSystemPrompt = `You are grading a student's answer to a math question. Decide whether the student's answer is correct.

Instructions:
- Judge mathematical meaning, not formatting. "three quarters", "3/4", "0.75", and "75%" are all the same value.
- Accept correct answers expressed in words, with units, or as sentences, as long as the value or concept matches.
- Reject answers that are wrong, incomplete, or name a different quantity, however fluently written.
- Keep reasoning to one sentence.`

var judgeUserTemplate = template.Must(template.New("judgment").Parse(`Question: {{.Prompt}}
Correct answer: {{.Answer}}
Student's answer: {{.StudentAnswer}}`))

// judgmentOutput is the raw LLM response.
type judgmentOutput struct {
	Correct   bool   `json:"correct"`
	Reasoning string `json:"reasoning"`
}

// Judge asks the LLM whether the student's answer matches the canonical
// one. Used only when Check returns VerdictInconclusive.
func (j *Judge) Judge(ctx context.Context, q quizgen.Question, studentAnswer string) (bool, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	var buf bytes.Buffer
	err := judgeUserTemplate.Execute(&buf, struct {
		Prompt, Answer, StudentAnswer string
	}{q.Prompt, q.Answer, studentAnswer})
	if err != nil {
		return false, fmt.Errorf("build judgment prompt: %w", err)
	}

	resp, err := j.provider.Generate(ctx, llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      JudgmentSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	})
	if err != nil {
		return false, fmt.Errorf("LLM judgment failed: %w", err)
	}

	var raw judgmentOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return false, fmt.Errorf("failed to parse judgment response: %w", err)
	}
	return raw.Correct, nil
}
