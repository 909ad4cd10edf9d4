package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/llm"
	"github.com/akarpov/mentora/internal/quizgen"
	"github.com/akarpov/mentora/internal/store"
)

// stubGenerator records the request and returns a canned quiz.
type stubGenerator struct {
	got  quizgen.Request
	quiz *quizgen.Quiz
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, req quizgen.Request) (*quizgen.Quiz, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.quiz, nil
}

func countingQuiz() *quizgen.Quiz {
	return &quizgen.Quiz{
		ID:         "quiz-1",
		Topic:      "counting",
		Difficulty: curriculum.DifficultyEasy,
		Questions: []quizgen.Question{
			{ID: "q1", Prompt: "What is the value of the 7 in 374?", Answer: "70", Explanation: "The 7 is in the tens place."},
			{ID: "q2", Prompt: "Which is larger: 412 or 421?", Choices: []string{"412", "421", "They are equal", "Cannot tell"}, Answer: "421", Explanation: "Compare the tens digits."},
		},
	}
}

func TestGenerateQuiz(t *testing.T) {
	f := newFixture(t)
	gen := &stubGenerator{quiz: countingQuiz()}
	f.server.quizzes = gen

	f.addAttempt("counting", 4, 5, 10)

	w := f.post(f.studentPath("/quiz"), map[string]any{"topic": "counting", "count": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var quiz quizgen.Quiz
	decodeInto(t, w, &quiz)
	if quiz.ID != "quiz-1" || len(quiz.Questions) != 2 {
		t.Errorf("unexpected quiz %+v", quiz)
	}

	if gen.got.Topic.ID != "counting" {
		t.Errorf("generator got topic %q", gen.got.Topic.ID)
	}
	if gen.got.Count != 2 {
		t.Errorf("generator got count %d", gen.got.Count)
	}
	// The 4/5 batch arrives flattened: four passes then one miss.
	want := []bool{true, true, true, true, false}
	if len(gen.got.RecentOutcomes) != len(want) {
		t.Fatalf("outcomes = %v, want %v", gen.got.RecentOutcomes, want)
	}
	for i, v := range want {
		if gen.got.RecentOutcomes[i] != v {
			t.Fatalf("outcomes = %v, want %v", gen.got.RecentOutcomes, want)
		}
	}
}

func TestGenerateQuiz_PriorPromptsFromAssessments(t *testing.T) {
	f := newFixture(t)
	gen := &stubGenerator{quiz: countingQuiz()}
	f.server.quizzes = gen

	err := f.assessments.Append(context.Background(), store.AssessmentEventData{
		StudentID:      f.student.PublicID,
		AssessmentID:   "as-1",
		TopicIDs:       []string{"counting", "addition"},
		Score:          2,
		TotalQuestions: 3,
		Results: []adaptive.QuestionResult{
			{Topic: "counting", IsCorrect: true, Question: "Round 47 to the nearest ten.", StudentAnswer: "50", CorrectAnswer: "50"},
			{Topic: "addition", IsCorrect: true, Question: "12 + 9?", StudentAnswer: "21", CorrectAnswer: "21"},
			{Topic: "counting", IsCorrect: false, Question: "What digit is in the hundreds place of 512?", StudentAnswer: "1", CorrectAnswer: "5"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	w := f.post(f.studentPath("/quiz"), map[string]any{"topic": "counting"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	// Only this topic's past questions are handed to the generator.
	if len(gen.got.PriorPrompts) != 2 {
		t.Fatalf("prior prompts = %v, want the two counting questions", gen.got.PriorPrompts)
	}
	for _, p := range gen.got.PriorPrompts {
		if p == "12 + 9?" {
			t.Errorf("prior prompts leaked another topic's question: %v", gen.got.PriorPrompts)
		}
	}
}

func TestGenerateQuiz_NoProvider(t *testing.T) {
	f := newFixture(t)

	w := f.post(f.studentPath("/quiz"), map[string]any{"topic": "counting"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if code := errorCode(t, w); code != "llm_failure" {
		t.Errorf("error code = %q", code)
	}
}

func TestGenerateQuiz_ProviderError(t *testing.T) {
	f := newFixture(t)
	f.server.quizzes = &stubGenerator{err: &llm.ErrProviderUnavailable{}}

	w := f.post(f.studentPath("/quiz"), map[string]any{"topic": "counting"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var envelope errorEnvelope
	decodeInto(t, w, &envelope)
	if envelope.Error.Code != "llm_failure" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}

func TestGenerateQuiz_Validation(t *testing.T) {
	f := newFixture(t)
	f.server.quizzes = &stubGenerator{quiz: countingQuiz()}

	w := f.post(f.studentPath("/quiz"), map[string]any{"topic": "knitting"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown topic: status = %d, want 404", w.Code)
	}

	w = f.post(f.studentPath("/quiz"), map[string]any{"topic": "counting", "difficulty": "impossible"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad difficulty: status = %d, want 422", w.Code)
	}
}

func TestSubmitAssessment_Items(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{
		"minutes": 9,
		"items": []map[string]any{
			{"topic": "counting", "question": "What is the value of the 3 in 234?", "correct_answer": "30", "student_answer": "30"},
			{"topic": "counting", "question": "Which is larger: 89 or 98?", "correct_answer": "98", "student_answer": "89"},
			{"topic": "addition", "question": "15 + 27?", "correct_answer": "42", "student_answer": "42"},
		},
	}
	w := f.post(f.studentPath("/assessments"), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Score          int                       `json:"score"`
		TotalQuestions int                       `json:"total_questions"`
		Results        []adaptive.QuestionResult `json:"results"`
		Gaps           gapsResponse              `json:"gap_report"`
	}
	decodeInto(t, w, &resp)
	if resp.Score != 2 || resp.TotalQuestions != 3 {
		t.Errorf("score = %d/%d, want 2/3", resp.Score, resp.TotalQuestions)
	}
	if len(resp.Results) != 3 || resp.Results[1].IsCorrect {
		t.Errorf("unexpected results %+v", resp.Results)
	}

	// Grading went through: counting scored 1/2, which is a gap.
	if resp.Gaps.AssessmentsAnalyzed != 1 {
		t.Errorf("gap report covers %d assessments, want 1", resp.Gaps.AssessmentsAnalyzed)
	}
	foundCounting := false
	for _, g := range resp.Gaps.Gaps {
		if g.Topic == "counting" {
			foundCounting = true
		}
		if g.Topic == "addition" {
			t.Errorf("addition (100%%) reported as a gap: %+v", g)
		}
	}
	if !foundCounting {
		t.Errorf("gap report %+v missing counting", resp.Gaps.Gaps)
	}

	// The assessment also moved mastery via per-topic attempt events.
	attempts, err := f.attempts.ListByStudent(context.Background(), f.student.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if len(attempts) != 2 {
		t.Fatalf("stored %d attempt events, want one per topic", len(attempts))
	}
	for _, a := range attempts {
		if a.Source != store.SourceAssessment {
			t.Errorf("attempt source = %q, want assessment", a.Source)
		}
	}
}

func TestSubmitAssessment_QuizEcho(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{
		"quiz":    countingQuiz(),
		"answers": []string{"70", "412"},
		"minutes": 5,
	}
	w := f.post(f.studentPath("/assessments"), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Score          int `json:"score"`
		TotalQuestions int `json:"total_questions"`
	}
	decodeInto(t, w, &resp)
	if resp.Score != 1 || resp.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 1/2", resp.Score, resp.TotalQuestions)
	}
}

func TestSubmitAssessment_AnswerCountMismatch(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{
		"quiz":    countingQuiz(),
		"answers": []string{"70"},
	}
	w := f.post(f.studentPath("/assessments"), body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestSubmitAssessment_Empty(t *testing.T) {
	f := newFixture(t)

	w := f.post(f.studentPath("/assessments"), map[string]any{"minutes": 5})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	if len(f.assessments.records) != 0 {
		t.Errorf("rejected submission stored %d assessments", len(f.assessments.records))
	}
}

func TestSubmitAssessment_UnknownItemTopic(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{
		"items": []map[string]any{
			{"topic": "knitting", "question": "Cast on?", "correct_answer": "yes", "student_answer": "yes"},
		},
	}
	w := f.post(f.studentPath("/assessments"), body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
