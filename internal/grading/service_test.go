package grading

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/akarpov/mentora/internal/llm"
	"github.com/akarpov/mentora/internal/quizgen"
	"github.com/akarpov/mentora/internal/store"
)

type fakeAttemptRepo struct {
	appended []store.AttemptEventData
	err      error
}

func (f *fakeAttemptRepo) Append(_ context.Context, data store.AttemptEventData) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeAttemptRepo) ListByStudent(context.Context, string) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) ListByStudentTopic(context.Context, string, string) ([]store.AttemptRecord, error) {
	return nil, nil
}

type fakeAssessmentRepo struct {
	appended []store.AssessmentEventData
	err      error
}

func (f *fakeAssessmentRepo) Append(_ context.Context, data store.AssessmentEventData) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeAssessmentRepo) ListByStudent(context.Context, string, int) ([]store.AssessmentRecord, error) {
	return nil, nil
}

func multiTopicItems() []Item {
	return []Item{
		{
			Topic:         "add-fractions",
			Question:      "What is 1/4 + 1/4?",
			CorrectAnswer: "1/2",
			StudentAnswer: "2/4",
		},
		{
			Topic:         "add-fractions",
			Question:      "What is 1/3 + 1/3?",
			CorrectAnswer: "2/3",
			StudentAnswer: "1/3",
		},
		{
			Topic:         "add-fractions",
			Question:      "What do you call the top number of a fraction?",
			CorrectAnswer: "numerator",
			StudentAnswer: "the numerator",
		},
		{
			Topic:         "decimals-intro",
			Question:      "Write 1/2 as a decimal.",
			CorrectAnswer: "0.5",
			StudentAnswer: ".5",
		},
	}
}

func TestService_GradeMultiTopic(t *testing.T) {
	judgeResp := json.RawMessage(`{"correct":true,"reasoning":"The numerator is the top number."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: judgeResp})
	attempts := &fakeAttemptRepo{}
	assessments := &fakeAssessmentRepo{}
	svc := NewService(NewJudge(mock, DefaultJudgeConfig()), attempts, assessments)

	result, err := svc.Grade(context.Background(), "stu-1", multiTopicItems(), 10)
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}

	if result.Score != 3 {
		t.Errorf("score = %d, want 3", result.Score)
	}
	if result.TotalQuestions != 4 {
		t.Errorf("total = %d, want 4", result.TotalQuestions)
	}
	if !result.Results[2].IsCorrect {
		t.Error("expected the judged answer to be correct")
	}
	if result.Results[1].IsCorrect {
		t.Error("expected 1/3 to be incorrect")
	}

	// Only the inconclusive item goes to the judge.
	if mock.CallCount() != 1 {
		t.Errorf("judge calls = %d, want 1", mock.CallCount())
	}

	if len(assessments.appended) != 1 {
		t.Fatalf("assessment events = %d, want 1", len(assessments.appended))
	}
	ev := assessments.appended[0]
	if ev.StudentID != "stu-1" {
		t.Errorf("student = %q, want stu-1", ev.StudentID)
	}
	if ev.AssessmentID == "" {
		t.Error("expected non-empty assessment id")
	}
	if len(ev.TopicIDs) != 2 || ev.TopicIDs[0] != "add-fractions" || ev.TopicIDs[1] != "decimals-intro" {
		t.Errorf("topic ids = %v", ev.TopicIDs)
	}
	if ev.Score != 3 || ev.TotalQuestions != 4 {
		t.Errorf("event score = %d/%d, want 3/4", ev.Score, ev.TotalQuestions)
	}
	if len(ev.Results) != 4 {
		t.Errorf("event results = %d, want 4", len(ev.Results))
	}

	// One attempt event per topic, in first-appearance order, with the
	// minutes split evenly.
	if len(attempts.appended) != 2 {
		t.Fatalf("attempt events = %d, want 2", len(attempts.appended))
	}
	first := attempts.appended[0]
	if first.TopicID != "add-fractions" || first.Correct != 2 || first.Total != 3 {
		t.Errorf("first attempt = %+v", first)
	}
	if first.Minutes != 5 {
		t.Errorf("first minutes = %d, want 5", first.Minutes)
	}
	if first.Source != store.SourceAssessment {
		t.Errorf("source = %q, want %q", first.Source, store.SourceAssessment)
	}
	second := attempts.appended[1]
	if second.TopicID != "decimals-intro" || second.Correct != 1 || second.Total != 1 {
		t.Errorf("second attempt = %+v", second)
	}
	if second.Minutes != 5 {
		t.Errorf("second minutes = %d, want 5", second.Minutes)
	}
}

func TestService_MinutesSplitRemainder(t *testing.T) {
	items := []Item{
		{Topic: "a", Question: "q1", CorrectAnswer: "1", StudentAnswer: "1"},
		{Topic: "b", Question: "q2", CorrectAnswer: "2", StudentAnswer: "2"},
		{Topic: "c", Question: "q3", CorrectAnswer: "3", StudentAnswer: "3"},
	}
	attempts := &fakeAttemptRepo{}
	svc := NewService(nil, attempts, &fakeAssessmentRepo{})

	if _, err := svc.Grade(context.Background(), "stu-1", items, 10); err != nil {
		t.Fatalf("Grade failed: %v", err)
	}

	got := []int{attempts.appended[0].Minutes, attempts.appended[1].Minutes, attempts.appended[2].Minutes}
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("minutes = %v, want %v", got, want)
			break
		}
	}
}

func TestService_NilJudge(t *testing.T) {
	items := []Item{
		{Topic: "geometry-angles", Question: "Name this angle.", CorrectAnswer: "obtuse", StudentAnswer: "an obtuse angle"},
	}
	svc := NewService(nil, &fakeAttemptRepo{}, &fakeAssessmentRepo{})

	result, err := svc.Grade(context.Background(), "stu-1", items, 0)
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Results[0].IsCorrect {
		t.Error("expected inconclusive answer to grade incorrect without a judge")
	}
}

func TestService_EmptyItems(t *testing.T) {
	svc := NewService(nil, &fakeAttemptRepo{}, &fakeAssessmentRepo{})
	if _, err := svc.Grade(context.Background(), "stu-1", nil, 0); err == nil {
		t.Fatal("expected error for empty submission")
	}
}

func TestService_JudgeErrorStopsGrading(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	attempts := &fakeAttemptRepo{}
	assessments := &fakeAssessmentRepo{}
	svc := NewService(NewJudge(mock, DefaultJudgeConfig()), attempts, assessments)

	items := []Item{
		{Topic: "geometry-angles", Question: "Name this angle.", CorrectAnswer: "obtuse", StudentAnswer: "an obtuse angle"},
	}
	if _, err := svc.Grade(context.Background(), "stu-1", items, 5); err == nil {
		t.Fatal("expected error")
	}

	// Nothing is recorded for a failed grading run.
	if len(assessments.appended) != 0 {
		t.Errorf("assessment events = %d, want 0", len(assessments.appended))
	}
	if len(attempts.appended) != 0 {
		t.Errorf("attempt events = %d, want 0", len(attempts.appended))
	}
}

func TestItemsFromQuiz(t *testing.T) {
	quiz := &quizgen.Quiz{
		ID:    "quiz-1",
		Topic: "add-fractions",
		Questions: []quizgen.Question{
			{ID: "q1", Prompt: "What is 1/4 + 1/4?", Answer: "1/2"},
			{ID: "q2", Prompt: "Which is larger?", Answer: "3/4", Choices: []string{"3/4", "1/4", "1/2", "2/3"}},
		},
	}

	items, err := ItemsFromQuiz(quiz, []string{"1/2", "3/4"})
	if err != nil {
		t.Fatalf("ItemsFromQuiz failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Topic != "add-fractions" || items[1].Topic != "add-fractions" {
		t.Error("expected quiz topic on every item")
	}
	if items[0].StudentAnswer != "1/2" || items[1].StudentAnswer != "3/4" {
		t.Error("expected positional answers")
	}
	if len(items[1].Choices) != 4 {
		t.Errorf("choices = %d, want 4", len(items[1].Choices))
	}

	if _, err := ItemsFromQuiz(quiz, []string{"only one"}); err == nil {
		t.Fatal("expected error for answer count mismatch")
	}
}
