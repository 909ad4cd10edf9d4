package mcptools

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/curriculum"
	"github.com/akarpov/mentora/internal/store"
)

var toolNow = time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

func toolGraph() *curriculum.Graph {
	return curriculum.MustNew([]curriculum.Topic{
		{
			ID: "counting", Name: "Counting", Description: "Counting and place value",
			Subject: "arithmetic", Grade: 3, Difficulty: curriculum.DifficultyEasy, Importance: 10,
		},
		{
			ID: "addition", Name: "Addition", Description: "Multi-digit addition",
			Subject: "arithmetic", Grade: 3, Difficulty: curriculum.DifficultyEasy, Importance: 9,
			Prerequisites: []string{"counting"},
		},
		{
			ID: "add-fractions", Name: "Adding Fractions", Description: "Fractions with like denominators",
			Subject: "fractions", Grade: 4, Difficulty: curriculum.DifficultyMedium, Importance: 8,
			Prerequisites: []string{"addition"},
		},
	})
}

type fakeStudents struct {
	byID map[string]*store.StudentRecord
}

func (f *fakeStudents) Create(ctx context.Context, data store.StudentData) (*store.StudentRecord, error) {
	return nil, fmt.Errorf("not supported")
}

func (f *fakeStudents) ByPublicID(ctx context.Context, publicID string) (*store.StudentRecord, error) {
	rec, ok := f.byID[publicID]
	if !ok {
		return nil, fmt.Errorf("student %q: %w", publicID, store.ErrNotFound)
	}
	return rec, nil
}

func (f *fakeStudents) ByName(ctx context.Context, name string) (*store.StudentRecord, error) {
	for _, rec := range f.byID {
		if rec.Name == name {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("student %q: %w", name, store.ErrNotFound)
}

func (f *fakeStudents) List(ctx context.Context) ([]store.StudentRecord, error) {
	return nil, nil
}

// fakeAttempts keeps the event log in memory and doubles as the
// ProgressReader, deriving progress the same way the real store does.
type fakeAttempts struct {
	records []store.AttemptRecord
	seq     int64
	stamp   time.Time
}

func newFakeAttempts() *fakeAttempts {
	return &fakeAttempts{stamp: toolNow.Add(-24 * time.Hour)}
}

func (f *fakeAttempts) Append(ctx context.Context, data store.AttemptEventData) error {
	f.seq++
	f.stamp = f.stamp.Add(time.Minute)
	f.records = append(f.records, store.AttemptRecord{
		Sequence:  f.seq,
		Timestamp: f.stamp,
		StudentID: data.StudentID,
		TopicID:   data.TopicID,
		Correct:   data.Correct,
		Total:     data.Total,
		Minutes:   data.Minutes,
		Source:    data.Source,
	})
	return nil
}

func (f *fakeAttempts) ListByStudent(ctx context.Context, studentID string) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for _, rec := range f.records {
		if rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttempts) ListByStudentTopic(ctx context.Context, studentID, topicID string) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for _, rec := range f.records {
		if rec.StudentID == studentID && rec.TopicID == topicID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttempts) Progress(ctx context.Context, studentID string) (adaptive.StudentProgress, error) {
	prog := make(adaptive.StudentProgress)
	for _, rec := range f.records {
		if rec.StudentID != studentID {
			continue
		}
		tp := prog[rec.TopicID]
		tp.Attempts = append(tp.Attempts, adaptive.Attempt{Correct: rec.Correct, Total: rec.Total, Timestamp: rec.Timestamp})
		tp.TimeSpent += rec.Minutes
		prog[rec.TopicID] = tp
	}
	return prog, nil
}

func (f *fakeAttempts) TopicAttempts(ctx context.Context, studentID, topicID string) ([]adaptive.Attempt, error) {
	var out []adaptive.Attempt
	for _, rec := range f.records {
		if rec.StudentID == studentID && rec.TopicID == topicID {
			out = append(out, adaptive.Attempt{Correct: rec.Correct, Total: rec.Total, Timestamp: rec.Timestamp})
		}
	}
	return out, nil
}

type fakeAssessments struct {
	records []store.AssessmentRecord
}

func (f *fakeAssessments) Append(ctx context.Context, data store.AssessmentEventData) error {
	f.records = append(f.records, store.AssessmentRecord{
		Sequence:       int64(len(f.records) + 1),
		Timestamp:      toolNow,
		StudentID:      data.StudentID,
		AssessmentID:   data.AssessmentID,
		TopicIDs:       data.TopicIDs,
		Score:          data.Score,
		TotalQuestions: data.TotalQuestions,
		Results:        data.Results,
	})
	return nil
}

func (f *fakeAssessments) ListByStudent(ctx context.Context, studentID string, limit int) ([]store.AssessmentRecord, error) {
	var out []store.AssessmentRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].StudentID != studentID {
			continue
		}
		out = append(out, f.records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeUnlocks struct {
	records map[string][]store.AchievementRecord
	seq     int64
}

func (f *fakeUnlocks) Append(ctx context.Context, studentID, achievementID string) error {
	if f.records == nil {
		f.records = make(map[string][]store.AchievementRecord)
	}
	f.seq++
	f.records[studentID] = append(f.records[studentID], store.AchievementRecord{
		AchievementID: achievementID,
		Sequence:      f.seq,
		Timestamp:     toolNow,
	})
	return nil
}

func (f *fakeUnlocks) ListByStudent(ctx context.Context, studentID string) ([]store.AchievementRecord, error) {
	return f.records[studentID], nil
}

type fixture struct {
	students    *fakeStudents
	attempts    *fakeAttempts
	assessments *fakeAssessments
	badges      *achievements.Service
	graph       *curriculum.Graph
	studentID   string
}

func newFixture() *fixture {
	attempts := newFakeAttempts()
	f := &fixture{
		students: &fakeStudents{byID: map[string]*store.StudentRecord{
			"stu-1": {ID: 1, PublicID: "stu-1", Name: "Maya", Grade: 4, CreatedAt: toolNow},
		}},
		attempts:    attempts,
		assessments: &fakeAssessments{},
		graph:       toolGraph(),
		studentID:   "stu-1",
	}
	f.badges = achievements.NewService(&fakeUnlocks{}, attempts, attempts)
	return f
}

func (f *fixture) addAttempt(topic string, correct, total, minutes int) {
	err := f.attempts.Append(context.Background(), store.AttemptEventData{
		StudentID: f.studentID,
		TopicID:   topic,
		Correct:   correct,
		Total:     total,
		Minutes:   minutes,
		Source:    store.SourcePractice,
	})
	if err != nil {
		panic(err)
	}
}

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func mustNotError(t *testing.T, r *mcp.CallToolResult, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if r.IsError {
		t.Fatalf("tool error: %s", resultText(r))
	}
}

func mustBeToolError(t *testing.T, r *mcp.CallToolResult, err error, want string) {
	t.Helper()
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !r.IsError {
		t.Fatalf("expected tool error containing %q, got success: %s", want, resultText(r))
	}
	if got := resultText(r); !strings.Contains(got, want) {
		t.Fatalf("error %q does not mention %q", got, want)
	}
}

func TestDefinitions(t *testing.T) {
	f := newFixture()
	tools := []struct {
		def      mcp.Tool
		required []string
	}{
		{NewNextTopicTool(f.students, f.attempts, f.graph).Definition(), []string{"student"}},
		{NewMasteryTool(f.students, f.attempts, f.graph).Definition(), []string{"student"}},
		{NewLearningPathTool(f.students, f.attempts, f.graph).Definition(), []string{"student"}},
		{NewGapReportTool(f.students, f.assessments).Definition(), []string{"student"}},
		{NewLogAttemptTool(f.students, f.attempts, f.attempts, f.badges, f.graph).Definition(), []string{"student", "topic", "correct", "total"}},
	}

	seen := make(map[string]bool)
	for _, tc := range tools {
		if tc.def.Name == "" {
			t.Fatal("tool has no name")
		}
		if seen[tc.def.Name] {
			t.Fatalf("duplicate tool name %q", tc.def.Name)
		}
		seen[tc.def.Name] = true
		if tc.def.Description == "" {
			t.Errorf("%s: empty description", tc.def.Name)
		}
		for _, name := range tc.required {
			found := false
			for _, r := range tc.def.InputSchema.Required {
				if r == name {
					found = true
				}
			}
			if !found {
				t.Errorf("%s: %q should be required", tc.def.Name, name)
			}
			if _, ok := tc.def.InputSchema.Properties[name]; !ok {
				t.Errorf("%s: %q missing from properties", tc.def.Name, name)
			}
		}
	}
	for _, name := range []string{"get_next_topic", "get_mastery", "get_learning_path", "get_gap_report", "log_attempt"} {
		if !seen[name] {
			t.Errorf("no tool named %q", name)
		}
	}
}

func TestNewServer(t *testing.T) {
	f := newFixture()
	s := NewServer("test", Deps{
		Students:     f.students,
		Attempts:     f.attempts,
		Assessments:  f.assessments,
		Progress:     f.attempts,
		Achievements: f.badges,
		Graph:        f.graph,
	})
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestNextTopic_FreshStudent(t *testing.T) {
	f := newFixture()
	tool := NewNextTopicTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "stu-1"}))
	mustNotError(t, r, err)

	text := resultText(r)
	if !strings.Contains(text, "Counting") || !strings.Contains(text, "(counting)") {
		t.Fatalf("fresh student should be sent to the root topic, got:\n%s", text)
	}
	if !strings.Contains(text, "easy") {
		t.Fatalf("fresh topic should suggest easy difficulty, got:\n%s", text)
	}
}

func TestNextTopic_ExhaustedCurriculum(t *testing.T) {
	f := newFixture()
	for _, id := range []string{"counting", "addition", "add-fractions"} {
		f.addAttempt(id, 5, 5, 10)
	}
	tool := NewNextTopicTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "stu-1"}))
	mustNotError(t, r, err)

	if text := resultText(r); !strings.Contains(text, "No recommendation available") {
		t.Fatalf("exhausted curriculum should say so, got:\n%s", text)
	}
}

func TestNextTopic_StudentErrors(t *testing.T) {
	f := newFixture()
	tool := NewNextTopicTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	mustBeToolError(t, r, err, "'student' is required")

	r, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "ghost"}))
	mustBeToolError(t, r, err, "ghost")
}

func TestMastery_WholeCurriculum(t *testing.T) {
	f := newFixture()
	f.addAttempt("counting", 5, 5, 10)
	tool := NewMasteryTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "stu-1"}))
	mustNotError(t, r, err)

	text := resultText(r)
	for _, name := range []string{"Counting", "Addition", "Adding Fractions"} {
		if !strings.Contains(text, name) {
			t.Errorf("report should cover %s, got:\n%s", name, text)
		}
	}
	if !strings.Contains(text, "Counting: 100/100 (mastered)") {
		t.Errorf("perfect topic should read as mastered, got:\n%s", text)
	}
	if !strings.Contains(text, "not-started") {
		t.Errorf("untouched topics should show as not-started, got:\n%s", text)
	}
}

func TestMastery_SingleTopic(t *testing.T) {
	f := newFixture()
	f.addAttempt("counting", 4, 5, 10)
	tool := NewMasteryTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"student": "stu-1",
		"topic":   "counting",
	}))
	mustNotError(t, r, err)

	text := resultText(r)
	if !strings.Contains(text, "Mastery: Counting") {
		t.Fatalf("report should be scoped to the topic, got:\n%s", text)
	}
	if !strings.Contains(text, "Attempts: 1") {
		t.Fatalf("one batch should count as one attempt, got:\n%s", text)
	}
	if !strings.Contains(text, "Recent accuracy: 80%") {
		t.Fatalf("4/5 should read as 80%% accuracy, got:\n%s", text)
	}
}

func TestMastery_UnknownTopic(t *testing.T) {
	f := newFixture()
	tool := NewMasteryTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"student": "stu-1",
		"topic":   "knitting",
	}))
	mustBeToolError(t, r, err, `unknown topic "knitting"`)
}

func TestLearningPath(t *testing.T) {
	f := newFixture()
	tool := NewLearningPathTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"student":        "stu-1",
		"timeframe_days": float64(14),
		"daily_minutes":  float64(20),
		"topics":         "counting, addition",
	}))
	mustNotError(t, r, err)

	text := resultText(r)
	if !strings.Contains(text, "Learning Path (14 days)") {
		t.Fatalf("plan should span the requested timeframe, got:\n%s", text)
	}
	if !strings.Contains(text, "Phase 1") {
		t.Fatalf("two topics fit a single phase, got:\n%s", text)
	}
	if !strings.Contains(text, "Counting, Addition") {
		t.Fatalf("phase should name its topics, got:\n%s", text)
	}
	if !strings.Contains(text, "allocates 20 minutes") {
		t.Fatalf("schedule should honor daily_minutes, got:\n%s", text)
	}
}

func TestLearningPath_Defaults(t *testing.T) {
	f := newFixture()
	tool := NewLearningPathTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "stu-1"}))
	mustNotError(t, r, err)

	text := resultText(r)
	if !strings.Contains(text, "Learning Path (30 days)") {
		t.Fatalf("omitted timeframe should default to 30 days, got:\n%s", text)
	}
	// No targets requested, so the plan falls back to the next recommendation.
	if !strings.Contains(text, "Counting") {
		t.Fatalf("fresh student's plan should start at the root topic, got:\n%s", text)
	}
}

func TestLearningPath_UnknownTopic(t *testing.T) {
	f := newFixture()
	tool := NewLearningPathTool(f.students, f.attempts, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"student": "stu-1",
		"topics":  "counting,knitting",
	}))
	mustBeToolError(t, r, err, `unknown topic "knitting"`)
}

func TestGapReport_NoAssessments(t *testing.T) {
	f := newFixture()
	tool := NewGapReportTool(f.students, f.assessments)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "stu-1"}))
	mustNotError(t, r, err)

	if text := resultText(r); !strings.Contains(text, "No assessments on file") {
		t.Fatalf("empty history should be a friendly notice, got:\n%s", text)
	}
}

func TestGapReport(t *testing.T) {
	f := newFixture()
	err := f.assessments.Append(context.Background(), store.AssessmentEventData{
		StudentID:      f.studentID,
		AssessmentID:   "a-1",
		TopicIDs:       []string{"addition"},
		Score:          1,
		TotalQuestions: 4,
		Results: []adaptive.QuestionResult{
			{Topic: "addition", IsCorrect: true, Question: "2 + 2?", StudentAnswer: "4", CorrectAnswer: "4"},
			{Topic: "addition", IsCorrect: false, Question: "17 + 5?", StudentAnswer: "21", CorrectAnswer: "22"},
			{Topic: "addition", IsCorrect: false, Question: "38 + 4?", StudentAnswer: "41", CorrectAnswer: "42"},
			{Topic: "addition", IsCorrect: false, Question: "29 + 6?", StudentAnswer: "34", CorrectAnswer: "35"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	tool := NewGapReportTool(f.students, f.assessments)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "stu-1"}))
	mustNotError(t, r, err)

	text := resultText(r)
	if !strings.Contains(text, "addition [critical]") {
		t.Fatalf("25%% accuracy is a critical gap, got:\n%s", text)
	}
	if !strings.Contains(text, "Accuracy: 25% (3 of 4 incorrect)") {
		t.Fatalf("gap should carry the tallies, got:\n%s", text)
	}
	if !strings.Contains(text, `Missed "17 + 5?"`) {
		t.Fatalf("missed questions should be listed, got:\n%s", text)
	}
}

func TestGapReport_CleanHistory(t *testing.T) {
	f := newFixture()
	err := f.assessments.Append(context.Background(), store.AssessmentEventData{
		StudentID:      f.studentID,
		AssessmentID:   "a-1",
		TopicIDs:       []string{"counting"},
		Score:          4,
		TotalQuestions: 4,
		Results: []adaptive.QuestionResult{
			{Topic: "counting", IsCorrect: true, Question: "Count to 10", StudentAnswer: "10", CorrectAnswer: "10"},
			{Topic: "counting", IsCorrect: true, Question: "Count to 20", StudentAnswer: "20", CorrectAnswer: "20"},
			{Topic: "counting", IsCorrect: true, Question: "Count to 30", StudentAnswer: "30", CorrectAnswer: "30"},
			{Topic: "counting", IsCorrect: true, Question: "Count to 40", StudentAnswer: "40", CorrectAnswer: "40"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	tool := NewGapReportTool(f.students, f.assessments)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"student": "stu-1"}))
	mustNotError(t, r, err)

	if text := resultText(r); !strings.Contains(text, "No learning gaps") {
		t.Fatalf("perfect assessments should report no gaps, got:\n%s", text)
	}
}

func TestLogAttempt(t *testing.T) {
	f := newFixture()
	tool := NewLogAttemptTool(f.students, f.attempts, f.attempts, f.badges, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"student": "stu-1",
		"topic":   "counting",
		"correct": float64(5),
		"total":   float64(5),
		"minutes": float64(10),
	}))
	mustNotError(t, r, err)

	text := resultText(r)
	if !strings.Contains(text, "Recorded 5/5 on Counting (10 minutes)") {
		t.Fatalf("confirmation should echo the batch, got:\n%s", text)
	}
	if !strings.Contains(text, "Mastery is now 100/100 (mastered)") {
		t.Fatalf("perfect first batch reaches full mastery, got:\n%s", text)
	}
	if !strings.Contains(text, "New badge unlocked: First Steps!") {
		t.Fatalf("first attempt should unlock the starter badge, got:\n%s", text)
	}

	if len(f.attempts.records) != 1 {
		t.Fatalf("expected one stored event, got %d", len(f.attempts.records))
	}
	if rec := f.attempts.records[0]; rec.Source != store.SourcePractice || rec.TopicID != "counting" {
		t.Fatalf("unexpected stored event: %+v", rec)
	}
}

func TestLogAttempt_ZeroCorrectIsValid(t *testing.T) {
	f := newFixture()
	tool := NewLogAttemptTool(f.students, f.attempts, f.attempts, nil, f.graph)

	r, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"student": "stu-1",
		"topic":   "counting",
		"correct": float64(0),
		"total":   float64(5),
	}))
	mustNotError(t, r, err)

	if !strings.Contains(resultText(r), "Recorded 0/5") {
		t.Fatalf("an all-wrong batch is still a valid attempt, got:\n%s", resultText(r))
	}
}

func TestLogAttempt_Validation(t *testing.T) {
	cases := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{
			name: "missing student",
			args: map[string]interface{}{"topic": "counting", "correct": float64(1), "total": float64(2)},
			want: "'student' is required",
		},
		{
			name: "unknown topic",
			args: map[string]interface{}{"student": "stu-1", "topic": "knitting", "correct": float64(1), "total": float64(2)},
			want: `unknown topic "knitting"`,
		},
		{
			name: "missing total",
			args: map[string]interface{}{"student": "stu-1", "topic": "counting", "correct": float64(1)},
			want: "'total' must be a positive number",
		},
		{
			name: "correct above total",
			args: map[string]interface{}{"student": "stu-1", "topic": "counting", "correct": float64(6), "total": float64(5)},
			want: "'correct' must be between",
		},
		{
			name: "missing correct",
			args: map[string]interface{}{"student": "stu-1", "topic": "counting", "total": float64(5)},
			want: "'correct' must be between",
		},
		{
			name: "negative minutes",
			args: map[string]interface{}{"student": "stu-1", "topic": "counting", "correct": float64(1), "total": float64(2), "minutes": float64(-3)},
			want: "'minutes' cannot be negative",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			tool := NewLogAttemptTool(f.students, f.attempts, f.attempts, f.badges, f.graph)

			r, err := tool.Handle(context.Background(), makeReq(tc.args))
			mustBeToolError(t, r, err, tc.want)

			if len(f.attempts.records) != 0 {
				t.Fatalf("rejected call must not store events, got %d", len(f.attempts.records))
			}
		})
	}
}
