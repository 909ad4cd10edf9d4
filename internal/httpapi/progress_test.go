package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/akarpov/mentora/internal/achievements"
	"github.com/akarpov/mentora/internal/adaptive"
	"github.com/akarpov/mentora/internal/store"
)

func TestMastery_CoversWholeCurriculum(t *testing.T) {
	f := newFixture(t)
	f.addAttempt("counting", 5, 5, 10)
	f.addAttempt("counting", 5, 5, 10)

	w := f.get(f.studentPath("/mastery"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Student string                            `json:"student"`
		Mastery map[string]adaptive.MasteryResult `json:"mastery"`
	}
	decodeInto(t, w, &resp)

	if len(resp.Mastery) != 3 {
		t.Fatalf("mastery covers %d topics, want 3", len(resp.Mastery))
	}
	if got := resp.Mastery["counting"]; got.Status != adaptive.StatusMastered {
		t.Errorf("counting status = %q, want mastered", got.Status)
	}
	if got := resp.Mastery["addition"]; got.Status != adaptive.StatusNotStarted {
		t.Errorf("addition status = %q, want not-started", got.Status)
	}
}

func TestTopicMastery(t *testing.T) {
	f := newFixture(t)
	f.addAttempt("counting", 4, 5, 10)

	w := f.get(f.studentPath("/mastery/counting"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Topic   string                 `json:"topic"`
		Mastery adaptive.MasteryResult `json:"mastery"`
	}
	decodeInto(t, w, &resp)
	if resp.Topic != "counting" {
		t.Errorf("topic = %q", resp.Topic)
	}
	if resp.Mastery.TotalAttempts != 1 {
		t.Errorf("total attempts = %d, want 1", resp.Mastery.TotalAttempts)
	}

	w = f.get(f.studentPath("/mastery/knitting"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown topic: status = %d, want 404", w.Code)
	}
}

func TestNextTopic_FreshStudentGetsTheRoot(t *testing.T) {
	f := newFixture(t)

	w := f.get(f.studentPath("/next-topic"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Recommendation *adaptive.TopicRecommendation `json:"recommendation"`
	}
	decodeInto(t, w, &resp)
	if resp.Recommendation == nil {
		t.Fatal("recommendation is nil for a fresh student")
	}
	if resp.Recommendation.Topic != "counting" {
		t.Errorf("recommended %q, want counting", resp.Recommendation.Topic)
	}
}

func TestNextTopic_ExhaustedCurriculum(t *testing.T) {
	f := newFixture(t)
	for _, topic := range []string{"counting", "addition", "add-fractions"} {
		f.addAttempt(topic, 5, 5, 10)
	}

	w := f.get(f.studentPath("/next-topic"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: exhaustion is not an error", w.Code)
	}
	var resp struct {
		Recommendation *adaptive.TopicRecommendation `json:"recommendation"`
		Message        string                        `json:"message"`
	}
	decodeInto(t, w, &resp)
	if resp.Recommendation != nil {
		t.Errorf("recommendation = %+v, want none", resp.Recommendation)
	}
	if resp.Message != "no recommendation available" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestLearningPath(t *testing.T) {
	f := newFixture(t)

	w := f.get(f.studentPath("/learning-path?timeframe=14&daily=20&topics=counting,addition"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var path adaptive.LearningPath
	decodeInto(t, w, &path)
	if path.EstimatedDuration != 14 {
		t.Errorf("duration = %d, want 14", path.EstimatedDuration)
	}
	if len(path.DailySchedule) != 14 {
		t.Errorf("schedule spans %d days, want 14", len(path.DailySchedule))
	}
	if len(path.DailySchedule) > 0 && path.DailySchedule[0].TimeAllocated != 20 {
		t.Errorf("daily budget = %d, want 20", path.DailySchedule[0].TimeAllocated)
	}
	if len(path.Phases) != 1 {
		t.Errorf("phases = %d, want 1", len(path.Phases))
	}
}

func TestLearningPath_BadTimeframe(t *testing.T) {
	f := newFixture(t)

	w := f.get(f.studentPath("/learning-path?timeframe=soon"))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestLearningPath_UnknownTargetTopic(t *testing.T) {
	f := newFixture(t)

	w := f.get(f.studentPath("/learning-path?topics=counting,knitting"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestVelocity(t *testing.T) {
	f := newFixture(t)
	f.addAttempt("counting", 5, 5, 15)
	f.addAttempt("counting", 5, 5, 15)

	w := f.get(f.studentPath("/velocity"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Weeks    int                     `json:"weeks"`
		Velocity adaptive.VelocityReport `json:"velocity"`
	}
	decodeInto(t, w, &resp)
	if resp.Weeks != adaptive.DefaultVelocityWeeks {
		t.Errorf("weeks = %d, want default %d", resp.Weeks, adaptive.DefaultVelocityWeeks)
	}
	if resp.Velocity.TopicsStarted != 1 || resp.Velocity.TopicsMastered != 1 {
		t.Errorf("velocity = %+v, want 1 started and 1 mastered", resp.Velocity)
	}
	if resp.Velocity.TimeSpent != 30 {
		t.Errorf("time spent = %d, want 30", resp.Velocity.TimeSpent)
	}

	w = f.get(f.studentPath("/velocity?weeks=2"))
	decodeInto(t, w, &resp)
	if resp.Weeks != 2 {
		t.Errorf("weeks = %d, want 2", resp.Weeks)
	}

	w = f.get(f.studentPath("/velocity?weeks=never"))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad weeks: status = %d, want 422", w.Code)
	}
}

func TestPredict(t *testing.T) {
	f := newFixture(t)
	f.addAttempt("counting", 5, 5, 10)

	// Already mastered: nothing left to predict.
	w := f.get(f.studentPath("/predict/counting"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Topic         string `json:"topic"`
		CurrentLevel  int    `json:"current_level"`
		DaysToMastery int    `json:"days_to_mastery"`
	}
	decodeInto(t, w, &resp)
	if resp.DaysToMastery != 0 {
		t.Errorf("days for mastered topic = %d, want 0", resp.DaysToMastery)
	}
	if resp.CurrentLevel < 70 {
		t.Errorf("current level = %d, want >= 70", resp.CurrentLevel)
	}

	// An untouched topic saturates at the prediction cap.
	w = f.get(f.studentPath("/predict/add-fractions"))
	decodeInto(t, w, &resp)
	if resp.DaysToMastery != 90 {
		t.Errorf("days for untouched topic = %d, want 90", resp.DaysToMastery)
	}

	w = f.get(f.studentPath("/predict/knitting"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown topic: status = %d, want 404", w.Code)
	}
}

func TestLogAttempt(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{"topic": "counting", "correct": 5, "total": 5, "minutes": 12}
	w := f.post(f.studentPath("/attempts"), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Topic           string                     `json:"topic"`
		Mastery         adaptive.MasteryResult     `json:"mastery"`
		NewAchievements []achievements.Achievement `json:"new_achievements"`
	}
	decodeInto(t, w, &resp)
	if resp.Mastery.TotalAttempts != 1 {
		t.Errorf("mastery attempts = %d, want 1", resp.Mastery.TotalAttempts)
	}

	// The very first attempt unlocks the starter badge inline.
	found := false
	for _, a := range resp.NewAchievements {
		if a.ID == "first-steps" {
			found = true
		}
	}
	if !found {
		t.Errorf("new achievements %+v missing first-steps", resp.NewAchievements)
	}

	records, err := f.attempts.ListByStudent(context.Background(), f.student.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("stored %d attempts, want 1", len(records))
	}
	if records[0].Source != store.SourcePractice {
		t.Errorf("source = %q, want practice", records[0].Source)
	}
}

func TestLogAttempt_Validation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{"unknown topic", map[string]any{"topic": "knitting", "correct": 1, "total": 5}, http.StatusNotFound},
		{"zero total", map[string]any{"topic": "counting", "correct": 0, "total": 0}, http.StatusUnprocessableEntity},
		{"correct above total", map[string]any{"topic": "counting", "correct": 6, "total": 5}, http.StatusUnprocessableEntity},
		{"negative correct", map[string]any{"topic": "counting", "correct": -1, "total": 5}, http.StatusUnprocessableEntity},
		{"negative minutes", map[string]any{"topic": "counting", "correct": 3, "total": 5, "minutes": -2}, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := f.post(f.studentPath("/attempts"), tc.body)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.want, w.Body.String())
			}
		})
	}

	if len(f.attempts.records) != 0 {
		t.Errorf("rejected requests appended %d attempts", len(f.attempts.records))
	}
}

func TestAchievements(t *testing.T) {
	f := newFixture(t)
	f.addAttempt("counting", 5, 5, 10)
	f.addAttempt("counting", 5, 5, 10)
	f.addAttempt("counting", 5, 5, 10)

	w := f.get(f.studentPath("/achievements"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Unlocked     int                        `json:"unlocked"`
		Total        int                        `json:"total"`
		Achievements []achievements.StatusEntry `json:"achievements"`
	}
	decodeInto(t, w, &resp)

	if resp.Total != len(achievements.Catalog()) {
		t.Errorf("total = %d, want full catalog %d", resp.Total, len(achievements.Catalog()))
	}
	// Three perfect attempts: first-steps, on-a-roll and breakthrough.
	if resp.Unlocked != 3 {
		t.Errorf("unlocked = %d, want 3", resp.Unlocked)
	}
	if len(resp.Achievements) != resp.Total {
		t.Fatalf("entries = %d, want %d", len(resp.Achievements), resp.Total)
	}
	if e := resp.Achievements[0]; e.ID != "first-steps" || !e.Unlocked || e.UnlockedAt == nil {
		t.Errorf("first entry = %+v, want unlocked first-steps with timestamp", e)
	}
}

func TestGaps(t *testing.T) {
	f := newFixture(t)

	err := f.assessments.Append(context.Background(), store.AssessmentEventData{
		StudentID:      f.student.PublicID,
		AssessmentID:   "as-1",
		TopicIDs:       []string{"addition"},
		Score:          1,
		TotalQuestions: 4,
		Results: []adaptive.QuestionResult{
			{Topic: "addition", IsCorrect: true, Question: "12 + 9?", StudentAnswer: "21", CorrectAnswer: "21"},
			{Topic: "addition", IsCorrect: false, Question: "25 + 17?", StudentAnswer: "32", CorrectAnswer: "42"},
			{Topic: "addition", IsCorrect: false, Question: "38 + 14?", StudentAnswer: "44", CorrectAnswer: "52"},
			{Topic: "addition", IsCorrect: false, Question: "56 + 28?", StudentAnswer: "74", CorrectAnswer: "84"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	w := f.get(f.studentPath("/gaps"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp gapsResponse
	decodeInto(t, w, &resp)

	if resp.AssessmentsAnalyzed != 1 {
		t.Errorf("assessments analyzed = %d, want 1", resp.AssessmentsAnalyzed)
	}
	if len(resp.Gaps) != 1 {
		t.Fatalf("gaps = %+v, want exactly one", resp.Gaps)
	}
	gap := resp.Gaps[0]
	if gap.Topic != "addition" || gap.Severity != adaptive.SeverityCritical {
		t.Errorf("gap = %+v, want critical addition gap", gap)
	}
	if gap.IncorrectCount != 3 {
		t.Errorf("incorrect count = %d, want 3", gap.IncorrectCount)
	}
}

func TestGaps_NoAssessments(t *testing.T) {
	f := newFixture(t)

	w := f.get(f.studentPath("/gaps"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp gapsResponse
	decodeInto(t, w, &resp)
	if len(resp.Gaps) != 0 || resp.AssessmentsAnalyzed != 0 {
		t.Errorf("fresh student gap report = %+v, want empty", resp)
	}
}
