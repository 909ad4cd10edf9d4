package adaptive

import (
	"strings"
	"testing"
)

// assessment builds an AssessmentResult from (topic, correct) pairs.
func assessment(questions ...QuestionResult) AssessmentResult {
	score := 0
	for _, q := range questions {
		if q.IsCorrect {
			score++
		}
	}
	return AssessmentResult{Results: questions, Score: score, TotalQuestions: len(questions)}
}

// q builds a graded question with generated answer text.
func q(topic string, correct bool) QuestionResult {
	return QuestionResult{
		Topic:         topic,
		IsCorrect:     correct,
		Question:      "question about " + topic,
		StudentAnswer: "student answer",
		CorrectAnswer: "correct answer",
	}
}

func TestIdentifyGaps_MergesAcrossAssessments(t *testing.T) {
	// "fractions" scores 1/5 in each of two assessments: merged 2/10.
	first := assessment(
		q("fractions", true), q("fractions", false), q("fractions", false),
		q("fractions", false), q("fractions", false),
	)
	second := assessment(
		q("fractions", true), q("fractions", false), q("fractions", false),
		q("fractions", false), q("fractions", false),
	)

	gaps := IdentifyGaps([]AssessmentResult{first, second})
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1", len(gaps))
	}
	gap := gaps[0]
	if gap.Topic != "fractions" {
		t.Errorf("Topic = %q, want %q", gap.Topic, "fractions")
	}
	if gap.Severity != SeverityCritical {
		t.Errorf("Severity = %q, want %q", gap.Severity, SeverityCritical)
	}
	if gap.Accuracy != 20 {
		t.Errorf("Accuracy = %d, want 20", gap.Accuracy)
	}
	if gap.TotalQuestions != 10 {
		t.Errorf("TotalQuestions = %d, want 10", gap.TotalQuestions)
	}
	if gap.IncorrectCount != 8 {
		t.Errorf("IncorrectCount = %d, want 8", gap.IncorrectCount)
	}
}

func TestIdentifyGaps_SeverityBands(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    Severity
	}{
		{"below 0.3 is critical", 2, 10, SeverityCritical},
		{"exactly 0.3 is high", 3, 10, SeverityHigh},
		{"below 0.5 is high", 4, 10, SeverityHigh},
		{"exactly 0.5 is medium", 5, 10, SeverityMedium},
		{"below 0.7 is medium", 6, 10, SeverityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := make([]QuestionResult, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				questions = append(questions, q("topic", i < tt.correct))
			}
			gaps := IdentifyGaps([]AssessmentResult{assessment(questions...)})
			if len(gaps) != 1 {
				t.Fatalf("got %d gaps, want 1", len(gaps))
			}
			if gaps[0].Severity != tt.want {
				t.Errorf("Severity = %q, want %q", gaps[0].Severity, tt.want)
			}
		})
	}
}

func TestIdentifyGaps_ThresholdIsExclusive(t *testing.T) {
	// 7/10 reaches the 0.7 competency threshold: not a gap.
	questions := make([]QuestionResult, 0, 10)
	for i := 0; i < 10; i++ {
		questions = append(questions, q("solid", i < 7))
	}
	if gaps := IdentifyGaps([]AssessmentResult{assessment(questions...)}); len(gaps) != 0 {
		t.Errorf("got %d gaps, want 0", len(gaps))
	}
}

func TestIdentifyGaps_OrderedBySeverity(t *testing.T) {
	// Mixed per-topic accuracies: weak=1/10 (critical), shaky=4/10
	// (high), okay=6/10 (medium), strong=9/10 (no gap).
	var questions []QuestionResult
	add := func(topic string, correct, total int) {
		for i := 0; i < total; i++ {
			questions = append(questions, q(topic, i < correct))
		}
	}
	add("okay", 6, 10)
	add("weak", 1, 10)
	add("strong", 9, 10)
	add("shaky", 4, 10)

	gaps := IdentifyGaps([]AssessmentResult{assessment(questions...)})
	if len(gaps) != 3 {
		t.Fatalf("got %d gaps, want 3", len(gaps))
	}
	want := []string{"weak", "shaky", "okay"}
	for i, topic := range want {
		if gaps[i].Topic != topic {
			t.Errorf("gap %d = %q, want %q", i, gaps[i].Topic, topic)
		}
	}
}

func TestIdentifyGaps_StableWithinTier(t *testing.T) {
	// Two critical topics: the one encountered first stays first.
	var questions []QuestionResult
	for i := 0; i < 10; i++ {
		questions = append(questions, q("encountered-first", i < 1))
	}
	for i := 0; i < 10; i++ {
		questions = append(questions, q("encountered-second", i < 2))
	}

	gaps := IdentifyGaps([]AssessmentResult{assessment(questions...)})
	if len(gaps) != 2 {
		t.Fatalf("got %d gaps, want 2", len(gaps))
	}
	if gaps[0].Topic != "encountered-first" || gaps[1].Topic != "encountered-second" {
		t.Errorf("order = [%q, %q], want encounter order", gaps[0].Topic, gaps[1].Topic)
	}
}

func TestIdentifyGaps_CommonErrorsCapped(t *testing.T) {
	var questions []QuestionResult
	for i := 0; i < 8; i++ {
		questions = append(questions, QuestionResult{
			Topic:         "division",
			IsCorrect:     false,
			Question:      "q" + string(rune('1'+i)),
			StudentAnswer: "wrong",
			CorrectAnswer: "right",
		})
	}

	gaps := IdentifyGaps([]AssessmentResult{assessment(questions...)})
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1", len(gaps))
	}
	errors := gaps[0].CommonErrors
	if len(errors) != 3 {
		t.Fatalf("got %d common errors, want 3", len(errors))
	}
	want := []string{"q1", "q2", "q3"}
	for i, record := range errors {
		if record.Question != want[i] {
			t.Errorf("error %d question = %q, want %q (encounter order)", i, record.Question, want[i])
		}
	}
}

func TestIdentifyGaps_MissingTopicNormalized(t *testing.T) {
	gaps := IdentifyGaps([]AssessmentResult{assessment(
		q("", false), q("", false), q("", true),
	)})
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1", len(gaps))
	}
	if gaps[0].Topic != "general" {
		t.Errorf("Topic = %q, want %q", gaps[0].Topic, "general")
	}
}

func TestIdentifyGaps_RecommendationMentionsTopic(t *testing.T) {
	var questions []QuestionResult
	for i := 0; i < 10; i++ {
		questions = append(questions, q("decimals", i < 2))
	}
	gaps := IdentifyGaps([]AssessmentResult{assessment(questions...)})
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1", len(gaps))
	}
	if !strings.Contains(gaps[0].Recommendation, "decimals") {
		t.Errorf("recommendation should mention the topic, got %q", gaps[0].Recommendation)
	}
}

func TestIdentifyGaps_EmptyInput(t *testing.T) {
	if gaps := IdentifyGaps(nil); len(gaps) != 0 {
		t.Errorf("got %d gaps for empty input, want 0", len(gaps))
	}
}
