package adaptive

import (
	"testing"
	"time"
)

var velocityNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// attemptAt builds an attempt recorded the given number of days before
// velocityNow.
func attemptAt(daysAgo, correct, total int) Attempt {
	return Attempt{
		Correct:   correct,
		Total:     total,
		Timestamp: velocityNow.AddDate(0, 0, -daysAgo),
	}
}

func TestComputeVelocity_CountsWindowedActivity(t *testing.T) {
	progress := StudentProgress{
		"recent-mastered": {
			Attempts:  []Attempt{attemptAt(5, 4, 4), attemptAt(3, 4, 4), attemptAt(1, 4, 4)},
			TimeSpent: 60,
		},
		"recent-started": {
			Attempts:  []Attempt{attemptAt(2, 1, 4)},
			TimeSpent: 15,
		},
		"stale": {
			Attempts:  []Attempt{attemptAt(60, 4, 4), attemptAt(50, 4, 4)},
			TimeSpent: 45,
		},
	}

	report := ComputeVelocity(progress, 4, velocityNow)
	if report.TopicsStarted != 2 {
		t.Errorf("TopicsStarted = %d, want 2", report.TopicsStarted)
	}
	if report.TopicsMastered != 1 {
		t.Errorf("TopicsMastered = %d, want 1", report.TopicsMastered)
	}
	if report.TimeSpent != 75 {
		t.Errorf("TimeSpent = %d, want 75 (stale topic excluded)", report.TimeSpent)
	}
	if !almostEqual(report.TopicsPerWeek, 0.25) {
		t.Errorf("TopicsPerWeek = %f, want 0.25", report.TopicsPerWeek)
	}
	if report.Pace != PaceSlow {
		t.Errorf("Pace = %q, want %q", report.Pace, PaceSlow)
	}
}

func TestComputeVelocity_MasteryFromWindowOnly(t *testing.T) {
	// A long perfect history outside the window followed by one bad
	// recent attempt: the window sees only the bad attempt, so the topic
	// is started but not mastered.
	attempts := make([]Attempt, 0, 11)
	for i := 0; i < 10; i++ {
		attempts = append(attempts, attemptAt(90-i, 4, 4))
	}
	attempts = append(attempts, attemptAt(2, 0, 4))

	report := ComputeVelocity(StudentProgress{"slipping": {Attempts: attempts}}, 4, velocityNow)
	if report.TopicsStarted != 1 {
		t.Errorf("TopicsStarted = %d, want 1", report.TopicsStarted)
	}
	if report.TopicsMastered != 0 {
		t.Errorf("TopicsMastered = %d, want 0 (history outside window must not count)", report.TopicsMastered)
	}
}

func TestComputeVelocity_PaceBands(t *testing.T) {
	tests := []struct {
		name     string
		mastered int
		weeks    int
		want     Pace
	}{
		{"five in four weeks", 5, 4, PaceFast},
		{"three in four weeks", 3, 4, PaceSteady},
		{"two in four weeks", 2, 4, PaceSlow},
		{"none", 0, 4, PaceSlow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := StudentProgress{}
			for i := 0; i < tt.mastered; i++ {
				id := "topic-" + string(rune('a'+i))
				progress[id] = TopicProgress{
					Attempts: []Attempt{attemptAt(3, 4, 4), attemptAt(2, 4, 4), attemptAt(1, 4, 4)},
				}
			}
			report := ComputeVelocity(progress, tt.weeks, velocityNow)
			if report.Pace != tt.want {
				t.Errorf("Pace = %q, want %q", report.Pace, tt.want)
			}
		})
	}
}

func TestComputeVelocity_ZeroWeeks(t *testing.T) {
	progress := StudentProgress{
		"anything": {Attempts: []Attempt{attemptAt(1, 4, 4)}},
	}
	for _, weeks := range []int{0, -3} {
		report := ComputeVelocity(progress, weeks, velocityNow)
		if report.TopicsPerWeek != 0 || report.TopicsStarted != 0 || report.TopicsMastered != 0 {
			t.Errorf("weeks=%d: got %+v, want zero report", weeks, report)
		}
		if report.Pace != PaceSlow {
			t.Errorf("weeks=%d: Pace = %q, want %q", weeks, report.Pace, PaceSlow)
		}
	}
}

func TestComputeVelocity_EmptyProgress(t *testing.T) {
	report := ComputeVelocity(StudentProgress{}, 4, velocityNow)
	if report.TopicsStarted != 0 || report.TopicsMastered != 0 || report.TimeSpent != 0 {
		t.Errorf("got %+v, want zero activity", report)
	}
}

func TestPredictDaysToMastery_AlreadyMastered(t *testing.T) {
	progress := StudentProgress{
		"done": {Attempts: perfectAttempts(5)},
	}
	v := VelocityReport{TopicsPerWeek: 1}
	if got := PredictDaysToMastery("done", progress, v); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestPredictDaysToMastery_KnownRates(t *testing.T) {
	// 3.5 topics/week converts to 5 mastery points/day; a fresh topic
	// needs 70 points, so 14 days.
	fresh := StudentProgress{}
	if got := PredictDaysToMastery("new-topic", fresh, VelocityReport{TopicsPerWeek: 3.5}); got != 14 {
		t.Errorf("got %d, want 14", got)
	}

	// Level 65 topic with 10 points/day: one day, floored at the minimum.
	nearly := StudentProgress{"close": {Attempts: []Attempt{at(1, 2)}}}
	if got := PredictDaysToMastery("close", nearly, VelocityReport{TopicsPerWeek: 7}); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestPredictDaysToMastery_ZeroVelocityCaps(t *testing.T) {
	fresh := StudentProgress{}
	if got := PredictDaysToMastery("anything", fresh, VelocityReport{}); got != 90 {
		t.Errorf("got %d, want 90 (cap)", got)
	}
	if got := PredictDaysToMastery("anything", fresh, VelocityReport{TopicsPerWeek: 0.07}); got != 90 {
		t.Errorf("slow velocity: got %d, want 90 (cap)", got)
	}
}

func TestPredictDaysToMastery_AlwaysInRange(t *testing.T) {
	fresh := StudentProgress{}
	for _, perWeek := range []float64{0.01, 0.2, 0.5, 1, 2, 5, 10, 100} {
		got := PredictDaysToMastery("topic", fresh, VelocityReport{TopicsPerWeek: perWeek})
		if got < 1 || got > 90 {
			t.Errorf("velocity %f: got %d, want within [1,90]", perWeek, got)
		}
	}
}
