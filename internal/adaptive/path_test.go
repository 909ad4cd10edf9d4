package adaptive

import (
	"fmt"
	"testing"

	"github.com/akarpov/mentora/internal/curriculum"
)

func TestGeneratePath_FiveTopicsTwoPhases(t *testing.T) {
	path := GeneratePath(PathRequest{
		TargetTopics:  []string{"t1", "t2", "t3", "t4", "t5"},
		TimeframeDays: 30,
		DailyMinutes:  30,
	})

	if len(path.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(path.Phases))
	}
	if len(path.Phases[0].Topics) != 3 {
		t.Errorf("phase 1 has %d topics, want 3", len(path.Phases[0].Topics))
	}
	if len(path.Phases[1].Topics) != 2 {
		t.Errorf("phase 2 has %d topics, want 2", len(path.Phases[1].Topics))
	}
	if len(path.DailySchedule) != 30 {
		t.Errorf("schedule has %d days, want 30", len(path.DailySchedule))
	}
	if path.EstimatedDuration != 30 {
		t.Errorf("EstimatedDuration = %d, want 30", path.EstimatedDuration)
	}
	for _, phase := range path.Phases {
		if phase.Duration != 15 {
			t.Errorf("phase %d duration = %d, want 15", phase.Phase, phase.Duration)
		}
	}
}

func TestGeneratePath_PhaseCounts(t *testing.T) {
	tests := []struct {
		topics     int
		wantPhases int
	}{
		{0, 1},
		{1, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
		{16, 4},
	}
	for _, tt := range tests {
		topics := make([]string, tt.topics)
		for i := range topics {
			topics[i] = fmt.Sprintf("t%d", i+1)
		}
		path := GeneratePath(PathRequest{TargetTopics: topics, TimeframeDays: 30})
		if len(path.Phases) != tt.wantPhases {
			t.Errorf("%d topics: got %d phases, want %d", tt.topics, len(path.Phases), tt.wantPhases)
		}
	}
}

func TestGeneratePath_Defaults(t *testing.T) {
	path := GeneratePath(PathRequest{TargetTopics: []string{"t1"}})

	if path.EstimatedDuration != DefaultTimeframeDays {
		t.Errorf("EstimatedDuration = %d, want %d", path.EstimatedDuration, DefaultTimeframeDays)
	}
	if len(path.DailySchedule) != DefaultTimeframeDays {
		t.Fatalf("schedule has %d days, want %d", len(path.DailySchedule), DefaultTimeframeDays)
	}
	day := path.DailySchedule[0]
	if day.TimeAllocated != DefaultDailyMinutes {
		t.Errorf("TimeAllocated = %d, want %d", day.TimeAllocated, DefaultDailyMinutes)
	}
}

func TestGeneratePath_DayActivityTemplate(t *testing.T) {
	path := GeneratePath(PathRequest{TargetTopics: []string{"t1"}, TimeframeDays: 7, DailyMinutes: 45})

	want := []DayActivity{
		{Kind: ActivityReview, Minutes: 5},
		{Kind: ActivityLearn, Minutes: 15},
		{Kind: ActivityPractice, Minutes: 10},
	}
	for _, day := range path.DailySchedule {
		if len(day.Activities) != len(want) {
			t.Fatalf("day %d has %d activities, want %d", day.Day, len(day.Activities), len(want))
		}
		for i, activity := range day.Activities {
			if activity != want[i] {
				t.Errorf("day %d activity %d = %+v, want %+v", day.Day, i, activity, want[i])
			}
		}
		// The block lengths are template constants, independent of the
		// daily budget.
		if day.TimeAllocated != 45 {
			t.Errorf("day %d TimeAllocated = %d, want 45", day.Day, day.TimeAllocated)
		}
	}
}

func TestGeneratePath_PhaseAssignment(t *testing.T) {
	path := GeneratePath(PathRequest{
		TargetTopics:  []string{"t1", "t2", "t3", "t4", "t5"},
		TimeframeDays: 30,
	})

	// Two phases over 30 days: days 1-15 on phase 1, days 16-30 on phase 2.
	for _, day := range path.DailySchedule {
		want := 1
		if day.Day > 15 {
			want = 2
		}
		if day.Phase != want {
			t.Errorf("day %d assigned phase %d, want %d", day.Day, day.Phase, want)
		}
	}

	first, last := path.DailySchedule[0], path.DailySchedule[29]
	if first.Phase != 1 || last.Phase != 2 {
		t.Errorf("first/last phase = %d/%d, want 1/2", first.Phase, last.Phase)
	}
}

func TestGeneratePath_UnevenTimeframeClamps(t *testing.T) {
	// 7 days across 2 phases: the division is fractional, and the final
	// day must still land on the last phase, never past it.
	path := GeneratePath(PathRequest{
		TargetTopics:  []string{"t1", "t2", "t3", "t4", "t5"},
		TimeframeDays: 7,
	})
	if len(path.DailySchedule) != 7 {
		t.Fatalf("schedule has %d days, want 7", len(path.DailySchedule))
	}
	for _, day := range path.DailySchedule {
		if day.Phase < 1 || day.Phase > len(path.Phases) {
			t.Errorf("day %d assigned phase %d, out of range [1,%d]", day.Day, day.Phase, len(path.Phases))
		}
	}
	if got := path.DailySchedule[6].Phase; got != 2 {
		t.Errorf("final day phase = %d, want 2", got)
	}
}

func TestGeneratePath_FallsBackToSelector(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "start-here", Name: "Start Here", Subject: curriculum.SubjectArithmetic},
	})

	path := GeneratePath(PathRequest{Progress: StudentProgress{}, Graph: g})
	if len(path.Phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(path.Phases))
	}
	topics := path.Phases[0].Topics
	if len(topics) != 1 || topics[0] != "start-here" {
		t.Errorf("phase topics = %v, want [start-here]", topics)
	}
	if len(path.Phases[0].Goals) != 1 || path.Phases[0].Goals[0] != "Master Start Here" {
		t.Errorf("goals = %v, want [Master Start Here]", path.Phases[0].Goals)
	}
}

func TestGeneratePath_NoTopicsAtAll(t *testing.T) {
	g := mustGraph(t, []curriculum.Topic{
		{ID: "only", Subject: curriculum.SubjectArithmetic},
	})
	progress := StudentProgress{"only": {Attempts: perfectAttempts(5)}}

	// Everything mastered: the selector has nothing to offer, but the
	// path is still generated with a single empty phase.
	path := GeneratePath(PathRequest{Progress: progress, Graph: g, TimeframeDays: 10})
	if len(path.Phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(path.Phases))
	}
	if len(path.Phases[0].Topics) != 0 {
		t.Errorf("phase topics = %v, want empty", path.Phases[0].Topics)
	}
	if len(path.DailySchedule) != 10 {
		t.Errorf("schedule has %d days, want 10", len(path.DailySchedule))
	}
}

func TestGeneratePath_PhaseTemplates(t *testing.T) {
	path := GeneratePath(PathRequest{TargetTopics: []string{"t1", "t2"}, TimeframeDays: 14})

	phase := path.Phases[0]
	if len(phase.Activities) != 4 {
		t.Errorf("got %d activities, want 4", len(phase.Activities))
	}
	if len(phase.Milestones) != 3 {
		t.Errorf("got %d milestones, want 3", len(phase.Milestones))
	}
	if len(phase.Goals) != 2 {
		t.Errorf("got %d goals, want 2", len(phase.Goals))
	}
}
