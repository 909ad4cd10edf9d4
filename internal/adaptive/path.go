package adaptive

import (
	"fmt"

	"github.com/akarpov/mentora/internal/curriculum"
)

const (
	// DefaultTimeframeDays is the path length used when the caller does
	// not specify one.
	DefaultTimeframeDays = 30

	// DefaultDailyMinutes is the per-day time budget used when the caller
	// does not specify one.
	DefaultDailyMinutes = 30

	// targetTopicsPerPhase controls phase granularity: the phase count is
	// ceil(topics/4), so each phase carries about four topics.
	targetTopicsPerPhase = 4

	// Fixed per-day activity template. These are literal block lengths,
	// not proportions of the daily budget.
	reviewMinutes   = 5
	learnMinutes    = 15
	practiceMinutes = 10
)

// PathRequest carries the inputs for learning-path generation.
type PathRequest struct {
	Progress      StudentProgress
	Graph         *curriculum.Graph
	TargetTopics  []string
	TimeframeDays int
	DailyMinutes  int
}

// GeneratePath expands a set of target topics into dated phases and a
// day-by-day schedule. With no target topics it falls back to the Topic
// Selector's single recommendation; if that also comes up empty the path
// still has one (empty) phase. The schedule always spans exactly the
// requested timeframe, and EstimatedDuration echoes it.
func GeneratePath(req PathRequest) LearningPath {
	timeframe := req.TimeframeDays
	if timeframe <= 0 {
		timeframe = DefaultTimeframeDays
	}
	daily := req.DailyMinutes
	if daily <= 0 {
		daily = DefaultDailyMinutes
	}

	topics := req.TargetTopics
	if len(topics) == 0 {
		if rec := NextTopic(req.Progress, req.Graph); rec != nil {
			topics = []string{rec.Topic}
		}
	}

	phases := buildPhases(topics, timeframe, req.Graph)
	schedule := buildDailySchedule(phases, timeframe, daily)

	return LearningPath{
		Phases:            phases,
		EstimatedDuration: timeframe,
		DailySchedule:     schedule,
	}
}

// buildPhases slices the topic list sequentially into ceil(n/4) phases
// (minimum one), each with goals, a fixed activity template and a fixed
// milestone template.
func buildPhases(topics []string, timeframe int, graph *curriculum.Graph) []Phase {
	n := len(topics)
	phaseCount := ceilDiv(n, targetTopicsPerPhase)
	if phaseCount < 1 {
		phaseCount = 1
	}
	perPhase := ceilDiv(n, phaseCount)
	duration := ceilDiv(timeframe, phaseCount)

	phases := make([]Phase, 0, phaseCount)
	for i := 0; i < phaseCount; i++ {
		start := i * perPhase
		end := start + perPhase
		if start > n {
			start = n
		}
		if end > n {
			end = n
		}
		phaseTopics := topics[start:end]

		goals := make([]string, len(phaseTopics))
		for j, id := range phaseTopics {
			goals[j] = fmt.Sprintf("Master %s", topicLabel(graph, id))
		}

		phases = append(phases, Phase{
			Phase:    i + 1,
			Duration: duration,
			Topics:   append([]string(nil), phaseTopics...),
			Goals:    goals,
			Activities: []string{
				"Review prerequisite concepts",
				"Work through guided examples",
				"Complete practice problem sets",
				"Take a short check-in quiz",
			},
			Milestones: []string{
				"Complete every practice activity",
				fmt.Sprintf("Reach proficiency in %d topic(s)", len(phaseTopics)),
				"Pass the phase checkpoint quiz",
			},
		})
	}
	return phases
}

// buildDailySchedule assigns each of days 1..timeframe to a phase by even
// division, clamping the final days to the last phase when the division
// does not land exactly.
func buildDailySchedule(phases []Phase, timeframe, daily int) []DaySchedule {
	phaseCount := len(phases)
	if phaseCount == 0 || timeframe <= 0 {
		return nil
	}
	span := float64(timeframe) / float64(phaseCount)

	schedule := make([]DaySchedule, 0, timeframe)
	for day := 1; day <= timeframe; day++ {
		idx := int(float64(day-1) / span)
		if idx >= phaseCount {
			idx = phaseCount - 1
		}
		phase := phases[idx]

		schedule = append(schedule, DaySchedule{
			Day:           day,
			Phase:         phase.Phase,
			Topics:        append([]string(nil), phase.Topics...),
			TimeAllocated: daily,
			Activities: []DayActivity{
				{Kind: ActivityReview, Minutes: reviewMinutes},
				{Kind: ActivityLearn, Minutes: learnMinutes},
				{Kind: ActivityPractice, Minutes: practiceMinutes},
			},
		})
	}
	return schedule
}

// topicLabel prefers the curriculum display name, falling back to the raw
// topic ID for unknown topics.
func topicLabel(graph *curriculum.Graph, id string) string {
	if graph != nil {
		if t, ok := graph.Topic(id); ok {
			return t.Name
		}
	}
	return id
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
