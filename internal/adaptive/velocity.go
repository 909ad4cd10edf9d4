package adaptive

import (
	"math"
	"time"
)

const (
	// DefaultVelocityWeeks is the trailing window used when the caller
	// does not specify one.
	DefaultVelocityWeeks = 4

	// masteryPointsPerTopic is the assumed mastery gain from one
	// topic-equivalent of study, used to convert topics/week into
	// points/day for prediction. Tunable, not derived.
	masteryPointsPerTopic = 10

	// Prediction bounds in days.
	minPredictionDays = 1
	maxPredictionDays = 90
)

// ComputeVelocity summarizes study activity over the trailing weeks*7 days
// before now. A topic counts as started when it has at least one attempt in
// the window, and as mastered when the mastery computed from only the
// windowed attempts reaches the threshold; earlier history deliberately
// does not contribute. Time spent is summed only over topics with recent
// activity. A non-positive weeks value yields the zero report.
func ComputeVelocity(progress StudentProgress, weeks int, now time.Time) VelocityReport {
	if weeks <= 0 {
		return VelocityReport{Pace: PaceSlow}
	}

	cutoff := now.AddDate(0, 0, -weeks*7)

	var started, mastered, timeSpent int
	for _, tp := range progress {
		var recent []Attempt
		for _, a := range tp.Attempts {
			if !a.Timestamp.Before(cutoff) {
				recent = append(recent, a)
			}
		}
		if len(recent) == 0 {
			continue
		}
		started++
		timeSpent += tp.TimeSpent
		if ComputeMastery(recent).Level >= MasteryThreshold {
			mastered++
		}
	}

	perWeek := float64(mastered) / float64(weeks)
	return VelocityReport{
		TopicsPerWeek:  perWeek,
		TopicsStarted:  started,
		TopicsMastered: mastered,
		TimeSpent:      timeSpent,
		Pace:           paceFor(perWeek),
	}
}

func paceFor(topicsPerWeek float64) Pace {
	switch {
	case topicsPerWeek > 1:
		return PaceFast
	case topicsPerWeek > 0.5:
		return PaceSteady
	default:
		return PaceSlow
	}
}

// PredictDaysToMastery projects how many days of study remain before the
// topic reaches the mastery threshold, given the student's measured
// velocity. Returns 0 when the topic is already at or past the threshold;
// otherwise the projection is clamped to [1,90], with a zero or negative
// rate saturating at the 90-day cap.
func PredictDaysToMastery(topic string, progress StudentProgress, v VelocityReport) int {
	level := ComputeMastery(progress[topic].Attempts).Level
	remaining := MasteryThreshold - level
	if remaining <= 0 {
		return 0
	}

	pointsPerDay := v.TopicsPerWeek / 7 * masteryPointsPerTopic
	if pointsPerDay <= 0 {
		return maxPredictionDays
	}

	days := int(math.Ceil(float64(remaining) / pointsPerDay))
	if days < minPredictionDays {
		return minPredictionDays
	}
	if days > maxPredictionDays {
		return maxPredictionDays
	}
	return days
}
