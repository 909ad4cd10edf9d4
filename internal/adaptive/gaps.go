package adaptive

import (
	"fmt"
	"math"
	"sort"
)

const (
	// gapThreshold is the aggregate accuracy below which a topic counts
	// as a learning gap.
	gapThreshold = 0.7

	// Severity bands within a gap.
	criticalBelow = 0.3
	highBelow     = 0.5

	// maxCommonErrors caps how many incorrect answers a gap report keeps.
	maxCommonErrors = 3

	// fallbackTopic is assigned to questions carrying no topic tag.
	fallbackTopic = "general"
)

// topicTally accumulates question outcomes for one topic.
type topicTally struct {
	topic   string
	correct int
	total   int
	errors  []AnswerRecord
}

// IdentifyGaps aggregates question-level outcomes across a batch of graded
// assessments and reports every topic whose combined accuracy falls below
// 0.7, ranked critical, then high, then medium. Within a severity tier,
// topics keep the order in which they were first encountered. Questions
// without a topic tag are normalized to "general" rather than rejected.
func IdentifyGaps(results []AssessmentResult) []LearningGap {
	tallies := make(map[string]*topicTally)
	var order []string

	for _, result := range results {
		for _, q := range result.Results {
			topic := q.Topic
			if topic == "" {
				topic = fallbackTopic
			}
			tally, ok := tallies[topic]
			if !ok {
				tally = &topicTally{topic: topic}
				tallies[topic] = tally
				order = append(order, topic)
			}
			tally.total++
			if q.IsCorrect {
				tally.correct++
			} else {
				tally.errors = append(tally.errors, AnswerRecord{
					Question:      q.Question,
					StudentAnswer: q.StudentAnswer,
					CorrectAnswer: q.CorrectAnswer,
				})
			}
		}
	}

	var gaps []LearningGap
	for _, topic := range order {
		tally := tallies[topic]
		if tally.total == 0 {
			continue
		}
		accuracy := float64(tally.correct) / float64(tally.total)
		if accuracy >= gapThreshold {
			continue
		}

		severity := severityFor(accuracy)
		errors := tally.errors
		if len(errors) > maxCommonErrors {
			errors = errors[:maxCommonErrors]
		}

		gaps = append(gaps, LearningGap{
			Topic:          topic,
			Severity:       severity,
			Accuracy:       int(math.Round(accuracy * 100)),
			TotalQuestions: tally.total,
			IncorrectCount: tally.total - tally.correct,
			CommonErrors:   errors,
			Recommendation: recommendationFor(severity, topic),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return severityRank(gaps[i].Severity) < severityRank(gaps[j].Severity)
	})
	return gaps
}

func severityFor(accuracy float64) Severity {
	switch {
	case accuracy < criticalBelow:
		return SeverityCritical
	case accuracy < highBelow:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	default:
		return 2
	}
}

// recommendationFor returns the fixed per-severity guidance template.
func recommendationFor(severity Severity, topic string) string {
	switch severity {
	case SeverityCritical:
		return fmt.Sprintf("Go back to the fundamentals of %s with guided lessons before attempting more problems", topic)
	case SeverityHigh:
		return fmt.Sprintf("Review the core concepts of %s and work through examples step by step", topic)
	default:
		return fmt.Sprintf("Keep practicing %s with mixed problem sets to close the remaining gap", topic)
	}
}
