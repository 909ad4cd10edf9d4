package adaptive

import "math"

const (
	// MasteryThreshold is the level at which a topic counts as mastered
	// for prerequisite gating, velocity counting and prediction.
	MasteryThreshold = 70

	// recentWindow caps how many trailing attempts feed the consistency
	// and recent-accuracy figures.
	recentWindow = 5

	// confidenceSaturation is the attempt count at which confidence
	// reaches 1.
	confidenceSaturation = 10
)

// ComputeMastery derives a mastery score from a chronologically ordered
// attempt sequence.
//
// The level blends two signals: a recency-weighted mean accuracy over the
// full history (the weight of the attempt at 1-indexed position i of n is
// i/n, so later attempts dominate; the weighted sum is divided by the total
// weight) and a consistency term computed from the last five attempts as
// 1 - sqrt(population variance). Consistency is deliberately left unclamped.
// The blend is 70% weighted accuracy, 30% consistency, rounded to a 0-100
// level.
func ComputeMastery(attempts []Attempt) MasteryResult {
	n := len(attempts)
	if n == 0 {
		return MasteryResult{Level: 0, Status: StatusNotStarted, Confidence: 0}
	}

	var weightedSum, totalWeight float64
	for i, a := range attempts {
		weight := float64(i+1) / float64(n)
		weightedSum += a.Accuracy() * weight
		totalWeight += weight
	}
	weighted := weightedSum / totalWeight

	recent := recentAccuracies(attempts)
	consistency := 1 - math.Sqrt(populationVariance(recent))

	// Rounded, then clamped: accuracies in [0,1] keep the blend in range
	// on their own, but callers are not validated, so out-of-range input
	// (correct > total) is pinned here instead of leaking past 100.
	level := clampLevel(int(math.Round((weighted*0.7 + consistency*0.3) * 100)))

	return MasteryResult{
		Level:          level,
		Status:         StatusForLevel(level),
		Confidence:     confidence(n),
		TotalAttempts:  n,
		RecentAccuracy: mean(recent),
	}
}

// StatusForLevel maps a 0-100 level to its status band. Bounds are
// inclusive lower bounds: 90 mastered, 70 proficient, 50 developing,
// 30 struggling.
func StatusForLevel(level int) Status {
	switch {
	case level >= 90:
		return StatusMastered
	case level >= MasteryThreshold:
		return StatusProficient
	case level >= 50:
		return StatusDeveloping
	case level >= 30:
		return StatusStruggling
	default:
		return StatusNeedsSupport
	}
}

// recentAccuracies returns per-attempt accuracies for the trailing window.
func recentAccuracies(attempts []Attempt) []float64 {
	start := 0
	if len(attempts) > recentWindow {
		start = len(attempts) - recentWindow
	}
	recent := attempts[start:]
	accuracies := make([]float64, len(recent))
	for i, a := range recent {
		accuracies[i] = a.Accuracy()
	}
	return accuracies
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}

// confidence grows linearly with attempt count and saturates at 1.
func confidence(n int) float64 {
	return math.Min(1, float64(n)/confidenceSaturation)
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
