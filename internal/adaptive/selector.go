package adaptive

import (
	"sort"

	"github.com/akarpov/mentora/internal/curriculum"
)

// inProgressFloor is the exclusive lower bound of the "in-progress" mastery
// band used to prioritize partially learned topics.
const inProgressFloor = 20

// NextTopic picks the single best topic to study next: the greedy
// single-step recommendation, meant to be called again after every mastery
// change.
//
// A topic is mastered once its level reaches MasteryThreshold; it is
// available when every prerequisite is mastered and it is not mastered
// itself. Among available topics, those already in progress (mastery
// strictly between 20 and 70) come first, then importance descending;
// ties keep the curriculum's declaration order. Returns nil when nothing
// is available.
func NextTopic(progress StudentProgress, graph *curriculum.Graph) *TopicRecommendation {
	if graph == nil {
		return nil
	}

	results := make(map[string]MasteryResult, graph.Len())
	mastered := make(map[string]bool, graph.Len())
	for _, topic := range graph.Topics() {
		res := ComputeMastery(progress[topic.ID].Attempts)
		results[topic.ID] = res
		if res.Level >= MasteryThreshold {
			mastered[topic.ID] = true
		}
	}

	available := graph.Available(mastered)
	if len(available) == 0 {
		return nil
	}

	candidates := make([]TopicRecommendation, len(available))
	for i, topic := range available {
		res := results[topic.ID]
		candidates[i] = TopicRecommendation{
			Topic:          topic.ID,
			Difficulty:     topic.Difficulty,
			Importance:     topic.Importance,
			CurrentMastery: res.Level,
			Status:         res.Status,
		}
	}

	inProgress := func(c TopicRecommendation) bool {
		return c.CurrentMastery > inProgressFloor && c.CurrentMastery < MasteryThreshold
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := inProgress(candidates[i]), inProgress(candidates[j])
		if pi != pj {
			return pi
		}
		return candidates[i].Importance > candidates[j].Importance
	})

	return &candidates[0]
}
