package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds a validated topic DAG with precomputed indices.
// Topics keep their declaration order, which downstream consumers rely on
// as a deterministic tiebreak.
type Graph struct {
	topics     []Topic
	byID       map[string]*Topic
	bySubject  map[Subject][]Topic
	roots      []Topic
	dependents map[string][]string
	topoOrder  []Topic
	topoIndex  map[string]int
}

// New builds a Graph from a slice of topics. It validates the set (duplicate
// IDs, dangling or cyclic prerequisites, missing roots, malformed fields) and
// fills in DefaultDifficulty and DefaultImportance for topics that omit them.
func New(topics []Topic) (*Graph, error) {
	if err := validateTopics(topics); err != nil {
		return nil, err
	}

	g := &Graph{
		topics:     slices.Clone(topics),
		byID:       make(map[string]*Topic, len(topics)),
		bySubject:  make(map[Subject][]Topic),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(topics)),
	}

	for i := range g.topics {
		t := &g.topics[i]
		if t.Difficulty == "" {
			t.Difficulty = DefaultDifficulty
		}
		if t.Importance <= 0 {
			t.Importance = DefaultImportance
		}
		g.byID[t.ID] = t
	}

	for i := range g.topics {
		for _, prereqID := range g.topics[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.topics[i].ID)
		}
	}

	// Topological order via Kahn's algorithm. Queues are sorted so the
	// result is deterministic across runs.
	inDegree := make(map[string]int, len(g.topics))
	for i := range g.topics {
		inDegree[g.topics[i].ID] = len(g.topics[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		t := g.byID[id]
		g.topoOrder = append(g.topoOrder, *t)

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	for i, t := range g.topoOrder {
		g.topoIndex[t.ID] = i
	}

	for i := range g.topics {
		if len(g.topics[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.topics[i])
		}
	}

	for i := range g.topics {
		t := g.topics[i]
		g.bySubject[t.Subject] = append(g.bySubject[t.Subject], t)
	}
	for subject, group := range g.bySubject {
		sorted := slices.Clone(group)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Grade != sorted[j].Grade {
				return sorted[i].Grade < sorted[j].Grade
			}
			return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
		})
		g.bySubject[subject] = sorted
	}

	return g, nil
}

// Len returns the number of topics in the graph.
func (g *Graph) Len() int {
	return len(g.topics)
}

// Topic returns a topic by ID.
func (g *Graph) Topic(id string) (Topic, bool) {
	t, ok := g.byID[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// Topics returns all topics in declaration order.
func (g *Graph) Topics() []Topic {
	return slices.Clone(g.topics)
}

// BySubject returns all topics in a subject, ordered by grade then
// topological position.
func (g *Graph) BySubject(subject Subject) []Topic {
	return slices.Clone(g.bySubject[subject])
}

// Roots returns all topics with no prerequisites, in declaration order.
func (g *Graph) Roots() []Topic {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite topics for a topic ID.
func (g *Graph) Prerequisites(id string) []Topic {
	t, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Topic, 0, len(t.Prerequisites))
	for _, prereqID := range t.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the topics that directly depend on the given topic ID.
func (g *Graph) Dependents(id string) []Topic {
	depIDs := g.dependents[id]
	result := make([]Topic, 0, len(depIDs))
	for _, depID := range depIDs {
		if t, ok := g.byID[depID]; ok {
			result = append(result, *t)
		}
	}
	return result
}

// Unlocked reports whether every prerequisite of the topic is in the
// mastered set. Unknown IDs are never unlocked.
func (g *Graph) Unlocked(id string, mastered map[string]bool) bool {
	t, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range t.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// Available returns all topics that are unlocked but not themselves in the
// mastered set, in declaration order.
func (g *Graph) Available(mastered map[string]bool) []Topic {
	var result []Topic
	for i := range g.topics {
		t := g.topics[i]
		if !mastered[t.ID] && g.Unlocked(t.ID, mastered) {
			result = append(result, t)
		}
	}
	return result
}

// TopologicalOrder returns all topics in a valid topological order.
func (g *Graph) TopologicalOrder() []Topic {
	return slices.Clone(g.topoOrder)
}

// Validate re-runs the structural checks on the graph's topic set.
func (g *Graph) Validate() error {
	return validateTopics(g.topics)
}

// MustNew is New for statically declared curricula; it panics on invalid
// input.
func MustNew(topics []Topic) *Graph {
	g, err := New(topics)
	if err != nil {
		panic(fmt.Sprintf("curriculum: invalid topic set: %v", err))
	}
	return g
}
