package curriculum

import (
	"testing"
)

func testTopics() []Topic {
	return []Topic{
		{ID: "counting", Name: "Counting", Subject: SubjectArithmetic, Grade: 3, Difficulty: DifficultyEasy, Importance: 10},
		{ID: "addition", Name: "Addition", Subject: SubjectArithmetic, Grade: 3, Difficulty: DifficultyEasy, Importance: 9, Prerequisites: []string{"counting"}},
		{ID: "multiplication", Name: "Multiplication", Subject: SubjectArithmetic, Grade: 4, Difficulty: DifficultyMedium, Importance: 8, Prerequisites: []string{"addition"}},
		{ID: "fractions", Name: "Fractions", Subject: SubjectFractions, Grade: 4, Difficulty: DifficultyMedium, Importance: 7, Prerequisites: []string{"multiplication"}},
		{ID: "shapes", Name: "Shapes", Subject: SubjectGeometry, Grade: 3, Difficulty: DifficultyEasy, Importance: 5},
	}
}

func TestNew_BuildsValidGraph(t *testing.T) {
	g, err := New(testTopics())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 5 {
		t.Errorf("got %d topics, want 5", g.Len())
	}
}

func TestNew_RejectsInvalidSet(t *testing.T) {
	topics := []Topic{
		{ID: "a", Subject: SubjectArithmetic, Prerequisites: []string{"b"}},
		{ID: "b", Subject: SubjectArithmetic, Prerequisites: []string{"a"}},
	}
	if _, err := New(topics); err == nil {
		t.Fatal("expected error for cyclic topic set, got nil")
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	g, err := New([]Topic{{ID: "bare", Subject: SubjectArithmetic}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	topic, ok := g.Topic("bare")
	if !ok {
		t.Fatal("topic not found after build")
	}
	if topic.Difficulty != DefaultDifficulty {
		t.Errorf("got difficulty %q, want %q", topic.Difficulty, DefaultDifficulty)
	}
	if topic.Importance != DefaultImportance {
		t.Errorf("got importance %d, want %d", topic.Importance, DefaultImportance)
	}
}

func TestTopic_Lookup(t *testing.T) {
	g, _ := New(testTopics())

	topic, ok := g.Topic("fractions")
	if !ok {
		t.Fatal("fractions not found")
	}
	if topic.Name != "Fractions" {
		t.Errorf("got name %q, want %q", topic.Name, "Fractions")
	}
	if topic.Subject != SubjectFractions {
		t.Errorf("got subject %q, want %q", topic.Subject, SubjectFractions)
	}

	if _, ok := g.Topic("nonexistent"); ok {
		t.Error("expected lookup miss for nonexistent topic")
	}
}

func TestTopics_DeclarationOrder(t *testing.T) {
	g, _ := New(testTopics())
	all := g.Topics()
	want := []string{"counting", "addition", "multiplication", "fractions", "shapes"}
	if len(all) != len(want) {
		t.Fatalf("got %d topics, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestRoots(t *testing.T) {
	g, _ := New(testTopics())
	roots := g.Roots()
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	for _, r := range roots {
		if len(r.Prerequisites) != 0 {
			t.Errorf("root %q has prerequisites: %v", r.ID, r.Prerequisites)
		}
	}
}

func TestPrerequisitesAndDependents(t *testing.T) {
	g, _ := New(testTopics())

	prereqs := g.Prerequisites("multiplication")
	if len(prereqs) != 1 || prereqs[0].ID != "addition" {
		t.Errorf("multiplication prereqs: got %v, want [addition]", prereqs)
	}

	deps := g.Dependents("addition")
	if len(deps) != 1 || deps[0].ID != "multiplication" {
		t.Errorf("addition dependents: got %v, want [multiplication]", deps)
	}

	if got := g.Prerequisites("counting"); len(got) != 0 {
		t.Errorf("counting prereqs: got %d, want 0", len(got))
	}
}

func TestUnlocked(t *testing.T) {
	g, _ := New(testTopics())
	empty := map[string]bool{}

	if !g.Unlocked("counting", empty) {
		t.Error("root topic should be unlocked with empty mastered set")
	}
	if g.Unlocked("addition", empty) {
		t.Error("addition should be locked with empty mastered set")
	}
	if !g.Unlocked("addition", map[string]bool{"counting": true}) {
		t.Error("addition should unlock once counting is mastered")
	}
	if g.Unlocked("nonexistent", empty) {
		t.Error("unknown topic should never be unlocked")
	}
}

func TestAvailable(t *testing.T) {
	g, _ := New(testTopics())

	available := g.Available(map[string]bool{})
	if len(available) != 2 {
		t.Fatalf("got %d available with empty mastered, want 2 (roots)", len(available))
	}

	available = g.Available(map[string]bool{"counting": true})
	ids := map[string]bool{}
	for _, topic := range available {
		ids[topic.ID] = true
	}
	if ids["counting"] {
		t.Error("mastered topic should not be available")
	}
	if !ids["addition"] || !ids["shapes"] {
		t.Errorf("expected addition and shapes available, got %v", ids)
	}
}

func TestAvailable_PreservesDeclarationOrder(t *testing.T) {
	g, _ := New(testTopics())
	available := g.Available(map[string]bool{"counting": true, "addition": true})
	want := []string{"multiplication", "shapes"}
	if len(available) != len(want) {
		t.Fatalf("got %d available, want %d", len(available), len(want))
	}
	for i, id := range want {
		if available[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, available[i].ID, id)
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	g, _ := New(testTopics())
	topo := g.TopologicalOrder()
	if len(topo) != g.Len() {
		t.Fatalf("topo order has %d topics, want %d", len(topo), g.Len())
	}

	pos := make(map[string]int, len(topo))
	for i, topic := range topo {
		pos[topic.ID] = i
	}
	for _, topic := range topo {
		for _, prereqID := range topic.Prerequisites {
			if pos[prereqID] >= pos[topic.ID] {
				t.Errorf("topic %q (pos %d) appears before prerequisite %q (pos %d)",
					topic.ID, pos[topic.ID], prereqID, pos[prereqID])
			}
		}
	}
}

func TestBySubject_SortedByGrade(t *testing.T) {
	g := Default()
	for _, subject := range AllSubjects() {
		topics := g.BySubject(subject)
		if len(topics) == 0 {
			t.Errorf("subject %q has no topics in default curriculum", subject)
		}
		for i := 1; i < len(topics); i++ {
			if topics[i].Grade < topics[i-1].Grade {
				t.Errorf("BySubject(%q): topic %q (grade %d) appears after %q (grade %d)",
					subject, topics[i].ID, topics[i].Grade, topics[i-1].ID, topics[i-1].Grade)
			}
		}
	}
}

func TestDefault_Valid(t *testing.T) {
	g := Default()
	if err := g.Validate(); err != nil {
		t.Fatalf("default curriculum validation failed: %v", err)
	}
	if g.Len() != 22 {
		t.Errorf("got %d topics, want 22", g.Len())
	}
	if len(g.Roots()) != 2 {
		t.Errorf("got %d roots, want 2", len(g.Roots()))
	}
}

func TestTopics_ReturnsCopy(t *testing.T) {
	g, _ := New(testTopics())
	a := g.Topics()
	a[0].Name = "MUTATED"
	b := g.Topics()
	if b[0].Name == "MUTATED" {
		t.Error("Topics did not return a defensive copy")
	}
}
