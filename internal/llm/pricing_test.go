package llm

import "testing"

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}

	got := c.Cost(1_000_000, 1_000_000)
	if got < 17.999 || got > 18.001 {
		t.Fatalf("Cost(1M, 1M) = %f, want 18", got)
	}

	got = c.Cost(500, 200)
	want := 500*3.0/1_000_000 + 200*15.0/1_000_000
	if got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("Cost(500, 200) = %f, want %f", got, want)
	}

	if got := c.Cost(0, 0); got != 0 {
		t.Fatalf("Cost(0, 0) = %f, want 0", got)
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gpt-4o-mini"); c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if c := LookupCost("no-such-model"); c != nil {
		t.Fatalf("expected nil for unknown model, got %+v", c)
	}
}

// Every model the friendly-name maps resolve to should have pricing, so
// that default configurations track cost out of the box.
func TestFriendlyModelsArePriced(t *testing.T) {
	for _, models := range []map[string]string{anthropicModels, geminiModels, openaiModels} {
		for friendly, id := range models {
			if LookupCost(id) == nil {
				t.Errorf("no pricing for %s (friendly name %s)", id, friendly)
			}
		}
	}
}
