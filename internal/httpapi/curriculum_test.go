package httpapi

import (
	"net/http"
	"testing"
)

func TestCurriculumList(t *testing.T) {
	f := newFixture(t)

	w := f.get("/api/v1/curriculum")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Count  int         `json:"count"`
		Topics []topicView `json:"topics"`
	}
	decodeInto(t, w, &resp)
	if resp.Count != 3 || len(resp.Topics) != 3 {
		t.Fatalf("count = %d with %d topics, want 3", resp.Count, len(resp.Topics))
	}
	// Declaration order is preserved.
	if resp.Topics[0].ID != "counting" || resp.Topics[2].ID != "add-fractions" {
		t.Errorf("unexpected topic order %+v", resp.Topics)
	}
}

func TestCurriculumTopic(t *testing.T) {
	f := newFixture(t)

	w := f.get("/api/v1/curriculum/addition")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		topicView
		Dependents []string `json:"dependents"`
	}
	decodeInto(t, w, &resp)
	if resp.ID != "addition" || resp.Name != "Addition" {
		t.Errorf("unexpected topic %+v", resp)
	}
	if len(resp.Prerequisites) != 1 || resp.Prerequisites[0] != "counting" {
		t.Errorf("prerequisites = %v", resp.Prerequisites)
	}
	if len(resp.Dependents) != 1 || resp.Dependents[0] != "add-fractions" {
		t.Errorf("dependents = %v", resp.Dependents)
	}
}

func TestCurriculumTopic_Unknown(t *testing.T) {
	f := newFixture(t)

	w := f.get("/api/v1/curriculum/knitting")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if code := errorCode(t, w); code != "not_found" {
		t.Errorf("error code = %q", code)
	}
}
