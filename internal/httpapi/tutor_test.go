package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/akarpov/mentora/internal/llm"
	"github.com/akarpov/mentora/internal/tutor"
)

func tutorResponseJSON() json.RawMessage {
	return json.RawMessage(`{
		"explanation": "Place value tells you what each digit is worth. In 374 the 7 sits in the tens place, so it means 7 tens, which is 70.",
		"steps": [
			"Write 374 as 300 + 70 + 4.",
			"Find the digit you are asked about: the 7.",
			"The 7 is in the tens place, so its value is 7 x 10 = 70."
		],
		"check_question": "What is the value of the 5 in 253?"
	}`)
}

func TestTutor(t *testing.T) {
	f := newFixture(t)
	mock := llm.NewMockProvider(llm.MockResponse{Content: tutorResponseJSON()})
	f.server.explainer = tutor.NewService(mock, tutor.DefaultConfig())

	body := map[string]any{"topic": "counting", "question": "Why is the 7 in 374 worth 70?"}
	w := f.post(f.studentPath("/tutor"), body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp tutor.Explanation
	decodeInto(t, w, &resp)
	if resp.Topic != "counting" {
		t.Errorf("topic = %q", resp.Topic)
	}
	if resp.Explanation == "" || len(resp.Steps) != 3 || resp.CheckQuestion == "" {
		t.Errorf("unexpected explanation %+v", resp)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestTutor_NoProvider(t *testing.T) {
	f := newFixture(t)

	w := f.post(f.studentPath("/tutor"), map[string]any{"topic": "counting", "question": "Why?"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if code := errorCode(t, w); code != "llm_failure" {
		t.Errorf("error code = %q", code)
	}
}

func TestTutor_Validation(t *testing.T) {
	f := newFixture(t)
	f.server.explainer = tutor.NewService(llm.NewMockProvider(), tutor.DefaultConfig())

	w := f.post(f.studentPath("/tutor"), map[string]any{"topic": "knitting", "question": "Why?"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown topic: status = %d, want 404", w.Code)
	}

	w = f.post(f.studentPath("/tutor"), map[string]any{"topic": "counting", "question": "   "})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("blank question: status = %d, want 422", w.Code)
	}
}

func TestTutor_ProviderError(t *testing.T) {
	f := newFixture(t)
	// An empty mock queue answers every call with provider-unavailable.
	f.server.explainer = tutor.NewService(llm.NewMockProvider(), tutor.DefaultConfig())

	w := f.post(f.studentPath("/tutor"), map[string]any{"topic": "counting", "question": "Why do I carry the one?"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var envelope errorEnvelope
	decodeInto(t, w, &envelope)
	if envelope.Error.Code != "llm_failure" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
}
