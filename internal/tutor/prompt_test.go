package tutor

import (
	"strings"
	"testing"

	"github.com/akarpov/mentora/internal/adaptive"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(Input{
		Topic:    fractionsTopic(),
		Question: "Why do I need a common denominator?",
		Mastery:  adaptive.MasteryResult{Status: adaptive.StatusStruggling, TotalAttempts: 12, RecentAccuracy: 0.4},
	})

	for _, want := range []string{
		"Topic: Adding Fractions",
		"Subject: Fractions",
		"Grade: 4",
		"Student's level: struggling (12 attempts, 40% recent accuracy)",
		"Student's question:\nWhy do I need a common denominator?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_NoPracticeYet(t *testing.T) {
	msg := buildUserMessage(Input{
		Topic:    fractionsTopic(),
		Question: "What is a fraction?",
		Mastery:  adaptive.MasteryResult{Status: adaptive.StatusNotStarted},
	})

	if !strings.Contains(msg, "no practice on this topic yet") {
		t.Errorf("expected not-started level line:\n%s", msg)
	}
	if !strings.Contains(msg, "first contact with the topic") {
		t.Errorf("expected from-zero tone guidance:\n%s", msg)
	}
}

func TestRegisterFor_AllBands(t *testing.T) {
	bands := []adaptive.Status{
		adaptive.StatusNotStarted,
		adaptive.StatusNeedsSupport,
		adaptive.StatusStruggling,
		adaptive.StatusDeveloping,
		adaptive.StatusProficient,
		adaptive.StatusMastered,
	}
	for _, band := range bands {
		if registerFor(band) == "" {
			t.Errorf("no tone guidance for %q", band)
		}
	}
	if registerFor(adaptive.Status("unknown")) == "" {
		t.Error("expected fallback guidance for unknown bands")
	}
}
