package grading

import (
	"testing"

	"github.com/akarpov/mentora/internal/quizgen"
)

func freeResponse(answer string) quizgen.Question {
	return quizgen.Question{Prompt: "test", Answer: answer}
}

func TestCheck_Integer(t *testing.T) {
	q := freeResponse("42")

	tests := []struct {
		input string
		want  Verdict
	}{
		{"42", VerdictCorrect},
		{" 42 ", VerdictCorrect},
		{"042", VerdictCorrect},
		{"84/2", VerdictCorrect},
		{"42.0", VerdictCorrect},
		{"43", VerdictIncorrect},
		{"-42", VerdictIncorrect},
		{"", VerdictIncorrect},
		{"forty-two", VerdictInconclusive},
	}

	for _, tc := range tests {
		if got := Check(tc.input, q); got != tc.want {
			t.Errorf("Check(%q, 42) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheck_Decimal(t *testing.T) {
	q := freeResponse("3.5")

	tests := []struct {
		input string
		want  Verdict
	}{
		{"3.5", VerdictCorrect},
		{"3.50", VerdictCorrect},
		{"3.500", VerdictCorrect},
		{"7/2", VerdictCorrect},
		{"3.6", VerdictIncorrect},
		{"35", VerdictIncorrect},
	}

	for _, tc := range tests {
		if got := Check(tc.input, q); got != tc.want {
			t.Errorf("Check(%q, 3.5) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheck_Fraction(t *testing.T) {
	q := freeResponse("1/2")

	tests := []struct {
		input string
		want  Verdict
	}{
		{"1/2", VerdictCorrect},
		{"2/4", VerdictCorrect},
		{"3/6", VerdictCorrect},
		{" 1/2 ", VerdictCorrect},
		{"0.5", VerdictCorrect},
		{".5", VerdictCorrect},
		{"50%", VerdictCorrect},
		{"-1/2", VerdictIncorrect},
		{"1/3", VerdictIncorrect},
		{"one half", VerdictInconclusive},
	}

	for _, tc := range tests {
		if got := Check(tc.input, q); got != tc.want {
			t.Errorf("Check(%q, 1/2) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheck_NegativeFractionForms(t *testing.T) {
	q := freeResponse("-1/2")

	tests := []struct {
		input string
		want  Verdict
	}{
		{"-1/2", VerdictCorrect},
		{"1/-2", VerdictCorrect},
		{"-2/4", VerdictCorrect},
		{"-0.5", VerdictCorrect},
		{"1/2", VerdictIncorrect},
	}

	for _, tc := range tests {
		if got := Check(tc.input, q); got != tc.want {
			t.Errorf("Check(%q, -1/2) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheck_FreeText(t *testing.T) {
	q := freeResponse("obtuse")

	tests := []struct {
		input string
		want  Verdict
	}{
		{"obtuse", VerdictCorrect},
		{"Obtuse", VerdictCorrect},
		{"  OBTUSE  ", VerdictCorrect},
		{"an obtuse angle", VerdictInconclusive},
		{"acute", VerdictInconclusive},
		{"90", VerdictInconclusive},
	}

	for _, tc := range tests {
		if got := Check(tc.input, q); got != tc.want {
			t.Errorf("Check(%q, obtuse) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheck_NumericAnswerTextInput(t *testing.T) {
	// The canonical answer is numeric but the student wrote words. The
	// judge gets to decide.
	q := freeResponse("12")
	if got := Check("a dozen", q); got != VerdictInconclusive {
		t.Errorf("Check(a dozen, 12) = %v, want inconclusive", got)
	}
}

func TestCheck_MultipleChoiceByIndex(t *testing.T) {
	q := quizgen.Question{
		Prompt:  "Which fraction is largest?",
		Answer:  "3/4",
		Choices: []string{"1/2", "3/4", "2/3", "1/4"},
	}

	// Answer is choices[1], so index "2" matches.
	if got := Check("2", q); got != VerdictCorrect {
		t.Errorf("Check(2) = %v, want correct", got)
	}
	if got := Check("1", q); got != VerdictIncorrect {
		t.Errorf("Check(1) = %v, want incorrect", got)
	}
	// Out-of-range index falls back to text matching.
	if got := Check("9", q); got != VerdictIncorrect {
		t.Errorf("Check(9) = %v, want incorrect", got)
	}
}

func TestCheck_MultipleChoiceByText(t *testing.T) {
	q := quizgen.Question{
		Prompt:  "Which angle is larger than 90 degrees?",
		Answer:  "obtuse",
		Choices: []string{"acute", "right", "obtuse", "straight"},
	}

	if got := Check("obtuse", q); got != VerdictCorrect {
		t.Errorf("Check(obtuse) = %v, want correct", got)
	}
	if got := Check("Obtuse", q); got != VerdictCorrect {
		t.Errorf("Check(Obtuse) = %v, want correct", got)
	}
	if got := Check("acute", q); got != VerdictIncorrect {
		t.Errorf("Check(acute) = %v, want incorrect", got)
	}
	// Multiple choice is always conclusive, even for unmatched text.
	if got := Check("not sure", q); got != VerdictIncorrect {
		t.Errorf("Check(not sure) = %v, want incorrect", got)
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		input string
		num   int64
		den   int64
		ok    bool
	}{
		{"7", 7, 1, true},
		{"-3", -3, 1, true},
		{"007", 7, 1, true},
		{"0.75", 3, 4, true},
		{".5", 1, 2, true},
		{"3.", 3, 1, true},
		{"-0.25", -1, 4, true},
		{"2/4", 1, 2, true},
		{"1/-2", -1, 2, true},
		{"50%", 1, 2, true},
		{"100%", 1, 1, true},
		{"0", 0, 1, true},
		{"0.0", 0, 1, true},
		{"1/0", 0, 0, false},
		{"abc", 0, 0, false},
		{"1 1/2", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range tests {
		r, ok := parseRational(tc.input)
		if ok != tc.ok {
			t.Errorf("parseRational(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && (r.num != tc.num || r.den != tc.den) {
			t.Errorf("parseRational(%q) = %d/%d, want %d/%d", tc.input, r.num, r.den, tc.num, tc.den)
		}
	}
}
