package grading

import (
	"strconv"
	"strings"

	"github.com/akarpov/mentora/internal/quizgen"
)

// Verdict is the outcome of the deterministic grading pass.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"

	// VerdictInconclusive means normalization could not decide: one side
	// is free text that neither matches nor parses as a number. The LLM
	// judge settles these.
	VerdictInconclusive Verdict = "inconclusive"
)

// Check compares a student's answer against the question deterministically.
//
// Normalization rules:
// - Whitespace is trimmed and comparison is case-insensitive
// - Equivalent numeric forms are accepted across representations:
//   "2/4" matches "1/2", "0.5" matches "1/2", "50%" matches "1/2",
//   "3.50" matches "3.5", "007" matches "7"
// - For multiple choice: matches the choice text or its index (1-4)
//
// Check never calls the LLM. A free-text mismatch that cannot be settled
// numerically comes back VerdictInconclusive.
func Check(studentAnswer string, q quizgen.Question) Verdict {
	studentAnswer = strings.TrimSpace(studentAnswer)
	if studentAnswer == "" {
		return VerdictIncorrect
	}

	if len(q.Choices) > 0 {
		return checkChoice(studentAnswer, q)
	}

	canonical := strings.TrimSpace(q.Answer)
	if strings.EqualFold(studentAnswer, canonical) {
		return VerdictCorrect
	}

	sr, sok := parseRational(studentAnswer)
	cr, cok := parseRational(canonical)
	if sok && cok {
		if sr == cr {
			return VerdictCorrect
		}
		return VerdictIncorrect
	}

	return VerdictInconclusive
}

// checkChoice grades a multiple-choice answer by index (1-based) or by
// option text. Always conclusive.
func checkChoice(studentAnswer string, q quizgen.Question) Verdict {
	if idx, err := strconv.Atoi(studentAnswer); err == nil && idx >= 1 && idx <= len(q.Choices) {
		if strings.EqualFold(strings.TrimSpace(q.Choices[idx-1]), strings.TrimSpace(q.Answer)) {
			return VerdictCorrect
		}
		return VerdictIncorrect
	}

	if strings.EqualFold(studentAnswer, strings.TrimSpace(q.Answer)) {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

// rational is a reduced fraction with a positive denominator, so two
// equal values always compare equal with ==.
type rational struct {
	num, den int64
}

// parseRational parses an integer, decimal, fraction, or percentage into
// a reduced rational. Returns false for anything non-numeric.
func parseRational(s string) (rational, bool) {
	s = strings.TrimSpace(s)

	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	var r rational
	var ok bool
	switch {
	case strings.Contains(s, "/"):
		r, ok = parseFraction(s)
	case strings.Contains(s, "."):
		r, ok = parseDecimal(s)
	default:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return rational{}, false
		}
		r, ok = rational{n, 1}, true
	}
	if !ok {
		return rational{}, false
	}

	if percent {
		return reduce(r.num, r.den*100)
	}
	return r, true
}

// parseFraction parses "a/b" into a reduced rational.
func parseFraction(s string) (rational, bool) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return rational{}, false
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return rational{}, false
	}
	return reduce(num, den)
}

// parseDecimal parses a decimal string into an exact reduced rational,
// so "0.1" survives without float rounding.
func parseDecimal(s string) (rational, bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if fracPart == "" {
		fracPart = "0"
	}
	if len(fracPart) > 12 {
		return rational{}, false
	}

	ip, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || ip < 0 {
		return rational{}, false
	}
	fp, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil || fp < 0 {
		return rational{}, false
	}

	den := int64(1)
	for i := 0; i < len(fracPart); i++ {
		den *= 10
	}
	num := ip*den + fp
	if neg {
		num = -num
	}
	return reduce(num, den)
}

// reduce normalizes sign and divides out the gcd. Fails on a zero
// denominator.
func reduce(num, den int64) (rational, bool) {
	if den == 0 {
		return rational{}, false
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return rational{num / g, den / g}, true
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
