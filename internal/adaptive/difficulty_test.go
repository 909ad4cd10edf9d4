package adaptive

import (
	"testing"

	"github.com/akarpov/mentora/internal/curriculum"
)

func TestOptimalDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		recent []bool
		want   curriculum.Difficulty
	}{
		{"empty history", nil, curriculum.DifficultyEasy},
		{"five correct", []bool{true, true, true, true, true}, curriculum.DifficultyHard},
		{"three of five", []bool{true, true, true, false, false}, curriculum.DifficultyMedium},
		{"one of five", []bool{true, false, false, false, false}, curriculum.DifficultyEasy},
		{"four of five", []bool{true, true, true, true, false}, curriculum.DifficultyHard},
		{"three of four", []bool{true, true, true, false}, curriculum.DifficultyMedium},
		{"single correct", []bool{true}, curriculum.DifficultyHard},
		{"single incorrect", []bool{false}, curriculum.DifficultyEasy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptimalDifficulty(tt.recent); got != tt.want {
				t.Errorf("OptimalDifficulty(%v) = %q, want %q", tt.recent, got, tt.want)
			}
		})
	}
}

func TestOptimalDifficulty_WindowsLastFive(t *testing.T) {
	// Eight outcomes: five early failures, then three successes. Only the
	// last five count: 3/5 = 0.6 lands on medium.
	recent := []bool{false, false, false, false, false, true, true, true}
	if got := OptimalDifficulty(recent); got != curriculum.DifficultyMedium {
		t.Errorf("OptimalDifficulty = %q, want %q", got, curriculum.DifficultyMedium)
	}

	// A long perfect run stays hard regardless of history length.
	long := make([]bool, 20)
	for i := range long {
		long[i] = true
	}
	if got := OptimalDifficulty(long); got != curriculum.DifficultyHard {
		t.Errorf("OptimalDifficulty = %q, want %q", got, curriculum.DifficultyHard)
	}
}
