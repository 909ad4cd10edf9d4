package adaptive

import "github.com/akarpov/mentora/internal/curriculum"

// difficultyWindow is how many trailing outcomes feed the difficulty choice.
const difficultyWindow = 5

// OptimalDifficulty picks the next question difficulty from a rolling window
// of pass/fail outcomes. An empty history starts at easy; accuracy over the
// last five outcomes of at least 0.8 moves to hard, at least 0.6 to medium,
// anything below stays easy.
func OptimalDifficulty(recent []bool) curriculum.Difficulty {
	if len(recent) == 0 {
		return curriculum.DifficultyEasy
	}

	window := recent
	if len(window) > difficultyWindow {
		window = window[len(window)-difficultyWindow:]
	}

	correct := 0
	for _, ok := range window {
		if ok {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(window))

	switch {
	case accuracy >= 0.8:
		return curriculum.DifficultyHard
	case accuracy >= 0.6:
		return curriculum.DifficultyMedium
	default:
		return curriculum.DifficultyEasy
	}
}
