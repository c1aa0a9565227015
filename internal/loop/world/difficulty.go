package world

import "github.com/tomz197/skyfire/internal/loop/config"

// DifficultyFor maps a score to its difficulty level.
func DifficultyFor(score int) int {
	if score < 0 {
		score = 0
	}
	return score/config.DifficultyScoreStep + 1
}

// updateDifficulty raises the stored difficulty to match the score. It never
// lowers it, so a white-hole reset keeps the current level of pressure.
func (w *World) updateDifficulty() {
	if d := DifficultyFor(w.State.Score); d > w.State.Difficulty {
		w.State.Difficulty = d
	}
}
