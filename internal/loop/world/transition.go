package world

import (
	"fmt"

	"github.com/tomz197/skyfire/internal/audio"
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/physics"
)

// Fade directions of the level transition.
const (
	FadeIdle = 0
	FadeOut  = 1
	FadeIn   = -1
)

// Transition is the level-change fade: Idle, FadingOut or FadingIn,
// encoded as a direction and an overlay alpha in [0, 1].
type Transition struct {
	Direction int
	Alpha     float64
}

// enterBlackHole starts the fade out, locks input and removes both portals.
func (w *World) enterBlackHole() {
	w.State.InTransition = true
	w.transition = Transition{Direction: FadeOut}
	w.blackHole = nil
	w.whiteHole = nil
	w.sounds.Play(audio.BlackHoleEntered)
}

// enterWhiteHole resets the score and removes only the white hole. It does
// not touch the level, difficulty or input lock.
func (w *World) enterWhiteHole() {
	w.State.Score = 0
	w.whiteHole = nil
	w.showMessage("SCORE RESET")
	w.sounds.Play(audio.WhiteHoleEntered)
}

// advanceTransition steps the fade by one tick.
func (w *World) advanceTransition() {
	switch w.transition.Direction {
	case FadeOut:
		w.transition.Alpha = physics.Clamp(w.transition.Alpha+config.FadeStep, 0, 1)
		if w.transition.Alpha >= 1 {
			w.completeLevel()
			w.transition.Direction = FadeIn
		}
	case FadeIn:
		w.transition.Alpha = physics.Clamp(w.transition.Alpha-config.FadeStep, 0, 1)
		if w.transition.Alpha <= 0 {
			w.transition = Transition{}
			w.State.InTransition = false
		}
	}
}

// completeLevel runs at full fade: the next level starts with an empty sky.
// Player bullets are kept; they are harmless with no enemies left.
func (w *World) completeLevel() {
	w.State.Level++
	w.State.PortalsSpawned = false
	w.State.Difficulty = max(w.State.Difficulty, w.State.Level)

	for _, e := range w.enemies {
		e.Deactivate()
	}
	for _, b := range w.enemyBullets {
		b.Deactivate()
	}
	for _, p := range w.powerUps {
		p.Deactivate()
	}
	w.blackHole = nil
	w.whiteHole = nil

	w.applyTheme(nextTheme(w.themeIdx, w.rng))
	w.showMessage(fmt.Sprintf("LEVEL %d", w.State.Level))
	w.nextSpawn = w.now.Add(config.LevelGracePeriod)
	w.sounds.Play(audio.LevelStarted)
}
