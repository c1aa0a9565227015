package world

import "github.com/tomz197/skyfire/internal/object"

// Theme is the visual style of a level.
type Theme struct {
	Name   string
	Accent int // ANSI 256-colour index for scenery and banners
	Clouds int // Number of background clouds
}

var themes = []Theme{
	{Name: "Cobalt Drift", Accent: 33, Clouds: 5},
	{Name: "Ember Reach", Accent: 202, Clouds: 3},
	{Name: "Verdant Haze", Accent: 41, Clouds: 7},
	{Name: "Violet Expanse", Accent: 135, Clouds: 4},
	{Name: "Ashen Veil", Accent: 245, Clouds: 8},
	{Name: "Solar Tide", Accent: 220, Clouds: 2},
}

// nextTheme returns the index of a random theme different from prev.
func nextTheme(prev int, rng object.Rand) int {
	return (prev + 1 + rng.Intn(len(themes)-1)) % len(themes)
}

// applyTheme switches to themes[idx] and rebuilds the scenery to match.
func (w *World) applyTheme(idx int) {
	w.themeIdx = idx
	w.theme = themes[idx]
	w.clouds = w.clouds[:0]
	for i := 0; i < w.theme.Clouds; i++ {
		w.clouds = append(w.clouds, object.NewCloud(w.screen, w.rng))
	}
}
