package world

import "time"

// RunState holds the scalars of one run. It is owned by World and only
// mutated from Tick and the World methods it calls.
type RunState struct {
	Running         bool
	Paused          bool
	Score           int // Can be reset to 0 by a white hole
	HighScore       int // Never decreases
	NewHighScore    bool
	EnemiesDefeated int
	Difficulty      int // Ratchet, >= 1
	Bombs           int
	Level           int // Starts at 1
	PortalsSpawned  bool
	InTransition    bool
	Message         string
	MessageUntil    time.Time
}

// Intent is the input snapshot for one tick. Bomb is edge-triggered: the
// caller sets it only on the frame the key went down.
type Intent struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Bomb                  bool
}
