package client

import (
	"time"

	"github.com/tomz197/skyfire/internal/input"
	"github.com/tomz197/skyfire/internal/loop/world"
)

// GameState represents the current screen for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // A run is in progress (possibly paused)
	GameStateGameOver                  // Run ended, show results and leaderboard
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-session state: the current run, the screen being
// shown and the timers that drive screen changes.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	World         *world.World // Current or last finished run, nil before the first
	Running       bool         // Client loop running
	delta         time.Duration
	prevGameState GameState
	wasPaused     bool
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
	gameOverDelay float64 // Seconds until a restart is accepted
	isInactive    bool    // Whether the client is in inactive warning state
	wasInactive   bool
	notice        string  // Announcement from another session
	noticeTimer   float64 // Seconds left for notice
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}

// runBest is the highest score reached during a run. A white hole may
// have reset Score since, but HighScore keeps the peak when it was a record.
func runBest(st world.RunState) int {
	if st.NewHighScore {
		return max(st.HighScore, st.Score)
	}
	return st.Score
}
