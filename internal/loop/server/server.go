// Package server tracks the game sessions sharing one process: it hands
// out client handles, keeps the session leaderboard and the persisted high
// score, and broadcasts shutdown.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfire/internal/store"
)

// GameServer is the interface clients use to communicate with the hub.
// Decouples the Client from the concrete Server implementation, enabling
// testing.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	HighScore() int
	ReportScore(clientID, score int)
	TopScores() []TopScoreEntry
	Scores() store.HighScores
}

// Server manages the sessions of one process. Each session simulates its
// own world; the server only holds what they share.
type Server struct {
	scores       store.HighScores
	logger       *log.Logger
	clients      map[int]*ClientHandle
	nextClientID int
	best         map[int]TopScoreEntry // Best score per session, kept after disconnect
	highScore    int
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown, records)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type     ClientEventType
	Username string // For high score events
	Score    int    // For high score events
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
	EventHighScore
)

// NewServer creates a server around the shared high score store. The stored
// value is read once; a load failure starts from zero.
func NewServer(scores store.HighScores, logger *log.Logger) *Server {
	if scores == nil {
		scores = &store.Memory{}
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		scores:       scores,
		logger:       logger,
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		best:         make(map[int]TopScoreEntry),
	}

	hs, err := scores.Load()
	if err != nil {
		logger.Warn("Could not load high score", "err", err)
	}
	s.highScore = hs
	return s
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	return handle
}

// UnregisterClient removes a client from the server and closes its event channel.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients[clientID]; ok {
		close(handle.EventsCh)
		delete(s.clients, clientID)
	}
}

// Clients returns the number of connected sessions.
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Scores returns the shared high score store for new runs.
func (s *Server) Scores() store.HighScores {
	return s.scores
}

// HighScore returns the best score seen by this process, including the
// value loaded at startup.
func (s *Server) HighScore() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highScore
}

// ReportScore records a finished run. A new record is announced to every
// other connected session.
func (s *Server) ReportScore(clientID, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	if entry, seen := s.best[clientID]; !seen || score > entry.Score {
		s.best[clientID] = TopScoreEntry{Username: handle.Username, Score: score, clientID: clientID}
	}
	if score <= s.highScore {
		return
	}
	s.highScore = score
	s.logger.Info("New high score", "user", handle.Username, "score", score)

	for id, other := range s.clients {
		if id == clientID {
			continue
		}
		select {
		case other.EventsCh <- ClientEvent{Type: EventHighScore, Username: handle.Username, Score: score}:
		default:
		}
	}
}

// TopScores returns the leaderboard of this process, best first.
func (s *Server) TopScores() []TopScoreEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return topScores(s.best, MaxTopScores)
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Clients() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
