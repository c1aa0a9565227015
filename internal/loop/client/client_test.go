package client

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfire/internal/input"
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/loop/server"
	"github.com/tomz197/skyfire/internal/loop/world"
	"github.com/tomz197/skyfire/internal/store"
)

// fakeServer records what a client reports and lets tests push events.
type fakeServer struct {
	handle     *server.ClientHandle
	high       int
	scores     store.Memory
	reported   []int
	unregister int
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		handle: &server.ClientHandle{ID: 7, Username: "tester", EventsCh: make(chan server.ClientEvent, 4)},
		high:   300,
	}
}

func (f *fakeServer) RegisterClient(string) *server.ClientHandle { return f.handle }
func (f *fakeServer) UnregisterClient(int)                       { f.unregister++ }
func (f *fakeServer) HighScore() int                             { return f.high }
func (f *fakeServer) ReportScore(_, score int)                   { f.reported = append(f.reported, score) }
func (f *fakeServer) Scores() store.HighScores                   { return &f.scores }

func (f *fakeServer) TopScores() []server.TopScoreEntry {
	return []server.TopScoreEntry{{Username: "tester", Score: 120}, {Username: "", Score: 80}}
}

type testClient struct {
	*Client
	srv  *fakeServer
	out  *bytes.Buffer
	size *[2]int
}

func newTestClient(t *testing.T) testClient {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	size := &[2]int{80, 24}
	srv := newFakeServer()
	out := &bytes.Buffer{}
	c := NewClient(srv, bufio.NewReader(pr), out, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return size[0], size[1], nil },
		Username:     "tester",
		Logger:       log.New(io.Discard),
	})
	return testClient{Client: c, srv: srv, out: out, size: size}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{config.MaxTermWidth + 20, 24, config.MaxTermWidth, 24, 10, 0},
		{100, config.MaxTermHeight + 11, 100, config.MaxTermHeight, 0, 5},
	}
	for _, tt := range tests {
		rw, rh, oc, or := clampTermSize(tt.w, tt.h)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
			t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d", tt.w, tt.h, rw, rh, oc, or)
		}
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health, max       int
		wantFull, wantAll int
	}{
		{100, 100, 10, 10},
		{50, 100, 5, 10},
		{1, 100, 1, 10}, // alive always shows a sliver
		{0, 100, 0, 10},
		{-5, 100, 0, 10},
		{150, 100, 10, 10},
	}
	for _, tt := range tests {
		filled, empty := healthBar(tt.health, tt.max, 10)
		full := strings.Count(filled, "█")
		if full != tt.wantFull || full+strings.Count(empty, "·") != tt.wantAll {
			t.Errorf("healthBar(%d, %d) = %q %q", tt.health, tt.max, filled, empty)
		}
	}
	if f, e := healthBar(10, 0, 10); f != "" || e != "" {
		t.Error("zero max health should render nothing")
	}
}

func TestTimerBar(t *testing.T) {
	if got := timerBar(1, 4); got != "▮▮▮▮" {
		t.Errorf("full = %q", got)
	}
	if got := timerBar(0.5, 4); got != "▮▮▯▯" {
		t.Errorf("half = %q", got)
	}
	if got := timerBar(-1, 2); got != "▯▯" {
		t.Errorf("negative = %q", got)
	}
}

func TestRunBest(t *testing.T) {
	if got := runBest(world.RunState{Score: 40, HighScore: 500}); got != 40 {
		t.Errorf("no record: got %d, want final score", got)
	}
	// Record set, then a white hole reset the score
	if got := runBest(world.RunState{Score: 0, HighScore: 650, NewHighScore: true}); got != 650 {
		t.Errorf("record: got %d, want 650", got)
	}
}

func TestStartPlayGameOverRestart(t *testing.T) {
	c := newTestClient(t)

	c.state.Input = input.Input{Enter: true}
	c.updateStartState()
	if c.state.GameState != GameStatePlaying || c.state.World == nil {
		t.Fatalf("Enter should start a run, state = %v", c.state.GameState)
	}
	if got := c.state.World.State.HighScore; got != 300 {
		t.Errorf("run should start from the shared best, got %d", got)
	}

	if err := c.drawFrame(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.out.String(), "SCORE") {
		t.Error("HUD missing from playing frame")
	}

	first := c.state.World
	first.Player().TakeDamage(first.Player().MaxHealth, first.Now())
	c.state.Input = input.Input{}
	c.state.delta = 16 * time.Millisecond
	for i := 0; i < 1000 && c.state.GameState == GameStatePlaying; i++ {
		c.updatePlayingState()
	}
	if c.state.GameState != GameStateGameOver {
		t.Fatalf("run never finished, state = %v", c.state.GameState)
	}
	if len(c.srv.reported) != 1 || c.srv.reported[0] != 0 {
		t.Errorf("reported = %v, want [0]", c.srv.reported)
	}

	c.out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.out.String(), "Top pilots") || !strings.Contains(c.out.String(), "anonymous") {
		t.Error("leaderboard missing from game over screen")
	}

	c.state.Input = input.Input{Enter: true}
	c.updateGameOverState()
	if c.state.GameState != GameStateGameOver {
		t.Fatal("restart must wait for the game over delay")
	}

	c.state.delta = 2 * time.Second
	c.updateGameOverState()
	c.updateGameOverState()
	if c.state.GameState != GameStatePlaying || c.state.World == first {
		t.Error("Enter after the delay should start a fresh run")
	}
}

func TestPauseFreezesRun(t *testing.T) {
	c := newTestClient(t)
	c.startGame()
	c.state.delta = 16 * time.Millisecond

	c.state.Input = input.Input{Pause: true}
	c.updatePlayingState()
	if !c.state.World.State.Paused {
		t.Fatal("P should pause the run")
	}

	before := c.state.World.Now()
	c.state.Input = input.Input{}
	for i := 0; i < 10; i++ {
		c.updatePlayingState()
	}
	if !c.state.World.Now().Equal(before) {
		t.Error("simulation clock advanced while paused")
	}

	c.out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.out.String(), "PAUSED") {
		t.Error("pause banner missing")
	}

	c.state.Input = input.Input{Pause: true}
	c.updatePlayingState()
	if c.state.World.State.Paused {
		t.Error("second P should resume")
	}
}

func TestLongFramesAreClamped(t *testing.T) {
	c := newTestClient(t)
	c.startGame()

	before := c.state.World.Now()
	c.state.delta = 5 * time.Second
	c.updatePlayingState()
	if got := c.state.World.Now().Sub(before); got != config.MaxFrameDelta {
		t.Errorf("clock advanced %v, want %v", got, config.MaxFrameDelta)
	}
}

func TestServerEvents(t *testing.T) {
	c := newTestClient(t)

	c.srv.handle.EventsCh <- server.ClientEvent{Type: server.EventHighScore, Username: "ace", Score: 900}
	c.processServerEvents()
	if !strings.Contains(c.state.notice, "ace") || c.state.noticeTimer <= 0 {
		t.Errorf("record notice not shown: %q", c.state.notice)
	}

	c.srv.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()
	if c.state.GameState != GameStateShutdown {
		t.Fatalf("state = %v, want shutdown", c.state.GameState)
	}

	c.state.delta = time.Duration(config.ShutdownDisplaySeconds+1) * time.Second
	c.updateShutdownState()
	if c.state.Running {
		t.Error("shutdown countdown should stop the client")
	}

	c.state.Running = true
	close(c.srv.handle.EventsCh)
	c.processServerEvents()
	if c.state.Running {
		t.Error("closed event channel should stop the client")
	}
}

func TestResizeForcesRedraw(t *testing.T) {
	c := newTestClient(t)

	c.updateScreen()
	if c.out.Len() != 0 {
		t.Fatalf("unchanged size should not clear, got %q", c.out.String())
	}

	c.size[0], c.size[1] = config.MaxTermWidth+40, 30
	c.updateScreen()
	if !strings.Contains(c.out.String(), "\033[2J") {
		t.Error("resize should clear the terminal")
	}
	if c.canvas.TerminalWidth() != config.MaxTermWidth || c.canvas.OffsetCol() != 20 {
		t.Errorf("canvas = %d wide at offset %d", c.canvas.TerminalWidth(), c.canvas.OffsetCol())
	}
}

func TestResizeIgnoresSizeErrors(t *testing.T) {
	c := newTestClient(t)
	c.termSizeFunc = func() (int, int, error) { return 0, 0, errors.New("no tty") }
	c.updateScreen()
	if c.canvas.TerminalWidth() != 80 {
		t.Error("a failed size query should keep the current canvas")
	}
}
