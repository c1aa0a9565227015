package client

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfire/internal/audio"
	"github.com/tomz197/skyfire/internal/draw"
	"github.com/tomz197/skyfire/internal/input"
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/loop/server"
	"github.com/tomz197/skyfire/internal/loop/world"
)

// Client runs one player's session: it owns a World, feeds it input, and
// renders it to the session's terminal.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	terminal     *draw.Terminal
	styles       *styles
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	sounds       audio.Player
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Sounds       audio.Player // Defaults to silence
	Logger       *log.Logger  // Defaults to log.Default()
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	handle := gs.RegisterClient(opts.Username)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.PlayfieldWidth, config.PlayfieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		terminal:     draw.NewTerminal(w),
		styles:       newStyles(w),
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		sounds:       sounds,
		logger:       logger.With("user", opts.Username, "client", handle.ID),
	}
}

// Run starts the client loop. Blocks until the client disconnects or server stops.
func (c *Client) Run() error {
	c.terminal.Enter()
	defer c.terminal.Leave()

	c.logger.Info("session started")
	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := c.step(); err != nil {
			c.server.UnregisterClient(c.handle.ID)
			return fmt.Errorf("draw frame: %w", err)
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.server.UnregisterClient(c.handle.ID)
	c.logger.Info("session ended")
	return nil
}

// step runs one frame: input, server events, state update and drawing.
func (c *Client) step() error {
	c.processInput()
	c.processServerEvents()
	c.updateScreen()

	switch c.state.GameState {
	case GameStateStart:
		c.updateStartState()
	case GameStatePlaying:
		c.updatePlayingState()
	case GameStateGameOver:
		c.updateGameOverState()
	case GameStateShutdown:
		c.updateShutdownState()
	}

	if c.state.noticeTimer > 0 {
		c.state.noticeTimer -= c.state.delta.Seconds()
		if c.state.noticeTimer <= 0 {
			c.state.notice = ""
		}
	}

	return c.drawFrame()
}

// processInput reads this frame's keys and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if c.state.Input.Any {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive session")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit || c.state.Input.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			case server.EventHighScore:
				c.state.notice = fmt.Sprintf("%s set a new record: %d", event.Username, event.Score)
				c.state.noticeTimer = config.NoticeDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.terminal.Clear()
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	if c.state.Input.Fire || c.state.Input.Enter {
		c.startGame()
	}
}

// updatePlayingState advances the run by one frame. Frames longer than
// MaxFrameDelta are simulated as MaxFrameDelta.
func (c *Client) updatePlayingState() {
	w := c.state.World
	in := c.state.Input

	if in.Pause {
		w.TogglePause()
	}

	w.Tick(min(c.state.delta, config.MaxFrameDelta), world.Intent{
		Up:    in.Up,
		Down:  in.Down,
		Left:  in.Left,
		Right: in.Right,
		Fire:  in.Fire,
		Bomb:  in.Bomb,
	})

	if !w.State.Running && w.Drained() {
		c.finishRun()
	}
}

// finishRun reports the result and switches to the game over screen.
func (c *Client) finishRun() {
	st := c.state.World.State
	c.server.ReportScore(c.handle.ID, runBest(st))
	c.logger.Info("run ended",
		"score", st.Score,
		"level", st.Level,
		"defeated", st.EnemiesDefeated,
		"record", st.NewHighScore,
	)
	c.state.GameState = GameStateGameOver
	c.state.gameOverDelay = config.GameOverDelaySeconds
}

// updateGameOverState waits out the restart delay, then accepts a restart.
func (c *Client) updateGameOverState() {
	if c.state.gameOverDelay > 0 {
		c.state.gameOverDelay -= c.state.delta.Seconds()
		return
	}
	if c.state.Input.Enter || c.state.Input.Fire {
		c.startGame()
	}
}

// startGame begins a fresh run against the shared high-score store.
func (c *Client) startGame() {
	c.inputStream.Reset()
	c.state.World = world.New(world.Options{
		Sounds:    c.sounds,
		Scores:    c.server.Scores(),
		HighScore: c.server.HighScore(),
		Logger:    c.logger,
	})
	c.state.GameState = GameStatePlaying
	c.logger.Debug("run started", "highscore", c.state.World.State.HighScore)
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
