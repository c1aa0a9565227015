package client

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/skyfire/internal/draw"
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/loop/world"
	"github.com/tomz197/skyfire/internal/object"
)

// Unit shapes for enemies, scaled by radius. Enemies face down the screen.
var (
	fighterShape = []draw.Point{{X: 0, Y: 1}, {X: -0.8, Y: -0.6}, {X: 0.8, Y: -0.6}}
	bomberShape  = []draw.Point{
		{X: -1, Y: -0.3}, {X: -0.5, Y: -0.6}, {X: 0.5, Y: -0.6},
		{X: 1, Y: -0.3}, {X: 0.4, Y: 0.6}, {X: -0.4, Y: 0.6},
	}
	aceShape = []draw.Point{{X: 0, Y: 1}, {X: -1, Y: -0.7}, {X: 0, Y: -0.2}, {X: 1, Y: -0.7}}
)

var powerUpPens = [config.PowerUpTypeCount]uint8{
	config.PowerUpRapid:  draw.PenYellow,
	config.PowerUpShield: draw.PenBlue,
	config.PowerUpDamage: draw.PenRed,
	config.PowerUpBomb:   draw.PenOrange,
	config.PowerUpLife:   draw.PenGreen,
}

var powerUpLabels = [config.PowerUpTypeCount]string{
	config.PowerUpRapid:  "R",
	config.PowerUpShield: "S",
	config.PowerUpDamage: "D",
	config.PowerUpBomb:   "B",
	config.PowerUpLife:   "+",
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state, pause or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	paused := c.state.World != nil && c.state.World.State.Paused
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged || paused != c.state.wasPaused {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
		c.state.wasPaused = paused
	}

	c.canvas.Clear()

	var snap *world.Snapshot
	if c.state.World != nil && c.state.GameState != GameStateStart {
		s := c.state.World.Snapshot()
		snap = &s
		c.styles.setAccent(s.Theme.Accent)
		c.canvas.SetOverlay(s.FadeAlpha)
		for _, sp := range s.Sprites {
			c.drawSprite(sp, snap)
		}
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	if snap != nil {
		c.drawPowerUpLabels(snap)
	}

	c.drawUI(snap)

	return c.chunkWriter.Flush()
}

// drawSprite draws one entity onto the canvas.
func (c *Client) drawSprite(s object.Sprite, snap *world.Snapshot) {
	cv := c.canvas
	switch s.Kind {
	case object.KindCloud:
		cv.SetPen(draw.PenDark)
		cv.DrawCircle(s.X, s.Y, s.Radius, true)

	case object.KindBlackHole:
		cv.SetPen(draw.PenPurple)
		c.drawPortal(s)

	case object.KindWhiteHole:
		cv.SetPen(draw.PenWhite)
		c.drawPortal(s)

	case object.KindPowerUp:
		// Expiring pickups blink faster as they fade
		if s.Fade < 1 && int(s.Fade*20)%2 == 0 {
			return
		}
		cv.SetPen(powerUpPens[s.Variant%len(powerUpPens)])
		cv.DrawCircle(s.X, s.Y, s.Radius, false)

	case object.KindEnemy:
		pen, shape := draw.PenRed, fighterShape
		switch config.EnemyType(s.Variant) {
		case config.Bomber:
			pen, shape = draw.PenOrange, bomberShape
		case config.Ace:
			pen, shape = draw.PenMagenta, aceShape
		}
		if s.Flash {
			pen = draw.PenWhite
		}
		cv.SetPen(pen)
		c.drawShape(s.X, s.Y, s.Radius, shape)

	case object.KindBullet:
		if object.Owner(s.Variant) == object.OwnerPlayer {
			cv.SetPen(draw.PenYellow)
		} else {
			cv.SetPen(draw.PenPink)
		}
		cv.DrawCircle(s.X, s.Y, s.Radius, true)

	case object.KindPlayer:
		if s.Flash {
			return
		}
		c.drawPlayer(s)
		if snap.PowerUps[config.PowerUpShield] > 0 {
			cv.SetPen(draw.PenBlue)
			cv.DrawCircle(s.X, s.Y, s.Radius*1.4, false)
		}

	case object.KindParticle:
		switch {
		case s.Fade > 0.66:
			cv.SetPen(draw.PenYellow)
		case s.Fade > 0.33:
			cv.SetPen(draw.PenOrange)
		default:
			cv.SetPen(draw.PenRed)
		}
		cv.SetFloat(s.X, s.Y)
	}
}

// drawShape fills a unit shape scaled by r and centred on (x, y).
func (c *Client) drawShape(x, y, r float64, unit []draw.Point) {
	pts := c.canvas.BorrowPoints(len(unit))
	for i, u := range unit {
		pts[i] = draw.Point{X: x + u.X*r, Y: y + u.Y*r}
	}
	c.canvas.DrawPolygon(pts, true)
}

// drawPlayer draws the ship. Banking narrows the wings and tilts them.
func (c *Client) drawPlayer(s object.Sprite) {
	r := s.Radius
	sin, cos := math.Sincos(s.Angle)
	pts := c.canvas.BorrowPoints(4)
	pts[0] = draw.Point{X: s.X, Y: s.Y - r}
	pts[1] = draw.Point{X: s.X + r*0.8*cos, Y: s.Y + r*0.7 - r*0.3*sin}
	pts[2] = draw.Point{X: s.X, Y: s.Y + r*0.4}
	pts[3] = draw.Point{X: s.X - r*0.8*cos, Y: s.Y + r*0.7 + r*0.3*sin}
	c.canvas.SetPen(draw.PenCyan)
	c.canvas.DrawPolygon(pts, true)
}

// drawPortal draws two rings and four spokes rotated by the portal's spin.
func (c *Client) drawPortal(s object.Sprite) {
	cv := c.canvas
	cv.DrawCircle(s.X, s.Y, s.Radius, false)
	cv.DrawCircle(s.X, s.Y, s.Radius*0.6, false)
	for i := 0; i < 4; i++ {
		sin, cos := math.Sincos(s.Angle + float64(i)*math.Pi/2)
		cv.DrawLine(
			draw.Point{X: s.X + cos*s.Radius*0.25, Y: s.Y + sin*s.Radius*0.25},
			draw.Point{X: s.X + cos*s.Radius*0.85, Y: s.Y + sin*s.Radius*0.85},
		)
	}
}

// drawPowerUpLabels writes the pickup letter inside each visible pickup.
func (c *Client) drawPowerUpLabels(snap *world.Snapshot) {
	for _, s := range snap.Sprites {
		if s.Kind != object.KindPowerUp {
			continue
		}
		if s.Fade < 1 && int(s.Fade*20)%2 == 0 {
			continue
		}
		t := s.Variant % int(config.PowerUpTypeCount)
		col, row := c.canvas.LogicalToTerminal(s.X, s.Y)
		label := c.styles.r.NewStyle().Foreground(lipgloss.Color(fmt.Sprint(powerUpPens[t]))).Bold(true)
		c.writeText(col, row, label.Render(powerUpLabels[t]))
	}
}

// writeText writes s at the 1-based canvas position and marks the cells
// dirty so the canvas repaints them once the text is gone.
func (c *Client) writeText(col, row int, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	col = max(col, 1)
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, lipgloss.Width(s))
}

// writeCentered writes s centred on centerX.
func (c *Client) writeCentered(centerX, row int, s string) {
	c.writeText(centerX-lipgloss.Width(s)/2, row, s)
}

// writeBlock writes a multi-line block centred on centerX starting at top
// and returns the number of rows used.
func (c *Client) writeBlock(centerX, top int, block string) int {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		c.writeCentered(centerX, top+i, line)
	}
	return len(lines)
}

// drawUI draws the text layer for the current screen.
func (c *Client) drawUI(snap *world.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snap)
		if snap.Paused {
			c.drawPausedBanner(centerX, centerY)
		} else if snap.Message != "" {
			c.drawMessage(centerX, termHeight/3, snap)
		}
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStateGameOver:
		c.drawGameOverScreen(centerX, centerY, snap)
	}

	if c.state.notice != "" {
		c.writeCentered(centerX, termHeight-1, c.styles.warn.Render(c.state.notice))
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snap *world.Snapshot) {
	st := c.styles

	// Score and best (top left)
	badge := "     "
	if snap.NewHighScore {
		badge = st.warn.Render(" NEW!")
	}
	left := st.label.Render("SCORE ") + st.value.Render(fmt.Sprintf("%-7d", snap.Score)) +
		st.label.Render(" BEST ") + st.value.Render(fmt.Sprintf("%-7d", snap.HighScore)) + badge
	c.writeText(2, 1, left)

	// Health and bombs (top right)
	filled, empty := healthBar(snap.Health, snap.MaxHealth, 10)
	barStyle := st.good
	switch {
	case snap.Health*4 <= snap.MaxHealth:
		barStyle = st.bad
	case snap.Health*2 <= snap.MaxHealth:
		barStyle = st.warn
	}
	right := st.label.Render("HP ") + barStyle.Render(filled) + st.dim.Render(empty) +
		st.value.Render(fmt.Sprintf(" %3d", snap.Health)) +
		st.label.Render("  BOMBS ") + st.value.Render(fmt.Sprintf("%-2d", snap.Bombs))
	c.writeText(termWidth-lipgloss.Width(right), 1, right)

	// Level, difficulty, kills (second row left)
	stats := st.label.Render("LEVEL ") + st.title.Render(fmt.Sprintf("%-3d", snap.Level)) +
		st.label.Render(" DIFF ") + st.value.Render(fmt.Sprintf("%-3d", snap.Difficulty)) +
		st.label.Render(" KILLS ") + st.value.Render(fmt.Sprintf("%-5d", snap.EnemiesDefeated))
	c.writeText(2, 2, stats)

	// Timed power-ups (second row right), one fixed slot each
	var timers strings.Builder
	for i, frac := range snap.PowerUps {
		slot := powerUpLabels[i] + " " + timerBar(frac, 5) + " "
		if frac <= 0 {
			timers.WriteString(strings.Repeat(" ", lipgloss.Width(slot)))
			continue
		}
		pen := lipgloss.Color(fmt.Sprint(powerUpPens[i]))
		timers.WriteString(st.r.NewStyle().Foreground(pen).Render(slot))
	}
	c.writeText(termWidth-lipgloss.Width(timers.String()), 2, timers.String())

	// Theme name (bottom left)
	c.writeText(2, termHeight, st.dim.Render(fmt.Sprintf("%-16s", snap.Theme.Name)))
}

// drawMessage draws the transient banner ("LEVEL 3", "SCORE RESET").
func (c *Client) drawMessage(centerX, row int, snap *world.Snapshot) {
	style := c.styles.banner
	if snap.MessageFade < 0.25 {
		style = c.styles.dim.Padding(0, 2)
	}
	c.writeCentered(centerX, row, style.Render(snap.Message))
}

// drawPausedBanner draws the pause panel.
func (c *Client) drawPausedBanner(centerX, centerY int) {
	st := c.styles
	body := lipgloss.JoinVertical(lipgloss.Center,
		st.title.Render("PAUSED"),
		"",
		st.label.Render("Press P to resume"),
		st.label.Render("Press Q to quit"),
	)
	c.writeBlock(centerX, centerY-3, st.panel.Render(body))
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	st := c.styles
	c.writeCentered(centerX, centerY-2, st.bad.Render("INACTIVITY WARNING"))

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerX, centerY, st.value.Render(msg))
	c.writeCentered(centerX, centerY+2, st.label.Render("Press any key to continue"))
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	st := c.styles

	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ _  ____   _____ ___ ___ ___ `,
		` / __| |/ /\ \ / / __|_ _| _ \ __|`,
		` \__ \ ' <  \ V /| _| | ||   / _| `,
		` |___/_|\_\  |_| |_| |___|_|_\___|`,
		`                                  `,
	}

	titleStartY := centerY - 9
	rows := c.writeBlock(centerX, titleStartY, st.title.Render(strings.Join(titleArt, "\n")))

	y := titleStartY + rows + 1
	c.writeCentered(centerX, y, st.label.Render("~ Vertical arcade shooter in your terminal ~"))
	y += 2
	c.writeCentered(centerX, y, st.label.Render("Best score: ")+st.value.Render(fmt.Sprint(c.server.HighScore())))
	y += 2

	controls := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Controls"),
		"WASD / Arrows  . . . . Move",
		"SPACE / F  . . . . . . Fire",
		"B / X  . . . . . . . . Bomb",
		"P  . . . . . . . . .  Pause",
		"Q  . . . . . . . . . . Quit",
	)
	y += c.writeBlock(centerX, y, st.panel.Render(controls)) + 1

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, y, st.value.Render(">>  Press SPACE to Start  <<"))
	}
}

// drawGameOverScreen draws the results and the session leaderboard.
func (c *Client) drawGameOverScreen(centerX, centerY int, snap *world.Snapshot) {
	st := c.styles
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	y := centerY - 11
	y += c.writeBlock(centerX, y, st.bad.Render(strings.Join(titleArt, "\n"))) + 1

	if snap != nil {
		lines := []string{
			st.label.Render("Score     ") + st.value.Render(fmt.Sprintf("%8d", snap.Score)),
			st.label.Render("Level     ") + st.value.Render(fmt.Sprintf("%8d", snap.Level)),
			st.label.Render("Defeated  ") + st.value.Render(fmt.Sprintf("%8d", snap.EnemiesDefeated)),
			st.label.Render("Best      ") + st.value.Render(fmt.Sprintf("%8d", snap.HighScore)),
		}
		if snap.NewHighScore {
			lines = append(lines, "", st.warn.Render("NEW HIGH SCORE!"))
		}
		y += c.writeBlock(centerX, y, st.panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))) + 1
	}

	if top := c.server.TopScores(); len(top) > 0 {
		rows := []string{st.title.Render("Top pilots")}
		for i, e := range top {
			line := fmt.Sprintf("%d. %-12s %7d", i+1, truncate(displayName(e.Username), 12), e.Score)
			if e.Username == c.username {
				rows = append(rows, st.value.Render(line))
			} else {
				rows = append(rows, st.label.Render(line))
			}
		}
		y += c.writeBlock(centerX, y, lipgloss.JoinVertical(lipgloss.Left, rows...)) + 1
	}

	if c.state.gameOverDelay <= 0 && time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, y, st.value.Render(">>  Press ENTER to Fly Again  <<"))
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	st := c.styles
	c.writeCentered(centerX, centerY-3, st.bad.Render("SERVER SHUTTING DOWN"))
	c.writeCentered(centerX, centerY-1, st.value.Render("The server is restarting for maintenance."))
	c.writeCentered(centerX, centerY, st.value.Render("Please reconnect in a moment."))

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, st.label.Render(fmt.Sprintf("Disconnecting in %d seconds...", remaining)))
	c.writeCentered(centerX, centerY+4, st.label.Render("Press Q to disconnect now"))
}

func displayName(name string) string {
	if name == "" {
		return "anonymous"
	}
	return name
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
