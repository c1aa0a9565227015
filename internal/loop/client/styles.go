package client

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles are the lipgloss styles for text drawn over the canvas. They are
// bound to the session's writer, not os.Stdout, so SSH sessions get colour.
type styles struct {
	r      *lipgloss.Renderer
	accent int

	label  lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
	title  lipgloss.Style
	banner lipgloss.Style
	panel  lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	r.SetHasDarkBackground(true)

	s := &styles{
		r:     r,
		label: r.NewStyle().Foreground(lipgloss.Color("245")),
		value: r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.Color("240")),
		good:  r.NewStyle().Foreground(lipgloss.Color("46")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("226")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
	s.setAccent(51)
	return s
}

// setAccent recolours the theme-dependent styles. No-op if unchanged.
func (s *styles) setAccent(c int) {
	if c == s.accent && s.accent != 0 {
		return
	}
	s.accent = c
	col := lipgloss.Color(strconv.Itoa(c))
	s.title = s.r.NewStyle().Foreground(col).Bold(true)
	s.banner = s.r.NewStyle().Foreground(col).Bold(true).Padding(0, 2)
	s.panel = s.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(col).
		Padding(0, 2)
}

// healthBar renders health as a fixed-width bar of filled and empty cells.
// Any health above zero shows at least one filled cell.
func healthBar(health, maxHealth, width int) (filled, empty string) {
	if maxHealth <= 0 || width <= 0 {
		return "", ""
	}
	health = min(max(health, 0), maxHealth)
	n := health * width / maxHealth
	if health > 0 && n == 0 {
		n = 1
	}
	return strings.Repeat("█", n), strings.Repeat("·", width-n)
}

// timerBar renders a remaining fraction as a short gauge.
func timerBar(frac float64, width int) string {
	n := int(frac*float64(width) + 0.5)
	n = min(max(n, 0), width)
	return strings.Repeat("▮", n) + strings.Repeat("▯", width-n)
}
