package draw

import (
	"strconv"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Shade characters from lightest to darkest.
// Use these to render different intensities in the terminal.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockMedium    = '▒'
	BlockDark      = '▓'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockLeftHalf  = '▌'
	BlockRightHalf = '▐'
)

// ColorReset resets all SGR attributes.
const ColorReset = "\033[0m"

// Pen colours (ANSI 256-colour indices). Zero means "no pixel".
const (
	PenNone    uint8 = 0
	PenWhite   uint8 = 231
	PenGrey    uint8 = 240
	PenDark    uint8 = 236
	PenCyan    uint8 = 51
	PenYellow  uint8 = 226
	PenOrange  uint8 = 208
	PenRed     uint8 = 196
	PenMagenta uint8 = 201
	PenGreen   uint8 = 46
	PenBlue    uint8 = 33
	PenPurple  uint8 = 93
	PenPink    uint8 = 203
)

// appendFg appends the 256-colour foreground sequence for pen n.
func appendFg(dst []byte, n uint8) []byte {
	dst = append(dst, "\033[38;5;"...)
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, 'm')
}

// appendBg appends the 256-colour background sequence for pen n.
func appendBg(dst []byte, n uint8) []byte {
	dst = append(dst, "\033[48;5;"...)
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, 'm')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
