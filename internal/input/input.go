package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so a held key is a stream of presses.
const keyHoldDuration = 90 * time.Millisecond

// Input represents the current frame's input state.
// Bomb, Pause and Enter are edge-triggered: they are true only on the frame
// the key arrived.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Fire   bool
	Bomb   bool
	Pause  bool
	Enter  bool
	Any    bool // At least one byte arrived this frame
	Closed bool // Input source is gone (EOF or session closed)
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and uses key state persistence
// to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

// Reset forgets every held key, so a key held across a screen change does
// not leak into the next screen.
func (s *Stream) Reset() {
	s.state = keyState{}
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	input := Input{Closed: s.closed, Any: len(buf) > 0}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		applyByte(s, &input, b, now)
	}

	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	input.Up = now.Sub(s.state.up) < keyHoldDuration
	input.Down = now.Sub(s.state.down) < keyHoldDuration
	input.Fire = now.Sub(s.state.fire) < keyHoldDuration

	return input
}

// applyByte updates held-key timestamps and sets edge-triggered actions.
func applyByte(s *Stream, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'k', 'K':
		s.state.up = now
	case 's', 'S', 'j', 'J':
		s.state.down = now
	case ' ', 'f', 'F':
		s.state.fire = now
	case 'b', 'B', 'x', 'X':
		in.Bomb = true
	case 'p', 'P':
		in.Pause = true
	case '\n', '\r':
		in.Enter = true
	}
}
