package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, keys string) {
	for i := 0; i < len(keys); i++ {
		s.ch <- keys[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		keys  string
		check func(Input) bool
	}{
		{"wasd left", "a", func(in Input) bool { return in.Left && !in.Right }},
		{"vim right", "l", func(in Input) bool { return in.Right }},
		{"arrow up", "\x1b[A", func(in Input) bool { return in.Up && !in.Down }},
		{"arrow down", "\x1b[B", func(in Input) bool { return in.Down }},
		{"diagonal", "\x1b[A\x1b[D", func(in Input) bool { return in.Up && in.Left }},
		{"fire", " ", func(in Input) bool { return in.Fire }},
		{"bomb", "b", func(in Input) bool { return in.Bomb && !in.Fire }},
		{"pause", "p", func(in Input) bool { return in.Pause }},
		{"enter", "\r", func(in Input) bool { return in.Enter }},
		{"quit", "q", func(in Input) bool { return in.Quit }},
		{"ctrl-c", "\x03", func(in Input) bool { return in.Quit }},
		{"nothing", "", func(in Input) bool { return in == Input{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, tt.keys)
			if in := readInputAt(s, now); !tt.check(in) {
				t.Errorf("keys %q produced %+v", tt.keys, in)
			}
		})
	}
}

func TestHeldKeysPersistAndEdgesDoNot(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newStream()
	feed(s, "d b")

	first := readInputAt(s, now)
	if !first.Right || !first.Fire || !first.Bomb {
		t.Fatalf("first frame = %+v", first)
	}

	second := readInputAt(s, now.Add(keyHoldDuration/2))
	if !second.Right || !second.Fire {
		t.Errorf("held keys should persist within the hold window: %+v", second)
	}
	if second.Bomb {
		t.Error("bomb is edge-triggered and must not repeat")
	}
	if !first.Any || second.Any {
		t.Errorf("Any should track arrivals only: first=%v second=%v", first.Any, second.Any)
	}

	third := readInputAt(s, now.Add(keyHoldDuration))
	if third.Right || third.Fire {
		t.Errorf("keys should be released after the hold window: %+v", third)
	}
}

func TestReset(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newStream()
	feed(s, "a")
	readInputAt(s, now)

	s.Reset()
	if in := readInputAt(s, now); in.Left {
		t.Error("Reset should release held keys")
	}
}

func TestClosedStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	deadline := time.After(time.Second)
	sawQuit := false
	for {
		in := ReadInput(s)
		sawQuit = sawQuit || in.Quit
		if in.Closed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("stream never reported closed")
		case <-time.After(time.Millisecond):
		}
	}
	if !sawQuit {
		t.Error("quit key before EOF was lost")
	}
	if in := ReadInput(s); !in.Closed {
		t.Error("closed state should be sticky")
	}
}
