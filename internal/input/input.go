// Package input turns raw terminal bytes into per-frame key snapshots.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, never releases.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Fire    bool
	Confirm bool
	Pressed []byte
}

// Any reports whether any key was delivered this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	fire    time.Time
	confirm time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream closes when r returns an error (EOF on disconnect).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
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

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// A closed stream is reported as Quit.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for {
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

	applyBytes(&s.state, buf, now)

	in := snapshot(&s.state, now)
	in.Pressed = buf
	if s.closed {
		in.Quit = true
	}
	return in
}

// ResetKeyInput forgets every held key so a confirm press that started a game
// does not also fire on its first frame.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// applyBytes parses the collected bytes and updates key state timestamps.
func applyBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
				i += 2
				continue
			case 'B':
				state.down = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// snapshot builds an Input from key state: keys are pressed if seen within hold duration.
func snapshot(state *keyState, now time.Time) Input {
	return Input{
		Quit:    now.Sub(state.quit) < keyHoldDuration,
		Left:    now.Sub(state.left) < keyHoldDuration,
		Right:   now.Sub(state.right) < keyHoldDuration,
		Up:      now.Sub(state.up) < keyHoldDuration,
		Down:    now.Sub(state.down) < keyHoldDuration,
		Fire:    now.Sub(state.fire) < keyHoldDuration,
		Confirm: now.Sub(state.confirm) < keyHoldDuration,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.confirm = now
	}
}
