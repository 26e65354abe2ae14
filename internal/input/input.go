// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals only repeat, never release, so holding is inferred from repeats.
const keyHoldDuration = 60 * time.Millisecond

// Input is the key state for one frame.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
	Enter bool
	Any   bool // Any byte arrived this frame
}

// Key identifies a tracked key.
type Key int

const (
	KeyQuit Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyEnter
	keyCount
)

// Stream delivers input bytes from a reader and remembers when each key was
// last seen, so simultaneous keys can be detected.
type Stream struct {
	ch       chan byte
	lastSeen [keyCount]time.Time
	pending  []byte // Start of an escape sequence cut off by the last drain
	closed   bool
	now      func() time.Time
}

// StartStream spawns a goroutine that reads r until it fails.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// Closed reports whether a ReadInput call has seen the reader end.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains pending bytes without blocking and returns the key state.
func ReadInput(s *Stream) Input {
	now := s.now()
	buf := s.pending
	s.pending = nil
	carried := len(buf)

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

	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' && !s.closed && incompleteEscape(buf[i:]) {
			s.pending = append([]byte(nil), buf[i:]...)
			break
		}
		// CSI arrow keys: ESC [ A..D
		if buf[i] == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k, ok := arrowKey(buf[i+2]); ok {
				s.lastSeen[k] = now
				i += 2
				continue
			}
		}
		if k, ok := byteKey(buf[i]); ok {
			s.lastSeen[k] = now
		}
	}

	held := func(k Key) bool {
		return !s.lastSeen[k].IsZero() && now.Sub(s.lastSeen[k]) < keyHoldDuration
	}
	return Input{
		Quit:  held(KeyQuit),
		Left:  held(KeyLeft),
		Right: held(KeyRight),
		Up:    held(KeyUp),
		Down:  held(KeyDown),
		Fire:  held(KeyFire),
		Enter: held(KeyEnter),
		Any:   len(buf) > carried,
	}
}

// incompleteEscape reports whether b is ESC or ESC [ with the rest of the
// sequence still to come.
func incompleteEscape(b []byte) bool {
	return len(b) == 1 || (len(b) == 2 && b[1] == '[')
}

func arrowKey(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	case 'a', 'A', 'h', 'H':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case 'w', 'W', 'k', 'K':
		return KeyUp, true
	case 's', 'S', 'j', 'J':
		return KeyDown, true
	case ' ':
		return KeyFire, true
	case '\n', '\r':
		return KeyEnter, true
	}
	return 0, false
}
