// Package input turns a raw terminal byte stream into discrete key events.
// A typing game needs every individual keystroke, in order, so unlike a
// movement-key scheme there is no held-key state: each byte becomes at most
// one event.
package input

import (
	"bufio"
)

// Kind classifies a key event.
type Kind int

const (
	KeyLetter Kind = iota // An A-Z letter; Letter holds the uppercase byte
	KeySpace
	KeyEnter
	KeyEscape
	KeyQuit // Ctrl+C
	KeyOther
)

// Key is a single decoded key press.
type Key struct {
	Kind   Kind
	Letter byte // Uppercase 'A'..'Z', set only for KeyLetter
}

// Stream delivers raw bytes from the terminal via a channel.
type Stream struct {
	ch chan byte

	// pending holds a lone ESC byte seen at the end of a drain; it may be the
	// start of a CSI sequence whose tail has not arrived yet.
	pending bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when the reader returns an error (e.g. EOF on disconnect).
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

// Poll drains all available bytes without blocking and decodes them into key
// events, in arrival order. Returns closed=true once the underlying reader is
// gone.
func (s *Stream) Poll() (keys []Key, closed bool) {
	var buf []byte
	hadPending := s.pending
	if s.pending {
		buf = append(buf, 0x1b)
		s.pending = false
	}

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return decode(buf, s, hadPending), true
			}
			buf = append(buf, b)
		default:
			return decode(buf, s, hadPending), false
		}
	}
}

// decode parses the drained bytes. CSI sequences (arrow keys etc.) are
// swallowed: they have no meaning in this game and must not be mistaken for
// letters.
func decode(buf []byte, s *Stream, hadPending bool) []Key {
	var keys []Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == 0x1b {
			if i == len(buf)-1 {
				if hadPending && i == 0 {
					// A full frame passed with no CSI tail: it really was a
					// bare Escape press.
					keys = append(keys, Key{Kind: KeyEscape})
					return keys
				}
				// Might be a bare Escape or a split CSI sequence; hold it
				// until the next poll decides.
				if s != nil {
					s.pending = true
				}
				return keys
			}
			if buf[i+1] == '[' {
				// CSI sequence: ESC [ ... final byte in 0x40-0x7e
				j := i + 2
				for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
					j++
				}
				i = j
				continue
			}
			keys = append(keys, Key{Kind: KeyEscape})
			continue
		}

		keys = append(keys, decodeByte(b))
	}
	return keys
}

// decodeByte maps a single byte to a key event.
func decodeByte(b byte) Key {
	switch {
	case b >= 'a' && b <= 'z':
		return Key{Kind: KeyLetter, Letter: b - 'a' + 'A'}
	case b >= 'A' && b <= 'Z':
		return Key{Kind: KeyLetter, Letter: b}
	case b == ' ':
		return Key{Kind: KeySpace}
	case b == '\r' || b == '\n':
		return Key{Kind: KeyEnter}
	case b == 0x03: // Ctrl+C
		return Key{Kind: KeyQuit}
	default:
		return Key{Kind: KeyOther}
	}
}
