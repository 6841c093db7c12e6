package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func kinds(keys []Key) []Kind {
	out := make([]Kind, len(keys))
	for i, k := range keys {
		out[i] = k.Kind
	}
	return out
}

func TestDecodeByte(t *testing.T) {
	cases := []struct {
		in   byte
		want Key
	}{
		{'a', Key{Kind: KeyLetter, Letter: 'A'}},
		{'z', Key{Kind: KeyLetter, Letter: 'Z'}},
		{'Q', Key{Kind: KeyLetter, Letter: 'Q'}},
		{' ', Key{Kind: KeySpace}},
		{'\r', Key{Kind: KeyEnter}},
		{'\n', Key{Kind: KeyEnter}},
		{0x03, Key{Kind: KeyQuit}},
		{'5', Key{Kind: KeyOther}},
		{'!', Key{Kind: KeyOther}},
	}
	for _, tc := range cases {
		if got := decodeByte(tc.in); got != tc.want {
			t.Fatalf("decodeByte(%q): got=%+v want=%+v", tc.in, got, tc.want)
		}
	}
}

func TestDecodeSwallowsCSISequences(t *testing.T) {
	// Up-arrow between two letters: the sequence must vanish, the letters
	// must survive.
	keys := decode([]byte{'a', 0x1b, '[', 'A', 'b'}, nil, false)

	if len(keys) != 2 {
		t.Fatalf("keys: got=%v", kinds(keys))
	}
	if keys[0].Letter != 'A' || keys[1].Letter != 'B' {
		t.Fatalf("letters: got=%c,%c", keys[0].Letter, keys[1].Letter)
	}
}

func TestDecodeLoneEscapeHeldThenEmitted(t *testing.T) {
	s := &Stream{}

	// First drain ends on a bare ESC: hold it.
	keys := decode([]byte{0x1b}, s, false)
	if len(keys) != 0 {
		t.Fatalf("held escape leaked: got=%v", kinds(keys))
	}
	if !s.pending {
		t.Fatal("stream must remember the pending escape")
	}

	// Next drain brings nothing new: it really was an Escape press.
	keys = decode([]byte{0x1b}, s, true)
	if len(keys) != 1 || keys[0].Kind != KeyEscape {
		t.Fatalf("expected escape, got=%v", kinds(keys))
	}
}

func TestDecodePendingEscapeCompletesSequence(t *testing.T) {
	s := &Stream{}

	decode([]byte{0x1b}, s, false)

	// The CSI tail arrives on the next drain: still no key event.
	keys := decode([]byte{0x1b, '[', 'C'}, s, true)
	if len(keys) != 0 {
		t.Fatalf("completed arrow sequence leaked keys: got=%v", kinds(keys))
	}
}

func TestDecodeEscapeFollowedByLetter(t *testing.T) {
	keys := decode([]byte{0x1b, 'x'}, nil, false)
	if len(keys) != 2 || keys[0].Kind != KeyEscape || keys[1].Letter != 'X' {
		t.Fatalf("got=%v", kinds(keys))
	}
}

func TestStreamPollDrainsAndCloses(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("hi \r")))

	var all []Key
	deadline := time.After(time.Second)
	for {
		keys, closed := s.Poll()
		all = append(all, keys...)
		if closed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("stream never closed after EOF")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	want := []Kind{KeyLetter, KeyLetter, KeySpace, KeyEnter}
	got := kinds(all)
	if len(got) != len(want) {
		t.Fatalf("keys: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key %d: got=%v want=%v", i, got[i], want[i])
		}
	}
}
