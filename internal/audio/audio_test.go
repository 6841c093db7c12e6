package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/akindepraise5/gameidea/internal/game"
)

// drain pulls a streamer to exhaustion, returning the total sample count and
// the peak amplitude seen.
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not finish within %d samples", limit)
	return 0, 0
}

func TestEveryCueHasAStreamer(t *testing.T) {
	cues := []game.Cue{
		game.CueShoot, game.CueLock, game.CueError,
		game.CueReward, game.CueExplosion, game.CueDamage,
	}
	for _, c := range cues {
		if streamerFor(c) == nil {
			t.Fatalf("cue %v has no streamer", c)
		}
	}
}

func TestCueStreamersFiniteAndBounded(t *testing.T) {
	cues := []game.Cue{
		game.CueShoot, game.CueLock, game.CueError,
		game.CueReward, game.CueExplosion, game.CueDamage,
	}
	// Generous bound: no cue lasts longer than a second.
	limit := int(sampleRate)
	for _, c := range cues {
		total, peak := drain(t, streamerFor(c), limit)
		if total == 0 {
			t.Fatalf("cue %v produced no samples", c)
		}
		if peak > 1.0 {
			t.Fatalf("cue %v clips: peak=%f", c, peak)
		}
	}
}

func TestToneSweepEnvelopeFadesOut(t *testing.T) {
	s := &toneSweep{from: 440, to: 440, length: 1000, gain: 0.5}

	buf := make([][2]float64, 1000)
	n, _ := s.Stream(buf)
	if n != 1000 {
		t.Fatalf("stream: got=%d want=1000", n)
	}

	// The tail of the envelope must be quieter than the head.
	head := 0.0
	for _, v := range buf[:100] {
		if v[0] > head {
			head = v[0]
		}
	}
	tail := 0.0
	for _, v := range buf[900:] {
		if v[0] > tail {
			tail = v[0]
		}
	}
	if tail >= head {
		t.Fatalf("no fade out: head=%f tail=%f", head, tail)
	}

	if _, ok := s.Stream(buf); ok {
		t.Fatal("drained streamer must report done")
	}
}

func TestStreamersReportNoError(t *testing.T) {
	if err := (&toneSweep{}).Err(); err != nil {
		t.Fatal(err)
	}
	if err := (&noiseBurst{}).Err(); err != nil {
		t.Fatal(err)
	}
}
