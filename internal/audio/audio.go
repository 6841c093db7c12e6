// Package audio plays short synthesized cues through the system speaker.
// Every cue is generated, not sampled, so the binary ships no assets.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/akindepraise5/gameidea/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes cue streamers into a single speaker stream. Safe for use from
// the game loop; mixer mutations happen under the speaker lock.
type Player struct {
	mixer *beep.Mixer
}

// NewPlayer initializes the speaker and starts an empty mixer. Callers should
// fall back to game.NopCues when this fails (e.g. no audio device).
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*20)); err != nil {
		return nil, err
	}
	p := &Player{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the streamer for the given cue. Finished streamers are drained
// by the mixer, so repeated cues overlap rather than cut each other off.
func (p *Player) Play(c game.Cue) {
	s := streamerFor(c)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close releases the audio device.
func (p *Player) Close() {
	speaker.Close()
}

var _ game.CuePlayer = (*Player)(nil)

func streamerFor(c game.Cue) beep.Streamer {
	switch c {
	case game.CueShoot:
		return sweep(880, 440, 60*time.Millisecond, 0.25, false)
	case game.CueLock:
		return beep.Seq(
			sweep(523, 523, 40*time.Millisecond, 0.2, false),
			sweep(784, 784, 50*time.Millisecond, 0.2, false),
		)
	case game.CueError:
		return sweep(110, 90, 110*time.Millisecond, 0.3, true)
	case game.CueReward:
		return beep.Seq(
			sweep(523, 523, 70*time.Millisecond, 0.25, false),
			sweep(659, 659, 70*time.Millisecond, 0.25, false),
			sweep(784, 784, 110*time.Millisecond, 0.25, false),
		)
	case game.CueExplosion:
		return burst(260 * time.Millisecond)
	case game.CueDamage:
		return beep.Mix(
			sweep(220, 80, 220*time.Millisecond, 0.25, true),
			burst(180*time.Millisecond),
		)
	}
	return nil
}

func sweep(from, to float64, d time.Duration, gain float64, square bool) beep.Streamer {
	return &toneSweep{
		from:   from,
		to:     to,
		length: sampleRate.N(d),
		gain:   gain,
		square: square,
	}
}

func burst(d time.Duration) beep.Streamer {
	return &noiseBurst{length: sampleRate.N(d), gain: 0.35}
}

// toneSweep generates a tone gliding from one frequency to another with a
// linear fade-out envelope.
type toneSweep struct {
	from, to float64
	length   int
	gain     float64
	square   bool

	pos   int
	phase float64
}

func (t *toneSweep) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress

		t.phase += freq / float64(sampleRate)
		if t.phase >= 1 {
			t.phase -= 1
		}

		v := math.Sin(2 * math.Pi * t.phase)
		if t.square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		v *= t.gain * (1 - progress)

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *toneSweep) Err() error { return nil }

// noiseBurst generates white noise with a quadratic fade-out, used for
// explosion-like cues.
type noiseBurst struct {
	length int
	gain   float64

	pos int
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.length {
		return 0, false
	}
	for i := range samples {
		if b.pos >= b.length {
			break
		}
		progress := float64(b.pos) / float64(b.length)
		env := (1 - progress) * (1 - progress)
		v := (rand.Float64()*2 - 1) * b.gain * env

		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *noiseBurst) Err() error { return nil }
