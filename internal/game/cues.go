package game

// Cue identifies an audio feedback event. Playback is fire-and-forget: a
// CuePlayer must never block the frame loop.
type Cue int

const (
	CueShoot Cue = iota
	CueLock
	CueError
	CueReward
	CueExplosion
	CueDamage
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueLock:
		return "lock"
	case CueError:
		return "error"
	case CueReward:
		return "reward"
	case CueExplosion:
		return "explosion"
	case CueDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// CuePlayer plays audio cues.
type CuePlayer interface {
	Play(c Cue)
}

// NopCues is a CuePlayer that does nothing. Used for SSH sessions and when no
// audio backend is available.
type NopCues struct{}

// Play implements CuePlayer.
func (NopCues) Play(Cue) {}
