package game

import (
	"math"

	"github.com/akindepraise5/gameidea/internal/object"
)

// HandleInput resolves one typed uppercase character against the current
// combat state. Precedence:
//
//  1. A live locked target consumes the keystroke: its next expected
//     character either matches (progress, projectile) or it doesn't (streak
//     reset only; the lock and the confirmed prefix are never rolled back).
//  2. With no lock, the deepest candidate whose word starts with the
//     character gets locked. No candidate means a plain miss.
//
// Once locked, the player must finish the word (or lose the enemy to the
// bottom) before anything else can be engaged.
func (m *Manager) HandleInput(ch byte) {
	if m.phase != PhaseRunning {
		return
	}

	if locked := m.lockedEnemy(); locked != nil {
		if !locked.FullyMatched() && locked.NextChar() == ch {
			locked.Matched++
			m.stats.RecordHit()
			m.cues.Play(CueShoot)
			m.fireAt(locked)
			if locked.FullyMatched() {
				m.destroyEnemy(locked)
				m.clearLock()
			}
			return
		}
		m.stats.RecordMiss()
		m.cues.Play(CueError)
		return
	}

	target := m.findCandidate(ch)
	if target == nil {
		m.stats.RecordMiss()
		m.cues.Play(CueError)
		return
	}

	target.Locked = true
	m.lockedID = target.ID
	target.Matched = 1
	m.stats.RecordHit()
	m.cues.Play(CueLock)
	m.fireAt(target)
	if target.FullyMatched() {
		m.destroyEnemy(target)
		m.clearLock()
	}
}

// findCandidate scans live enemies above the kill boundary whose word starts
// with ch and returns the deepest one (largest y, closest to the ship).
// First-found wins ties.
func (m *Manager) findCandidate(ch byte) *object.Enemy {
	boundary := m.killBoundary()
	var best *object.Enemy
	for _, e := range m.enemies {
		if e.IsDestroyed() || e.Y >= boundary {
			continue
		}
		if e.Word[0] != ch {
			continue
		}
		if best == nil || e.Y > best.Y {
			best = e
		}
	}
	return best
}

// killBoundary is the depth past which an enemy can no longer be engaged:
// once a word falls below the ship's line it is committed to breaking through.
func (m *Manager) killBoundary() float64 {
	return m.world.Height - PlayerYOffset
}

// fireAt spawns a homing projectile from the ship's nose toward the target.
func (m *Manager) fireAt(e *object.Enemy) {
	bearing := math.Atan2(e.Y-m.player.Y, e.X-m.player.X)
	noseX := m.player.X + math.Cos(bearing)*4
	noseY := m.player.Y + math.Sin(bearing)*4
	m.projectiles = append(m.projectiles, object.NewProjectile(noseX, noseY, e.ID))
}

// destroyEnemy resolves a fully typed word: score, a fixed quota of
// particles, the three effects, screen shake, and the explosion cue.
func (m *Manager) destroyEnemy(e *object.Enemy) {
	e.MarkDestroyed()

	for i := 0; i < SparkCount; i++ {
		m.particles = append(m.particles, object.NewParticle(m.rng, object.ParticleSpark, e.X, e.Y))
	}
	for i := 0; i < FireCount; i++ {
		m.particles = append(m.particles, object.NewParticle(m.rng, object.ParticleFire, e.X, e.Y))
	}
	for i := 0; i < SmokeCount; i++ {
		m.particles = append(m.particles, object.NewParticle(m.rng, object.ParticleSmoke, e.X, e.Y))
	}

	m.effects = append(m.effects,
		object.NewShockwave(e.X, e.Y),
		object.NewTextExplosion(m.rng, e.Word, e.X, e.Y),
		object.NewSpriteExplosion(e.X, e.Y),
	)

	m.shakeTicks = ShakeTicks
	m.shakeIntensity = ShakeIntensity
	m.cues.Play(CueExplosion)

	m.addScore(len(e.Word) * ScorePerChar)
}

// addScore applies points, fires any crossed milestones (reward cue + heal),
// and lets the wave director react to the new score.
func (m *Manager) addScore(points int) {
	m.score += points

	for m.score >= m.milestone {
		m.milestone += MilestoneStep
		m.cues.Play(CueReward)
		m.health += MilestoneHeal
		if m.health > MaxHealth {
			m.health = MaxHealth
		}
	}

	m.advanceWave()
}
