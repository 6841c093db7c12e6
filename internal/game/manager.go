// Package game owns the simulation: the manager holds every entity collection
// and all global state (score, health, wave, streaks), the combat resolver
// matches keystrokes to targets, and the wave director escalates difficulty.
// One external driver calls Tick once per display refresh.
package game

import (
	"math/rand"
	"time"

	"github.com/akindepraise5/gameidea/internal/object"
)

// Phase is the manager's lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // Pre-start
	PhaseRunning              // Active, unpaused
	PhasePaused               // Active, paused
	PhaseEnded                // Game over
)

// Summary captures the final results of a finished game.
type Summary struct {
	Score     int
	Accuracy  int // Integer percentage
	MaxStreak int
	HighScore int
	NewHigh   bool
}

// Options configures a Manager. Zero values fall back to sane defaults.
type Options struct {
	Rand  *rand.Rand
	Cues  CuePlayer
	Store ScoreStore
	Words *WordList
}

// Manager owns all entity collections and global game state. It is an
// explicitly constructed context object, not a singleton; everything it
// mutates it owns.
type Manager struct {
	world object.World
	phase Phase

	player      *object.Player
	enemies     []*object.Enemy
	byID        map[int]*object.Enemy
	projectiles []*object.Projectile
	particles   []*object.Particle
	effects     []object.Effect

	stats     Stats
	score     int
	health    int
	wave      int
	milestone int

	spawnTimer int
	nextID     int

	// At most one locked target, held as a weak reference into byID.
	lockedID int

	shakeTicks     int
	shakeIntensity float64

	rng       *rand.Rand
	cues      CuePlayer
	store     ScoreStore
	words     *WordList
	highScore int
	summary   Summary
}

// New creates an idle manager for a world of the standard logical size.
func New(opts Options) *Manager {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Cues == nil {
		opts.Cues = NopCues{}
	}
	if opts.Store == nil {
		opts.Store = &MemoryStore{}
	}
	if opts.Words == nil {
		opts.Words = WordsFor(DifficultyMedium)
	}

	m := &Manager{
		world: object.World{Width: WorldWidth, Height: WorldHeight},
		phase: PhaseIdle,
		byID:  make(map[int]*object.Enemy),
		rng:   opts.Rand,
		cues:  opts.Cues,
		store: opts.Store,
		words: opts.Words,
	}
	if best, err := m.store.Load(); err == nil {
		m.highScore = best
	}
	return m
}

// Start resets all collections and stats and begins a new game.
// Only valid from Idle or Ended; ignored while a game is active.
func (m *Manager) Start() {
	if m.phase == PhaseRunning || m.phase == PhasePaused {
		return
	}

	m.player = object.NewPlayer(m.world.CenterX(), m.world.Height-PlayerYOffset)
	m.enemies = m.enemies[:0]
	m.byID = make(map[int]*object.Enemy)
	m.projectiles = m.projectiles[:0]
	m.particles = m.particles[:0]
	m.effects = m.effects[:0]

	m.stats.Reset()
	m.score = 0
	m.health = MaxHealth
	m.wave = 1
	m.milestone = MilestoneStep
	m.spawnTimer = 0
	m.lockedID = 0
	m.shakeTicks = 0
	m.summary = Summary{}

	m.phase = PhaseRunning
}

// TogglePause flips Running and Paused. No effect in any other phase.
func (m *Manager) TogglePause() {
	switch m.phase {
	case PhaseRunning:
		m.phase = PhasePaused
	case PhasePaused:
		m.phase = PhaseRunning
	}
}

// Phase returns the current lifecycle phase.
func (m *Manager) Phase() Phase {
	return m.phase
}

// Tick advances the simulation by one logic step. A no-op unless Running, so
// the frame loop can keep calling it while paused.
func (m *Manager) Tick() {
	if m.phase != PhaseRunning {
		return
	}

	ctx := m.updateContext()

	m.tickSpawn()

	// Aim the ship at the locked target, if any
	if e := m.lockedEnemy(); e != nil {
		m.player.AimAt(e.X, e.Y)
	} else {
		m.player.ResetAim()
	}
	m.player.Update(ctx)

	m.tickEnemies(ctx)
	m.tickProjectiles(ctx)
	m.tickParticles(ctx)
	m.tickEffects(ctx)
	m.pruneEnemies()

	if m.shakeTicks > 0 {
		m.shakeTicks--
	}
}

// tickEnemies advances descent and handles breakthroughs.
func (m *Manager) tickEnemies(ctx object.UpdateContext) {
	for _, e := range m.enemies {
		if e.IsDestroyed() {
			continue
		}
		e.Update(ctx)
		if e.ReachedBottom(m.world) {
			m.breakthrough(e)
			if m.phase != PhaseRunning {
				return // Game just ended
			}
		}
	}
}

// breakthrough handles an enemy reaching the bottom: the enemy is gone, the
// ship takes damage, and the lock is released if it pointed here.
func (m *Manager) breakthrough(e *object.Enemy) {
	e.MarkDestroyed()
	if m.lockedID == e.ID {
		m.clearLock()
	}
	m.cues.Play(CueDamage)

	m.health -= BreakthroughDamage
	if m.health <= 0 {
		m.health = 0
		m.endGame()
	}
}

// tickProjectiles advances homing and drops inactive projectiles.
func (m *Manager) tickProjectiles(ctx object.UpdateContext) {
	kept := m.projectiles[:0]
	for _, p := range m.projectiles {
		p.Update(ctx)
		if p.Active {
			kept = append(kept, p)
		}
	}
	m.projectiles = kept
}

func (m *Manager) tickParticles(ctx object.UpdateContext) {
	kept := m.particles[:0]
	for _, p := range m.particles {
		if !p.Update(ctx) {
			kept = append(kept, p)
		}
	}
	m.particles = kept
}

func (m *Manager) tickEffects(ctx object.UpdateContext) {
	kept := m.effects[:0]
	for _, e := range m.effects {
		e.Update(ctx)
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	m.effects = kept
}

// pruneEnemies removes destroyed enemies from the collection and the ID index.
func (m *Manager) pruneEnemies() {
	kept := m.enemies[:0]
	for _, e := range m.enemies {
		if e.IsDestroyed() {
			delete(m.byID, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	m.enemies = kept
}

// endGame transitions to Ended and persists a new high score if earned.
func (m *Manager) endGame() {
	m.phase = PhaseEnded

	newHigh := m.score > m.highScore
	if newHigh {
		m.highScore = m.score
		// Persistence failure is not a gameplay fault; the in-memory best
		// still stands for this session.
		_ = m.store.Save(m.score)
	}

	m.summary = Summary{
		Score:     m.score,
		Accuracy:  m.stats.Accuracy(),
		MaxStreak: m.stats.MaxStreak,
		HighScore: m.highScore,
		NewHigh:   newHigh,
	}
}

// EnemyPosition implements object.TargetResolver: weak references resolve
// through the live-enemy index, so stale IDs report not-found.
func (m *Manager) EnemyPosition(id int) (x, y float64, ok bool) {
	e, found := m.byID[id]
	if !found || e.IsDestroyed() {
		return 0, 0, false
	}
	return e.X, e.Y, true
}

// lockedEnemy resolves the lock, returning nil when no live target is locked.
func (m *Manager) lockedEnemy() *object.Enemy {
	if m.lockedID == 0 {
		return nil
	}
	e, ok := m.byID[m.lockedID]
	if !ok || e.IsDestroyed() {
		return nil
	}
	return e
}

// clearLock releases the current lock, if any.
func (m *Manager) clearLock() {
	if e, ok := m.byID[m.lockedID]; ok {
		e.Locked = false
	}
	m.lockedID = 0
}

func (m *Manager) updateContext() object.UpdateContext {
	return object.UpdateContext{
		World:   m.world,
		Wave:    m.wave,
		Rand:    m.rng,
		Targets: m,
	}
}

// ShakeOffset returns this frame's screen shake displacement in logical units.
func (m *Manager) ShakeOffset() (x, y float64) {
	if m.shakeTicks <= 0 {
		return 0, 0
	}
	return (m.rng.Float64()*2 - 1) * m.shakeIntensity,
		(m.rng.Float64()*2 - 1) * m.shakeIntensity
}

// Draw renders all entities back-to-front. The HUD and overlay screens belong
// to the frame loop, not the manager.
func (m *Manager) Draw(ctx object.DrawContext) {
	for _, p := range m.particles {
		p.Draw(ctx)
	}
	for _, e := range m.effects {
		e.Draw(ctx)
	}
	for _, p := range m.projectiles {
		p.Draw(ctx)
	}
	for _, e := range m.enemies {
		if !e.IsDestroyed() {
			e.Draw(ctx)
		}
	}
	if m.player != nil {
		m.player.Draw(ctx)
	}
}

// World returns the logical world dimensions.
func (m *Manager) World() object.World {
	return m.world
}

// Score returns the current score.
func (m *Manager) Score() int {
	return m.score
}

// Health returns the current health, 0..MaxHealth.
func (m *Manager) Health() int {
	return m.health
}

// Wave returns the current wave number (>= 1 while active).
func (m *Manager) Wave() int {
	return m.wave
}

// HighScore returns the best score seen, including the current game.
func (m *Manager) HighScore() int {
	return m.highScore
}

// Stats returns a copy of the current typing statistics.
func (m *Manager) Stats() Stats {
	return m.stats
}

// Summary returns the final results. Only meaningful once Ended.
func (m *Manager) Summary() Summary {
	return m.summary
}
