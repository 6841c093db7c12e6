package game

import (
	"math/rand"
	"testing"

	"github.com/akindepraise5/gameidea/internal/object"
)

// cueRecorder captures played cues in order.
type cueRecorder struct {
	played []Cue
}

func (r *cueRecorder) Play(c Cue) {
	r.played = append(r.played, c)
}

func (r *cueRecorder) count(c Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

func newTestManager(t *testing.T) (*Manager, *cueRecorder) {
	t.Helper()
	rec := &cueRecorder{}
	m := New(Options{
		Rand:  rand.New(rand.NewSource(42)),
		Cues:  rec,
		Store: &MemoryStore{},
	})
	m.Start()
	return m, rec
}

// addEnemy injects an enemy directly, bypassing the spawn director, so tests
// control words and positions.
func addEnemy(m *Manager, word string, x, y float64) *object.Enemy {
	m.nextID++
	e := object.NewEnemy(m.nextID, word, x, y, 0.2)
	m.enemies = append(m.enemies, e)
	m.byID[e.ID] = e
	return e
}

func typeWord(m *Manager, word string) {
	for i := 0; i < len(word); i++ {
		m.HandleInput(word[i])
	}
}

func TestStartResetsState(t *testing.T) {
	m, _ := newTestManager(t)

	if m.Phase() != PhaseRunning {
		t.Fatalf("phase after start: got=%v want=%v", m.Phase(), PhaseRunning)
	}
	if m.Health() != MaxHealth {
		t.Fatalf("health after start: got=%d want=%d", m.Health(), MaxHealth)
	}
	if m.Wave() != 1 || m.Score() != 0 {
		t.Fatalf("fresh game: wave=%d score=%d", m.Wave(), m.Score())
	}
}

func TestStartIgnoredWhileActive(t *testing.T) {
	m, _ := newTestManager(t)
	addEnemy(m, "CODE", 80, 50)
	m.HandleInput('C')

	m.Start() // Must be a no-op mid-game

	if m.Score() == 0 && m.lockedID == 0 {
		t.Fatal("start during an active game must not reset state")
	}
}

func TestTypingWholeWordDestroysEnemy(t *testing.T) {
	m, rec := newTestManager(t)
	e := addEnemy(m, "CODE", 80, 50)

	typeWord(m, "CODE")

	if !e.IsDestroyed() {
		t.Fatal("fully typed enemy must be destroyed")
	}
	if m.Score() != len("CODE")*ScorePerChar {
		t.Fatalf("score: got=%d want=%d", m.Score(), len("CODE")*ScorePerChar)
	}
	if m.lockedID != 0 {
		t.Fatal("lock must clear when its target dies")
	}
	if got := rec.count(CueLock); got != 1 {
		t.Fatalf("lock cues: got=%d want=1", got)
	}
	if got := rec.count(CueShoot); got != 3 {
		t.Fatalf("shoot cues: got=%d want=3", got)
	}
	if got := rec.count(CueExplosion); got != 1 {
		t.Fatalf("explosion cues: got=%d want=1", got)
	}

	wantParticles := SparkCount + FireCount + SmokeCount
	if len(m.particles) != wantParticles {
		t.Fatalf("particles: got=%d want=%d", len(m.particles), wantParticles)
	}
	if len(m.effects) != 3 {
		t.Fatalf("effects: got=%d want=3", len(m.effects))
	}
	if len(m.projectiles) != len("CODE") {
		t.Fatalf("projectiles: got=%d want=%d", len(m.projectiles), len("CODE"))
	}
}

func TestMismatchWhileLockedKeepsProgress(t *testing.T) {
	m, rec := newTestManager(t)
	e := addEnemy(m, "CODE", 80, 50)
	addEnemy(m, "XRAY", 40, 60) // Deeper, but the lock must hold

	m.HandleInput('C')
	m.HandleInput('X')

	if e.Matched != 1 {
		t.Fatalf("matched after miss: got=%d want=1", e.Matched)
	}
	if !e.Locked || m.lockedID != e.ID {
		t.Fatal("lock must survive a mismatch")
	}
	if m.stats.CurrentStreak != 0 {
		t.Fatalf("streak after miss: got=%d want=0", m.stats.CurrentStreak)
	}
	if m.stats.KeysTyped != 2 || m.stats.KeysHit != 1 {
		t.Fatalf("stats: typed=%d hit=%d", m.stats.KeysTyped, m.stats.KeysHit)
	}
	if got := rec.count(CueError); got != 1 {
		t.Fatalf("error cues: got=%d want=1", got)
	}
}

func TestLockPrefersDeepestCandidate(t *testing.T) {
	m, _ := newTestManager(t)
	far := addEnemy(m, "SUN", 60, 20)
	near := addEnemy(m, "SKY", 100, 60)

	m.HandleInput('S')

	if m.lockedID != near.ID {
		t.Fatalf("locked: got=%d want=%d (deepest)", m.lockedID, near.ID)
	}
	if far.Locked {
		t.Fatal("the far candidate must stay unlocked")
	}
	if near.Matched != 1 {
		t.Fatalf("lock keystroke must count as progress: got=%d", near.Matched)
	}
}

func TestCandidatePastBoundaryNotEngageable(t *testing.T) {
	m, _ := newTestManager(t)
	addEnemy(m, "ZIP", 80, m.killBoundary())

	m.HandleInput('Z')

	if m.lockedID != 0 {
		t.Fatal("enemy at or past the kill boundary must not be lockable")
	}
	if m.stats.KeysTyped != 1 || m.stats.KeysHit != 0 {
		t.Fatalf("keystroke must count as a miss: typed=%d hit=%d",
			m.stats.KeysTyped, m.stats.KeysHit)
	}
}

func TestMissWithNoCandidate(t *testing.T) {
	m, rec := newTestManager(t)
	addEnemy(m, "CODE", 80, 50)

	m.HandleInput('Q')

	if m.lockedID != 0 {
		t.Fatal("nothing should lock on a no-candidate keystroke")
	}
	if got := rec.count(CueError); got != 1 {
		t.Fatalf("error cues: got=%d want=1", got)
	}
}

func TestBreakthroughDamagesAndReleasesLock(t *testing.T) {
	m, rec := newTestManager(t)
	e := addEnemy(m, "CODE", 80, m.world.Height+0.1)
	m.HandleInput('C') // Impossible in play (past boundary), so lock manually
	e.Locked = true
	m.lockedID = e.ID

	m.Tick()

	if m.Health() != MaxHealth-BreakthroughDamage {
		t.Fatalf("health: got=%d want=%d", m.Health(), MaxHealth-BreakthroughDamage)
	}
	if m.lockedID != 0 {
		t.Fatal("lock must release when its target breaks through")
	}
	if len(m.enemies) != 0 {
		t.Fatal("broken-through enemy must be pruned")
	}
	if got := rec.count(CueDamage); got != 1 {
		t.Fatalf("damage cues: got=%d want=1", got)
	}
}

func TestGameEndsAtZeroHealth(t *testing.T) {
	m, _ := newTestManager(t)
	m.health = BreakthroughDamage
	m.score = 300
	addEnemy(m, "CODE", 80, m.world.Height+0.1)

	m.Tick()

	if m.Phase() != PhaseEnded {
		t.Fatalf("phase: got=%v want=%v", m.Phase(), PhaseEnded)
	}
	if m.Health() != 0 {
		t.Fatalf("health must clamp to zero: got=%d", m.Health())
	}

	sum := m.Summary()
	if sum.Score != 300 || !sum.NewHigh || sum.HighScore != 300 {
		t.Fatalf("summary: %+v", sum)
	}

	if best, _ := m.store.Load(); best != 300 {
		t.Fatalf("high score not persisted: got=%d want=300", best)
	}
}

func TestHighScoreSurvivesRestart(t *testing.T) {
	m, _ := newTestManager(t)
	m.score = 300
	m.health = BreakthroughDamage
	addEnemy(m, "CODE", 80, m.world.Height+0.1)
	m.Tick()

	m.Start()
	m.score = 100
	m.health = BreakthroughDamage
	addEnemy(m, "CODE", 80, m.world.Height+0.1)
	m.Tick()

	sum := m.Summary()
	if sum.NewHigh {
		t.Fatal("a lower score must not count as a new high")
	}
	if sum.HighScore != 300 {
		t.Fatalf("high score: got=%d want=300", sum.HighScore)
	}
}

func TestMilestoneRewardAndHeal(t *testing.T) {
	m, rec := newTestManager(t)
	m.score = 480
	m.health = 70

	m.addScore(50)

	if m.Score() != 530 {
		t.Fatalf("score: got=%d want=530", m.Score())
	}
	if m.Health() != 90 {
		t.Fatalf("health after milestone heal: got=%d want=90", m.Health())
	}
	if m.milestone != 2*MilestoneStep {
		t.Fatalf("next milestone: got=%d want=%d", m.milestone, 2*MilestoneStep)
	}
	if got := rec.count(CueReward); got != 1 {
		t.Fatalf("reward cues: got=%d want=1", got)
	}
}

func TestMilestoneHealCapsAtMax(t *testing.T) {
	m, _ := newTestManager(t)
	m.score = 480
	m.health = 95

	m.addScore(50)

	if m.Health() != MaxHealth {
		t.Fatalf("health must cap at %d: got=%d", MaxHealth, m.Health())
	}
}

func TestWaveAdvancesWithScore(t *testing.T) {
	m, _ := newTestManager(t)
	m.score = 490

	m.addScore(40)

	if m.Wave() != 2 {
		t.Fatalf("wave: got=%d want=2", m.Wave())
	}
	history := m.Stats().ScoreHistory
	if len(history) != 1 || history[0] != 530 {
		t.Fatalf("score history: got=%v want=[530]", history)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	m, _ := newTestManager(t)
	e := addEnemy(m, "CODE", 80, 50)

	m.TogglePause()
	if m.Phase() != PhasePaused {
		t.Fatalf("phase: got=%v want=%v", m.Phase(), PhasePaused)
	}

	y := e.Y
	m.Tick()
	if e.Y != y {
		t.Fatal("enemies must not move while paused")
	}

	m.HandleInput('C')
	if m.stats.KeysTyped != 0 {
		t.Fatal("input must be ignored while paused")
	}

	m.TogglePause()
	m.Tick()
	if e.Y <= y {
		t.Fatal("simulation must resume after unpause")
	}
}

func TestPauseOnlyTogglesActiveGame(t *testing.T) {
	rec := &cueRecorder{}
	m := New(Options{Rand: rand.New(rand.NewSource(1)), Cues: rec, Store: &MemoryStore{}})

	m.TogglePause()
	if m.Phase() != PhaseIdle {
		t.Fatalf("pause from idle: got=%v want=%v", m.Phase(), PhaseIdle)
	}
}

func TestSpawnAfterInterval(t *testing.T) {
	m, _ := newTestManager(t)

	for i := 0; i <= SpawnInterval(m.Wave()); i++ {
		m.Tick()
	}

	if len(m.enemies) != 1 {
		t.Fatalf("enemies after one interval: got=%d want=1", len(m.enemies))
	}
	if m.enemies[0].Word == "" {
		t.Fatal("spawned enemy must carry a word")
	}
}

func TestSpawnIntervalShrinksToFloor(t *testing.T) {
	if SpawnInterval(1) != spawnIntervalBase-spawnIntervalStep {
		t.Fatalf("wave 1 interval: got=%d", SpawnInterval(1))
	}
	if SpawnInterval(50) != spawnIntervalFloor {
		t.Fatalf("high wave interval must floor: got=%d", SpawnInterval(50))
	}
}

func TestProjectilesDrainAfterHit(t *testing.T) {
	m, _ := newTestManager(t)
	addEnemy(m, "CODE", 80, 50)

	m.HandleInput('C')
	if len(m.projectiles) != 1 {
		t.Fatalf("projectiles after lock: got=%d want=1", len(m.projectiles))
	}

	// Pure pursuit at ProjectileSpeed covers ship-to-enemy distance quickly.
	for i := 0; i < 30; i++ {
		m.Tick()
	}

	if len(m.projectiles) != 0 {
		t.Fatalf("projectiles must deactivate after reaching the target: got=%d",
			len(m.projectiles))
	}
}

func TestStaleProjectileTargetDegradesGracefully(t *testing.T) {
	m, _ := newTestManager(t)
	e := addEnemy(m, "CODE", 80, 30)

	m.HandleInput('C')
	e.MarkDestroyed()
	m.pruneEnemies()

	m.Tick()

	if len(m.projectiles) != 0 {
		t.Fatal("projectile with a dead target must deactivate")
	}
}

func TestLockedTargetConsumesKeystroke(t *testing.T) {
	m, _ := newTestManager(t)
	locked := addEnemy(m, "CODE", 80, 50)
	other := addEnemy(m, "OWL", 40, 60)

	m.HandleInput('C')
	m.HandleInput('O') // Matches both CODE's next char and OWL's first

	if locked.Matched != 2 {
		t.Fatalf("locked progress: got=%d want=2", locked.Matched)
	}
	if other.Locked || other.Matched != 0 {
		t.Fatal("keystroke must go to the locked target, not open a second lock")
	}
	if m.lockedID != locked.ID {
		t.Fatalf("lock moved: got=%d want=%d", m.lockedID, locked.ID)
	}
}

func TestEnemyPositionResolvesOnlyLiveEnemies(t *testing.T) {
	m, _ := newTestManager(t)
	e := addEnemy(m, "CODE", 80, 50)

	if _, _, ok := m.EnemyPosition(e.ID); !ok {
		t.Fatal("live enemy must resolve")
	}

	e.MarkDestroyed()
	if _, _, ok := m.EnemyPosition(e.ID); ok {
		t.Fatal("destroyed enemy must not resolve")
	}
	if _, _, ok := m.EnemyPosition(9999); ok {
		t.Fatal("unknown ID must not resolve")
	}
}
