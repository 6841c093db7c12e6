package game

// Game tuning constants.
// All tunable gameplay parameters are centralized here for easy adjustment.

// World
const (
	TicksPerSecond = 60
	WorldWidth     = 160.0 // Logical width
	WorldHeight    = 100.0 // Logical height (in sub-pixels, so 50 terminal rows)

	PlayerYOffset = 8.0 // Ship sits this far above the bottom edge
	SpawnMargin   = 14.0
	EnemySpawnY   = -10.0
	EnemyMinSpeed = 0.12 // Descent per tick before wave scaling
	EnemyMaxSpeed = 0.30
)

// Scoring and progression
const (
	ScorePerChar       = 10
	WaveScoreStep      = 500 // Wave = score/step + 1
	MilestoneStep      = 500
	MilestoneHeal      = 20
	MaxHealth          = 100
	BreakthroughDamage = 20
)

// Spawning: ticks between spawns, shrinking with the wave down to a floor.
const (
	spawnIntervalBase  = 120
	spawnIntervalFloor = 60
	spawnIntervalStep  = 5
)

// SpawnInterval returns the spawn timer threshold in ticks for a wave.
func SpawnInterval(wave int) int {
	t := spawnIntervalBase - wave*spawnIntervalStep
	if t < spawnIntervalFloor {
		t = spawnIntervalFloor
	}
	return t
}

// Destruction effects
const (
	SparkCount = 20
	FireCount  = 10
	SmokeCount = 15

	ShakeTicks     = 18
	ShakeIntensity = 2.5
)
