package game

import "github.com/akindepraise5/gameidea/internal/object"

// tickSpawn advances the spawn timer and releases one enemy when it exceeds
// the wave-scaled interval.
func (m *Manager) tickSpawn() {
	m.spawnTimer++
	if m.spawnTimer <= SpawnInterval(m.wave) {
		return
	}
	m.spawnTimer = 0
	m.spawnEnemy()
}

// spawnEnemy creates one enemy above the top edge with a random word from the
// active difficulty's list.
func (m *Manager) spawnEnemy() {
	word := m.words.Pick(m.rng)
	x := SpawnMargin + m.rng.Float64()*(m.world.Width-2*SpawnMargin)
	speed := EnemyMinSpeed + m.rng.Float64()*(EnemyMaxSpeed-EnemyMinSpeed)

	m.nextID++
	e := object.NewEnemy(m.nextID, word, x, EnemySpawnY, speed)
	m.enemies = append(m.enemies, e)
	m.byID[e.ID] = e
}

// advanceWave raises the wave whenever score/step+1 exceeds it, appending one
// score-history sample per increase.
func (m *Manager) advanceWave() {
	target := m.score/WaveScoreStep + 1
	for target > m.wave {
		m.stats.ScoreHistory = append(m.stats.ScoreHistory, m.score)
		m.wave++
	}
}
