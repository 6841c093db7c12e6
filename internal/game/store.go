package game

// ScoreStore persists the high score across sessions.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// MemoryStore is an in-process ScoreStore. Used in tests and as the fallback
// when no writable config directory exists.
type MemoryStore struct {
	best int
}

// Load implements ScoreStore.
func (m *MemoryStore) Load() (int, error) {
	return m.best, nil
}

// Save implements ScoreStore.
func (m *MemoryStore) Save(score int) error {
	m.best = score
	return nil
}
