package game

// Stats accumulates typing performance over one game.
type Stats struct {
	KeysTyped     int
	KeysHit       int
	CurrentStreak int
	MaxStreak     int

	// ScoreHistory holds one sample per wave transition, in order.
	ScoreHistory []int
}

// RecordHit counts a keystroke that matched.
func (s *Stats) RecordHit() {
	s.KeysTyped++
	s.KeysHit++
	s.CurrentStreak++
	if s.CurrentStreak > s.MaxStreak {
		s.MaxStreak = s.CurrentStreak
	}
}

// RecordMiss counts a keystroke that matched nothing. Only the streak is
// penalized.
func (s *Stats) RecordMiss() {
	s.KeysTyped++
	s.CurrentStreak = 0
}

// Accuracy returns KeysHit/KeysTyped as an integer percentage, 0 when nothing
// has been typed.
func (s *Stats) Accuracy() int {
	if s.KeysTyped == 0 {
		return 0
	}
	return s.KeysHit * 100 / s.KeysTyped
}

// Reset clears all counters and history for a new game.
func (s *Stats) Reset() {
	*s = Stats{}
}
