package cow

// ScoreTracker counts points for one session.
type ScoreTracker struct {
	value     int
	increment int
}

// NewScoreTracker creates a tracker at zero.
func NewScoreTracker(increment int) ScoreTracker {
	return ScoreTracker{increment: increment}
}

// Collect scores n grass contacts, each independently, and returns the points added.
func (s *ScoreTracker) Collect(n int) int {
	if n <= 0 {
		return 0
	}
	added := n * s.increment
	s.value += added
	return added
}

// Value returns the current score.
func (s ScoreTracker) Value() int {
	return s.value
}
