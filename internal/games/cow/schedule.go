package cow

import "github.com/jadedm/feed-the-cow/internal/config"

// Schedule is the descending table of hazard steps.
type Schedule struct {
	steps []config.Threshold
}

// NewSchedule copies steps into a schedule. Steps must be strictly
// descending by seconds, which config.Validate guarantees.
func NewSchedule(steps []config.Threshold) Schedule {
	s := make([]config.Threshold, len(steps))
	copy(s, steps)
	return Schedule{steps: s}
}

// Due returns the step that fires at elapsed seconds, if any. A step fires
// only when elapsed equals its threshold and nothing at or above it has
// fired yet; scanning stops at the first match.
func (s Schedule) Due(elapsed, lastFired int) (config.Threshold, bool) {
	for _, th := range s.steps {
		if elapsed == th.Seconds && lastFired < th.Seconds {
			return th, true
		}
	}
	return config.Threshold{}, false
}

// Total returns the number of hazards all steps up to elapsed add.
func (s Schedule) Total(elapsed int) int {
	n := 0
	for _, th := range s.steps {
		if th.Seconds <= elapsed {
			n += th.Add
		}
	}
	return n
}
