package cow

import (
	"testing"

	"github.com/jadedm/feed-the-cow/internal/config"
)

func TestScheduleDue(t *testing.T) {
	s := NewSchedule(config.DefaultCowConfig().Difficulty)

	tests := []struct {
		name      string
		elapsed   int
		lastFired int
		wantAdd   int
		wantOK    bool
	}{
		{"before first", 9, 0, 0, false},
		{"first", 10, 0, 1, true},
		{"between", 11, 10, 0, false},
		{"twenty", 20, 10, 2, true},
		{"thirty", 30, 20, 2, true},
		{"forty", 40, 30, 3, true},
		{"forty five", 45, 40, 5, true},
		{"fifty", 50, 45, 8, true},
		{"after last", 51, 50, 0, false},
		{"already fired", 20, 20, 0, false},
		{"lower than fired", 20, 30, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, ok := s.Due(tt.elapsed, tt.lastFired)
			if ok != tt.wantOK || th.Add != tt.wantAdd {
				t.Errorf("Due(%d, %d) = (%+v, %v), expected add %d ok %v",
					tt.elapsed, tt.lastFired, th, ok, tt.wantAdd, tt.wantOK)
			}
			if ok && th.Seconds != tt.elapsed {
				t.Errorf("Due(%d) fired threshold %d", tt.elapsed, th.Seconds)
			}
		})
	}
}

func TestScheduleTotal(t *testing.T) {
	s := NewSchedule(config.DefaultCowConfig().Difficulty)

	tests := []struct {
		elapsed int
		want    int
	}{
		{0, 0},
		{10, 1},
		{25, 3},
		{30, 5},
		{44, 8},
		{45, 13},
		{50, 21},
		{500, 21},
	}
	for _, tt := range tests {
		if got := s.Total(tt.elapsed); got != tt.want {
			t.Errorf("Total(%d) = %d, expected %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestNewScheduleCopies(t *testing.T) {
	steps := []config.Threshold{{Seconds: 5, Add: 1}}
	s := NewSchedule(steps)
	steps[0].Add = 100

	if th, _ := s.Due(5, 0); th.Add != 1 {
		t.Errorf("schedule shares the caller's slice, got add %d", th.Add)
	}
}

func TestScoreTracker(t *testing.T) {
	s := NewScoreTracker(10)
	if got := s.Collect(0); got != 0 || s.Value() != 0 {
		t.Errorf("Collect(0) = %d, value %d", got, s.Value())
	}
	if got := s.Collect(1); got != 10 {
		t.Errorf("Collect(1) = %d, expected 10", got)
	}
	if got := s.Collect(3); got != 30 {
		t.Errorf("Collect(3) = %d, expected 30", got)
	}
	if s.Value() != 40 {
		t.Errorf("Value() = %d, expected 40", s.Value())
	}
}
