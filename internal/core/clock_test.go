package core

import (
	"testing"
	"time"
)

func TestClockFiresOncePerPeriod(t *testing.T) {
	c := NewClock(time.Second)
	c.Start()

	// 20ms divides a second exactly, so 250 frames are exactly 5s
	frame := 20 * time.Millisecond
	fired := 0
	for i := 0; i < 250; i++ {
		fired += c.Advance(frame)
	}

	if fired != 5 {
		t.Errorf("fired %d times over 5s of frames, expected 5", fired)
	}
	if c.Elapsed() != 5 {
		t.Errorf("Elapsed() = %d, expected 5", c.Elapsed())
	}
	if c.Frame() != frame {
		t.Errorf("Frame() = %v, expected %v", c.Frame(), frame)
	}
}

func TestClockIndependentOfFrameRate(t *testing.T) {
	rates := []int{20, 30, 60, 144}
	for _, rate := range rates {
		c := NewClock(time.Second)
		c.Start()
		frame := time.Second / time.Duration(rate)
		for i := 0; i < rate*3; i++ {
			c.Advance(frame)
		}
		// Integer division may leave the last frame a few ns short.
		if c.Elapsed() < 2 || c.Elapsed() > 3 {
			t.Errorf("rate %d: Elapsed() = %d, expected 3 (±1 for rounding)", rate, c.Elapsed())
		}
	}
}

func TestClockLongFrameFiresMultiple(t *testing.T) {
	c := NewClock(time.Second)
	c.Start()

	if fired := c.Advance(2500 * time.Millisecond); fired != 2 {
		t.Errorf("Advance(2.5s) fired %d, expected 2", fired)
	}
	if fired := c.Advance(500 * time.Millisecond); fired != 1 {
		t.Errorf("remainder should carry over, fired %d, expected 1", fired)
	}
}

func TestClockStopped(t *testing.T) {
	c := NewClock(time.Second)

	if fired := c.Advance(5 * time.Second); fired != 0 {
		t.Errorf("unstarted clock fired %d", fired)
	}

	c.Start()
	c.Advance(time.Second)
	c.Stop()
	if c.Running() {
		t.Error("Running() should be false after Stop")
	}
	if fired := c.Advance(time.Second); fired != 0 {
		t.Errorf("stopped clock fired %d", fired)
	}

	c.Start()
	if c.Elapsed() != 0 {
		t.Errorf("Start should reset elapsed, got %d", c.Elapsed())
	}
}
