package core

import "time"

// Clock accumulates frame time for a running session. Besides the frame
// delta it drives a repeating timer with a fixed period that is independent
// of the frame rate: Advance reports how many periods completed.
type Clock struct {
	period  time.Duration
	acc     time.Duration
	frame   time.Duration
	elapsed int
	running bool
}

// NewClock creates a stopped clock firing every period.
func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		period = time.Second
	}
	return &Clock{period: period}
}

// Start resets the clock and starts the repeating timer.
func (c *Clock) Start() {
	c.acc = 0
	c.frame = 0
	c.elapsed = 0
	c.running = true
}

// Stop halts the timer. A stopped clock ignores Advance.
func (c *Clock) Stop() {
	c.running = false
}

// Running reports whether the timer is started.
func (c *Clock) Running() bool {
	return c.running
}

// Advance adds one frame of dt and returns the number of timer periods that
// completed during it. A long frame can complete more than one.
func (c *Clock) Advance(dt time.Duration) int {
	if !c.running || dt <= 0 {
		return 0
	}
	c.frame = dt
	c.acc += dt

	fired := 0
	for c.acc >= c.period {
		c.acc -= c.period
		c.elapsed++
		fired++
	}
	return fired
}

// Frame returns the delta of the last advanced frame.
func (c *Clock) Frame() time.Duration {
	return c.frame
}

// Elapsed returns the number of periods fired since Start.
func (c *Clock) Elapsed() int {
	return c.elapsed
}
