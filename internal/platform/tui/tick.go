package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrame caps the delta fed to the simulation after a stall.
const maxFrame = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time since the previous frame, capped at maxFrame.
// The first frame has no predecessor and gets one nominal interval.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		return time.Second / time.Duration(max(tickRate, 1))
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrame)
}
