package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jadedm/feed-the-cow/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held for a while after each report. The first window
// covers the terminal's repeat delay; later repeats arrive faster.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 150 * time.Millisecond
	tapHold    = 80 * time.Millisecond
)

// Zone is a screen rectangle with a role for the pointer.
type Zone interface {
	// JoystickZone returns the on-screen stick's rectangle, if shown.
	JoystickZone() (core.Rect, bool)
	// WorldY converts a screen row to a world y coordinate.
	WorldY(row int) float64
}

// inputState turns key and mouse messages into per-frame input.
type inputState struct {
	held    map[core.Action]time.Time // action -> held until
	pointer bool                      // left button down
	stick   bool                      // the press started on the stick
	joyY    float64
	dragY   float64
}

func newInputState() *inputState {
	return &inputState{held: make(map[core.Action]time.Time)}
}

// press records a key report at now.
func (s *inputState) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionUp:
		delete(s.held, core.ActionDown)
	case core.ActionDown:
		delete(s.held, core.ActionUp)
	case core.ActionConfirm:
		s.held[a] = now.Add(tapHold)
		return
	default:
		return
	}

	window := firstHold
	if until, ok := s.held[a]; ok && now.Before(until) {
		window = repeatHold
	}
	s.held[a] = now.Add(window)
}

// mouse records a mouse event. Pressing on the stick steers with it;
// pressing anywhere else drags the cow and confirms.
func (s *inputState) mouse(msg tea.MouseMsg, z Zone) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		s.pointer = true
		s.stick = false
		if r, ok := z.JoystickZone(); ok && r.Contains(msg.X, msg.Y) {
			s.stick = true
		}
		s.move(msg, z)
	case tea.MouseActionMotion:
		if s.pointer {
			s.move(msg, z)
		}
	case tea.MouseActionRelease:
		s.pointer = false
		s.stick = false
	}
}

func (s *inputState) move(msg tea.MouseMsg, z Zone) {
	if s.stick {
		if r, ok := z.JoystickZone(); ok && r.H > 0 {
			centre := float64(r.Y) + float64(r.H-1)/2
			half := max(float64(r.H)/2, 1)
			s.joyY = core.ClampF((float64(msg.Y)-centre)/half*100, -100, 100)
		}
		return
	}
	s.dragY = z.WorldY(msg.Y)
}

// frame builds the input for a frame at now.
func (s *inputState) frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, until := range s.held {
		if now.Before(until) {
			in.Set(a)
		} else {
			delete(s.held, a)
		}
	}

	if s.pointer {
		in.Set(core.ActionConfirm)
		if s.stick {
			in.Joystick = core.Joystick{InUse: true, Y: s.joyY}
		} else {
			in.Drag = core.Drag{Active: true, Y: s.dragY}
		}
	}
	return in
}
