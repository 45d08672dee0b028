package core

// Action represents a semantic input, abstracted from physical keys and pointers.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - held while moving up
	ActionDown           // S, Down arrow - held while moving down
	ActionConfirm        // Enter, Space, pointer down - acted on at its rising edge
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Joystick is the state of the virtual on-screen stick.
// Y runs from -100 (full up) to 100 (full down).
type Joystick struct {
	InUse bool
	Y     float64
}

// Drag is a pointer held down on the player. Y is in world units.
type Drag struct {
	Active bool
	Y      float64
}

// InputFrame is the input state for one frame.
// Actions hold the level of each input; consumers detect edges themselves.
type InputFrame struct {
	Actions  map[Action]bool
	Joystick Joystick
	Drag     Drag
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

