package cow

import "github.com/jadedm/feed-the-cow/internal/core"

// Axis folds key state and the joystick into one vertical axis in [-1, 1].
// The joystick wins whenever it is in use; with both keys held, up wins.
// Nothing here ever produces horizontal motion.
func Axis(in core.InputFrame) float64 {
	if in.Joystick.InUse {
		return core.ClampF(in.Joystick.Y/100, -1, 1)
	}
	switch {
	case in.Has(core.ActionUp):
		return -1
	case in.Has(core.ActionDown):
		return 1
	default:
		return 0
	}
}
