package cow

import (
	"testing"

	"github.com/jadedm/feed-the-cow/internal/core"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		joystick core.Joystick
		want     float64
	}{
		{"idle", nil, core.Joystick{}, 0},
		{"up", []core.Action{core.ActionUp}, core.Joystick{}, -1},
		{"down", []core.Action{core.ActionDown}, core.Joystick{}, 1},
		{"both keys, up wins", []core.Action{core.ActionUp, core.ActionDown}, core.Joystick{}, -1},
		{"joystick half down", nil, core.Joystick{InUse: true, Y: 50}, 0.5},
		{"joystick clamped", nil, core.Joystick{InUse: true, Y: -250}, -1},
		{"joystick centred overrides keys", []core.Action{core.ActionDown}, core.Joystick{InUse: true}, 0},
		{"joystick released", []core.Action{core.ActionDown}, core.Joystick{Y: -100}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			in.Joystick = tt.joystick

			if got := Axis(in); got != tt.want {
				t.Errorf("Axis() = %f, expected %f", got, tt.want)
			}
		})
	}
}
