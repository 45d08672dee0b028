package scene

import (
	"fmt"
	"time"

	"github.com/jadedm/feed-the-cow/internal/core"
)

// deadCowDrift is how the dead cow floats away, in world units per second.
var deadCowDrift = core.Vec{X: 10, Y: 80}

// gameOverScene shows the frozen world with the dead cow on top. Confirm
// tears the session down and goes back to the start menu.
type gameOverScene struct{}

func (gameOverScene) enter(m *Manager) {
	w, h := m.worldSize()
	s := m.session

	m.view.freeze(m.render)
	m.view.hidePlayer(m.render)
	dead := m.stage.destroyer(m.render, m.render.CreateEntity(ImageDeadCow, s.Player.Box()))
	m.render.SetVelocity(dead, deadCowDrift.X, deadCowDrift.Y)
	m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.3, "come on! she's just getting started!"))
	m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.4, fmt.Sprintf("final score: %d", s.Score.Value())))
	m.stage.destroyer(m.render, m.render.CreateEntity(ImageButton, centred(w/2, h*0.6, w/4, h/8)))
	m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.6, "try again"))
}

func (gameOverScene) tick(m *Manager, _ time.Duration, _ core.InputFrame, confirm bool) (Event, bool) {
	if !confirm {
		return 0, false
	}
	m.playOnce(AudioSelect)
	return EventConfirm, true
}

func (gameOverScene) exit(m *Manager) {
	m.endSession()
}
