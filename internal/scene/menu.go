package scene

import (
	"time"

	"github.com/jadedm/feed-the-cow/internal/core"
)

// menuScene is the title screen. Confirm starts a session.
type menuScene struct{ noExit }

func (menuScene) enter(m *Manager) {
	w, h := m.worldSize()
	m.stage.destroyer(m.render, m.render.CreateEntity(ImageTitleScreen, core.Box{W: w, H: h}))
	m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.82, "tap or press enter to start"))
	m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.9, "up/down or drag to move the cow"))
}

func (menuScene) tick(m *Manager, _ time.Duration, _ core.InputFrame, confirm bool) (Event, bool) {
	if !confirm {
		return 0, false
	}
	m.playOnce(AudioSelect)
	return EventConfirm, true
}
