package scene

import (
	"time"

	"github.com/jadedm/feed-the-cow/internal/core"
)

// bootScene configures the display once and loads what the preloader
// itself shows.
type bootScene struct{ noExit }

func (bootScene) enter(m *Manager) {
	m.render.SetWorldSize(m.worldSize())
	m.assets.Load(ImagePreloadBar, AssetImage)
	m.assets.Load(ImageTitle, AssetImage)
}

func (bootScene) tick(*Manager, time.Duration, core.InputFrame, bool) (Event, bool) {
	return EventBooted, true
}
