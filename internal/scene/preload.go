package scene

import (
	"fmt"
	"time"

	"github.com/jadedm/feed-the-cow/internal/core"
)

var (
	gameImages = []string{
		ImageBackground, ImageCow, ImageGrass, ImageInjection, ImageDeadCow,
		ImageButton, ImageTitleScreen, ImageGamepad,
	}
	gameAudio = []string{AudioMusic, AudioHurt, AudioSelect}
)

// preloadScene requests every asset and waits for the music to decode.
type preloadScene struct {
	noExit
	waited time.Duration
	bar    Handle
	label  Handle
}

func (p *preloadScene) enter(m *Manager) {
	p.waited = 0
	m.err = nil

	w, h := m.worldSize()
	m.stage.destroyer(m.render, m.render.CreateEntity(ImageTitle, centred(w/2, h*0.35, w/2, h/5)))
	p.bar = m.stage.destroyer(m.render, m.render.CreateEntity(ImagePreloadBar, centred(w/2, h*0.65, w/2, h/18)))
	p.label = m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.75, "loading"))
	m.render.SetCrop(p.bar, 0)

	for _, key := range gameImages {
		m.assets.Load(key, AssetImage)
	}
	for _, key := range gameAudio {
		m.assets.Load(key, AssetAudio)
	}
}

func (p *preloadScene) tick(m *Manager, dt time.Duration, _ core.InputFrame, _ bool) (Event, bool) {
	p.waited += dt

	done, total := m.assets.Progress()
	if total > 0 {
		m.render.SetCrop(p.bar, float64(done)/float64(total))
		m.render.SetText(p.label, fmt.Sprintf("loading %d/%d", done, total))
	}

	if err := m.assets.Err(AudioMusic); err != nil {
		m.err = fmt.Errorf("scene: loading %q: %w", AudioMusic, err)
		return EventLoadFailed, true
	}
	if m.assets.Decoded(AudioMusic) {
		return EventLoaded, true
	}

	timeout := time.Duration(m.cfg.Audio.LoadTimeoutSeconds * float64(time.Second))
	if timeout > 0 && p.waited >= timeout {
		m.err = fmt.Errorf("scene: %q not decoded after %s: %w", AudioMusic, timeout, ErrLoadTimeout)
		return EventLoadFailed, true
	}
	return 0, false
}

// failedScene shows the load error. Confirm retries the preload.
type failedScene struct{ noExit }

func (failedScene) enter(m *Manager) {
	w, h := m.worldSize()
	m.logger.Error("assets failed to load", "error", m.err)

	m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.4, "the cow could not find her music"))
	if m.err != nil {
		m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.5, m.err.Error()))
	}
	m.stage.destroyer(m.render, m.render.CreateText(w/2, h*0.65, "press enter to retry"))
}

func (failedScene) tick(_ *Manager, _ time.Duration, _ core.InputFrame, confirm bool) (Event, bool) {
	return EventConfirm, confirm
}
