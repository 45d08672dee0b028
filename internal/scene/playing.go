package scene

import (
	"fmt"
	"time"

	"github.com/jadedm/feed-the-cow/internal/core"
	"github.com/jadedm/feed-the-cow/internal/games/cow"
)

// playingScene runs the session. The one-second timer and the music loop
// are acquired on entry and released by the stage scope on exit.
type playingScene struct{ noExit }

func (playingScene) enter(m *Manager) {
	m.beginSession()

	m.clock.Start()
	m.stage.add(m.clock.Stop)

	if err := m.audio.PlayLoop(AudioMusic, m.cfg.Audio.MusicVolume); err != nil {
		m.logger.Warn("audio", "key", AudioMusic, "error", err)
	} else {
		m.stage.add(func() { m.audio.Stop(AudioMusic) })
	}
}

func (playingScene) tick(m *Manager, dt time.Duration, in core.InputFrame, _ bool) (Event, bool) {
	s := m.session

	for range m.clock.Advance(dt) {
		if added := s.Second(); added > 0 {
			m.view.grow(m.render, &m.world, s)
			m.logger.Debug("difficulty step", "elapsed", s.Elapsed, "added", added, "hazards", s.Hazards.Len())
		}
	}

	res := s.Step(dt, in)
	m.view.sync(m.render, s)

	if res.HazardHit() {
		m.playOnce(AudioHurt)
		m.logger.Debug("hazard hit", "elapsed", s.Elapsed, "score", s.Score.Value())
		return EventHazardHit, true
	}
	return 0, false
}

// view holds the render handles of one session's world.
type view struct {
	bg      Handle
	player  Handle
	score   Handle
	gamepad Handle
	grass   []Handle
	hazards []Handle

	playerHidden bool
}

// newView creates the session's sprites and registers their destruction
// in world.
func newView(r Renderer, world *scope, s *cow.Session) *view {
	w, h := s.WorldSize()
	v := &view{
		bg: world.destroyer(r, r.CreateEntity(ImageBackground, core.Box{W: w, H: h})),
	}
	for _, g := range s.Grass.Items() {
		v.grass = append(v.grass, world.destroyer(r, r.CreateEntity(ImageGrass, g.Box())))
	}
	v.grow(r, world, s)
	v.player = r.CreateEntity(ImageCow, s.Player.Box())
	world.add(func() { v.hidePlayer(r) })
	v.score = world.destroyer(r, r.CreateText(w*0.1, h*0.05, scoreText(0)))
	v.gamepad = world.destroyer(r, r.CreateEntity(ImageGamepad, core.Box{X: w * 0.02, Y: h * 0.7, W: h * 0.25, H: h * 0.25}))
	v.sync(r, s)
	return v
}

// grow creates sprites for hazards added since the last call.
func (v *view) grow(r Renderer, world *scope, s *cow.Session) {
	for i := len(v.hazards); i < s.Hazards.Len(); i++ {
		v.hazards = append(v.hazards, world.destroyer(r, r.CreateEntity(ImageInjection, s.Hazards.At(i).Box())))
	}
}

func (v *view) sync(r Renderer, s *cow.Session) {
	r.SetTileOffset(v.bg, s.TileOffset)
	place(r, v.player, s.Player)
	for i, h := range v.grass {
		place(r, h, *s.Grass.At(i))
	}
	for i, h := range v.hazards {
		place(r, h, *s.Hazards.At(i))
	}
	r.SetText(v.score, scoreText(s.Score.Value()))
}

// freeze stops every sprite where it is.
func (v *view) freeze(r Renderer) {
	r.SetVelocity(v.player, 0, 0)
	for _, h := range v.grass {
		r.SetVelocity(h, 0, 0)
	}
	for _, h := range v.hazards {
		r.SetVelocity(h, 0, 0)
	}
}

// hidePlayer destroys the live cow sprite before the rest of the world.
func (v *view) hidePlayer(r Renderer) {
	if v.playerHidden {
		return
	}
	v.playerHidden = true
	r.Destroy(v.player)
}

func place(r Renderer, h Handle, e cow.Entity) {
	r.SetPosition(h, e.Pos.X, e.Pos.Y)
	r.SetVelocity(h, e.Vel.X, e.Vel.Y)
}

func scoreText(score int) string {
	return fmt.Sprintf("score: %d", score)
}
