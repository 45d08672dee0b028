// Package scene drives Feed The Cow through its scenes: boot, preload,
// start menu, playing and game over. It owns the game session and talks
// to the outside world only through the Assets, Renderer and Audio
// collaborators, so any host can run it.
package scene

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jadedm/feed-the-cow/internal/config"
	"github.com/jadedm/feed-the-cow/internal/core"
	"github.com/jadedm/feed-the-cow/internal/games/cow"
)

// ErrLoadTimeout is wrapped by Err when the required audio did not decode
// within the configured timeout.
var ErrLoadTimeout = errors.New("timed out waiting for assets")

// Options configures a Manager.
type Options struct {
	Config config.CowConfig
	Seed   int64       // 0 seeds from the current time
	Logger *log.Logger // nil discards logs
}

// Status is the session state exposed to hosts for display.
type Status struct {
	Scene    State
	Score    int
	Elapsed  int
	GameOver bool
	Hazards  int
	Grass    int
	Scroll   float64
}

// handler is the behaviour of one scene.
type handler interface {
	enter(m *Manager)
	// tick does the scene's per-frame work and reports an event, if any.
	tick(m *Manager, dt time.Duration, in core.InputFrame, confirm bool) (Event, bool)
	exit(m *Manager)
}

// noExit is embedded by scenes whose resources all live in the stage scope.
type noExit struct{}

func (noExit) exit(*Manager) {}

// Manager is the scene state machine. It is not safe for concurrent use:
// a host drives it from one goroutine, one Tick per frame.
type Manager struct {
	cfg    config.CowConfig
	rng    *rand.Rand
	logger *log.Logger

	assets Assets
	render Renderer
	audio  Audio

	state  State
	scenes map[State]handler

	stage scope // resources of the active scene, released on every exit
	world scope // session render handles, released when the session ends

	session *cow.Session
	view    *view
	clock   *core.Clock

	err         error
	confirmHeld bool
	closed      bool
}

// New validates the configuration and enters Boot.
func New(opts Options, assets Assets, render Renderer, audio Audio) (*Manager, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Manager{
		cfg:    opts.Config,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		assets: assets,
		render: render,
		audio:  audio,
		state:  Boot,
		clock:  core.NewClock(time.Second),
	}
	m.scenes = map[State]handler{
		Boot:       bootScene{},
		Preloading: &preloadScene{},
		StartMenu:  menuScene{},
		Playing:    playingScene{},
		GameOver:   gameOverScene{},
		LoadFailed: failedScene{},
	}

	m.logger.Debug("scene", "enter", m.state, "seed", seed)
	m.scenes[m.state].enter(m)
	return m, nil
}

// Tick runs one frame of the active scene and returns the scene to render.
// Confirm is acted on only on its rising edge.
func (m *Manager) Tick(dt time.Duration, in core.InputFrame) State {
	if m.closed {
		return m.state
	}

	held := in.Has(core.ActionConfirm)
	confirm := held && !m.confirmHeld
	m.confirmHeld = held

	if ev, ok := m.scenes[m.state].tick(m, dt, in, confirm); ok {
		m.fire(ev)
	}
	return m.state
}

// fire runs exit and entry work for the transition on ev.
func (m *Manager) fire(ev Event) {
	next, ok := Transition(m.state, ev)
	if !ok {
		m.logger.Warn("event ignored", "scene", m.state, "event", ev)
		return
	}

	m.scenes[m.state].exit(m)
	m.stage.release()

	m.logger.Debug("scene", "from", m.state, "to", next, "event", ev)
	m.state = next
	m.scenes[next].enter(m)
}

// State returns the active scene.
func (m *Manager) State() State {
	return m.state
}

// Status returns the scene and, while a session exists, its counters.
func (m *Manager) Status() Status {
	st := Status{Scene: m.state}
	if s := m.session; s != nil {
		st.Score = s.Score.Value()
		st.Elapsed = s.Elapsed
		st.GameOver = s.GameOver
		st.Hazards = s.Hazards.Len()
		st.Grass = s.Grass.Len()
		st.Scroll = s.ScrollSpeed()
	}
	return st
}

// Err returns why the manager is in LoadFailed, or nil.
func (m *Manager) Err() error {
	return m.err
}

// Close aborts whatever is running and releases every scene and session
// resource. The manager ignores Tick afterwards.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.stage.release()
	m.endSession()
	m.logger.Debug("scene", "closed", m.state)
}

// beginSession creates a fresh session and its render handles.
func (m *Manager) beginSession() {
	m.session = cow.NewSession(m.cfg, m.rng)
	m.view = newView(m.render, &m.world, m.session)
}

// endSession discards the session and destroys its render handles.
func (m *Manager) endSession() {
	m.world.release()
	m.session = nil
	m.view = nil
}

func (m *Manager) playOnce(key string) {
	if err := m.audio.PlayOnce(key); err != nil {
		m.logger.Warn("audio", "key", key, "error", err)
	}
}

func (m *Manager) worldSize() (float64, float64) {
	return m.cfg.World.Width, m.cfg.World.Height
}

// centred returns a w by h box centred on (cx, cy).
func centred(cx, cy, w, h float64) core.Box {
	return core.Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
