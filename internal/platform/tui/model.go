package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jadedm/feed-the-cow/internal/assets"
	"github.com/jadedm/feed-the-cow/internal/audio"
	"github.com/jadedm/feed-the-cow/internal/config"
	"github.com/jadedm/feed-the-cow/internal/core"
	"github.com/jadedm/feed-the-cow/internal/scene"
)

// Options configures a game model.
type Options struct {
	Config  config.CowConfig
	Runtime core.RuntimeConfig

	// Library loads sprites and clips. Nil creates one from Config.
	Library *assets.Library
	// Audio plays the clips. Nil plays nothing.
	Audio  scene.Audio
	Logger *log.Logger

	// Screenshots enables ctrl+s to save the screen under ~/.feedthecow.
	Screenshots bool
	// OnQuit runs once when the player quits.
	OnQuit func()
}

// Model is the Bubble Tea model running one game of Feed The Cow.
type Model struct {
	manager *scene.Manager
	layer   *SpriteLayer
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	input   *inputState
	config  core.RuntimeConfig
	now     func() time.Time
	last    time.Time

	screenshots bool
	onQuit      func()
	quitting    bool
}

// NewModel wires the asset library, the sprite layer and the audio player
// into a scene manager.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	lib := opts.Library
	if lib == nil {
		lib = assets.NewLibrary(assets.Options{Files: opts.Config.Audio.Files, Logger: opts.Logger})
	}
	player := opts.Audio
	if player == nil {
		player = audio.NewMute(opts.Logger)
	}

	layer := NewSpriteLayer(lib, cfg.ScreenW, cfg.ScreenH)
	mgr, err := scene.New(scene.Options{Config: opts.Config, Seed: cfg.Seed, Logger: opts.Logger}, lib, layer, player)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	m := Model{
		manager:     mgr,
		layer:       layer,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		input:       newInputState(),
		config:      cfg,
		now:         time.Now,
		screenshots: opts.Screenshots,
		onQuit:      opts.OnQuit,
	}
	m.layout()
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.mouse(msg, m.layer)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if m.screenshots {
			m.saveScreenshot()
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quit()
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.press(a, m.now())
	}
	return m, nil
}

// handleTick runs one simulation frame with the real time since the last.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	dt := frameDelta(m.last, now, m.config.TickRate)
	m.last = now

	m.manager.Tick(dt, m.input.frame(now))
	return m, tickCmd(m.config.TickRate)
}

// quit releases the session once.
func (m *Model) quit() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.manager.Close()
	if m.onQuit != nil {
		m.onQuit()
	}
}

// layout splits the terminal into the world viewport, the status line
// and the help view.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	helpH := lipgloss.Height(m.help.View(m.keys))
	viewH := max(m.config.ScreenH-1-helpH, 1)

	m.screen.Resize(m.config.ScreenW, viewH)
	m.layer.SetViewport(m.config.ScreenW, viewH)
}

// Status returns what the scene manager reports.
func (m Model) Status() scene.Status {
	return m.manager.Status()
}

// View renders the world, the status line and the help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.layer.Draw(m.screen)

	return RenderScreen(m.screen) + "\n" +
		statusLine(m.manager.Status(), m.config.ScreenW) + "\n" +
		m.help.View(m.keys)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.screen.Clear()
	m.layer.Draw(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".feedthecow", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("cow_%s.txt", m.now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// Run starts a local Bubble Tea program for the game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
