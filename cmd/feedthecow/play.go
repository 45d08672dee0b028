package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jadedm/feed-the-cow/internal/assets"
	"github.com/jadedm/feed-the-cow/internal/audio"
	"github.com/jadedm/feed-the-cow/internal/core"
	"github.com/jadedm/feed-the-cow/internal/platform/tui"
	"github.com/jadedm/feed-the-cow/internal/scene"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Feed The Cow in this terminal.

Controls:
  Up/W, Down/S   - Move the cow
  Enter/Space    - Start, try again
  Mouse          - Drag the cow, or hold the stick in the corner
  Ctrl+S         - Save a screenshot to ~/.feedthecow/screenshots
  ?              - Show all keys
  Q/Esc/Ctrl+C   - Quit

Examples:
  feedthecow play
  feedthecow play --mute
  feedthecow play --config ./my-cow.yaml --log-file cow.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs go nowhere by default; the terminal belongs to the game
	logger, closeLog, err := newLogger("cow", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	lib := assets.NewLibrary(assets.Options{Files: cfg.Audio.Files, Logger: logger})

	var player scene.Audio
	closeAudio := func() {}
	if flagMute {
		player = audio.NewMute(logger)
	} else {
		engine := audio.NewEngine(lib, logger)
		closer, speakerErr := audio.OpenSpeaker(engine, assets.Format)
		if speakerErr != nil {
			// No sound device; the game still works
			logger.Warn("speaker unavailable, playing muted", "error", speakerErr)
			player = audio.NewMute(logger)
		} else {
			player = engine
			closeAudio = closer
		}
	}

	defer closeAudio()

	if err := tui.Run(tui.Options{
		Config:      cfg,
		Runtime:     runtime,
		Library:     lib,
		Audio:       player,
		Logger:      logger,
		Screenshots: true,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
