package audio

import (
	"io"

	"github.com/charmbracelet/log"
)

// Mute implements scene.Audio for hosts with no sound device, such as SSH
// sessions. It only logs what would have played.
type Mute struct {
	logger *log.Logger
}

// NewMute creates a silent player.
func NewMute(logger *log.Logger) *Mute {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Mute{logger: logger}
}

func (m *Mute) PlayLoop(key string, volume float64) error {
	m.logger.Debug("muted loop", "key", key, "volume", volume)
	return nil
}

func (m *Mute) PlayOnce(key string) error {
	m.logger.Debug("muted sound", "key", key)
	return nil
}

func (m *Mute) Stop(key string) {
	m.logger.Debug("muted stop", "key", key)
}
