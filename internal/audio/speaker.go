package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// OpenSpeaker starts playing the engine on the local sound device. The
// returned function stops playback and closes the device.
func OpenSpeaker(e *Engine, format beep.Format) (func(), error) {
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(e)
	return func() {
		e.Close()
		speaker.Clear()
		speaker.Close()
	}, nil
}
