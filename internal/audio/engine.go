// Package audio plays decoded clips for the scenes. Engine mixes voices
// into one beep stream that a speaker, or a test, pulls from.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// ErrClipNotReady is returned when a clip has not been decoded.
var ErrClipNotReady = errors.New("clip not ready")

// ClipSource provides decoded clips by key.
type ClipSource interface {
	Clip(key string) (*beep.Buffer, bool)
}

// voice is one playing clip. A stopped voice reports itself drained so the
// mixer drops it on its next pass. A short read also means drained.
type voice struct {
	s       beep.Streamer
	stopped bool
	done    bool
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.stopped {
		v.done = true
		return 0, false
	}
	n, ok := v.s.Stream(samples)
	if !ok || n < len(samples) {
		v.done = true
	}
	return n, ok
}

func (v *voice) Err() error {
	return v.s.Err()
}

// Engine implements scene.Audio on top of a beep.Mixer. It is safe for
// concurrent use: the speaker goroutine streams while the game plays.
type Engine struct {
	clips  ClipSource
	logger *log.Logger

	mu     sync.Mutex
	mixer  *beep.Mixer
	voices map[string][]*voice
}

// NewEngine creates an engine with no voices.
func NewEngine(clips ClipSource, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		clips:  clips,
		logger: logger,
		mixer:  &beep.Mixer{},
		voices: make(map[string][]*voice),
	}
}

// PlayLoop starts key looping at volume in [0, 1], replacing any voice
// already playing key.
func (e *Engine) PlayLoop(key string, volume float64) error {
	buf, ok := e.clips.Clip(key)
	if !ok {
		return fmt.Errorf("audio: loop %q: %w", key, ErrClipNotReady)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked(key)
	e.addLocked(key, withVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), volume))
	e.logger.Debug("audio loop", "key", key, "volume", volume)
	return nil
}

// PlayOnce plays key to the end. Overlapping plays of the same key mix.
func (e *Engine) PlayOnce(key string) error {
	buf, ok := e.clips.Clip(key)
	if !ok {
		return fmt.Errorf("audio: play %q: %w", key, ErrClipNotReady)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.addLocked(key, buf.Streamer(0, buf.Len()))
	return nil
}

// Stop silences every voice of key.
func (e *Engine) Stop(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked(key)
}

// Close stops every voice.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for key := range e.voices {
		e.stopLocked(key)
	}
	e.mixer.Clear()
}

// Active returns the number of voices of key still playing.
func (e *Engine) Active(key string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pruneLocked()
	return len(e.voices[key])
}

// Stream mixes the playing voices. The engine never drains.
func (e *Engine) Stream(samples [][2]float64) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, _ := e.mixer.Stream(samples)
	e.pruneLocked()
	return n, true
}

// Err implements beep.Streamer.
func (e *Engine) Err() error {
	return nil
}

func (e *Engine) addLocked(key string, s beep.Streamer) {
	v := &voice{s: s}
	e.voices[key] = append(e.voices[key], v)
	e.mixer.Add(v)
}

func (e *Engine) stopLocked(key string) {
	for _, v := range e.voices[key] {
		v.stopped = true
	}
	delete(e.voices, key)
}

// pruneLocked forgets voices the mixer has drained.
func (e *Engine) pruneLocked() {
	for key, vs := range e.voices {
		live := vs[:0]
		for _, v := range vs {
			if !v.done {
				live = append(live, v)
			}
		}
		if len(live) == 0 {
			delete(e.voices, key)
			continue
		}
		e.voices[key] = live
	}
}

// withVolume scales s by a linear volume. Zero is silent.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
