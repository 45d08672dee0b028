// Package assets loads the images and sounds of Feed The Cow. Images are
// glyph sprites and are ready at once; sounds are synthesised, or decoded
// from WAV files when configured, on background goroutines.
package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/jadedm/feed-the-cow/internal/scene"
)

// ErrUnknownAsset is returned for keys with no sprite, recipe or file.
var ErrUnknownAsset = errors.New("unknown asset")

// Format is the sample format every clip is decoded to.
var Format = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// Options configures a Library.
type Options struct {
	Files  map[string]string // audio key -> WAV path, overriding the built-in clip
	Logger *log.Logger
}

type item struct {
	kind scene.AssetKind
	busy bool
	done bool
	err  error
	clip *beep.Buffer
}

// Library implements scene.Assets. It is safe for concurrent use.
type Library struct {
	files  map[string]string
	logger *log.Logger

	mu    sync.Mutex
	items map[string]*item
	wg    sync.WaitGroup
}

// NewLibrary creates an empty library.
func NewLibrary(opts Options) *Library {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	files := make(map[string]string, len(opts.Files))
	for k, v := range opts.Files {
		files[k] = v
	}
	return &Library{
		files:  files,
		logger: logger,
		items:  make(map[string]*item),
	}
}

// Load requests an asset. Audio decodes in the background; a failed key
// is retried by loading it again.
func (l *Library) Load(key string, kind scene.AssetKind) scene.AssetHandle {
	h := scene.AssetHandle{Key: key, Kind: kind}

	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[key]
	if ok && (it.busy || it.err == nil) {
		return h
	}
	it = &item{kind: kind}
	l.items[key] = it

	if kind == scene.AssetImage {
		it.done = true
		if _, ok := LookupSprite(key); !ok {
			it.err = fmt.Errorf("assets: image %q: %w", key, ErrUnknownAsset)
		}
		return h
	}

	it.busy = true
	l.wg.Add(1)
	go l.decode(key, it)
	return h
}

func (l *Library) decode(key string, it *item) {
	defer l.wg.Done()

	start := time.Now()
	clip, err := l.clip(key)

	l.mu.Lock()
	it.busy = false
	it.done = true
	it.clip = clip
	it.err = err
	l.mu.Unlock()

	if err != nil {
		l.logger.Warn("audio decode failed", "key", key, "error", err)
		return
	}
	l.logger.Debug("audio decoded", "key", key, "samples", clip.Len(), "took", time.Since(start))
}

// clip builds the buffer for key from its file or its recipe.
func (l *Library) clip(key string) (*beep.Buffer, error) {
	if path, ok := l.files[key]; ok {
		return decodeWAV(path)
	}
	recipe, ok := recipes[key]
	if !ok {
		return nil, fmt.Errorf("assets: audio %q: %w", key, ErrUnknownAsset)
	}
	buf := beep.NewBuffer(Format)
	buf.Append(recipe(Format.SampleRate))
	return buf, nil
}

func decodeWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != Format.SampleRate {
		s = beep.Resample(4, format.SampleRate, Format.SampleRate, streamer)
	}
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return buf, nil
}

// Decoded reports whether key loaded without error.
func (l *Library) Decoded(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[key]
	return ok && it.done && it.err == nil
}

// Err returns the load error for key.
func (l *Library) Err(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if it, ok := l.items[key]; ok {
		return it.err
	}
	return nil
}

// Progress returns how many requested assets are finished.
func (l *Library) Progress() (done, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if it.done {
			done++
		}
	}
	return done, len(l.items)
}

// Clip returns the decoded buffer for an audio key.
func (l *Library) Clip(key string) (*beep.Buffer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[key]
	if !ok || !it.done || it.err != nil || it.clip == nil {
		return nil, false
	}
	return it.clip, true
}

// Sprite returns the glyph art for an image key, once loaded.
func (l *Library) Sprite(key string) (Sprite, bool) {
	if !l.Decoded(key) {
		return Sprite{}, false
	}
	return LookupSprite(key)
}

// Wait blocks until every pending decode has finished.
func (l *Library) Wait() {
	l.wg.Wait()
}
