package scene

import (
	"errors"

	"github.com/jadedm/feed-the-cow/internal/core"
)

type fakeAsset struct {
	kind    AssetKind
	decoded bool
	err     error
	loads   int
}

// fakeAssets decodes nothing on its own; tests mark keys ready or failed.
type fakeAssets struct {
	items map[string]*fakeAsset
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{items: make(map[string]*fakeAsset)}
}

func (a *fakeAssets) Load(key string, kind AssetKind) AssetHandle {
	it, ok := a.items[key]
	if !ok {
		it = &fakeAsset{kind: kind}
		a.items[key] = it
	}
	it.err = nil
	it.loads++
	return AssetHandle{Key: key, Kind: kind}
}

func (a *fakeAssets) Decoded(key string) bool {
	it, ok := a.items[key]
	return ok && it.decoded
}

func (a *fakeAssets) Err(key string) error {
	if it, ok := a.items[key]; ok {
		return it.err
	}
	return nil
}

func (a *fakeAssets) Progress() (int, int) {
	done := 0
	for _, it := range a.items {
		if it.decoded || it.err != nil {
			done++
		}
	}
	return done, len(a.items)
}

func (a *fakeAssets) readyAll() {
	for _, it := range a.items {
		it.decoded = true
		it.err = nil
	}
}

func (a *fakeAssets) fail(key string, err error) {
	a.items[key].err = err
}

type fakeSprite struct {
	sprite string
	box    core.Box
	text   string
	crop   float64
	offset float64
	vel    core.Vec
}

type fakeRenderer struct {
	worldW, worldH float64
	next           Handle
	live           map[Handle]*fakeSprite
	destroyed      int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{live: make(map[Handle]*fakeSprite)}
}

func (r *fakeRenderer) SetWorldSize(w, h float64) {
	r.worldW, r.worldH = w, h
}

func (r *fakeRenderer) CreateEntity(sprite string, box core.Box) Handle {
	r.next++
	r.live[r.next] = &fakeSprite{sprite: sprite, box: box, crop: 1}
	return r.next
}

func (r *fakeRenderer) CreateText(x, y float64, text string) Handle {
	r.next++
	r.live[r.next] = &fakeSprite{sprite: "text", box: core.Box{X: x, Y: y}, text: text}
	return r.next
}

func (r *fakeRenderer) Destroy(h Handle) {
	if _, ok := r.live[h]; !ok {
		panic("destroy of unknown handle")
	}
	delete(r.live, h)
	r.destroyed++
}

func (r *fakeRenderer) get(h Handle) *fakeSprite {
	s, ok := r.live[h]
	if !ok {
		panic("update of destroyed handle")
	}
	return s
}

func (r *fakeRenderer) SetPosition(h Handle, x, y float64) {
	s := r.get(h)
	s.box.X, s.box.Y = x, y
}

func (r *fakeRenderer) SetVelocity(h Handle, vx, vy float64) {
	r.get(h).vel = core.Vec{X: vx, Y: vy}
}

func (r *fakeRenderer) SetText(h Handle, text string)          { r.get(h).text = text }
func (r *fakeRenderer) SetCrop(h Handle, frac float64)         { r.get(h).crop = frac }
func (r *fakeRenderer) SetTileOffset(h Handle, offset float64) { r.get(h).offset = offset }

// count returns the number of live sprites of one kind.
func (r *fakeRenderer) count(sprite string) int {
	n := 0
	for _, s := range r.live {
		if s.sprite == sprite {
			n++
		}
	}
	return n
}

func (r *fakeRenderer) hasText(text string) bool {
	for _, s := range r.live {
		if s.sprite == "text" && s.text == text {
			return true
		}
	}
	return false
}

var errNoSpeaker = errors.New("no speaker")

type fakeAudio struct {
	loops  map[string]float64
	once   []string
	stops  []string
	broken bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{loops: make(map[string]float64)}
}

func (a *fakeAudio) PlayLoop(key string, volume float64) error {
	if a.broken {
		return errNoSpeaker
	}
	a.loops[key] = volume
	return nil
}

func (a *fakeAudio) PlayOnce(key string) error {
	if a.broken {
		return errNoSpeaker
	}
	a.once = append(a.once, key)
	return nil
}

func (a *fakeAudio) Stop(key string) {
	delete(a.loops, key)
	a.stops = append(a.stops, key)
}

func (a *fakeAudio) played(key string) int {
	n := 0
	for _, k := range a.once {
		if k == key {
			n++
		}
	}
	return n
}
