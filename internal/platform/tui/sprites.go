package tui

import (
	"math"
	"unicode/utf8"

	"github.com/jadedm/feed-the-cow/internal/assets"
	"github.com/jadedm/feed-the-cow/internal/core"
	"github.com/jadedm/feed-the-cow/internal/scene"
)

const textSprite = "text"

// SpriteSource provides loaded glyph art by image key.
type SpriteSource interface {
	Sprite(key string) (assets.Sprite, bool)
}

type layerEntry struct {
	sprite string
	box    core.Box
	vel    core.Vec
	text   string
	crop   float64
	offset float64
}

// SpriteLayer implements scene.Renderer by scaling the world onto a
// character screen. Entries are drawn in creation order.
type SpriteLayer struct {
	src    SpriteSource
	worldW float64
	worldH float64
	viewW  int
	viewH  int

	next    scene.Handle
	entries map[scene.Handle]*layerEntry
	order   []scene.Handle
}

// NewSpriteLayer creates a layer drawing into a viewW by viewH viewport.
func NewSpriteLayer(src SpriteSource, viewW, viewH int) *SpriteLayer {
	return &SpriteLayer{
		src:     src,
		worldW:  1,
		worldH:  1,
		viewW:   viewW,
		viewH:   viewH,
		entries: make(map[scene.Handle]*layerEntry),
	}
}

// SetViewport changes the number of cells the world is scaled to.
func (l *SpriteLayer) SetViewport(w, h int) {
	l.viewW, l.viewH = w, h
}

func (l *SpriteLayer) SetWorldSize(w, h float64) {
	l.worldW, l.worldH = w, h
}

func (l *SpriteLayer) add(e *layerEntry) scene.Handle {
	l.next++
	l.entries[l.next] = e
	l.order = append(l.order, l.next)
	return l.next
}

func (l *SpriteLayer) CreateEntity(sprite string, box core.Box) scene.Handle {
	return l.add(&layerEntry{sprite: sprite, box: box, crop: 1})
}

func (l *SpriteLayer) CreateText(x, y float64, text string) scene.Handle {
	return l.add(&layerEntry{sprite: textSprite, box: core.Box{X: x, Y: y}, text: text, crop: 1})
}

func (l *SpriteLayer) Destroy(h scene.Handle) {
	if _, ok := l.entries[h]; !ok {
		return
	}
	delete(l.entries, h)
	for i, o := range l.order {
		if o == h {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *SpriteLayer) SetPosition(h scene.Handle, x, y float64) {
	if e, ok := l.entries[h]; ok {
		e.box.X, e.box.Y = x, y
	}
}

func (l *SpriteLayer) SetVelocity(h scene.Handle, vx, vy float64) {
	if e, ok := l.entries[h]; ok {
		e.vel = core.Vec{X: vx, Y: vy}
	}
}

func (l *SpriteLayer) SetText(h scene.Handle, text string) {
	if e, ok := l.entries[h]; ok {
		e.text = text
	}
}

func (l *SpriteLayer) SetCrop(h scene.Handle, frac float64) {
	if e, ok := l.entries[h]; ok {
		e.crop = core.ClampF(frac, 0, 1)
	}
}

func (l *SpriteLayer) SetTileOffset(h scene.Handle, offset float64) {
	if e, ok := l.entries[h]; ok {
		e.offset = offset
	}
}

// Len returns the number of live entries.
func (l *SpriteLayer) Len() int {
	return len(l.order)
}

// Moving reports whether any entry has a non-zero velocity.
func (l *SpriteLayer) Moving() bool {
	for _, e := range l.entries {
		if e.vel != (core.Vec{}) {
			return true
		}
	}
	return false
}

// cells converts a world box to a screen rectangle.
func (l *SpriteLayer) cells(b core.Box) core.Rect {
	sx := float64(l.viewW) / l.worldW
	sy := float64(l.viewH) / l.worldH
	x0 := int(math.Round(b.X * sx))
	y0 := int(math.Round(b.Y * sy))
	x1 := int(math.Round(b.Right() * sx))
	y1 := int(math.Round(b.Bottom() * sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// JoystickZone returns where the on-screen stick is drawn.
func (l *SpriteLayer) JoystickZone() (core.Rect, bool) {
	for _, h := range l.order {
		if e := l.entries[h]; e.sprite == scene.ImageGamepad {
			return l.cells(e.box), true
		}
	}
	return core.Rect{}, false
}

// WorldY converts a screen row to the world y at the row's centre.
func (l *SpriteLayer) WorldY(row int) float64 {
	if l.viewH <= 0 {
		return 0
	}
	return (float64(row) + 0.5) * l.worldH / float64(l.viewH)
}

// Draw paints every entry into dst, clipped to the viewport.
func (l *SpriteLayer) Draw(dst *core.Screen) {
	for _, h := range l.order {
		e := l.entries[h]
		if e.sprite == textSprite {
			l.drawText(dst, e)
			continue
		}
		art, ok := l.src.Sprite(e.sprite)
		if !ok {
			continue
		}
		r := l.cells(e.box)
		switch art.Fit {
		case assets.FitCentre:
			l.drawCentred(dst, art, r)
		case assets.FitTile:
			l.drawTiled(dst, art, r, e.offset)
		default:
			l.drawStretched(dst, art, r, e.crop)
		}
	}
}

func (l *SpriteLayer) put(dst *core.Screen, x, y int, ch rune, c core.Color) {
	if ch == ' ' || x < 0 || y < 0 || x >= l.viewW || y >= l.viewH {
		return
	}
	dst.SetColor(x, y, ch, c)
}

func (l *SpriteLayer) drawText(dst *core.Screen, e *layerEntry) {
	r := l.cells(core.Box{X: e.box.X, Y: e.box.Y})
	x := r.X - utf8.RuneCountInString(e.text)/2
	if r.Y < 0 || r.Y >= l.viewH {
		return
	}
	// Text is opaque, spaces included
	for i, ch := range []rune(e.text) {
		if x+i >= 0 && x+i < l.viewW {
			dst.SetColor(x+i, r.Y, ch, core.ColorBrightWhite)
		}
	}
}

func (l *SpriteLayer) drawStretched(dst *core.Screen, art assets.Sprite, r core.Rect, crop float64) {
	aw, ah := art.Size()
	visible := int(math.Ceil(float64(r.W) * crop))
	for cy := 0; cy < r.H; cy++ {
		for cx := 0; cx < visible; cx++ {
			l.put(dst, r.X+cx, r.Y+cy, art.At(cx*aw/r.W, cy*ah/r.H), art.Color)
		}
	}
}

func (l *SpriteLayer) drawCentred(dst *core.Screen, art assets.Sprite, r core.Rect) {
	aw, ah := art.Size()
	x0 := r.X + (r.W-aw)/2
	y0 := r.Y + (r.H-ah)/2
	for y := 0; y < ah; y++ {
		for x := 0; x < aw; x++ {
			l.put(dst, x0+x, y0+y, art.At(x, y), art.Color)
		}
	}
}

func (l *SpriteLayer) drawTiled(dst *core.Screen, art assets.Sprite, r core.Rect, offset float64) {
	aw, ah := art.Size()
	if aw == 0 || ah == 0 {
		return
	}
	shift := int(math.Round(offset * float64(l.viewW) / l.worldW))
	for cy := 0; cy < r.H; cy++ {
		for cx := 0; cx < r.W; cx++ {
			ax := ((cx-shift)%aw + aw) % aw
			l.put(dst, r.X+cx, r.Y+cy, art.At(ax, cy%ah), art.Color)
		}
	}
}
