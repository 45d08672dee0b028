package scene

import "github.com/jadedm/feed-the-cow/internal/core"

// AssetKind tells the asset collaborator how to load a key.
type AssetKind int

const (
	AssetImage AssetKind = iota
	AssetAudio
)

// String returns the kind name.
func (k AssetKind) String() string {
	if k == AssetAudio {
		return "audio"
	}
	return "image"
}

// Asset keys the scenes load and draw.
const (
	ImageBackground  = "bg"
	ImageCow         = "cow"
	ImageGrass       = "grass"
	ImageInjection   = "injection"
	ImageDeadCow     = "deadCow"
	ImageButton      = "button"
	ImageTitleScreen = "titlescreen"
	ImagePreloadBar  = "preloadBar"
	ImageTitle       = "titleimage"
	ImageGamepad     = "gamepad"

	AudioMusic  = "music"
	AudioHurt   = "hurt"
	AudioSelect = "select"
)

// AssetHandle identifies a requested asset.
type AssetHandle struct {
	Key  string
	Kind AssetKind
}

// Assets loads images and audio. Loading may be asynchronous; the scenes
// only poll it once per frame.
type Assets interface {
	// Load requests the asset. Requesting a key again retries it if it
	// previously failed and is a no-op otherwise.
	Load(key string, kind AssetKind) AssetHandle
	// Decoded reports whether the asset is ready for use.
	Decoded(key string) bool
	// Err returns the load error for key, or nil.
	Err(key string) error
	// Progress returns how many requested assets have finished, either way.
	Progress() (done, total int)
}

// Handle identifies something created on the renderer.
type Handle int

// Renderer draws sprites and text in world coordinates.
type Renderer interface {
	// SetWorldSize configures the logical world the display scales from.
	SetWorldSize(w, h float64)
	// CreateEntity places a sprite stretched over box.
	CreateEntity(sprite string, box core.Box) Handle
	// CreateText places text centred on (x, y).
	CreateText(x, y float64, text string) Handle
	Destroy(h Handle)
	// SetPosition moves the top-left corner of an entity or the centre of a text.
	SetPosition(h Handle, x, y float64)
	SetVelocity(h Handle, vx, vy float64)
	SetText(h Handle, text string)
	// SetCrop shows only the left frac of a sprite, for progress bars.
	SetCrop(h Handle, frac float64)
	// SetTileOffset scrolls a tiled sprite horizontally.
	SetTileOffset(h Handle, offset float64)
}

// Audio plays decoded clips.
type Audio interface {
	PlayLoop(key string, volume float64) error
	PlayOnce(key string) error
	Stop(key string)
}
