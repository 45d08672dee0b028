package assets

import "github.com/jadedm/feed-the-cow/internal/core"

// Fit says how a sprite is drawn into the box it is given.
type Fit int

const (
	FitStretch Fit = iota // sampled to fill the box
	FitCentre             // drawn at its own size, centred in the box
	FitTile               // repeated across the box, scrolled by the tile offset
)

// Sprite is a glyph image. Spaces are transparent.
type Sprite struct {
	Rows  []string
	Color core.Color
	Fit   Fit
}

// Size returns the sprite's width and height in cells.
func (s Sprite) Size() (int, int) {
	w := 0
	for _, row := range s.Rows {
		w = core.Max(w, len([]rune(row)))
	}
	return w, len(s.Rows)
}

// At returns the glyph at (x, y), or a space outside the art.
func (s Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.Rows) || x < 0 {
		return ' '
	}
	row := []rune(s.Rows[y])
	if x >= len(row) {
		return ' '
	}
	return row[x]
}

var sprites = map[string]Sprite{
	"bg": {
		Color: core.ColorGreen,
		Fit:   FitTile,
		Rows: []string{
			"                    ",
			"   ,        .       ",
			"         '      ,   ",
			" .    ,             ",
			"            .    '  ",
			"     '   ,          ",
		},
	},
	"cow": {
		Color: core.ColorBrightWhite,
		Rows: []string{
			`  ^__^            `,
			`  (oo)\_______    `,
			`  (__)\       )\/\`,
			`      ||----w |   `,
			`      ||     ||   `,
		},
	},
	"deadCow": {
		Color: core.ColorGray,
		Rows: []string{
			`  ^__^            `,
			`  (xx)\_______    `,
			`  (__)\       )\/\`,
			`   U  ||----w |   `,
			`      ||     ||   `,
		},
	},
	"grass": {
		Color: core.ColorBrightGreen,
		Rows: []string{
			`\ | /`,
			`\\|//`,
			`\\|//`,
		},
	},
	"injection": {
		Color: core.ColorBrightRed,
		Rows: []string{
			`|=[####]=---`,
		},
	},
	"button": {
		Color: core.ColorYellow,
		Fit:   FitCentre,
		Rows: []string{
			`+---------------+`,
			`|               |`,
			`+---------------+`,
		},
	},
	"titlescreen": {
		Color: core.ColorBrightYellow,
		Fit:   FitCentre,
		Rows: []string{
			`  ___           _   _____ _            ___             `,
			` | __|__ ___ __| | |_   _| |_  ___    / __|_____ __ __ `,
			` | _/ -_) -_) _' |   | | | ' \/ -_)  | (__/ _ \ V  V / `,
			` |_|\___\___\__,_|   |_| |_||_\___|   \___\___/\_/\_/  `,
			``,
			``,
			`                        ^__^                           `,
			`                        (oo)\_______                   `,
			`                        (__)\       )\/\               `,
			`                            ||----w |                  `,
			`                            ||     ||                  `,
		},
	},
	"titleimage": {
		Color: core.ColorBrightYellow,
		Fit:   FitCentre,
		Rows: []string{
			`FEED THE COW`,
		},
	},
	"preloadBar": {
		Color: core.ColorBrightGreen,
		Rows: []string{
			`█`,
		},
	},
	"gamepad": {
		Color: core.ColorGray,
		Fit:   FitCentre,
		Rows: []string{
			`  ^  `,
			`( o )`,
			`  v  `,
		},
	},
}

// LookupSprite returns the glyph art for an image key.
func LookupSprite(key string) (Sprite, bool) {
	s, ok := sprites[key]
	return s, ok
}
