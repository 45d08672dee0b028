// Package config provides YAML-based configuration loading and validation
// for the Feed The Cow simulation.
package config

// CowConfig contains all tunables of the simulation.
type CowConfig struct {
	World      WorldConfig  `yaml:"world"`
	Player     PlayerConfig `yaml:"player"`
	Grass      GrassConfig  `yaml:"grass"`
	Hazards    HazardConfig `yaml:"hazards"`
	Scroll     ScrollConfig `yaml:"scroll"`
	Score      ScoreConfig  `yaml:"score"`
	Difficulty []Threshold  `yaml:"difficulty"`
	Audio      AudioConfig  `yaml:"audio"`
}

// WorldConfig defines the logical size of the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the cow.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Vertical speed in units per second at full axis
}

// Range is an inclusive sampling interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SpawnRanges defines where and how fast an entity appears.
type SpawnRanges struct {
	X         Range `yaml:"x"`
	Y         Range `yaml:"y"`
	VelocityX Range `yaml:"velocity_x"`
}

// GrassConfig defines the collectible pool.
// Initial grass is spread at Spawn.X.Min + i*Stride + Jitter.
type GrassConfig struct {
	Count   int         `yaml:"count"`
	Width   float64     `yaml:"width"`
	Height  float64     `yaml:"height"`
	Stride  float64     `yaml:"stride"`
	Jitter  Range       `yaml:"jitter"`
	Spawn   SpawnRanges `yaml:"spawn"`
	Respawn SpawnRanges `yaml:"respawn"`
}

// HazardConfig defines the obstacle pool.
type HazardConfig struct {
	InitialCount int         `yaml:"initial_count"`
	Width        float64     `yaml:"width"`
	Height       float64     `yaml:"height"`
	Spawn        SpawnRanges `yaml:"spawn"`
	Respawn      SpawnRanges `yaml:"respawn"`
}

// ScrollConfig defines the background scroll curve: base + sqrt(seconds) * multiplier.
type ScrollConfig struct {
	Base       float64 `yaml:"base"`
	Multiplier float64 `yaml:"multiplier"`
}

// ScoreConfig defines scoring.
type ScoreConfig struct {
	Increment int `yaml:"increment"`
}

// Threshold is one step of the difficulty schedule: once the session has
// run for Seconds, Add more hazards join the pool.
type Threshold struct {
	Seconds int `yaml:"seconds"`
	Add     int `yaml:"add"`
}

// AudioConfig defines music volume, the preload timeout and optional clip files.
type AudioConfig struct {
	MusicVolume        float64           `yaml:"music_volume"`
	LoadTimeoutSeconds float64           `yaml:"load_timeout_seconds"`
	Files              map[string]string `yaml:"files,omitempty"` // asset key -> WAV path
}
