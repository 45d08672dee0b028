package config

import (
	_ "embed"
)

//go:embed defaults/cow.yaml
var defaultCowYAML []byte

// DefaultCowConfig returns the built-in configuration.
func DefaultCowConfig() CowConfig {
	return CowConfig{
		World: WorldConfig{
			Width:  960,
			Height: 540,
		},
		Player: PlayerConfig{
			X:      0,
			Y:      240, // world height - 300
			Width:  186,
			Height: 94,
			Speed:  300,
		},
		Grass: GrassConfig{
			Count:  5,
			Width:  64,
			Height: 48,
			Stride: 400,
			Jitter: Range{Min: 0, Max: 600},
			Spawn: SpawnRanges{
				X:         Range{Min: 960, Max: 2500},
				Y:         Range{Min: 0, Max: 530},
				VelocityX: Range{Min: -200, Max: -150},
			},
			Respawn: SpawnRanges{
				X:         Range{Min: 960, Max: 3000},
				Y:         Range{Min: 0, Max: 530},
				VelocityX: Range{Min: -400, Max: -200},
			},
		},
		Hazards: HazardConfig{
			InitialCount: 2,
			Width:        96,
			Height:       32,
			Spawn: SpawnRanges{
				X:         Range{Min: 960, Max: 2500},
				Y:         Range{Min: 0, Max: 500},
				VelocityX: Range{Min: -250, Max: -200},
			},
			Respawn: SpawnRanges{
				X:         Range{Min: 960, Max: 2500},
				Y:         Range{Min: 0, Max: 530},
				VelocityX: Range{Min: -450, Max: -400},
			},
		},
		Scroll: ScrollConfig{
			Base:       3,
			Multiplier: 0.5,
		},
		Score: ScoreConfig{
			Increment: 10,
		},
		Difficulty: []Threshold{
			{Seconds: 50, Add: 8},
			{Seconds: 45, Add: 5},
			{Seconds: 40, Add: 3},
			{Seconds: 30, Add: 2},
			{Seconds: 20, Add: 2},
			{Seconds: 10, Add: 1},
		},
		Audio: AudioConfig{
			MusicVolume:        0.3,
			LoadTimeoutSeconds: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCowYAML
}
