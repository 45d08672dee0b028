package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is wrapped by Validate for a Range whose Min exceeds its Max.
	ErrInvalidRange = errors.New("min greater than max")

	// ErrInvalidConfig is wrapped by Validate for any other unusable value.
	ErrInvalidConfig = errors.New("invalid value")
)

// Validate checks the configuration once, before any session samples from it.
// An inverted range would silently invert sampling, so it is rejected here.
func (c CowConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %g: %w", name, v, ErrInvalidConfig))
		}
	}
	ordered := func(name string, r Range) {
		if r.Min > r.Max {
			errs = append(errs, fmt.Errorf("config: %s: min %g > max %g: %w", name, r.Min, r.Max, ErrInvalidRange))
		}
	}
	spawn := func(name string, s SpawnRanges) {
		ordered(name+".x", s.X)
		ordered(name+".y", s.Y)
		ordered(name+".velocity_x", s.VelocityX)
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	if c.Player.Height > c.World.Height {
		errs = append(errs, fmt.Errorf("config: player.height %g exceeds world.height %g: %w",
			c.Player.Height, c.World.Height, ErrInvalidConfig))
	}

	if c.Grass.Count <= 0 {
		errs = append(errs, fmt.Errorf("config: grass.count must be positive, got %d: %w", c.Grass.Count, ErrInvalidConfig))
	}
	positive("grass.width", c.Grass.Width)
	positive("grass.height", c.Grass.Height)
	ordered("grass.jitter", c.Grass.Jitter)
	spawn("grass.spawn", c.Grass.Spawn)
	spawn("grass.respawn", c.Grass.Respawn)

	if c.Hazards.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("config: hazards.initial_count must not be negative, got %d: %w",
			c.Hazards.InitialCount, ErrInvalidConfig))
	}
	positive("hazards.width", c.Hazards.Width)
	positive("hazards.height", c.Hazards.Height)
	spawn("hazards.spawn", c.Hazards.Spawn)
	spawn("hazards.respawn", c.Hazards.Respawn)

	if c.Scroll.Base < 0 || c.Scroll.Multiplier < 0 {
		errs = append(errs, fmt.Errorf("config: scroll base and multiplier must not be negative: %w", ErrInvalidConfig))
	}
	if c.Score.Increment <= 0 {
		errs = append(errs, fmt.Errorf("config: score.increment must be positive, got %d: %w", c.Score.Increment, ErrInvalidConfig))
	}

	for i, th := range c.Difficulty {
		if th.Seconds <= 0 || th.Add < 0 {
			errs = append(errs, fmt.Errorf("config: difficulty[%d] = {%d, %d}: %w", i, th.Seconds, th.Add, ErrInvalidConfig))
		}
		if i > 0 && th.Seconds >= c.Difficulty[i-1].Seconds {
			errs = append(errs, fmt.Errorf("config: difficulty[%d]: thresholds must be strictly descending: %w", i, ErrInvalidConfig))
		}
	}

	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("config: audio.music_volume must be in [0,1], got %g: %w", c.Audio.MusicVolume, ErrInvalidConfig))
	}
	if c.Audio.LoadTimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("config: audio.load_timeout_seconds must not be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
