// Package cow implements the Feed The Cow simulation: a cow that only moves
// vertically eats grass scrolling in from the right and must dodge
// injections whose number grows on a time schedule.
package cow

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jadedm/feed-the-cow/internal/config"
	"github.com/jadedm/feed-the-cow/internal/core"
)

// Session is the state of one play-through, from entering Playing until
// the player is sent back to the start menu. It is never reused.
type Session struct {
	Elapsed            int  // Whole seconds fired by the session timer
	LastFiredThreshold int  // Highest schedule threshold already applied
	GameOver           bool // Set by the first hazard contact
	Score              ScoreTracker
	Player             Entity
	Grass              *Pool
	Hazards            *Pool
	TileOffset         float64 // Background scroll position

	cfg      config.CowConfig
	spawner  *Spawner
	schedule Schedule
}

// StepResult reports the contacts resolved during one Step.
type StepResult struct {
	Collected []int // Grass indices eaten, already respawned
	Hit       []int // Hazard indices touching the player
	Scored    int   // Points added this step
}

// HazardHit reports whether the step ended the session.
func (r StepResult) HazardHit() bool {
	return len(r.Hit) > 0
}

// NewSession builds the pools for a fresh session. cfg must have passed
// Validate; an invalid config here is a programming error.
func NewSession(cfg config.CowConfig, rng *rand.Rand) *Session {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("cow: session from invalid config: %v", err))
	}

	s := &Session{
		Score:    NewScoreTracker(cfg.Score.Increment),
		cfg:      cfg,
		schedule: NewSchedule(cfg.Difficulty),
	}
	s.spawner = NewSpawner(rng, &s.cfg)

	s.Player = Entity{
		Kind:   KindPlayer,
		Pos:    core.Vec{X: cfg.Player.X, Y: cfg.Player.Y},
		Size:   core.Vec{X: cfg.Player.Width, Y: cfg.Player.Height},
		Active: true,
	}
	ClampVertical(&s.Player, cfg.World.Height)

	s.Grass = NewPool(KindGrass, cfg.Grass.Count)
	for i := 0; i < cfg.Grass.Count; i++ {
		s.Grass.Add(s.spawner.Grass(i))
	}

	s.Hazards = NewPool(KindHazard, cfg.Hazards.InitialCount+s.schedule.Total(maxThreshold(cfg.Difficulty)))
	for i := 0; i < cfg.Hazards.InitialCount; i++ {
		s.Hazards.Add(s.spawner.Hazard())
	}

	return s
}

// Step advances the world by one frame. Order within a frame: steer the
// player, integrate, recycle what left the world, scroll, then resolve
// grass contacts before hazard contacts. A finished session is frozen.
func (s *Session) Step(dt time.Duration, in core.InputFrame) StepResult {
	if s.GameOver {
		return StepResult{}
	}
	secs := dt.Seconds()

	s.steer(in)
	Integrate(&s.Player, secs)
	ClampVertical(&s.Player, s.cfg.World.Height)

	IntegratePool(s.Grass, secs)
	IntegratePool(s.Hazards, secs)
	s.recycle()

	s.TileOffset -= s.ScrollSpeed()

	var res StepResult
	player := s.Player.Box()

	res.Collected = Overlaps(player, s.Grass)
	for _, i := range res.Collected {
		s.spawner.RespawnGrass(s.Grass.At(i))
	}
	res.Scored = s.Score.Collect(len(res.Collected))

	res.Hit = Overlaps(player, s.Hazards)
	if res.HazardHit() {
		s.GameOver = true
	}
	return res
}

// Second advances the session clock by one second and applies the
// schedule. It returns the number of hazards added.
func (s *Session) Second() int {
	if s.GameOver {
		return 0
	}
	s.Elapsed++

	th, ok := s.schedule.Due(s.Elapsed, s.LastFiredThreshold)
	if !ok {
		return 0
	}
	for i := 0; i < th.Add; i++ {
		s.Hazards.Add(s.spawner.Hazard())
	}
	s.LastFiredThreshold = th.Seconds
	return th.Add
}

// ScrollSpeed returns the current background scroll rate.
func (s *Session) ScrollSpeed() float64 {
	return ScrollSpeed(s.cfg.Scroll, s.Elapsed)
}

// WorldSize returns the width and height of the world the session runs in.
func (s *Session) WorldSize() (float64, float64) {
	return s.cfg.World.Width, s.cfg.World.Height
}

// steer sets the player's vertical motion. Priority: joystick, then a
// pointer drag (which places the cow directly), then the keys.
func (s *Session) steer(in core.InputFrame) {
	s.Player.Vel.X = 0
	if in.Drag.Active && !in.Joystick.InUse {
		s.Player.Pos.Y = in.Drag.Y - s.Player.Size.Y/2
		s.Player.Vel.Y = 0
		return
	}
	s.Player.Vel.Y = Axis(in) * s.cfg.Player.Speed
}

// recycle respawns every entity that has left the world on the left.
func (s *Session) recycle() {
	for i := range s.Grass.items {
		if e := s.Grass.At(i); e.OutOfWorld() {
			s.spawner.RespawnGrass(e)
		}
	}
	for i := range s.Hazards.items {
		if e := s.Hazards.At(i); e.OutOfWorld() {
			s.spawner.RespawnHazard(e)
		}
	}
}

func maxThreshold(steps []config.Threshold) int {
	m := 0
	for _, th := range steps {
		m = core.Max(m, th.Seconds)
	}
	return m
}
