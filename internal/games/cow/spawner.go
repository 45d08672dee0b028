package cow

import (
	"math"
	"math/rand"

	"github.com/jadedm/feed-the-cow/internal/config"
	"github.com/jadedm/feed-the-cow/internal/core"
)

// Spawner places new and recycled entities. x and velocity are drawn as
// whole numbers from their inclusive ranges, y as a real number.
type Spawner struct {
	rng *rand.Rand
	cfg *config.CowConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg *config.CowConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Grass returns the i-th grass of a fresh session. Grass is spread by a
// fixed stride plus jitter so the initial wave does not cluster.
func (s *Spawner) Grass(i int) Entity {
	g := s.cfg.Grass
	x := g.Spawn.X.Min + float64(i)*g.Stride + s.intIn(g.Jitter)
	return Entity{
		Kind:   KindGrass,
		Pos:    core.Vec{X: x, Y: s.realIn(g.Spawn.Y)},
		Vel:    core.Vec{X: s.intIn(g.Spawn.VelocityX)},
		Size:   core.Vec{X: g.Width, Y: g.Height},
		Active: true,
	}
}

// Hazard returns a hazard placed with the initial spawn ranges. It is used
// both for the starting hazards and for the ones the schedule adds.
func (s *Spawner) Hazard() Entity {
	h := s.cfg.Hazards
	return Entity{
		Kind:   KindHazard,
		Pos:    core.Vec{X: s.intIn(h.Spawn.X), Y: s.realIn(h.Spawn.Y)},
		Vel:    core.Vec{X: s.intIn(h.Spawn.VelocityX)},
		Size:   core.Vec{X: h.Width, Y: h.Height},
		Active: true,
	}
}

// RespawnGrass recycles a grass that left the world or was eaten.
func (s *Spawner) RespawnGrass(e *Entity) {
	s.respawn(e, s.cfg.Grass.Respawn)
}

// RespawnHazard recycles a hazard that left the world.
func (s *Spawner) RespawnHazard(e *Entity) {
	s.respawn(e, s.cfg.Hazards.Respawn)
}

func (s *Spawner) respawn(e *Entity, r config.SpawnRanges) {
	e.Pos = core.Vec{X: s.intIn(r.X), Y: s.realIn(r.Y)}
	e.Vel = core.Vec{X: s.intIn(r.VelocityX)}
	e.Active = true
}

// intIn draws a whole number uniformly from the inclusive range.
func (s *Spawner) intIn(r config.Range) float64 {
	lo := int(math.Ceil(r.Min))
	hi := int(math.Floor(r.Max))
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + s.rng.Intn(hi-lo+1))
}

// realIn draws a real number uniformly from [Min, Max).
func (s *Spawner) realIn(r config.Range) float64 {
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}
