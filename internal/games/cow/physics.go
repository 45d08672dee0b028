package cow

import (
	"math"

	"github.com/jadedm/feed-the-cow/internal/config"
	"github.com/jadedm/feed-the-cow/internal/core"
)

// Integrate moves an active entity by velocity*dt, dt in seconds.
// Motion is scaled by frame duration, not by a fixed timestep.
func Integrate(e *Entity, dt float64) {
	if !e.Active {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// IntegratePool integrates every entity in the pool.
func IntegratePool(p *Pool, dt float64) {
	for i := range p.items {
		Integrate(&p.items[i], dt)
	}
}

// ScrollSpeed returns the background scroll rate after elapsed seconds.
// The curve is concave: it keeps rising but flattens out.
func ScrollSpeed(cfg config.ScrollConfig, elapsed int) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return cfg.Base + math.Sqrt(float64(elapsed))*cfg.Multiplier
}

// Overlaps returns the indices of every active entity in p overlapping box.
func Overlaps(box core.Box, p *Pool) []int {
	var hits []int
	for i, e := range p.items {
		if e.Active && box.Intersects(e.Box()) {
			hits = append(hits, i)
		}
	}
	return hits
}

// ClampVertical keeps the entity's box inside [0, height].
func ClampVertical(e *Entity, height float64) {
	maxY := height - e.Size.Y
	if e.Pos.Y < 0 || e.Pos.Y > maxY {
		e.Pos.Y = core.ClampF(e.Pos.Y, 0, maxY)
		e.Vel.Y = 0
	}
}
