package cow

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jadedm/feed-the-cow/internal/config"
)

func inRange(v float64, r config.Range) bool {
	return v >= r.Min && v <= r.Max
}

func isWhole(v float64) bool {
	return v == math.Trunc(v)
}

func TestSpawnerInitialGrass(t *testing.T) {
	cfg := config.DefaultCowConfig()
	sp := NewSpawner(rand.New(rand.NewSource(1)), &cfg)

	for trial := 0; trial < 200; trial++ {
		for i := 0; i < cfg.Grass.Count; i++ {
			g := sp.Grass(i)
			lo := 960 + float64(i)*400
			if g.Pos.X < lo || g.Pos.X > lo+600 || !isWhole(g.Pos.X) {
				t.Fatalf("grass %d x=%f, expected whole number in [%g, %g]", i, g.Pos.X, lo, lo+600)
			}
			if !inRange(g.Pos.Y, cfg.Grass.Spawn.Y) {
				t.Fatalf("grass %d y=%f outside %+v", i, g.Pos.Y, cfg.Grass.Spawn.Y)
			}
			if !inRange(g.Vel.X, cfg.Grass.Spawn.VelocityX) || !isWhole(g.Vel.X) || g.Vel.Y != 0 {
				t.Fatalf("grass %d velocity %+v outside %+v", i, g.Vel, cfg.Grass.Spawn.VelocityX)
			}
			if g.Kind != KindGrass || !g.Active {
				t.Fatalf("grass %d = %+v", i, g)
			}
		}
	}
}

func TestSpawnerRanges(t *testing.T) {
	cfg := config.DefaultCowConfig()
	sp := NewSpawner(rand.New(rand.NewSource(2)), &cfg)

	tests := []struct {
		name   string
		draw   func() Entity
		ranges config.SpawnRanges
	}{
		{"hazard", sp.Hazard, cfg.Hazards.Spawn},
		{"grass respawn", func() Entity {
			var e Entity
			sp.RespawnGrass(&e)
			return e
		}, cfg.Grass.Respawn},
		{"hazard respawn", func() Entity {
			var e Entity
			sp.RespawnHazard(&e)
			return e
		}, cfg.Hazards.Respawn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sawMin, sawMax := false, false
			for i := 0; i < 5000; i++ {
				e := tt.draw()
				if !inRange(e.Pos.X, tt.ranges.X) || !isWhole(e.Pos.X) {
					t.Fatalf("x=%f outside %+v", e.Pos.X, tt.ranges.X)
				}
				if !inRange(e.Pos.Y, tt.ranges.Y) {
					t.Fatalf("y=%f outside %+v", e.Pos.Y, tt.ranges.Y)
				}
				if !inRange(e.Vel.X, tt.ranges.VelocityX) || !isWhole(e.Vel.X) {
					t.Fatalf("vx=%f outside %+v", e.Vel.X, tt.ranges.VelocityX)
				}
				if !e.Active {
					t.Fatal("spawned entity is inactive")
				}
				sawMin = sawMin || e.Vel.X == tt.ranges.VelocityX.Min
				sawMax = sawMax || e.Vel.X == tt.ranges.VelocityX.Max
			}
			if !sawMin || !sawMax {
				t.Errorf("velocity bounds not inclusive: saw min=%v max=%v", sawMin, sawMax)
			}
		})
	}
}

func TestSpawnerDegenerateRange(t *testing.T) {
	cfg := config.DefaultCowConfig()
	cfg.Hazards.Spawn = config.SpawnRanges{
		X:         config.Range{Min: 1000, Max: 1000},
		Y:         config.Range{Min: 50, Max: 50},
		VelocityX: config.Range{Min: -300, Max: -300},
	}
	sp := NewSpawner(rand.New(rand.NewSource(3)), &cfg)

	h := sp.Hazard()
	if h.Pos.X != 1000 || h.Pos.Y != 50 || h.Vel.X != -300 {
		t.Errorf("Hazard() = %+v, expected fixed spawn", h)
	}
}
