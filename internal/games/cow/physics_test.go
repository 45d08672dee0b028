package cow

import (
	"math"
	"testing"

	"github.com/jadedm/feed-the-cow/internal/config"
	"github.com/jadedm/feed-the-cow/internal/core"
)

func TestScrollSpeed(t *testing.T) {
	cfg := config.ScrollConfig{Base: 3, Multiplier: 0.5}

	tests := []struct {
		elapsed int
		want    float64
	}{
		{0, 3},
		{16, 5},
		{36, 6},
		{64, 7},
		{100, 8},
		{-5, 3},
	}

	for _, tt := range tests {
		if got := ScrollSpeed(cfg, tt.elapsed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ScrollSpeed(%d) = %f, expected %f", tt.elapsed, got, tt.want)
		}
	}
}

func TestScrollSpeedMonotonic(t *testing.T) {
	cfg := config.DefaultCowConfig().Scroll
	prev := ScrollSpeed(cfg, 0)
	for sec := 1; sec <= 600; sec++ {
		cur := ScrollSpeed(cfg, sec)
		if cur < prev {
			t.Fatalf("ScrollSpeed(%d) = %f < ScrollSpeed(%d) = %f", sec, cur, sec-1, prev)
		}
		prev = cur
	}
}

func TestIntegrate(t *testing.T) {
	e := Entity{Pos: core.Vec{X: 100, Y: 10}, Vel: core.Vec{X: -200, Y: 50}, Active: true}
	Integrate(&e, 0.5)
	if e.Pos != (core.Vec{X: 0, Y: 35}) {
		t.Errorf("Pos = %+v, expected (0, 35)", e.Pos)
	}

	e.Active = false
	Integrate(&e, 1)
	if e.Pos != (core.Vec{X: 0, Y: 35}) {
		t.Errorf("inactive entity moved to %+v", e.Pos)
	}
}

func TestOverlaps(t *testing.T) {
	p := NewPool(KindGrass, 4)
	p.Add(Entity{Pos: core.Vec{X: 50, Y: 50}, Size: core.Vec{X: 10, Y: 10}, Active: true})
	p.Add(Entity{Pos: core.Vec{X: 200, Y: 50}, Size: core.Vec{X: 10, Y: 10}, Active: true})
	p.Add(Entity{Pos: core.Vec{X: 95, Y: 95}, Size: core.Vec{X: 10, Y: 10}, Active: true})
	p.Add(Entity{Pos: core.Vec{X: 10, Y: 10}, Size: core.Vec{X: 10, Y: 10}, Active: false})
	p.Add(Entity{Pos: core.Vec{X: 100, Y: 0}, Size: core.Vec{X: 10, Y: 10}, Active: true})

	box := core.Box{X: 0, Y: 0, W: 100, H: 100}
	got := Overlaps(box, p)

	// Touching edges (index 4) do not count
	want := []int{0, 2}
	if len(got) != len(want) {
		t.Fatalf("Overlaps() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Overlaps() = %v, expected %v", got, want)
		}
	}
}

func TestClampVertical(t *testing.T) {
	tests := []struct {
		name    string
		y, vy   float64
		wantY   float64
		wantVel float64
	}{
		{"inside", 100, 50, 100, 50},
		{"above", -20, -300, 0, 0},
		{"below", 500, 300, 446, 0},
		{"at bottom", 446, 0, 446, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Pos: core.Vec{Y: tt.y}, Vel: core.Vec{Y: tt.vy}, Size: core.Vec{X: 186, Y: 94}}
			ClampVertical(&e, 540)
			if e.Pos.Y != tt.wantY || e.Vel.Y != tt.wantVel {
				t.Errorf("got y=%f vy=%f, expected y=%f vy=%f", e.Pos.Y, e.Vel.Y, tt.wantY, tt.wantVel)
			}
		})
	}
}

func TestPool(t *testing.T) {
	p := NewPool(KindHazard, 1)
	if p.Kind() != KindHazard || p.Len() != 0 {
		t.Fatalf("NewPool() = kind %v len %d", p.Kind(), p.Len())
	}

	i := p.Add(Entity{Kind: KindGrass, Pos: core.Vec{X: 1}})
	j := p.Add(Entity{Pos: core.Vec{X: 2}})
	if i != 0 || j != 1 || p.Len() != 2 {
		t.Fatalf("Add() indices %d, %d len %d", i, j, p.Len())
	}
	if p.At(0).Kind != KindHazard {
		t.Errorf("Add() kept kind %v, expected the pool's kind", p.At(0).Kind)
	}

	p.At(1).Pos.X = 42
	if p.Items()[1].Pos.X != 42 {
		t.Error("At() should return a pointer into the pool")
	}
}

func TestEntityOutOfWorld(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-63, false},
		{-64, false},
		{-64.5, true},
		{-1000, true},
	}
	for _, tt := range tests {
		e := Entity{Pos: core.Vec{X: tt.x, Y: 5000}, Size: core.Vec{X: 64, Y: 48}}
		if got := e.OutOfWorld(); got != tt.want {
			t.Errorf("OutOfWorld() at x=%g = %v, expected %v", tt.x, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindPlayer.String() != "cow" || KindGrass.String() != "grass" || KindHazard.String() != "injection" {
		t.Error("unexpected kind names")
	}
}
