package systems

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/config"
)

func TestGapHeight(t *testing.T) {
	g := config.Default().Game

	tests := []struct {
		score int
		want  float64
	}{
		{0, 190},
		{25, 160},
		{49, 131.2},
		{50, 130},
		{60, 130},
		{1000, 130},
		{-5, 190},
	}

	for _, tt := range tests {
		got := GapHeight(tt.score, g)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("GapHeight(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestGapHeightMonotonic(t *testing.T) {
	g := config.Default().Game
	prev := GapHeight(0, g)
	for score := 1; score <= 200; score++ {
		h := GapHeight(score, g)
		if h > prev {
			t.Fatalf("gap grew from %v to %v at score %d", prev, h, score)
		}
		if h < g.BaseGap {
			t.Fatalf("gap %v below base %v at score %d", h, g.BaseGap, score)
		}
		prev = h
	}
}

func TestSpawnTiming(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewSpawnSystem(ctx)
	s.Start(ctx.Now())

	step(ctx, 1999*time.Millisecond, time.Millisecond, s.Update)
	if n := len(s.Obstacles()); n != 0 {
		t.Fatalf("obstacles before first interval = %d, want 0", n)
	}

	step(ctx, time.Millisecond, time.Millisecond, s.Update)
	if n := len(s.Obstacles()); n != 2 {
		t.Fatalf("obstacles at first interval = %d, want 2", n)
	}
	if n := len(s.Sensors()); n != 1 {
		t.Fatalf("sensors at first interval = %d, want 1", n)
	}

	for _, o := range s.Obstacles() {
		if o.GapHeight != 190 {
			t.Errorf("%s gap = %v, want 190 at score 0", o.Side, o.GapHeight)
		}
	}
}

func TestSpawnCatchUpInLongFrame(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewSpawnSystem(ctx)
	s.Start(ctx.Now())

	ctx.Advance(4 * time.Second)
	s.Update(4 * time.Second)

	if n := len(s.Sensors()); n != 2 {
		t.Fatalf("sensors after 4s frame = %d, want 2", n)
	}
}

func TestSpawnGeometry(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewSpawnSystem(ctx)
	bounds := ctx.Physics.Bounds()

	for i := 0; i < 200; i++ {
		s.SpawnPair()
	}
	if n := len(s.Sensors()); n != 200 {
		t.Fatalf("sensors = %d, want 200", n)
	}

	for _, o := range s.Obstacles() {
		if o.Body.Top() < bounds.Top() || o.Body.Bottom() > bounds.Bottom() {
			t.Fatalf("obstacle %d outside playfield: %+v", o.ID, o.Body.Rect)
		}
		if o.GapTopY < bounds.Top() || o.GapTopY+o.GapHeight > bounds.Bottom() {
			t.Fatalf("gap off screen: top %v height %v", o.GapTopY, o.GapHeight)
		}
		if o.Body.VelX != -ctx.Config.Game.Speed {
			t.Fatalf("obstacle velocity = %v", o.Body.VelX)
		}
	}

	for _, g := range s.Sensors() {
		var top, bottom *component.Obstacle
		for _, o := range s.Obstacles() {
			if o.PairID != g.PairID {
				continue
			}
			if o.Side == component.TowerTop {
				top = o
			} else {
				bottom = o
			}
		}
		if top == nil || bottom == nil {
			t.Fatalf("sensor %d has no pair", g.ID)
		}
		if g.Body.Left() != top.Body.Right() {
			t.Errorf("sensor x = %v, want trailing edge %v", g.Body.Left(), top.Body.Right())
		}
		if g.Body.H != ctx.Config.Game.WorldHeight {
			t.Errorf("sensor height = %v, want full height", g.Body.H)
		}
		if gap := bottom.Body.Top() - top.Body.Bottom(); math.Abs(gap-top.GapHeight) > 1e-9 {
			t.Errorf("opening %v, want %v", gap, top.GapHeight)
		}
	}
}

func TestSpawnPruneEdge(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewSpawnSystem(ctx)
	s.SpawnPair()

	for _, o := range s.Obstacles() {
		o.Body.X = -o.Body.W // right edge exactly 0
		o.Body.VelX = 0
	}
	s.Update(0)
	if n := len(s.Obstacles()); n != 2 {
		t.Fatalf("obstacles with right edge at 0 = %d, want 2", n)
	}

	for _, o := range s.Obstacles() {
		o.Body.X -= 0.5
	}
	s.Update(0)
	if n := len(s.Obstacles()); n != 0 {
		t.Fatalf("obstacles past left edge = %d, want 0", n)
	}
	if n := len(s.Sensors()); n != 1 {
		t.Fatalf("sensor should outlive obstacles until it scrolls off, got %d", n)
	}
}

func TestSpawnStopIdempotent(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewSpawnSystem(ctx)

	s.Stop()
	s.Start(ctx.Now())
	if !s.timer.Armed() {
		t.Fatal("spawner not running after Start")
	}
	s.Stop()
	s.Stop()
	if s.timer.Armed() {
		t.Fatal("spawner running after Stop")
	}

	step(ctx, 5*time.Second, 16*time.Millisecond, s.Update)
	if n := len(s.Obstacles()); n != 0 {
		t.Fatalf("stopped spawner produced %d obstacles", n)
	}
}

func TestSpawnFreezeAndReset(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewSpawnSystem(ctx)
	s.SpawnPair()
	s.Freeze()

	before := s.Obstacles()[0].Body.X
	ctx.Advance(time.Second)
	s.Update(time.Second)
	if after := s.Obstacles()[0].Body.X; after != before {
		t.Fatalf("frozen obstacle moved from %v to %v", before, after)
	}

	s.Reset()
	if len(s.Obstacles()) != 0 || len(s.Sensors()) != 0 {
		t.Fatal("Reset left live entities")
	}
}

func TestRemoveSensorMarksPair(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewSpawnSystem(ctx)
	s.SpawnPair()
	sensor := s.Sensors()[0]

	if !s.RemoveSensor(sensor) {
		t.Fatal("first removal failed")
	}
	if s.RemoveSensor(sensor) {
		t.Fatal("second removal succeeded")
	}
	for _, o := range s.Obstacles() {
		if !o.Passed {
			t.Errorf("%s obstacle not marked passed", o.Side)
		}
	}
}
