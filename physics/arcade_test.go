package physics

import (
	"math"
	"testing"
	"time"
)

func newTestArcade() *Arcade {
	return NewArcade(Rect{W: 800, H: 568}, 1800)
}

func TestIntegrateGravity(t *testing.T) {
	a := newTestArcade()
	b := NewBody(100, 100, 10, 10)

	a.Integrate(b, time.Second)
	if b.Y != 100 || b.VelY != 0 {
		t.Fatalf("gravity applied to body without AllowGravity: %+v", b)
	}

	b.AllowGravity = true
	a.Integrate(b, 100*time.Millisecond)
	if math.Abs(b.VelY-180) > 1e-9 {
		t.Fatalf("velocity = %v, want 180", b.VelY)
	}
	if math.Abs(b.Y-118) > 1e-9 {
		t.Fatalf("y = %v, want 118", b.Y)
	}
}

func TestIntegrateVelocity(t *testing.T) {
	a := newTestArcade()
	b := NewBody(800, 0, 64, 100)
	b.VelX = -180

	a.Integrate(b, 2*time.Second)
	if b.X != 440 {
		t.Fatalf("x = %v, want 440", b.X)
	}
}

func TestCollideWorldBounds(t *testing.T) {
	a := newTestArcade()
	b := NewBody(100, 500, 48, 34)
	b.AllowGravity = true
	b.CollideWorldBounds = true

	a.Integrate(b, time.Second)
	if b.Bottom() != 568 || b.VelY != 0 {
		t.Fatalf("body not clamped to floor: %+v", b)
	}
	if !a.IsOutOfBounds(b) {
		t.Fatal("body resting on floor should count as out of bounds")
	}

	a.ApplyImpulse(b, -5000)
	a.Integrate(b, time.Second)
	if b.Top() != 0 || !a.IsOutOfBounds(b) {
		t.Fatalf("body not clamped to ceiling: %+v", b)
	}
}

func TestIsOutOfBounds(t *testing.T) {
	a := newTestArcade()
	tests := []struct {
		name string
		body *Body
		want bool
	}{
		{"inside", NewBody(100, 100, 48, 34), false},
		{"touching top", NewBody(100, 0, 48, 34), true},
		{"touching floor", NewBody(100, 534, 48, 34), true},
		{"left of world", NewBody(-60, 100, 48, 34), true},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := a.IsOutOfBounds(tt.body); got != tt.want {
			t.Errorf("%s: IsOutOfBounds = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOverlap(t *testing.T) {
	a := newTestArcade()
	x := NewBody(0, 0, 10, 10)

	if !a.Overlap(x, NewBody(5, 5, 10, 10)) {
		t.Error("intersecting bodies")
	}
	if a.Overlap(x, NewBody(10, 0, 10, 10)) {
		t.Error("touching edges count as overlap")
	}
	if a.Overlap(x, nil) {
		t.Error("nil overlap")
	}
}

func TestOnOverlapSnapshot(t *testing.T) {
	a := newTestArcade()
	bird := NewBody(0, 0, 10, 10)
	others := []*Body{NewBody(5, 0, 2, 10), NewBody(50, 0, 2, 10), NewBody(8, 0, 2, 10)}

	var hit []*Body
	n := a.OnOverlap(bird, others, func(o *Body) {
		hit = append(hit, o)
		others = others[:0] // callback may mutate the caller's slice
	})
	if n != 2 || len(hit) != 2 {
		t.Fatalf("hits = %d (%d callbacks), want 2", n, len(hit))
	}
}

func TestBodyCenter(t *testing.T) {
	b := NewBody(0, 0, 48, 34)
	b.SetCenter(80, 284)
	if b.CenterX() != 80 || b.CenterY() != 284 || b.X != 56 || b.Y != 267 {
		t.Fatalf("body = %+v", b.Rect)
	}
}
