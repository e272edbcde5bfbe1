package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/flappy/constants"
)

func TestTiltAngle(t *testing.T) {
	tests := []struct {
		velY float64
		want float64
	}{
		{-550, -30}, // fresh flap
		{0, -30},
		{550, 0},
		{1100, 30},
		{5000, 30},
	}
	for _, tt := range tests {
		if got := TiltAngle(tt.velY, 550); got != tt.want {
			t.Errorf("TiltAngle(%v) = %v, want %v", tt.velY, got, tt.want)
		}
	}
}

func TestBirdFlapAndFall(t *testing.T) {
	ctx, _, sound := newTestContext(t)
	s := NewBirdSystem(ctx)
	s.EnableGravity()

	startY := s.Body().Y
	s.Flap()
	if s.Body().VelY != -ctx.Config.Game.BirdFlap {
		t.Fatalf("velocity after flap = %v", s.Body().VelY)
	}
	if sound.flaps != 1 {
		t.Fatalf("flap sounds = %d", sound.flaps)
	}

	s.Update(50*time.Millisecond, true)
	if s.Body().Y >= startY {
		t.Fatalf("bird did not rise: %v -> %v", startY, s.Body().Y)
	}

	step(ctx, 2*time.Second, 16*time.Millisecond, func(dt time.Duration) { s.Update(dt, true) })
	if !ctx.Physics.IsOutOfBounds(s.Body()) {
		t.Fatalf("bird at %+v should rest on the ground", s.Body().Rect)
	}
}

func TestBirdHoverStaysNearAnchor(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewBirdSystem(ctx)
	g := ctx.Config.Game

	for ms := 0; ms < 20000; ms += 250 {
		s.Hover(time.Duration(ms) * time.Millisecond)
		dx := s.Body().CenterX() - g.WorldWidth/10
		dy := s.Body().CenterY() - (g.WorldHeight-g.GroundHeight)/2
		if dx > constants.BirdBobAmplitude+1e-9 || dx < -constants.BirdBobAmplitude-1e-9 ||
			dy > constants.BirdBobAmplitude+1e-9 || dy < -constants.BirdBobAmplitude-1e-9 {
			t.Fatalf("hover at %dms drifted to (%v, %v)", ms, dx, dy)
		}
	}
}

func TestBirdAnimationAndKill(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewBirdSystem(ctx)

	frameLen := time.Second / constants.BirdAnimationFPS
	seen := make([]int, 0, len(constants.BirdFlyingFrames))
	for range constants.BirdFlyingFrames {
		seen = append(seen, s.Bird().Frame)
		s.Update(frameLen, false)
	}
	for i, f := range constants.BirdFlyingFrames {
		if seen[i] != f {
			t.Fatalf("frames = %v, want %v", seen, constants.BirdFlyingFrames)
		}
	}

	s.Kill()
	s.Update(time.Second, false)
	b := s.Bird()
	if b.Animating || b.Frame != constants.BirdDeadFrame || b.Angle != constants.BirdDeadAngle {
		t.Fatalf("dead bird = %+v", *b)
	}
}
