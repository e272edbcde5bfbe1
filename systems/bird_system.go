package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/physics"
)

// BirdSystem drives the avatar through hover, flight and death
type BirdSystem struct {
	ctx  *engine.GameContext
	bird component.BirdComponent
}

// NewBirdSystem creates the avatar at its menu position
func NewBirdSystem(ctx *engine.GameContext) *BirdSystem {
	s := &BirdSystem{ctx: ctx}
	s.Reset()
	return s
}

// Bird exposes the avatar for rendering and collision checks
func (s *BirdSystem) Bird() *component.BirdComponent {
	return &s.bird
}

// Body returns the avatar's physics body
func (s *BirdSystem) Body() *physics.Body {
	return s.bird.Body
}

// Reset places the bird at its hover anchor with gravity off and the flap animation running
func (s *BirdSystem) Reset() {
	g := s.ctx.Config.Game
	body := physics.NewBody(0, 0, constants.BirdWidth, constants.BirdHeight)
	body.CollideWorldBounds = true
	body.SetCenter(g.WorldWidth/10, (g.WorldHeight-g.GroundHeight)/2)

	s.bird = component.BirdComponent{
		Body:      body,
		Animating: true,
	}
}

// EnableGravity hands the bird over to the physics collaborator
func (s *BirdSystem) EnableGravity() {
	s.bird.Body.AllowGravity = true
}

// Flap sets the upward velocity and plays the flap sound
func (s *BirdSystem) Flap() {
	s.ctx.Physics.ApplyImpulse(s.bird.Body, -s.ctx.Config.Game.BirdFlap)
	s.ctx.PlaySound(engine.Sound.PlayFlap)
}

// Hover moves the bird along the menu's lissajous path for game time now
func (s *BirdSystem) Hover(now time.Duration) {
	g := s.ctx.Config.Game
	ms := float64(now.Milliseconds())
	y := (g.WorldHeight-g.GroundHeight)/2 + constants.BirdBobAmplitude*math.Cos(ms/1000)
	x := g.WorldWidth/10 + constants.BirdBobAmplitude*math.Sin(ms/3000)
	s.bird.Body.SetCenter(x, y)
}

// Update advances animation; when flying it also integrates the bird, tilting it while alive
func (s *BirdSystem) Update(dt time.Duration, flying bool) {
	if flying {
		s.ctx.Physics.Integrate(s.bird.Body, dt)
		if s.bird.Animating {
			s.bird.Angle = TiltAngle(s.bird.Body.VelY, s.ctx.Config.Game.BirdFlap)
		}
	}
	s.animate(dt)
}

func (s *BirdSystem) animate(dt time.Duration) {
	if !s.bird.Animating {
		return
	}
	s.bird.AnimTime += dt
	frameLen := time.Second / constants.BirdAnimationFPS
	idx := int(s.bird.AnimTime/frameLen) % len(constants.BirdFlyingFrames)
	s.bird.Frame = constants.BirdFlyingFrames[idx]
}

// Kill stops the animation on the dead frame and flips the bird
func (s *BirdSystem) Kill() {
	s.bird.Animating = false
	s.bird.Frame = constants.BirdDeadFrame
	s.bird.Angle = constants.BirdDeadAngle
	s.bird.Body.VelX = 0
}

// TiltAngle maps vertical velocity to a nose angle in degrees, clamped to ±BirdMaxTilt
func TiltAngle(velY, flap float64) float64 {
	if flap == 0 {
		return 0
	}
	angle := 90*(flap+velY)/flap - 180
	return math.Max(-constants.BirdMaxTilt, math.Min(constants.BirdMaxTilt, angle))
}
