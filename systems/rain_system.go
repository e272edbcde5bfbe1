package systems

import (
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/physics"
)

// RainSystem is a particle emitter spanning the top edge of the world
type RainSystem struct {
	ctx   *engine.GameContext
	timer engine.Timer
	drops []*component.DropComponent
}

// NewRainSystem creates an idle emitter
func NewRainSystem(ctx *engine.GameContext) *RainSystem {
	return &RainSystem{ctx: ctx}
}

// Start clears the particles and begins emitting
func (s *RainSystem) Start(now time.Duration) {
	s.drops = nil
	if !s.ctx.Config.Game.Rain {
		s.timer.Stop()
		return
	}
	s.timer.Every(now, constants.RainFrequency)
}

// Drops returns the live particles
func (s *RainSystem) Drops() []*component.DropComponent {
	return s.drops
}

// Update ages and moves drops, expires old ones and emits new ones up to the cap
func (s *RainSystem) Update(dt time.Duration) {
	kept := s.drops[:0]
	for _, d := range s.drops {
		d.Age += dt
		if d.Age >= constants.RainLifespan {
			continue
		}
		s.ctx.Physics.Integrate(d.Body, dt)
		kept = append(kept, d)
	}
	clear(s.drops[len(kept):])
	s.drops = kept

	now := s.ctx.Now()
	for s.timer.Poll(now) {
		if len(s.drops) >= constants.RainMaxParticles {
			continue
		}
		s.emit()
	}
}

func (s *RainSystem) emit() {
	g := s.ctx.Config.Game
	r := s.ctx.Rand

	scale := 0.1 + r.Float64()*0.4
	body := physics.NewBody(r.Float64()*g.WorldWidth, -constants.RainDropSize, 1, constants.RainDropSize*scale*2)
	body.AllowGravity = true
	body.VelX = -constants.RainSpeedX + r.Float64()*2*constants.RainSpeedX
	body.VelY = constants.RainMinSpeedY + r.Float64()*(constants.RainMaxSpeedY-constants.RainMinSpeedY)

	s.drops = append(s.drops, &component.DropComponent{Body: body, Scale: scale})
}
