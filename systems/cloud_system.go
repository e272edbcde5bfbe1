package systems

import (
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/physics"
)

// CloudSystem spawns background clouds at random intervals
type CloudSystem struct {
	ctx    *engine.GameContext
	timer  engine.Timer
	clouds []*component.CloudComponent
	nextID component.Entity
}

// NewCloudSystem creates an idle cloud layer
func NewCloudSystem(ctx *engine.GameContext) *CloudSystem {
	return &CloudSystem{ctx: ctx}
}

// Start drops existing clouds and schedules one immediately
func (s *CloudSystem) Start(now time.Duration) {
	s.clouds = nil
	if !s.ctx.Config.Game.Clouds {
		s.timer.Stop()
		return
	}
	s.timer.After(now, 0)
}

// Clouds returns the live clouds, back to front
func (s *CloudSystem) Clouds() []*component.CloudComponent {
	return s.clouds
}

// Update moves clouds, spawns any due one and prunes those past the left edge
func (s *CloudSystem) Update(dt time.Duration) {
	for _, c := range s.clouds {
		s.ctx.Physics.Integrate(c.Body, dt)
	}

	now := s.ctx.Now()
	for s.timer.Poll(now) {
		s.spawn()
		s.timer.After(s.timer.Deadline(), s.nextDelay())
	}

	kept := s.clouds[:0]
	for _, c := range s.clouds {
		if c.Body.Right() >= 0 {
			kept = append(kept, c)
		}
	}
	clear(s.clouds[len(kept):])
	s.clouds = kept
}

func (s *CloudSystem) nextDelay() time.Duration {
	span := constants.CloudsShowMaxTime - constants.CloudsShowMinTime
	return constants.CloudsShowMinTime + time.Duration(s.ctx.Rand.Int63n(int64(span)+1))
}

func (s *CloudSystem) spawn() {
	g := s.ctx.Config.Game
	scale := float64(1 + s.ctx.Rand.Intn(constants.CloudMaxScale))
	y := s.ctx.Rand.Float64() * g.WorldHeight / 2

	body := physics.NewBody(g.WorldWidth, y, constants.CloudWidth*scale, constants.CloudHeight*scale)
	body.VelX = -g.Speed / scale

	s.nextID++
	s.clouds = append(s.clouds, &component.CloudComponent{
		ID:    s.nextID,
		Body:  body,
		Frame: s.ctx.Rand.Intn(constants.CloudFrames),
		Scale: scale,
		Alpha: min(1, 2/scale),
	})
}
