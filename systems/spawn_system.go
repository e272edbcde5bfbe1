package systems

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/physics"
)

// GapHeight returns the vertical opening for a pair spawned at score
// Widest (BaseGap+ExtraRange) at 0, narrowing linearly to BaseGap at MaxDifficult and clamped beyond
func GapHeight(score int, g config.GameConfig) float64 {
	remaining := g.MaxDifficult - score
	if remaining < 0 {
		remaining = 0
	}
	if remaining > g.MaxDifficult {
		remaining = g.MaxDifficult
	}
	return g.BaseGap + g.ExtraRange*float64(remaining)/float64(g.MaxDifficult)
}

// SpawnSystem owns live obstacle pairs and their gap sensors
// Spawning is driven by a cooperative timer checked against game time each frame
type SpawnSystem struct {
	ctx   *engine.GameContext
	timer engine.Timer

	obstacles []*component.Obstacle
	sensors   []*component.GapSensor
	nextID    component.Entity

	// Cached metric pointers
	statSpawned *atomic.Int64
	statLive    *atomic.Int64
	statPruned  *atomic.Int64
	statLastGap *atomic.Int64
}

// NewSpawnSystem creates a stopped spawner
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{
		ctx:         ctx,
		statSpawned: ctx.Status.Ints.Get("spawn.pairs"),
		statLive:    ctx.Status.Ints.Get("spawn.live"),
		statPruned:  ctx.Status.Ints.Get("spawn.pruned"),
		statLastGap: ctx.Status.Ints.Get("spawn.gap"),
	}
}

// Start arms the repeating spawn timer; the first pair appears one interval after now
func (s *SpawnSystem) Start(now time.Duration) {
	s.timer.Every(now, s.ctx.Config.Game.SpawnInterval)
}

// Stop disarms the timer without touching live obstacles; idempotent
func (s *SpawnSystem) Stop() {
	s.timer.Stop()
}

// Update moves live entities, spawns due pairs and prunes what scrolled off the left edge
func (s *SpawnSystem) Update(dt time.Duration) {
	for _, o := range s.obstacles {
		s.ctx.Physics.Integrate(o.Body, dt)
	}
	for _, g := range s.sensors {
		s.ctx.Physics.Integrate(g.Body, dt)
	}

	now := s.ctx.Now()
	for s.timer.Poll(now) {
		s.SpawnPair()
	}

	s.prune()
}

// SpawnPair creates a bottom obstacle, a top obstacle and the trailing gap sensor
// Returns the pair ID
func (s *SpawnSystem) SpawnPair() component.Entity {
	g := s.ctx.Config.Game
	bounds := s.ctx.Physics.Bounds()
	playH := bounds.H

	gap := GapHeight(s.ctx.Session.Score, g)

	// Random centre offset, then clamp so the whole gap stays on screen
	offset := s.ctx.Rand.Float64() * g.WorldHeight / constants.GapOffsetDivisor
	if s.ctx.Rand.Float64() > 0.5 {
		offset = -offset
	}
	center := playH/2 + offset
	minCenter := bounds.Y + constants.GapMargin + gap/2
	maxCenter := bounds.Y + playH - constants.GapMargin - gap/2
	center = math.Max(minCenter, math.Min(maxCenter, center))
	gapTop := center - gap/2
	gapBottom := gapTop + gap

	x := bounds.Right()
	pairID := s.allocID()

	bottom := &component.Obstacle{
		ID:        s.allocID(),
		PairID:    pairID,
		Side:      component.TowerBottom,
		Body:      physics.NewBody(x, gapBottom, constants.TowerWidth, bounds.Bottom()-gapBottom),
		GapTopY:   gapTop,
		GapHeight: gap,
	}
	top := &component.Obstacle{
		ID:        s.allocID(),
		PairID:    pairID,
		Side:      component.TowerTop,
		Body:      physics.NewBody(x, bounds.Y, constants.TowerWidth, gapTop-bounds.Y),
		GapTopY:   gapTop,
		GapHeight: gap,
	}
	sensor := &component.GapSensor{
		ID:     s.allocID(),
		PairID: pairID,
		Body:   physics.NewBody(top.Body.Right(), 0, constants.SensorWidth, g.WorldHeight),
	}

	for _, b := range []*physics.Body{bottom.Body, top.Body, sensor.Body} {
		b.VelX = -g.Speed
	}

	s.obstacles = append(s.obstacles, bottom, top)
	s.sensors = append(s.sensors, sensor)

	s.statSpawned.Add(1)
	s.statLastGap.Store(int64(gap))
	s.statLive.Store(int64(len(s.obstacles)))
	return pairID
}

func (s *SpawnSystem) allocID() component.Entity {
	s.nextID++
	return s.nextID
}

// prune drops entities whose right edge is strictly left of the world's left edge
func (s *SpawnSystem) prune() {
	left := s.ctx.Physics.Bounds().Left()

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Body.Right() < left {
			s.statPruned.Add(1)
			continue
		}
		kept = append(kept, o)
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept

	keptSensors := s.sensors[:0]
	for _, g := range s.sensors {
		if g.Body.Right() < left {
			continue
		}
		keptSensors = append(keptSensors, g)
	}
	clear(s.sensors[len(keptSensors):])
	s.sensors = keptSensors

	s.statLive.Store(int64(len(s.obstacles)))
}

// Freeze zeroes horizontal velocity of everything live
func (s *SpawnSystem) Freeze() {
	for _, o := range s.obstacles {
		o.Body.VelX = 0
	}
	for _, g := range s.sensors {
		g.Body.VelX = 0
	}
}

// Reset stops the timer and drops all live entities
func (s *SpawnSystem) Reset() {
	s.Stop()
	s.obstacles = nil
	s.sensors = nil
	s.statLive.Store(0)
}

// RemoveSensor consumes a live sensor and marks its pair passed
// Returns false if the sensor is not live
func (s *SpawnSystem) RemoveSensor(sensor *component.GapSensor) bool {
	if sensor == nil {
		return false
	}
	for i, g := range s.sensors {
		if g != sensor {
			continue
		}
		s.sensors = append(s.sensors[:i], s.sensors[i+1:]...)
		for _, o := range s.obstacles {
			if o.PairID == sensor.PairID {
				o.Passed = true
			}
		}
		return true
	}
	log.Printf("spawn: sensor %d already consumed", sensor.ID)
	return false
}

// SensorForBody maps a physics body back to its live sensor
func (s *SpawnSystem) SensorForBody(b *physics.Body) *component.GapSensor {
	for _, g := range s.sensors {
		if g.Body == b {
			return g
		}
	}
	return nil
}

// Obstacles returns the live obstacles; callers must not retain the slice across frames
func (s *SpawnSystem) Obstacles() []*component.Obstacle {
	return s.obstacles
}

// Sensors returns the live gap sensors
func (s *SpawnSystem) Sensors() []*component.GapSensor {
	return s.sensors
}

// ObstacleBodies returns bodies for overlap queries
func (s *SpawnSystem) ObstacleBodies() []*physics.Body {
	bodies := make([]*physics.Body, len(s.obstacles))
	for i, o := range s.obstacles {
		bodies[i] = o.Body
	}
	return bodies
}

// SensorBodies returns bodies for overlap queries
func (s *SpawnSystem) SensorBodies() []*physics.Body {
	bodies := make([]*physics.Body, len(s.sensors))
	for i, g := range s.sensors {
		bodies[i] = g.Body
	}
	return bodies
}
