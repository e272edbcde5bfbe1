package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
)

// FenceSystem scrolls the ground tile while the menu is shown
type FenceSystem struct {
	ctx    *engine.GameContext
	offset float64
}

// NewFenceSystem creates a fence at offset zero
func NewFenceSystem(ctx *engine.GameContext) *FenceSystem {
	return &FenceSystem{ctx: ctx}
}

// Reset returns the tile to its origin
func (s *FenceSystem) Reset() {
	s.offset = 0
}

// Offset is the horizontal tile shift in world units, within (-FenceTileWidth, 0]
func (s *FenceSystem) Offset() float64 {
	return s.offset
}

// Update shifts the tile left by dt*Speed/FenceSpeedDivisor
func (s *FenceSystem) Update(dt time.Duration) {
	s.offset -= dt.Seconds() * s.ctx.Config.Game.Speed / constants.FenceSpeedDivisor
	s.offset = math.Mod(s.offset, constants.FenceTileWidth)
}
