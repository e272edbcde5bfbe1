package component

import (
	"time"

	"github.com/lixenwraith/flappy/physics"
)

// BirdComponent is the player avatar
type BirdComponent struct {
	Body *physics.Body

	// Angle in degrees, positive is nose down
	Angle float64

	// Frame is the current animation frame index into the sprite sheet
	Frame int
	// Animating gates frame advancement
	Animating bool
	// AnimTime accumulates time since the animation started
	AnimTime time.Duration
}
