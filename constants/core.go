package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after a stall (window drag, suspend)
	MaxFrameDelta = 100 * time.Millisecond

	// InputQueueSize is the capacity of the front-end event channel
	InputQueueSize = 256
)

// World dimensions in world units
// Front ends scale the world to their surface; the simulation never sees cells or pixels
const (
	WorldWidth  = 800
	WorldHeight = 600

	// GroundHeight is the fence strip at the bottom of the world
	GroundHeight = 32
)
