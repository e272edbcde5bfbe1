package constants

import "time"

// Motion
const (
	// Speed is the horizontal scroll speed of obstacles (units/sec)
	Speed = 180.0

	// Gravity applied to the bird and rain (units/sec²)
	Gravity = 1800.0

	// BirdFlap is the upward velocity set by a flap (units/sec)
	BirdFlap = 550.0
)

// Obstacles and difficulty
const (
	// TowerSpawnInterval is the delay between obstacle pairs
	TowerSpawnInterval = 2000 * time.Millisecond

	// BaseGap is the narrowest gap, reached at MaxDifficult
	BaseGap = 130.0

	// ExtraRange is added to BaseGap at score 0
	ExtraRange = 60.0

	// MaxDifficult is the score at which the gap stops shrinking
	MaxDifficult = 50

	// TowerWidth is the width of one obstacle column
	TowerWidth = 64.0

	// SensorWidth is the width of the trailing gap sensor
	SensorWidth = 2.0

	// GapOffsetDivisor bounds the random gap centre offset to WorldHeight/GapOffsetDivisor
	GapOffsetDivisor = 6

	// GapMargin keeps the gap this far from the top edge and the fence
	GapMargin = 16.0
)

// Bird
const (
	BirdWidth  = 48.0
	BirdHeight = 34.0

	// BirdMaxTilt clamps the play-time tilt in degrees
	BirdMaxTilt = 30.0

	// BirdDeadAngle is the angle shown on game over
	BirdDeadAngle = 180.0

	// BirdAnimationFPS drives the flying animation
	BirdAnimationFPS = 20

	// BirdDeadFrame is the frame the animation stops on at game over
	BirdDeadFrame = 3

	// BirdBobAmplitude is the menu hover radius
	BirdBobAmplitude = 32.0
)

// BirdFlyingFrames is the looping flap animation sequence
var BirdFlyingFrames = []int{0, 1, 2, 3, 2, 1, 0}

// Decoration
const (
	CloudsShowMinTime = 5000 * time.Millisecond
	CloudsShowMaxTime = 10000 * time.Millisecond
	CloudFrames       = 4
	CloudMaxScale     = 3
	CloudWidth        = 128.0
	CloudHeight       = 64.0

	RainMaxParticles = 400
	RainMinSpeedY    = 300.0
	RainMaxSpeedY    = 500.0
	RainSpeedX       = 5.0
	RainLifespan     = 1600 * time.Millisecond
	RainFrequency    = 5 * time.Millisecond
	RainDropSize     = 17.0

	// FenceSpeedDivisor slows the fence relative to Speed
	FenceSpeedDivisor = 2.0
	FenceTileWidth    = 32.0
)
