package engine

import (
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/physics"
)

// Physics integrates motion and answers overlap and bounds queries
// physics.Arcade is the in-repo implementation
type Physics interface {
	Integrate(b *physics.Body, dt time.Duration)
	ApplyImpulse(b *physics.Body, velY float64)
	Overlap(a, b *physics.Body) bool
	OnOverlap(b *physics.Body, others []*physics.Body, fn func(other *physics.Body)) int
	IsOutOfBounds(b *physics.Body) bool
	Bounds() physics.Rect
}

// AssetLoader prepares images, audio and fonts
// done is invoked exactly once, possibly from another goroutine
type AssetLoader interface {
	Load(done func(err error))
}

// HighScoreStore persists the single high score scalar
// ok is false when nothing has been stored yet
type HighScoreStore interface {
	HighScore() (score int, ok bool, err error)
	SetHighScore(score int) error
}

// Presenter owns text elements shown over the playfield
type Presenter interface {
	CreateEntityAt(x, y float64) component.Entity
	SetText(e component.Entity, text string)
	SetVisible(e component.Entity, visible bool)
	Kill(e component.Entity)
}

// Sound triggers one-shot effects
type Sound interface {
	PlayFlap()
	PlayScore()
	PlayHurt()
}

// NopSound discards all sound triggers
type NopSound struct{}

func (NopSound) PlayFlap()  {}
func (NopSound) PlayScore() {}
func (NopSound) PlayHurt()  {}

// InstantLoader completes immediately without loading anything
type InstantLoader struct{}

// Load implements AssetLoader
func (InstantLoader) Load(done func(err error)) { done(nil) }
