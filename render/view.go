// Package render draws the game world and its text layer to a terminal
package render

import (
	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/engine"
)

// View is the read-only world snapshot a renderer draws each frame
// scene.Controller implements it
type View interface {
	Bird() *component.BirdComponent
	Obstacles() []*component.Obstacle
	Sensors() []*component.GapSensor
	Clouds() []*component.CloudComponent
	Drops() []*component.DropComponent
	FenceOffset() float64
	Session() engine.GameSession
	SceneName() string
}
