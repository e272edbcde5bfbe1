package scene

import (
	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/engine"
)

// Read-only accessors for front ends; valid until the next Update

func (c *Controller) Bird() *component.BirdComponent {
	return c.bird.Bird()
}

func (c *Controller) Obstacles() []*component.Obstacle {
	return c.spawner.Obstacles()
}

func (c *Controller) Sensors() []*component.GapSensor {
	return c.spawner.Sensors()
}

func (c *Controller) Clouds() []*component.CloudComponent {
	return c.clouds.Clouds()
}

func (c *Controller) Drops() []*component.DropComponent {
	return c.rain.Drops()
}

func (c *Controller) FenceOffset() float64 {
	return c.fence.Offset()
}

func (c *Controller) Session() engine.GameSession {
	return c.ctx.Session
}

// SceneName returns the active scene for status lines
func (c *Controller) SceneName() string {
	return c.Scene().String()
}
