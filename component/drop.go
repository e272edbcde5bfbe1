package component

import (
	"time"

	"github.com/lixenwraith/flappy/physics"
)

// DropComponent is one rain particle
type DropComponent struct {
	Body  *physics.Body
	Scale float64
	Age   time.Duration
}
