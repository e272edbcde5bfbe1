package component

import "github.com/lixenwraith/flappy/physics"

// CloudComponent is a background cloud drifting left at Speed/Scale
type CloudComponent struct {
	ID    Entity
	Body  *physics.Body
	Frame int
	Scale float64
	Alpha float64
}
