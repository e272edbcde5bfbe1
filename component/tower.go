package component

import "github.com/lixenwraith/flappy/physics"

// TowerSide marks which half of a column an obstacle forms
type TowerSide uint8

const (
	TowerBottom TowerSide = iota
	TowerTop
)

func (s TowerSide) String() string {
	if s == TowerTop {
		return "top"
	}
	return "bottom"
}

// Obstacle is one half of a scrolling column
// GapTopY and GapHeight are fixed at spawn and never mutated
type Obstacle struct {
	ID     Entity
	PairID Entity
	Side   TowerSide
	Body   *physics.Body

	GapTopY   float64
	GapHeight float64

	// Passed is set when the pair's sensor has been consumed
	Passed bool
}

// GapSensor is the invisible strip trailing a pair, consumed on first overlap
type GapSensor struct {
	ID     Entity
	PairID Entity
	Body   *physics.Body
}
