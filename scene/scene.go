// Package scene sequences the game through Boot, Preload, MainMenu, Play and GameOver
package scene

import "github.com/lixenwraith/flappy/engine/fsm"

// Scene identifies one node of the controller's state machine
type Scene fsm.StateID

const (
	Boot Scene = iota + 1
	Preload
	MainMenu
	Play
	GameOver
)

func (s Scene) String() string {
	switch s {
	case Boot:
		return "Boot"
	case Preload:
		return "Preload"
	case MainMenu:
		return "MainMenu"
	case Play:
		return "Play"
	case GameOver:
		return "GameOver"
	default:
		return "None"
	}
}

// eventRequest tags edges taken only through Controller.Request
const eventRequest fsm.EventType = 1

// Request failures, never fatal
var (
	ErrInvalidTransition    = fsm.ErrInvalidTransition
	ErrTransitionInProgress = fsm.ErrTransitionInProgress
)
