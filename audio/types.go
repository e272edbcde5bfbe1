// Package audio synthesizes and plays the game's sound effects with beep
package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundFlap  SoundType = iota // Bird flap
	SoundScore                  // Gap traversed
	SoundHurt                   // Collision, game over
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// ErrNotInitialized is returned by Preload before Initialize succeeded
var ErrNotInitialized = errors.New("audio not initialized")
