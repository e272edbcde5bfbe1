package asset

import (
	"errors"
	"log"

	"github.com/lixenwraith/flappy/audio"
	"github.com/lixenwraith/flappy/engine"
)

// AudioStep opens the speaker and synthesizes every effect
// Optional: the game runs silent without a sound device
func AudioStep(sm *audio.SoundManager) Step {
	return Step{
		Name: "audio",
		Run: func() error {
			if err := sm.Initialize(); err != nil {
				return err
			}
			if !sm.Initialized() {
				return nil // disabled in config
			}
			return sm.Preload()
		},
	}
}

// HighScoreStep reads the store once so a corrupt file is reported before the first round
// Optional: the score tracker treats unreadable stores as empty
func HighScoreStep(store engine.HighScoreStore) Step {
	return Step{
		Name: "highscore",
		Run: func() error {
			if store == nil {
				return errors.New("no high score store")
			}
			score, ok, err := store.HighScore()
			if err != nil {
				return err
			}
			if ok {
				log.Printf("asset: stored high score %d", score)
			}
			return nil
		},
	}
}
