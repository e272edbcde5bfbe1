package systems

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/persistence"
	"github.com/lixenwraith/flappy/physics"
)

// ScoreSystem is the only writer of the session score
type ScoreSystem struct {
	ctx     *engine.GameContext
	spawner *SpawnSystem

	scoreText component.Entity

	statScore *atomic.Int64
	statHigh  *atomic.Int64
}

// NewScoreSystem creates a score tracker consuming sensors owned by spawner
func NewScoreSystem(ctx *engine.GameContext, spawner *SpawnSystem) *ScoreSystem {
	return &ScoreSystem{
		ctx:       ctx,
		spawner:   spawner,
		statScore: ctx.Status.Ints.Get("score.current"),
		statHigh:  ctx.Status.Ints.Get("score.high"),
	}
}

// SetScoreText binds the presenter entity updated on every increment
func (s *ScoreSystem) SetScoreText(e component.Entity) {
	s.scoreText = e
}

// OnGapTraversed consumes the sensor and scores one point
// Returns false without scoring if the sensor was already consumed
func (s *ScoreSystem) OnGapTraversed(sensor *component.GapSensor) bool {
	if !s.spawner.RemoveSensor(sensor) {
		return false
	}

	s.ctx.Session.Score++
	s.statScore.Store(int64(s.ctx.Session.Score))

	if s.scoreText != 0 && s.ctx.Presenter != nil {
		s.ctx.Presenter.SetText(s.scoreText, FormatScore(s.ctx.Session.Score))
	}
	s.ctx.PlaySound(engine.Sound.PlayScore)
	return true
}

// CheckTraversal scores every live sensor the bird overlaps this frame
func (s *ScoreSystem) CheckTraversal(bird *physics.Body) int {
	scored := 0
	s.ctx.Physics.OnOverlap(bird, s.spawner.SensorBodies(), func(other *physics.Body) {
		if s.OnGapTraversed(s.spawner.SensorForBody(other)) {
			scored++
		}
	})
	return scored
}

// FinalizeHighScore persists max(previous, score) and returns the display strings
// A corrupt store is treated as empty and overwritten; any other read failure skips the
// write so an unreadable record is never clobbered. Write failures are logged
func (s *ScoreSystem) FinalizeHighScore(score int) (high, session string) {
	previous, ok, err := s.ctx.Store.HighScore()
	if err != nil {
		log.Printf("score: reading high score: %v", err)
		ok = false
	}
	if !ok {
		previous = score
	}

	best := max(previous, score)
	if err != nil && !errors.Is(err, persistence.ErrCorruptStore) {
		log.Printf("score: store unreadable, keeping %d unsaved", best)
	} else if err := s.ctx.Store.SetHighScore(best); err != nil {
		log.Printf("score: writing high score %d: %v", best, err)
	}
	s.statHigh.Store(int64(best))

	return FormatScore(best), FormatScore(score)
}

// HighScoreText renders the game over summary
func HighScoreText(high, session string) string {
	return fmt.Sprintf(constants.HighScoreFormat, high, session)
}

// FormatScore renders a score for display
func FormatScore(score int) string {
	return strconv.Itoa(score)
}
