package systems

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/persistence"
	"github.com/lixenwraith/flappy/physics"
)

// recordingPresenter captures text updates by entity
type recordingPresenter struct {
	next  component.Entity
	texts map[component.Entity]string
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{texts: make(map[component.Entity]string)}
}

func (p *recordingPresenter) CreateEntityAt(x, y float64) component.Entity {
	p.next++
	return p.next
}

func (p *recordingPresenter) SetText(e component.Entity, text string) { p.texts[e] = text }
func (p *recordingPresenter) SetVisible(component.Entity, bool)       {}
func (p *recordingPresenter) Kill(e component.Entity)                 { delete(p.texts, e) }

// countingSound counts effect triggers
type countingSound struct {
	flaps, scores, hurts int
}

func (s *countingSound) PlayFlap()  { s.flaps++ }
func (s *countingSound) PlayScore() { s.scores++ }
func (s *countingSound) PlayHurt()  { s.hurts++ }

// failingStore returns fixed errors
type failingStore struct {
	readErr, writeErr error
	written           []int
}

func (s *failingStore) HighScore() (int, bool, error) { return 0, false, s.readErr }
func (s *failingStore) SetHighScore(v int) error {
	s.written = append(s.written, v)
	return s.writeErr
}

var errBoom = errors.New("boom")

// newTestContext builds a deterministic context over the default configuration
func newTestContext(t *testing.T) (*engine.GameContext, *recordingPresenter, *countingSound) {
	t.Helper()
	cfg := config.Default()
	g := cfg.Game
	presenter := newRecordingPresenter()
	sound := &countingSound{}
	ctx := engine.NewGameContext(cfg, engine.Deps{
		Physics:   physics.NewArcade(physics.Rect{W: g.WorldWidth, H: g.WorldHeight - g.GroundHeight}, g.Gravity),
		Presenter: presenter,
		Store:     persistence.NewMemoryStore(),
		Sound:     sound,
		Rand:      rand.New(rand.NewSource(1)),
	})
	return ctx, presenter, sound
}

// step advances game time by total in fixed frames, calling update after each advance
func step(ctx *engine.GameContext, total, frame time.Duration, update func(dt time.Duration)) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		dt := min(frame, total-elapsed)
		ctx.Advance(dt)
		update(dt)
	}
}
