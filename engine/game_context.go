package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/status"
)

// Deps bundles the collaborators handed to NewGameContext
// Nil fields fall back to no-op implementations where one exists
type Deps struct {
	Physics   Physics
	Presenter Presenter
	Store     HighScoreStore
	Sound     Sound
	Loader    AssetLoader
	Rand      *rand.Rand
	Status    *status.Registry
}

// GameContext is the explicit application context passed to every system and scene
type GameContext struct {
	// ===== Immutable After Init =====

	Config    *config.Config
	Physics   Physics
	Presenter Presenter
	Store     HighScoreStore
	Sound     Sound
	Loader    AssetLoader
	Rand      *rand.Rand
	Status    *status.Registry

	// ===== Atomic (Self-Synchronized) =====
	// Written by the input goroutine or loader callbacks, read by the frame loop

	FrameNumber atomic.Int64
	IsPaused    atomic.Bool
	IsMuted     atomic.Bool

	// ===== Frame-Loop Exclusive =====

	Session GameSession

	now time.Duration // game time since start, excludes pauses
	dt  time.Duration // delta of the current frame
}

// NewGameContext creates a context; cfg must be validated by the caller
func NewGameContext(cfg *config.Config, deps Deps) *GameContext {
	ctx := &GameContext{
		Config:    cfg,
		Physics:   deps.Physics,
		Presenter: deps.Presenter,
		Store:     deps.Store,
		Sound:     deps.Sound,
		Loader:    deps.Loader,
		Rand:      deps.Rand,
		Status:    deps.Status,
	}

	if ctx.Sound == nil {
		ctx.Sound = NopSound{}
	}
	if ctx.Loader == nil {
		ctx.Loader = InstantLoader{}
	}
	if ctx.Status == nil {
		ctx.Status = status.NewRegistry()
	}
	if ctx.Rand == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		ctx.Rand = rand.New(rand.NewSource(seed))
	}
	return ctx
}

// Now returns the game time
func (ctx *GameContext) Now() time.Duration {
	return ctx.now
}

// DeltaTime returns the duration of the frame being processed
func (ctx *GameContext) DeltaTime() time.Duration {
	return ctx.dt
}

// Advance moves game time forward by dt and bumps the frame counter
func (ctx *GameContext) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	ctx.dt = dt
	ctx.now += dt
	ctx.FrameNumber.Add(1)
}

// PlaySound triggers fn unless muted
func (ctx *GameContext) PlaySound(fn func(Sound)) {
	if ctx.IsMuted.Load() {
		return
	}
	fn(ctx.Sound)
}

// ToggleMute flips mute and returns the new state
func (ctx *GameContext) ToggleMute() bool {
	for {
		old := ctx.IsMuted.Load()
		if ctx.IsMuted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// TogglePause flips pause and returns the new state
func (ctx *GameContext) TogglePause() bool {
	for {
		old := ctx.IsPaused.Load()
		if ctx.IsPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
