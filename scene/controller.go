package scene

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flappy/component"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/engine/fsm"
	"github.com/lixenwraith/flappy/input"
	"github.com/lixenwraith/flappy/status"
	"github.com/lixenwraith/flappy/systems"
)

// texts holds presenter entities, created lazily and reused across rounds
type texts struct {
	loading      component.Entity
	title        component.Entity
	instructions component.Entity
	about        component.Entity
	highScore    component.Entity
	score        component.Entity
}

// Controller owns the current scene, the session lifecycle and which systems run
// All methods except the asset callback must be called from the frame goroutine
type Controller struct {
	ctx     *engine.GameContext
	gate    *input.Gate
	machine *fsm.Machine[*Controller]

	bird    *systems.BirdSystem
	spawner *systems.SpawnSystem
	score   *systems.ScoreSystem
	clouds  *systems.CloudSystem
	rain    *systems.RainSystem
	fence   *systems.FenceSystem

	texts texts

	// Written by the loader goroutine
	assetsReady  atomic.Bool
	assetsFailed atomic.Bool

	statScene       *status.AtomicString
	statTransitions *atomic.Int64
	statRejected    *atomic.Int64
}

// NewController wires the systems and the transition table; call Start to enter Boot
func NewController(ctx *engine.GameContext, gate *input.Gate) (*Controller, error) {
	spawner := systems.NewSpawnSystem(ctx)
	c := &Controller{
		ctx:             ctx,
		gate:            gate,
		machine:         fsm.NewMachine[*Controller](),
		bird:            systems.NewBirdSystem(ctx),
		spawner:         spawner,
		score:           systems.NewScoreSystem(ctx, spawner),
		clouds:          systems.NewCloudSystem(ctx),
		rain:            systems.NewRainSystem(ctx),
		fence:           systems.NewFenceSystem(ctx),
		statScene:       ctx.Status.Strings.Get("scene"),
		statTransitions: ctx.Status.Ints.Get("scene.transitions"),
		statRejected:    ctx.Status.Ints.Get("scene.rejected"),
	}

	if err := c.buildMachine(); err != nil {
		return nil, fmt.Errorf("building scene machine: %w", err)
	}
	return c, nil
}

func (c *Controller) buildMachine() error {
	m := c.machine

	m.AddState(fsm.StateID(Boot), Boot.String()).
		Enter((*Controller).enterBoot)
	m.AddState(fsm.StateID(Preload), Preload.String()).
		Enter((*Controller).enterPreload).
		Exit((*Controller).exitPreload)
	m.AddState(fsm.StateID(MainMenu), MainMenu.String()).
		Enter((*Controller).enterMainMenu).
		Update((*Controller).updateMainMenu).
		Exit((*Controller).clearGate)
	m.AddState(fsm.StateID(Play), Play.String()).
		Enter((*Controller).enterPlay).
		Update((*Controller).updatePlay).
		Exit((*Controller).clearGate)
	m.AddState(fsm.StateID(GameOver), GameOver.String()).
		Enter((*Controller).enterGameOver).
		Update((*Controller).updateGameOver).
		Exit((*Controller).clearGate)

	edges := []struct {
		from, to Scene
		event    fsm.EventType
		guard    fsm.GuardFunc[*Controller]
	}{
		{Boot, Preload, fsm.EventTick, nil},
		{Preload, MainMenu, fsm.EventTick, (*Controller).assetsLoaded},
		{MainMenu, Play, eventRequest, nil},
		{Play, GameOver, eventRequest, nil},
		{GameOver, MainMenu, eventRequest, nil},
	}
	for _, e := range edges {
		t := fsm.Transition[*Controller]{TargetID: fsm.StateID(e.to), Event: e.event, Guard: e.guard}
		if err := m.AddTransition(fsm.StateID(e.from), t); err != nil {
			return err
		}
	}

	m.OnTransition = func(from, to fsm.StateID) {
		log.Printf("scene: %s -> %s", Scene(from), Scene(to))
		c.statScene.Store(Scene(to).String())
		c.statTransitions.Add(1)
	}
	return nil
}

// Start enters Boot
func (c *Controller) Start() error {
	return c.machine.Init(c, fsm.StateID(Boot))
}

// Update advances game time and runs the active scene for one frame
// Paused contexts are skipped entirely, so game time stands still
func (c *Controller) Update(dt time.Duration) {
	if c.ctx.IsPaused.Load() {
		return
	}
	c.ctx.Advance(dt)
	c.machine.Update(c, dt)
}

// Activate forwards the front end's activate action to the input gate
func (c *Controller) Activate() bool {
	return c.gate.Activate()
}

// Request asks for a transition to target
// Edges outside the table and requests issued during enter/exit are logged and rejected
func (c *Controller) Request(target Scene) error {
	err := c.machine.Request(c, eventRequest, fsm.StateID(target))
	if err != nil {
		c.statRejected.Add(1)
		log.Printf("scene: request rejected: %v", err)
	}
	return err
}

// Scene returns the active scene
func (c *Controller) Scene() Scene {
	return Scene(c.machine.Current())
}

// Gate returns the input gate owned by the active scene
func (c *Controller) Gate() *input.Gate {
	return c.gate
}

// Context returns the game context
func (c *Controller) Context() *engine.GameContext {
	return c.ctx
}

// assetsLoaded is the Preload exit guard
func (c *Controller) assetsLoaded() bool {
	return c.assetsReady.Load()
}

// onAssetsLoaded may run on any goroutine
func (c *Controller) onAssetsLoaded(err error) {
	if err != nil {
		c.assetsFailed.Store(true)
		log.Printf("scene: asset load failed, staying in preload: %v", err)
		return
	}
	c.assetsReady.Store(true)
}

// AssetsFailed reports whether the loader reported an error
func (c *Controller) AssetsFailed() bool {
	return c.assetsFailed.Load()
}

func (c *Controller) clearGate() {
	c.gate.RemoveActivateHandler()
}
