// Command flappy plays the game in a terminal
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/flappy/asset"
	"github.com/lixenwraith/flappy/audio"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/core"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/input"
	"github.com/lixenwraith/flappy/persistence"
	"github.com/lixenwraith/flappy/physics"
	"github.com/lixenwraith/flappy/render"
	"github.com/lixenwraith/flappy/scene"
	"github.com/lixenwraith/flappy/status"
)

var (
	configFlag      = flag.String("config", "", "Config file (default "+config.DefaultPath()+")")
	debugFlag       = flag.Bool("debug", false, "Write logs/flappy.log and show the debug overlay")
	seedFlag        = flag.Int64("seed", 0, "Fix the random seed (0 = time based)")
	resetScoreFlag  = flag.Bool("reset-highscore", false, "Reset the stored high score to 0 before starting")
	writeConfigFlag = flag.Bool("write-config", false, "Write the effective config to the config path and exit")
)

var errNoTerminal = errors.New("stdout is not a terminal")

func main() {
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flappy: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	if *writeConfigFlag {
		if err := config.Save(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "flappy: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	store := newStore(cfg.Storage)
	if *resetScoreFlag {
		if err := store.SetHighScore(0); err != nil {
			fmt.Fprintf(os.Stderr, "flappy: reset high score: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(cfg, store); err != nil {
		fmt.Fprintf(os.Stderr, "flappy: %v\n", err)
		os.Exit(1)
	}
}

// newStore picks the file store unless no path is configured
func newStore(cfg config.StorageConfig) engine.HighScoreStore {
	if cfg.HighScorePath == "" {
		return persistence.NewMemoryStore()
	}
	return persistence.NewFileStore(cfg.HighScorePath)
}

func run(cfg *config.Config, store engine.HighScoreStore) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: the crash handler restores the screen before printing
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	g := cfg.Game
	registry := status.NewRegistry()
	texts := render.NewTextLayer()

	sounds := audio.NewSoundManager(cfg.Audio)
	defer sounds.Cleanup()

	ctx := engine.NewGameContext(cfg, engine.Deps{
		Physics:   physics.NewArcade(physics.Rect{W: g.WorldWidth, H: g.WorldHeight - g.GroundHeight}, g.Gravity),
		Presenter: texts,
		Store:     store,
		Sound:     sounds,
		Loader:    asset.NewLoader(asset.AudioStep(sounds), asset.HighScoreStep(store)),
		Status:    registry,
	})

	ctrl, err := scene.NewController(ctx, input.NewGate())
	if err != nil {
		return err
	}

	renderer := render.NewTerminalRenderer(screen, g, registry)
	renderer.SetDebug(cfg.Debug)

	paused := texts.CreateEntityAt(g.WorldWidth/2, g.WorldHeight/2)
	texts.SetText(paused, constants.PausedText)
	texts.SetVisible(paused, false)

	eventChan := make(chan tcell.Event, constants.InputQueueSize)
	quit := make(chan struct{})
	defer close(quit)

	// Input polling; PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	if err := ctrl.Start(); err != nil {
		return err
	}

	keys := input.DefaultKeyTable()
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), constants.MaxFrameDelta)
	fps := registry.Floats.Get("fps")

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch keys.Translate(ev) {
			case input.IntentQuit:
				log.Printf("Quit requested in %s", ctrl.Scene())
				return nil
			case input.IntentActivate:
				// Input stays live while paused, but only pause toggling acts on it
				if !ctx.IsPaused.Load() {
					ctrl.Activate()
				}
			case input.IntentToggleMute:
				log.Printf("Muted: %v", ctx.ToggleMute())
			case input.IntentTogglePause:
				texts.SetVisible(paused, ctx.TogglePause())
			case input.IntentResize:
				screen.Sync()
				renderer.Resize()
			}

		case <-frameTicker.C:
			dt := clock.Tick()
			ctrl.Update(dt)
			if dt > 0 {
				fps.Set(float64(time.Second) / float64(dt))
			}
			renderer.RenderFrame(ctrl, texts)
		}
	}
}
