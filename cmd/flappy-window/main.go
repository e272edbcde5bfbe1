// Command flappy-window plays the game in a desktop window
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/flappy/asset"
	"github.com/lixenwraith/flappy/audio"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/input"
	"github.com/lixenwraith/flappy/persistence"
	"github.com/lixenwraith/flappy/physics"
	"github.com/lixenwraith/flappy/render"
	"github.com/lixenwraith/flappy/scene"
	"github.com/lixenwraith/flappy/status"
	"github.com/lixenwraith/flappy/window"
)

var (
	configFlag = flag.String("config", "", "Config file (default "+config.DefaultPath()+")")
	debugFlag  = flag.Bool("debug", false, "Log to stderr and outline gap sensors")
	seedFlag   = flag.Int64("seed", 0, "Fix the random seed (0 = time based)")
)

func main() {
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("flappy-window: %v", err)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	// A window does not own the terminal, so stderr logging is safe here
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	var store engine.HighScoreStore = persistence.NewMemoryStore()
	if cfg.Storage.HighScorePath != "" {
		store = persistence.NewFileStore(cfg.Storage.HighScorePath)
	}

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
		log.Fatalf("flappy-window: %v", err)
	}
	if err := ctrl.Start(); err != nil {
		log.Fatalf("flappy-window: %v", err)
	}

	game, err := window.NewGame(ctrl, texts, g, registry, cfg.Debug)
	if err != nil {
		log.Fatalf("flappy-window: %v", err)
	}

	ebiten.SetWindowTitle(constants.TitleText)
	ebiten.SetWindowSize(int(g.WorldWidth), int(g.WorldHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "flappy-window: %v\n", err)
		os.Exit(1)
	}
}
