package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/device/ebitendevice"
	"github.com/automoto/gunline/persistence"
	"github.com/automoto/gunline/scenes"
	"github.com/automoto/gunline/sim"
	"github.com/automoto/gunline/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.Screen.Width, cfg.Screen.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config overrides")
	levelPath := flag.String("level", "", "TMX level or directory of levels (default: built-in arena)")
	wallClock := flag.Bool("wallclock", false, "Step by measured frame time instead of the fixed tick")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			logger.Error("could not load config", "err", err)
			os.Exit(1)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		logger.Error("could not apply environment", "err", err)
		os.Exit(1)
	}

	// Initialize persistence and load saved tuning
	settings, err := persistence.Open("gunline", logger)
	if err != nil {
		logger.Warn("could not initialize persistence", "err", err)
	} else {
		settings.ApplySaved()
	}

	level, err := sim.LoadLevel(*levelPath)
	if err != nil {
		logger.Error("could not load level", "err", err)
		os.Exit(1)
	}

	var clock systems.Clock = systems.TickClock(cfg.Screen.TPS)
	if *wallClock {
		clock = systems.NewWallClock(100 * time.Millisecond)
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("gunline")
	ebiten.SetTPS(cfg.Screen.TPS)

	game := &Game{
		scene: scenes.NewArenaScene(scenes.ArenaOptions{
			Level:    level,
			Devices:  ebitendevice.New(),
			Clock:    clock,
			Settings: settings,
			Logger:   logger,
		}),
	}
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
