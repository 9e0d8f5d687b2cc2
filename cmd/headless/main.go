package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/device"
	"github.com/automoto/gunline/persistence"
	"github.com/automoto/gunline/sim"
	"github.com/automoto/gunline/systems"
)

func main() {
	configPath := flag.String("config", "", "YAML config overrides")
	scriptPath := flag.String("script", "", "YAML input script to replay (required)")
	levelPath := flag.String("level", "", "TMX level or directory of levels (default: built-in arena)")
	tickRate := flag.Int("tickrate", 0, "Frames per second (0 = as fast as possible)")
	frames := flag.Int("frames", 0, "Stop after this many frames (0 = script length)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	useSaved := flag.Bool("saved-tuning", true, "Apply tuning saved by the game")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *scriptPath == "" {
		logger.Error("missing -script")
		os.Exit(2)
	}

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
	if *useSaved {
		if settings, err := persistence.Open("gunline", logger); err != nil {
			logger.Warn("could not open saved tuning", "err", err)
		} else {
			settings.ApplySaved()
		}
	}

	script, err := device.LoadScript(*scriptPath)
	if err != nil {
		logger.Error("could not load script", "err", err)
		os.Exit(1)
	}
	devices, err := device.NewScripted(script)
	if err != nil {
		logger.Error("invalid script", "path", *scriptPath, "err", err)
		os.Exit(1)
	}

	lvl, err := sim.LoadLevel(*levelPath)
	if err != nil {
		logger.Error("could not load level", "err", err)
		os.Exit(1)
	}

	s := sim.New(sim.Options{
		Level:   lvl,
		Devices: devices,
		Clock:   systems.TickClock(cfg.Screen.TPS),
		Logger:  logger,
	})
	logger.Info("level ready", "level", s.Level.Name, "spawnPoints", len(s.Level.SpawnPoints), "bodies", s.Space.Len())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := sim.NewLoop(s, *tickRate, logger)
	loop.MaxFrames = *frames
	loop.Done = devices.Done
	if err := loop.Run(ctx); err != nil {
		logger.Warn("run interrupted", "err", err)
	}

	logger.Info("summary", "sim", s.Summary())
}
