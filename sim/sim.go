// Package sim assembles a level, its physics space and the frame pipeline,
// and runs them on a fixed-rate loop.
package sim

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/device"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/leveldata"
	"github.com/automoto/gunline/systems"
	"github.com/automoto/gunline/systems/factory"
	"github.com/yohamta/donburi"
)

type Options struct {
	// Level defaults to the built-in arena.
	Level   *leveldata.Level
	Devices device.Devices
	// Clock defaults to a fixed 60 Hz step.
	Clock  systems.Clock
	Logger *slog.Logger
}

type Sim struct {
	Pipeline *systems.Pipeline
	Space    *physics.Space
	Level    *leveldata.Level
}

func New(opts Options) *Sim {
	level := opts.Level
	if level == nil {
		level = leveldata.DefaultArena()
	}
	clock := opts.Clock
	if clock == nil {
		clock = systems.TickClock(60)
	}

	space := factory.CreateSpace(level)
	p := systems.NewPipeline(systems.PipelineOptions{
		World:   space,
		Devices: opts.Devices,
		Clock:   clock,
		Logger:  opts.Logger,
	})
	p.Spawner.SpawnPoints = factory.CreateLevel(p.ECS, space, level)

	return &Sim{Pipeline: p, Space: space, Level: level}
}

// Update runs one frame.
func (s *Sim) Update() {
	s.Pipeline.Update()
}

// Summary is a snapshot of the simulation's size.
type Summary struct {
	Frames      uint64
	Characters  int
	Grounded    int
	Projectiles int
	Bodies      int
}

func (s *Sim) Summary() Summary {
	sum := Summary{
		Frames: s.Pipeline.Frame.Index,
		Bodies: s.Space.Len(),
	}
	world := s.Pipeline.ECS.World
	components.Character.Each(world, func(entry *donburi.Entry) {
		sum.Characters++
		if systems.IsGrounded(entry) {
			sum.Grounded++
		}
	})
	components.Projectile.Each(world, func(*donburi.Entry) {
		sum.Projectiles++
	})
	return sum
}

// LogValue lets a Summary be logged as a group.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frames", s.Frames),
		slog.Int("characters", s.Characters),
		slog.Int("grounded", s.Grounded),
		slog.Int("projectiles", s.Projectiles),
		slog.Int("bodies", s.Bodies),
	)
}

// LoadLevel reads a TMX file, or the first level by name from a directory of
// them. An empty path selects the built-in arena.
func LoadLevel(path string) (*leveldata.Level, error) {
	if path == "" {
		return leveldata.DefaultArena(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat level %s: %w", path, err)
	}
	if !info.IsDir() {
		return leveldata.LoadCollisionData(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	levels, names, err := leveldata.LoadAllLevels(os.DirFS(path), ".")
	if err != nil {
		return nil, err
	}
	return levels[names[0]], nil
}
