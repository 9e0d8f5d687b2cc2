package systems

import (
	"log/slog"

	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/control"
	"github.com/automoto/gunline/device"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterSpawner creates a character for every unbound source that presses
// its spawn trigger and binds the two together.
type CharacterSpawner struct {
	Inputs      *Inputs
	Assignments *control.Assignments
	World       physics.World
	Logger      *slog.Logger

	// Characters are placed on these in turn; empty means the configured spawn position.
	SpawnPoints []physics.Vec2

	spawned int
}

func (s *CharacterSpawner) Update(e *ecs.ECS) {
	for _, src := range s.Inputs.Sources() {
		id := src.ID()
		if !s.triggered(src) {
			continue
		}
		character, created := s.Assignments.BindOnce(id, func() (donburi.Entity, bool) {
			pos := s.nextSpawn()
			entry := factory.CreateCharacter(e, s.World, pos.X, pos.Y, s.spawned)
			s.spawned++
			return entry.Entity(), true
		})
		if created {
			s.logger().Debug("character spawned", "source", id.String(), "entity", character, "count", s.spawned)
		}
	}
}

func (s *CharacterSpawner) triggered(src device.Source) bool {
	if src.ID().IsKeyboard() {
		return s.Inputs.JustPressed(src.ID(), device.KeyEnter)
	}
	return src.AnalogButton(device.GamepadSouth) > cfg.Input.SpawnThreshold
}

func (s *CharacterSpawner) nextSpawn() physics.Vec2 {
	if len(s.SpawnPoints) == 0 {
		return physics.Vec2{X: cfg.Character.SpawnX, Y: cfg.Character.SpawnY}
	}
	return s.SpawnPoints[s.spawned%len(s.SpawnPoints)]
}

// Spawned reports how many characters this spawner has created.
func (s *CharacterSpawner) Spawned() int {
	return s.spawned
}

func (s *CharacterSpawner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
