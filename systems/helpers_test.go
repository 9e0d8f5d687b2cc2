package systems

import (
	"testing"

	"github.com/automoto/gunline/actions"
	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testSim is a bare world with a physics space and no stages registered.
type testSim struct {
	ecs   *ecs.ECS
	space *physics.Space
	bus   *actions.Queue
	frame *Frame
}

func newTestSim(t *testing.T, dt float64) *testSim {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	return &testSim{
		ecs: ecs.NewECS(donburi.NewWorld()),
		space: physics.NewSpace(physics.SpaceOptions{
			Width:      4096,
			Height:     2048,
			CellSize:   32,
			Gravity:    physics.Vec2{Y: cfg.Physics.GravityY},
			MaxSubstep: cfg.Physics.MaxSubstep,
		}),
		bus:   &actions.Queue{},
		frame: &Frame{DT: dt},
	}
}

func (s *testSim) character(x, y float64) *donburi.Entry {
	return factory.CreateCharacter(s.ecs, s.space, x, y, 0)
}

func (s *testSim) velocity(entry *donburi.Entry) physics.Vec2 {
	return s.space.LinearVelocity(components.Body.Get(entry).ID)
}

func (s *testSim) setVelocity(entry *donburi.Entry, v physics.Vec2) {
	s.space.SetLinearVelocity(components.Body.Get(entry).ID, v)
}

func (s *testSim) resolver() *MovementResolver {
	return &MovementResolver{Bus: s.bus, World: s.space, Frame: s.frame}
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	components.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countCharacters(e *ecs.ECS) int {
	n := 0
	components.Character.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func bodyID(entry *donburi.Entry) physics.BodyID {
	return components.Body.Get(entry).ID
}

func projectilePosition(entry *donburi.Entry) physics.Vec2 {
	return components.Projectile.Get(entry).Position
}
