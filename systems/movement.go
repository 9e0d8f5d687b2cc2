package systems

import (
	"github.com/automoto/gunline/actions"
	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MovementResolver drains the action bus in emission order and applies each
// action to its target. Actions for characters that no longer exist are dropped.
type MovementResolver struct {
	Bus   *actions.Queue
	World physics.World
	Frame *Frame
}

func (m *MovementResolver) Update(e *ecs.ECS) {
	m.Bus.Drain(func(a actions.Action) {
		if !e.World.Valid(a.Target) {
			return
		}
		entry := e.World.Entry(a.Target)
		if !entry.HasComponent(components.Character) {
			return
		}
		m.apply(entry, a)
	})
}

func (m *MovementResolver) apply(entry *donburi.Entry, a actions.Action) {
	character := components.Character.Get(entry)

	switch a.Kind {
	case actions.Move:
		body := components.Body.Get(entry)
		v := m.World.LinearVelocity(body.ID)
		v.X = gamemath.Accelerate(v.X, a.Direction, character.Acceleration, m.Frame.DT)
		m.World.SetLinearVelocity(body.ID, v)
	case actions.Jump:
		if !IsGrounded(entry) {
			return
		}
		body := components.Body.Get(entry)
		v := m.World.LinearVelocity(body.ID)
		v.Y = character.JumpImpulse
		m.World.SetLinearVelocity(body.ID, v)
	case actions.Aim:
		character.Aim = gamemath.AimAngle(a.X, a.Y)
	case actions.Fire:
		character.FireIntent = true
	}
}
