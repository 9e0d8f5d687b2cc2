package systems

import (
	"github.com/automoto/gunline/physics"
	"github.com/yohamta/donburi/ecs"
)

// PhysicsStep advances the physics world by the frame's delta time.
type PhysicsStep struct {
	World physics.World
	Frame *Frame
}

func (s *PhysicsStep) Update(_ *ecs.ECS) {
	s.World.Step(s.Frame.DT)
}
