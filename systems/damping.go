package systems

import (
	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DampingStage decays every character's horizontal velocity once per frame.
// Vertical velocity is left alone so jumps and falls keep their arc.
type DampingStage struct {
	World physics.World
}

func (d *DampingStage) Update(e *ecs.ECS) {
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		character := components.Character.Get(entry)
		body := components.Body.Get(entry)

		v := d.World.LinearVelocity(body.ID)
		v.X = gamemath.Damp(v.X, character.Damping)
		d.World.SetLinearVelocity(body.ID, v)
	})
}
