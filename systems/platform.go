package systems

import (
	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformStage moves floating platforms along their tween and restarts it
// when a round trip completes.
type PlatformStage struct {
	World physics.World
	Frame *Frame
}

func (p *PlatformStage) Update(e *ecs.ECS) {
	components.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.FloatingPlatform.Get(entry)
		body := components.Body.Get(entry)

		offset, _, done := platform.Motion.Update(float32(p.Frame.DT))
		if done {
			platform.Motion.Reset()
		}
		p.World.SetPosition(body.ID, physics.Vec2{X: platform.BaseX, Y: platform.BaseY + float64(offset)})
	})
}
