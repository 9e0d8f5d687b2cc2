package scenes

import (
	"math"

	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Camera follows the centre of every character, in world coordinates.
type Camera struct {
	Position physics.Vec2
}

func (c *Camera) Update(e *ecs.ECS, world physics.World, level *leveldata.Level) {
	var sum physics.Vec2
	n := 0
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		p := world.Position(components.Body.Get(entry).ID)
		sum.X += p.X
		sum.Y += p.Y
		n++
	})
	if n == 0 {
		return // nobody spawned yet, hold still
	}
	targetX := sum.X / float64(n)
	targetY := sum.Y / float64(n)

	// Keep the level filling the screen when it is larger than the screen
	halfW := (level.Width - float64(cfg.Screen.Width)) / 2
	halfH := (level.Height - float64(cfg.Screen.Height)) / 2
	targetX = clampAxis(targetX, halfW)
	targetY = clampAxis(targetY, halfH)

	c.Position.X += (targetX - c.Position.X) * cfg.Camera.FollowSmoothing
	c.Position.Y += (targetY - c.Position.Y) * cfg.Camera.FollowSmoothing
}

func clampAxis(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Max(-limit, math.Min(limit, v))
}
