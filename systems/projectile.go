package systems

import (
	"log/slog"

	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Remaining lifetime at or below this counts as spent, so float drift from
// repeated subtraction cannot add a frame.
const lifetimeEpsilon = 1e-9

// ProjectileStage moves projectiles in a straight line and destroys them once
// their lifetime has run out. It is the only place projectiles are removed.
type ProjectileStage struct {
	World  physics.World
	Frame  *Frame
	Logger *slog.Logger
}

func (p *ProjectileStage) Update(e *ecs.ECS) {
	dt := p.Frame.DT
	var expired []*donburi.Entry

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectile := components.Projectile.Get(entry)
		body := components.Body.Get(entry)

		projectile.Position.X, projectile.Position.Y = gamemath.Advance(
			projectile.Position.X, projectile.Position.Y,
			projectile.Velocity.X, projectile.Velocity.Y, dt)
		p.World.SetPosition(body.ID, projectile.Position)

		if projectile.Lifetime > lifetimeEpsilon {
			projectile.Lifetime -= dt
			return
		}
		expired = append(expired, entry)
	})

	for _, entry := range expired {
		body := components.Body.Get(entry)
		p.World.DespawnBody(body.ID)
		p.logger().Debug("projectile expired", "projectile", entry.Entity())
		e.World.Remove(entry.Entity())
	}
}

func (p *ProjectileStage) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
