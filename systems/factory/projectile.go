package factory

import (
	"github.com/automoto/gunline/archetypes"
	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile at pos travelling at vel with the
// configured lifetime.
func CreateProjectile(ecs *ecs.ECS, world physics.World, owner donburi.Entity, pos, vel physics.Vec2) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	shape := physics.Circle(cfg.Projectile.Radius)
	body := world.SpawnBody(physics.BodyDef{
		Kind:     physics.Sensor,
		Shape:    shape,
		Position: pos,
		Tags:     []string{tags.ResolvProjectile},
		Data:     p.Entity(),
	})
	components.Body.SetValue(p, components.BodyData{ID: body, Shape: shape})

	components.Projectile.SetValue(p, components.ProjectileData{
		Position: pos,
		Velocity: vel,
		Lifetime: cfg.Projectile.Lifetime,
		Owner:    owner,
	})
	return p
}
