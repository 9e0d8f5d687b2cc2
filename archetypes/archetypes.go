package archetypes

import (
	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Body,
		components.ShapeCaster,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Body,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Body,
		components.FloatingPlatform,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
