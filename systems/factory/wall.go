package factory

import (
	"github.com/automoto/gunline/archetypes"
	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/leveldata"
	"github.com/automoto/gunline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var groundMaterial = physics.Material{Friction: 0.5}

// CreateWall creates static level geometry. Solids with an outline become ramps.
func CreateWall(ecs *ecs.ECS, world physics.World, s leveldata.Solid) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	shape := physics.Rectangle(s.W, s.H)
	tag := tags.ResolvWall
	if len(s.Points) > 0 {
		points := make([]physics.Vec2, len(s.Points))
		for i, p := range s.Points {
			points[i] = physics.Vec2{X: p.X, Y: p.Y}
		}
		shape = physics.Polygon(points...)
		tag = tags.ResolvRamp
	}

	body := world.SpawnBody(physics.BodyDef{
		Kind:     physics.Static,
		Shape:    shape,
		Position: physics.Vec2{X: s.X, Y: s.Y},
		Material: groundMaterial,
		Tags:     []string{tag},
		Data:     wall.Entity(),
	})
	components.Body.SetValue(wall, components.BodyData{ID: body, Shape: shape})

	return wall
}

// CreateCrate creates a loose dynamic box.
func CreateCrate(ecs *ecs.ECS, world physics.World, b leveldata.Box) *donburi.Entry {
	crate := archetypes.Crate.Spawn(ecs)

	shape := physics.Rectangle(b.W, b.H)
	body := world.SpawnBody(physics.BodyDef{
		Kind:         physics.Dynamic,
		Shape:        shape,
		Position:     physics.Vec2{X: b.X, Y: b.Y},
		Material:     physics.Material{Density: 1, Friction: 0.5},
		GravityScale: 1,
		Tags:         []string{tags.ResolvCrate},
		Data:         crate.Entity(),
	})
	components.Body.SetValue(crate, components.BodyData{ID: body, Shape: shape})

	return crate
}
