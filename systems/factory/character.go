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

// CreateCharacter spawns a character with the default tuning profile at (x, y)
// together with its weapon.
func CreateCharacter(ecs *ecs.ECS, world physics.World, x, y float64, index int) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	components.Character.SetValue(character, components.CharacterData{
		Acceleration:  cfg.Character.Acceleration,
		Damping:       cfg.Character.Damping,
		JumpImpulse:   cfg.Character.JumpImpulse,
		MaxSlopeAngle: cfg.Character.MaxSlopeAngle(),
		Index:         index,
	})

	shape := physics.Capsule(cfg.Character.CapsuleRadius, cfg.Character.CapsuleLength)
	body := world.SpawnBody(physics.BodyDef{
		Kind:     physics.Dynamic,
		Shape:    shape,
		Position: physics.Vec2{X: x, Y: y},
		Material: physics.Material{
			Density:            cfg.Character.Density,
			Friction:           cfg.Character.Friction,
			FrictionCombine:    physics.CombineMin,
			Restitution:        cfg.Character.Restitution,
			RestitutionCombine: physics.CombineMin,
		},
		GravityScale: cfg.Character.GravityScale,
		Tags:         []string{tags.ResolvCharacter},
		Data:         character.Entity(),
	})
	components.Body.SetValue(character, components.BodyData{ID: body, Shape: shape})

	components.ShapeCaster.SetValue(character, components.ShapeCasterData{
		Shape:       shape.Scaled(cfg.Character.CasterScale),
		Direction:   physics.Vec2{X: 0, Y: -1},
		MaxDistance: cfg.Character.ProbeDistance,
	})

	CreateWeapon(ecs, character)

	return character
}
