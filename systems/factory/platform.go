package factory

import (
	"github.com/automoto/gunline/archetypes"
	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/leveldata"
	"github.com/automoto/gunline/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFloatingPlatform(ecs *ecs.ECS, world physics.World, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	shape := physics.Rectangle(p.W, p.H)
	body := world.SpawnBody(physics.BodyDef{
		Kind:     physics.Kinematic,
		Shape:    shape,
		Position: physics.Vec2{X: p.X, Y: p.Y},
		Material: physics.Material{Friction: 0.5},
		Tags:     []string{tags.ResolvPlatform},
		Data:     platform.Entity(),
	})
	components.Body.SetValue(platform, components.BodyData{ID: body, Shape: shape})

	travel := p.Travel
	if travel == 0 {
		travel = cfg.Platform.Travel
	}
	duration := float32(cfg.Platform.Duration)

	// The floating platform moves using a *gween.Sequence sequence of tweens, moving it up and back.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(travel), duration, ease.Linear),
		gween.New(float32(travel), 0, duration, ease.Linear),
	)
	components.FloatingPlatform.SetValue(platform, components.FloatingPlatformData{
		BaseX:  p.X,
		BaseY:  p.Y,
		Motion: tw,
	})

	return platform
}
