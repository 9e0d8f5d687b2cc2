package factory

import (
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the physics world sized to fit the level.
func CreateSpace(level *leveldata.Level) *physics.Space {
	w, h := cfg.Physics.Width, cfg.Physics.Height
	// Leave a margin so bodies falling off the level stay inside the grid
	if lw := int(level.Width) * 2; lw > w {
		w = lw
	}
	if lh := int(level.Height) * 2; lh > h {
		h = lh
	}
	return physics.NewSpace(physics.SpaceOptions{
		Width:      w,
		Height:     h,
		CellSize:   cfg.Physics.CellSize,
		Gravity:    physics.Vec2{X: 0, Y: cfg.Physics.GravityY},
		MaxSubstep: cfg.Physics.MaxSubstep,
	})
}

// CreateLevel populates the world with the level's geometry and returns its
// spawn points in order.
func CreateLevel(ecs *ecs.ECS, world physics.World, level *leveldata.Level) []physics.Vec2 {
	for _, s := range level.Solids {
		CreateWall(ecs, world, s)
	}
	for _, b := range level.Boxes {
		CreateCrate(ecs, world, b)
	}
	for _, p := range level.Platforms {
		CreateFloatingPlatform(ecs, world, p)
	}

	spawns := make([]physics.Vec2, 0, len(level.SpawnPoints))
	for _, sp := range level.SpawnPoints {
		spawns = append(spawns, physics.Vec2{X: sp.X, Y: sp.Y})
	}
	return spawns
}
