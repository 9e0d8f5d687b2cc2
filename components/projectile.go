package components

import (
	"github.com/automoto/gunline/physics"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Position physics.Vec2
	Velocity physics.Vec2

	// Seconds left before the projectile is destroyed
	Lifetime float64

	Owner donburi.Entity
}

var Projectile = donburi.NewComponentType[ProjectileData]()
