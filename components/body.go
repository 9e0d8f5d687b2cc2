package components

import (
	"github.com/automoto/gunline/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its body in the physics world.
type BodyData struct {
	ID    physics.BodyID
	Shape physics.Shape
}

var Body = donburi.NewComponentType[BodyData]()

// ShapeCasterData is the downward ground probe attached to a character.
type ShapeCasterData struct {
	Shape       physics.Shape
	Direction   physics.Vec2
	MaxDistance float64

	// Hits from the last cast, kept for debug drawing
	Hits []physics.ShapeHit
}

var ShapeCaster = donburi.NewComponentType[ShapeCasterData]()
