package components

import (
	"github.com/yohamta/donburi"
)

// CharacterData is the movement tuning and per-frame intent of a controllable character.
type CharacterData struct {
	Acceleration float64
	Damping      float64
	JumpImpulse  float64

	// Largest ground tilt, in radians, that still counts as standing.
	// nil accepts any surface.
	MaxSlopeAngle *float64

	// Aim orientation in radians, counter-clockwise
	Aim float64

	// Set by a Fire action, cleared by the weapon stage in the same frame
	FireIntent bool

	// Spawn order, starting at 0
	Index int
}

var Character = donburi.NewComponentType[CharacterData]()

// Grounded is present on a character standing on walkable ground this frame.
var Grounded = donburi.NewTag().SetName("Grounded")
