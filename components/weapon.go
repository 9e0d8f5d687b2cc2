package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type WeaponData struct {
	Owner donburi.Entity

	// Local offset from the owner's origin
	OffsetX, OffsetY float64

	// Copied from the owner's aim each frame
	Orientation float64

	// Current recoil kick along the barrel, eased back to zero
	Kick   float64
	Recoil *gween.Tween
}

var Weapon = donburi.NewComponentType[WeaponData]()
