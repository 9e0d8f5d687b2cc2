package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type FloatingPlatformData struct {
	BaseX, BaseY float64
	// Vertical offset from BaseY, driven up and back down
	Motion *gween.Sequence
}

var FloatingPlatform = donburi.NewComponentType[FloatingPlatformData]()
