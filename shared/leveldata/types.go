// Package leveldata provides level geometry: TMX parsing and the built-in arena.
// It has no dependencies on ebitengine, donburi, or resolv.
//
// All coordinates are world space: +Y up, origin at the centre of the map.
package leveldata

// Level holds everything the simulation needs to build a level.
type Level struct {
	Name        string
	Solids      []Solid
	Boxes       []Box
	Platforms   []Platform
	SpawnPoints []SpawnPoint
	Width       float64
	Height      float64
}

type Point struct {
	X, Y float64
}

// Solid is static geometry centred on (X, Y). Points, when set, is a convex
// outline relative to the centre and replaces the W×H rectangle.
type Solid struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
	Points     []Point
}

// Box is a loose dynamic crate.
type Box struct {
	X, Y, W, H float64
}

// Platform is a floating platform that travels Travel units up from its
// starting centre and back.
type Platform struct {
	X, Y, W, H float64
	Travel     float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

const (
	SlopeUpRight = "45_up_right"
	SlopeUpLeft  = "45_up_left"
)

// slopePoints returns the triangle for a slope tile of size w×h.
func slopePoints(slope string, w, h float64) []Point {
	hw, hh := w/2, h/2
	switch slope {
	case SlopeUpRight:
		return []Point{{-hw, -hh}, {hw, -hh}, {hw, hh}}
	case SlopeUpLeft:
		return []Point{{-hw, -hh}, {hw, -hh}, {-hw, hh}}
	}
	return nil
}
