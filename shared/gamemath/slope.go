package gamemath

import "math"

// AngleToUp returns the angle in radians between (nx, ny) and +Y.
// A zero vector is treated as pointing straight up.
func AngleToUp(nx, ny float64) float64 {
	if nx == 0 && ny == 0 {
		return 0
	}
	return math.Atan2(math.Abs(nx), ny)
}

// Walkable reports whether a ground normal is flat enough to stand on.
// A nil limit accepts any surface.
func Walkable(nx, ny float64, maxSlope *float64) bool {
	if maxSlope == nil {
		return true
	}
	return AngleToUp(nx, ny) <= *maxSlope
}
