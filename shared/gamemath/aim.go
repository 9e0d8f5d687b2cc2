package gamemath

import "math"

// AimOffset turns a stick direction into a weapon orientation: the weapon
// sprite rests pointing along -Y, so a quarter turn lines it up with +X.
const AimOffset = math.Pi / 2

// AimAngle returns the aim orientation for an unnormalized stick direction.
func AimAngle(x, y float64) float64 {
	return math.Atan2(y, x) + AimOffset
}

// LaunchDirection undoes the sprite offset and returns the unit direction a
// weapon with orientation aim fires along.
func LaunchDirection(aim float64) (x, y float64) {
	return Rotate(1, 0, aim-AimOffset)
}

// LaunchVelocity scales LaunchDirection by the muzzle speed.
func LaunchVelocity(aim, speed float64) (vx, vy float64) {
	x, y := LaunchDirection(aim)
	return x * speed, y * speed
}

// Rotate rotates (x, y) counter-clockwise by angle radians.
func Rotate(x, y, angle float64) (rx, ry float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}
