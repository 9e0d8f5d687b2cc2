package gamemath

// Accelerate returns vx after pushing along direction for dt seconds.
// It never clamps: damping is what bounds the speed.
func Accelerate(vx, direction, acceleration, dt float64) float64 {
	return vx + direction*acceleration*dt
}

// Damp returns the horizontal speed retained after one frame of damping.
func Damp(vx, factor float64) float64 {
	return vx * factor
}

// Advance moves a position along a constant velocity for dt seconds.
func Advance(x, y, vx, vy, dt float64) (float64, float64) {
	return x + vx*dt, y + vy*dt
}
