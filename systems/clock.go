package systems

import "time"

// Clock reports the simulated time elapsed since the previous frame.
type Clock interface {
	DeltaTime() float64
}

// FixedClock advances every frame by the same step, in seconds.
type FixedClock float64

func (c FixedClock) DeltaTime() float64 { return float64(c) }

// TickClock returns the fixed step for a tick rate.
func TickClock(tps int) FixedClock {
	if tps <= 0 {
		tps = 60
	}
	return FixedClock(1.0 / float64(tps))
}

// WallClock measures real time between calls, capped at Max.
type WallClock struct {
	Max  time.Duration
	last time.Time
	now  func() time.Time
}

func NewWallClock(max time.Duration) *WallClock {
	return &WallClock{Max: max, now: time.Now}
}

func (c *WallClock) DeltaTime() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if c.Max > 0 && dt > c.Max {
		dt = c.Max
	}
	return dt.Seconds()
}
