package systems

import (
	"testing"
	"time"
)

func TestTickClock(t *testing.T) {
	if got := TickClock(50).DeltaTime(); got != 0.02 {
		t.Errorf("TickClock(50) = %v, want 0.02", got)
	}
	if got := TickClock(0).DeltaTime(); got != 1.0/60 {
		t.Errorf("TickClock(0) = %v, want 1/60", got)
	}
}

func TestWallClock(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewWallClock(100 * time.Millisecond)
	c.now = func() time.Time { return now }

	if dt := c.DeltaTime(); dt != 0 {
		t.Errorf("first DeltaTime() = %v, want 0", dt)
	}

	now = now.Add(16 * time.Millisecond)
	if dt := c.DeltaTime(); dt != 0.016 {
		t.Errorf("DeltaTime() = %v, want 0.016", dt)
	}

	// Long stalls are capped
	now = now.Add(3 * time.Second)
	if dt := c.DeltaTime(); dt != 0.1 {
		t.Errorf("DeltaTime() after a stall = %v, want 0.1", dt)
	}
}
