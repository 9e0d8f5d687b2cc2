package sim

import (
	"context"
	"log/slog"
	"time"
)

// Loop drives a Sim from one goroutine. With a positive tick rate frames are
// paced by a ticker; otherwise they run back to back.
type Loop struct {
	sim      *Sim
	tickRate int
	logger   *slog.Logger

	// MaxFrames stops the loop after that many frames when positive.
	MaxFrames int
	// Done, when set, is checked after every frame and stops the loop once true.
	Done func() bool
}

func NewLoop(sim *Sim, tickRate int, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		logger:   logger,
	}
}

// Run steps the simulation until the context is cancelled, MaxFrames is
// reached or Done reports true. It returns the context's error only when
// cancellation stopped it.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("simulation loop started", "tickRate", l.tickRate, "maxFrames", l.MaxFrames)

	var tick <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	frames := 0
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				l.logger.Info("simulation loop cancelled", "frames", frames)
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			l.logger.Info("simulation loop cancelled", "frames", frames)
			return err
		}

		l.sim.Update()
		frames++

		if l.MaxFrames > 0 && frames >= l.MaxFrames {
			break
		}
		if l.Done != nil && l.Done() {
			break
		}
	}

	l.logger.Info("simulation loop stopped", "frames", frames)
	return nil
}
