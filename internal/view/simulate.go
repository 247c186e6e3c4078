package view

import (
	"context"
	"errors"
	"time"
)

// DefaultSimulatedDelay is how long the "slow" checkbox holds a search.
const DefaultSimulatedDelay = 2 * time.Second

// ErrSimulated is returned when the "error" checkbox is checked.
var ErrSimulated = errors.New("simulated error")

// Sleeper suspends for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Simulation configures the simulated slow and failing conditions.
type Simulation struct {
	Delay time.Duration
	Sleep Sleeper
}

func (s Simulation) delay() time.Duration {
	if s.Delay <= 0 {
		return DefaultSimulatedDelay
	}
	return s.Delay
}

func (s Simulation) sleeper() Sleeper {
	if s.Sleep == nil {
		return Sleep
	}
	return s.Sleep
}

// apply runs the simulated conditions in order: delay first, then failure.
func (s Simulation) apply(ctx context.Context, slow, fail bool) error {
	if slow {
		if err := s.sleeper()(ctx, s.delay()); err != nil {
			return err
		}
	}
	if fail {
		return ErrSimulated
	}
	return nil
}
