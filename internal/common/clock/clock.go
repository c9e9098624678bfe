package clock

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/mafiabot/internal/common/clock Clock,Scheduler
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Countdown describes one phase timer
type Countdown struct {
	// Duration is how long until OnExpire fires
	Duration time.Duration

	// Step is the tick granularity; zero disables ticks
	Step time.Duration

	// OnTick is called with the remaining time, first immediately and then every Step
	OnTick func(remaining time.Duration)

	// OnExpire is called once when Duration has elapsed, unless cancelled first
	OnExpire func()
}

// Scheduler arms cancellable countdowns
type Scheduler interface {
	// Schedule starts the countdown in the background. The returned cancel func
	// never blocks and is safe to call more than once.
	Schedule(countdown *Countdown) context.CancelFunc
}

// DefaultScheduler runs each countdown on its own goroutine
type DefaultScheduler struct{}

// NewScheduler creates a scheduler backed by real timers
func NewScheduler() *DefaultScheduler {
	return &DefaultScheduler{}
}

// Schedule starts the countdown and returns its cancel func
func (s *DefaultScheduler) Schedule(countdown *Countdown) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go run(ctx, countdown)
	return cancel
}

func run(ctx context.Context, c *Countdown) {
	deadline := time.NewTimer(c.Duration)
	defer deadline.Stop()

	var ticks <-chan time.Time
	if c.Step > 0 && c.OnTick != nil {
		ticker := time.NewTicker(c.Step)
		defer ticker.Stop()
		ticks = ticker.C
		c.OnTick(c.Duration)
	}

	remaining := c.Duration
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			remaining -= c.Step
			if remaining <= 0 {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			c.OnTick(remaining)
		case <-deadline.C:
			if ctx.Err() != nil {
				return
			}
			if c.OnExpire != nil {
				c.OnExpire()
			}
			return
		}
	}
}
