package services

import (
	"context"
	"sync"
	"time"
)

// AvailabilityCheck asks the backend whether a value (username, email,
// phone) is already taken.
type AvailabilityCheck func(ctx context.Context, value string) (bool, error)

// AvailabilityChecker debounces a backend uniqueness check behind rapid
// input changes. Only the value still current when the timer fires is
// checked, and a result is applied only while its value is still the
// current input, so a slow in-flight check can never overwrite the outcome
// for newer input.
type AvailabilityChecker struct {
	mu       sync.Mutex
	delay    time.Duration
	check    AvailabilityCheck
	onResult func(value string, taken bool, err error)
	gen      uint64
	value    string
	timer    *time.Timer
}

func NewAvailabilityChecker(delay time.Duration, check AvailabilityCheck, onResult func(value string, taken bool, err error)) *AvailabilityChecker {
	return &AvailabilityChecker{
		delay:    delay,
		check:    check,
		onResult: onResult,
	}
}

// Input registers a new value, superseding any pending or in-flight check.
func (c *AvailabilityChecker) Input(ctx context.Context, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.value = value
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, func() {
		c.fire(ctx, gen)
	})
}

// Stop cancels a pending check; an in-flight one still resolves but its
// result is discarded once Input has been called again.
func (c *AvailabilityChecker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *AvailabilityChecker) fire(ctx context.Context, gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	value := c.value
	c.mu.Unlock()

	taken, err := c.check(ctx, value)

	c.mu.Lock()
	stale := gen != c.gen
	c.mu.Unlock()
	if stale {
		return
	}
	c.onResult(value, taken, err)
}
