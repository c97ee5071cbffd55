package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock for tests of the formation cadence.
// Time only moves on Advance, so a test can place a tick exactly on the 500 ms
// boundary (no move) or just past it (one move)
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (c *MockTimeProvider) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d; negative durations are ignored so
// elapsed cadence time never shrinks
func (c *MockTimeProvider) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
