package ledger

import (
	"sync"
	"time"
)

// Clock supplies the trusted current time, in unix seconds.
type Clock interface {
	Now() int64
}

// SystemClock reads wall time and never steps backward across calls.
type SystemClock struct {
	mu   sync.Mutex
	last int64
}

func NewSystemClock() *SystemClock { return &SystemClock{} }

func (c *SystemClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().Unix()
	if now < c.last {
		now = c.last
	}
	c.last = now
	return now
}

// ManualClock is a test clock advanced by hand.
type ManualClock struct {
	mu  sync.Mutex
	now int64
}

func NewManualClock(start int64) *ManualClock { return &ManualClock{now: start} }

func (c *ManualClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(t int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *ManualClock) Advance(seconds int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += seconds
}
