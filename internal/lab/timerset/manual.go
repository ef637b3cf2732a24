package timerset

import (
	"sort"
	"sync"
	"time"
)

// ManualClock is a Clock that only moves when Advance is called. Callbacks
// run synchronously on the goroutine calling Advance, in deadline order and
// in scheduling order for equal deadlines.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	waiting []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
}

// NewManualClock creates a ManualClock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{clock: c, at: c.now.Add(d), seq: c.seq, fn: fn}
	c.waiting = append(c.waiting, t)
	return t
}

// Pending returns the number of callbacks not yet fired or stopped.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiting)
}

// Advance moves the clock forward by d, firing every callback that falls due,
// including callbacks scheduled by callbacks fired during the same call.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

func (c *ManualClock) popDueLocked(target time.Time) *manualTimer {
	if len(c.waiting) == 0 {
		return nil
	}
	sort.SliceStable(c.waiting, func(i, j int) bool {
		if c.waiting[i].at.Equal(c.waiting[j].at) {
			return c.waiting[i].seq < c.waiting[j].seq
		}
		return c.waiting[i].at.Before(c.waiting[j].at)
	})
	first := c.waiting[0]
	if first.at.After(target) {
		return nil
	}
	c.waiting = c.waiting[1:]
	return first
}

func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.stopped {
		return false
	}
	for i, w := range c.waiting {
		if w == t {
			c.waiting = append(c.waiting[:i], c.waiting[i+1:]...)
			t.stopped = true
			return true
		}
	}
	return false
}
