// Package timerset keeps an owned set of pending callbacks that can be
// cancelled together.
package timerset

import (
	"sync"
	"time"
)

// Handle is a scheduled callback that can be stopped before it fires.
type Handle interface {
	// Stop reports whether the call stopped the callback from firing.
	Stop() bool
}

// Clock schedules callbacks. The wall clock uses time.AfterFunc.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Handle
}

type wallClock struct{}

// WallClock returns the Clock backed by the runtime timers.
func WallClock() Clock { return wallClock{} }

func (wallClock) Now() time.Time { return time.Now() }

func (wallClock) AfterFunc(d time.Duration, fn func()) Handle {
	return time.AfterFunc(d, fn)
}

// Set tracks the callbacks scheduled through it until they fire or are cancelled.
type Set struct {
	mu      sync.Mutex
	clock   Clock
	pending map[uint64]Handle
	nextID  uint64
	closed  bool
}

// New creates an empty Set. A nil clock means the wall clock.
func New(clock Clock) *Set {
	if clock == nil {
		clock = WallClock()
	}
	return &Set{
		clock:   clock,
		pending: make(map[uint64]Handle),
	}
}

// Clock returns the clock the set schedules on.
func (s *Set) Clock() Clock { return s.clock }

// Schedule runs fn after delay. It returns false without scheduling once the
// set is closed.
func (s *Set) Schedule(delay time.Duration, fn func()) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, false
	}

	s.nextID++
	id := s.nextID
	s.pending[id] = s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		_, live := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		if live {
			fn()
		}
	})
	return id, true
}

// Cancel stops one pending callback. Unknown ids are ignored.
func (s *Set) Cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.pending[id]; ok {
		h.Stop()
		delete(s.pending, id)
	}
}

// CancelAll stops every pending callback and returns how many were dropped.
func (s *Set) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelAllLocked()
}

// Close cancels everything and refuses further scheduling.
func (s *Set) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAllLocked()
	s.closed = true
}

// Len returns the number of callbacks still pending.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Set) cancelAllLocked() int {
	n := len(s.pending)
	for id, h := range s.pending {
		h.Stop()
		delete(s.pending, id)
	}
	return n
}
