package timerset

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestSetFiresInDeadlineOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	set := New(clock)

	var order []int
	set.Schedule(20*time.Millisecond, func() { order = append(order, 2) })
	set.Schedule(10*time.Millisecond, func() { order = append(order, 1) })
	set.Schedule(20*time.Millisecond, func() { order = append(order, 3) })

	clock.Advance(15 * time.Millisecond)
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("expected only the first callback, got %v", order)
	}

	clock.Advance(5 * time.Millisecond)
	if len(order) != 3 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected scheduling order on equal deadlines, got %v", order)
	}
	if set.Len() != 0 {
		t.Fatalf("expected no pending callbacks, got %d", set.Len())
	}
}

func TestSetCancelAll(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	set := New(clock)

	var fired atomic.Int32
	for i := 0; i < 3; i++ {
		set.Schedule(time.Second, func() { fired.Add(1) })
	}
	id, _ := set.Schedule(2*time.Second, func() { fired.Add(1) })
	set.Cancel(id)

	if n := set.CancelAll(); n != 3 {
		t.Fatalf("expected 3 cancelled callbacks, got %d", n)
	}
	clock.Advance(time.Minute)
	if fired.Load() != 0 {
		t.Fatalf("cancelled callbacks fired %d times", fired.Load())
	}
	if clock.Pending() != 0 {
		t.Fatalf("expected the clock to drop stopped timers, got %d", clock.Pending())
	}
}

func TestSetChainedScheduling(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	set := New(clock)

	var hops int
	var hop func()
	hop = func() {
		hops++
		if hops < 5 {
			set.Schedule(time.Second, hop)
		}
	}
	set.Schedule(time.Second, hop)

	clock.Advance(5 * time.Second)
	if hops != 5 {
		t.Fatalf("expected 5 chained callbacks, got %d", hops)
	}
}

func TestClosedSetRefusesWork(t *testing.T) {
	set := New(NewManualClock(time.Unix(0, 0)))
	set.Close()

	if _, ok := set.Schedule(time.Second, func() {}); ok {
		t.Fatal("expected closed set to refuse scheduling")
	}
}

func TestWallClockCancelLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	set := New(nil)
	done := make(chan struct{})
	set.Schedule(time.Millisecond, func() { close(done) })
	set.Schedule(time.Hour, func() { t.Error("cancelled callback fired") })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wall clock callback did not fire")
	}
	set.Close()
}
