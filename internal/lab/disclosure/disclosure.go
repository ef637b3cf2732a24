// Package disclosure plays a fixed sequence of process steps, revealing each
// step's detail lines at evenly spaced intervals and then advancing, until the
// last step completes.
package disclosure

import (
	"sync"
	"time"

	"agentic_backend/internal/lab/timerset"
)

// Clock is the scheduling source of a Timer.
type Clock = timerset.Clock

// ProcessStep is one stage of the sequence.
type ProcessStep struct {
	ID          int
	Title       string
	Description string
	Duration    time.Duration
	Details     []string
}

// State is a snapshot of the playback.
type State struct {
	Selection      string `json:"selection"`
	StepIndex      int    `json:"stepIndex"`
	VisibleDetails int    `json:"visibleDetails"`
	Running        bool   `json:"running"`
	Completed      bool   `json:"completed"`
}

type EventKind string

const (
	EventStepStarted    EventKind = "step_started"
	EventDetailRevealed EventKind = "detail_revealed"
	EventCompleted      EventKind = "completed"
	EventReset          EventKind = "reset"
)

// Event describes one state transition. Detail is set for EventDetailRevealed.
type Event struct {
	Kind       EventKind
	Generation uint64
	State      State
	Step       ProcessStep
	Detail     string
}

type Option func(*Timer)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(t *Timer) { t.clock = c }
}

// WithObserver registers fn to receive every event in order. The observer
// must not call Start, Reset or Close; State is safe to call.
func WithObserver(fn func(Event)) Option {
	return func(t *Timer) { t.onEvent = fn }
}

// EventsPerRun is the number of events one uninterrupted run delivers,
// counting the reset sent by Close. A buffered observer channel of this size
// never has to drop an event.
func EventsPerRun(steps []ProcessStep) int {
	n := 2
	for _, s := range steps {
		n += 1 + len(s.Details)
	}
	return n
}

// Timer owns the playback state of one widget instance.
type Timer struct {
	// dispatch serializes transitions and their delivery so an event of a
	// cancelled run can never be observed after the next run started.
	dispatch sync.Mutex

	mu         sync.Mutex
	steps      []ProcessStep
	clock      Clock
	timers     *timerset.Set
	state      State
	generation uint64
	closed     bool
	onEvent    func(Event)
}

// New creates an idle Timer over steps.
func New(steps []ProcessStep, opts ...Option) *Timer {
	t := &Timer{steps: append([]ProcessStep(nil), steps...)}
	for _, opt := range opts {
		opt(t)
	}
	t.timers = timerset.New(t.clock)
	return t
}

// Steps returns the sequence the timer plays.
func (t *Timer) Steps() []ProcessStep {
	return append([]ProcessStep(nil), t.steps...)
}

// State returns the current snapshot.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start cancels any run in progress and plays the sequence from the first step.
func (t *Timer) Start(selection string) {
	t.dispatch.Lock()
	defer t.dispatch.Unlock()

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.timers.CancelAll()
	t.generation++
	gen := t.generation
	t.state = State{Selection: selection, Running: true}
	if len(t.steps) == 0 {
		t.state.Running = false
		t.state.Completed = true
		ev := Event{Kind: EventCompleted, Generation: gen, State: t.state}
		t.mu.Unlock()
		t.emit(ev)
		return
	}
	ev := Event{Kind: EventStepStarted, Generation: gen, State: t.state, Step: t.steps[0]}
	t.mu.Unlock()

	t.emit(ev)
	t.scheduleStep(gen, 0)
}

// Reset cancels pending events and returns to the idle state.
func (t *Timer) Reset() {
	t.dispatch.Lock()
	defer t.dispatch.Unlock()
	t.reset(false)
}

// Close tears the timer down. Later Start calls do nothing.
func (t *Timer) Close() {
	t.dispatch.Lock()
	defer t.dispatch.Unlock()
	t.reset(true)
}

func (t *Timer) reset(closing bool) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	if closing {
		t.timers.Close()
		t.closed = true
	} else {
		t.timers.CancelAll()
	}
	t.generation++
	gen := t.generation
	t.state = State{}
	ev := Event{Kind: EventReset, Generation: gen, State: t.state}
	t.mu.Unlock()

	t.emit(ev)
}

// scheduleStep queues the first event of step idx. Reveals are chained, each
// one scheduling the next, so their order never depends on timer goroutines.
func (t *Timer) scheduleStep(gen uint64, idx int) {
	step := t.steps[idx]
	n := len(step.Details)
	if n == 0 {
		t.after(gen, step.Duration, func() { t.advance(gen, idx) })
		return
	}
	interval := step.Duration / time.Duration(n)
	t.after(gen, interval, func() { t.reveal(gen, idx, interval) })
}

func (t *Timer) reveal(gen uint64, idx int, interval time.Duration) {
	t.dispatch.Lock()
	defer t.dispatch.Unlock()

	t.mu.Lock()
	if gen != t.generation || t.state.StepIndex != idx || !t.state.Running {
		t.mu.Unlock()
		return
	}
	step := t.steps[idx]
	t.state.VisibleDetails++
	shown := t.state.VisibleDetails
	ev := Event{
		Kind:       EventDetailRevealed,
		Generation: gen,
		State:      t.state,
		Step:       step,
		Detail:     step.Details[shown-1],
	}
	t.mu.Unlock()

	t.emit(ev)

	n := len(step.Details)
	if shown < n {
		t.after(gen, interval, func() { t.reveal(gen, idx, interval) })
		return
	}
	// the last reveal lands at n*interval; the division remainder keeps the step at its full duration
	remainder := step.Duration - interval*time.Duration(n)
	t.after(gen, remainder, func() { t.advance(gen, idx) })
}

func (t *Timer) advance(gen uint64, idx int) {
	t.dispatch.Lock()
	defer t.dispatch.Unlock()

	t.mu.Lock()
	if gen != t.generation || t.state.StepIndex != idx || !t.state.Running {
		t.mu.Unlock()
		return
	}
	var ev Event
	next := idx + 1
	if next < len(t.steps) {
		t.state.StepIndex = next
		t.state.VisibleDetails = 0
		ev = Event{Kind: EventStepStarted, Generation: gen, State: t.state, Step: t.steps[next]}
	} else {
		t.state.Running = false
		t.state.Completed = true
		ev = Event{Kind: EventCompleted, Generation: gen, State: t.state, Step: t.steps[idx]}
	}
	t.mu.Unlock()

	t.emit(ev)

	if ev.Kind == EventStepStarted {
		t.scheduleStep(gen, next)
	}
}

// after schedules fn unless the run identified by gen was superseded.
func (t *Timer) after(gen uint64, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation || t.closed {
		return
	}
	t.timers.Schedule(d, fn)
}

func (t *Timer) emit(ev Event) {
	if t.onEvent != nil {
		t.onEvent(ev)
	}
}
