// Package timer provides single-shot elapsed-time measurement over the
// platform monotonic clock, plus a tag-keyed registry of named timers.
package timer

import (
	"time"

	"github.com/google/uuid"

	"github.com/psantana5/devtimer/pkg/clock"
)

// Timer measures the span between a start mark and a stop mark. A Timer is
// single-use: once stopped it must be Reset before measuring again.
//
// Timers carry no locking. They are meant to be driven by one caller at a
// time; anything else needs external synchronization.
type Timer struct {
	start *time.Time
	stop  *time.Time
	name  string
	clock clock.Clock
}

// New creates an empty Timer with a generated diagnostic name.
func New() *Timer {
	return NewNamed("timer-" + uuid.NewString()[:8])
}

// NewNamed creates an empty Timer. The name appears in lifecycle errors and
// has no other effect.
func NewNamed(name string) *Timer {
	return newTimer(name, clock.System())
}

// NewWithClock creates an empty named Timer reading instants from c.
func NewWithClock(name string, c clock.Clock) *Timer {
	return newTimer(name, c)
}

func newTimer(name string, c clock.Clock) *Timer {
	return &Timer{name: name, clock: c}
}

// Name returns the diagnostic name.
func (t *Timer) Name() string { return t.name }

// State derives the lifecycle state from the recorded marks.
func (t *Timer) State() State {
	switch {
	case t.stop != nil:
		return StateStopped
	case t.start != nil:
		return StateStarted
	default:
		return StateEmpty
	}
}

// Start records the current instant as the start mark. It fails with
// ErrAlreadyStarted if a start mark exists and no Reset has intervened.
func (t *Timer) Start() error {
	now := t.clock.Now()
	if validateTransition(t.State(), StateStarted) != nil {
		return &LifecycleError{Name: t.name, Op: "start", Err: ErrAlreadyStarted}
	}
	t.start = &now
	return nil
}

// Stop records the current instant as the stop mark. It fails with
// ErrNotStarted before any start mark and with ErrAlreadyStopped once a
// stop mark exists.
func (t *Timer) Stop() error {
	now := t.clock.Now()
	if validateTransition(t.State(), StateStopped) != nil {
		cause := ErrNotStarted
		if t.stop != nil {
			cause = ErrAlreadyStopped
		}
		return &LifecycleError{Name: t.name, Op: "stop", Err: cause}
	}
	t.stop = &now
	return nil
}

// TryStart records the start mark unless one already exists. It reports
// whether the mark was newly set.
func (t *Timer) TryStart() bool {
	now := t.clock.Now()
	if t.start != nil {
		return false
	}
	t.start = &now
	return true
}

// TryStop mirrors TryStart for the stop mark. It inspects only the stop
// mark, so a stop mark may exist without a start mark; Elapsed simply stays
// unavailable in that case.
func (t *Timer) TryStop() bool {
	now := t.clock.Now()
	if t.stop != nil {
		return false
	}
	t.stop = &now
	return true
}

// MustStart is the strict variant of Start: it panics on lifecycle misuse.
func (t *Timer) MustStart() {
	if err := t.Start(); err != nil {
		panic(err)
	}
}

// MustStop is the strict variant of Stop: it panics on lifecycle misuse.
func (t *Timer) MustStop() {
	if err := t.Stop(); err != nil {
		panic(err)
	}
}

// StartAfter blocks for d on the calling goroutine and then records the
// start mark. The wait is a plain sleep, not a schedule, and cannot be
// cancelled; the real delay may exceed d by the scheduler's granularity.
// It fails like Start when a start mark already exists.
func (t *Timer) StartAfter(d time.Duration) error {
	if validateTransition(t.State(), StateStarted) != nil {
		return &LifecycleError{Name: t.name, Op: "start_after", Err: ErrAlreadyStarted}
	}
	t.clock.Sleep(d)
	now := t.clock.Now()
	t.start = &now
	return nil
}

// Reset clears both marks unconditionally so the Timer can be reused.
func (t *Timer) Reset() {
	t.start, t.stop = nil, nil
}

// Elapsed returns the duration between the start and stop marks. The second
// return is false until both marks exist.
func (t *Timer) Elapsed() (time.Duration, bool) {
	if t.start == nil || t.stop == nil {
		return 0, false
	}
	return t.stop.Sub(*t.start), true
}

// ElapsedNanos returns the elapsed time in nanoseconds.
func (t *Timer) ElapsedNanos() (int64, bool) {
	d, ok := t.Elapsed()
	if !ok {
		return 0, false
	}
	return d.Nanoseconds(), true
}

// ElapsedMicros returns the elapsed time in microseconds, truncating any
// sub-microsecond remainder.
func (t *Timer) ElapsedMicros() (int64, bool) {
	d, ok := t.Elapsed()
	if !ok {
		return 0, false
	}
	return d.Microseconds(), true
}

// ElapsedMillis returns the elapsed time in milliseconds, truncating any
// sub-millisecond remainder.
func (t *Timer) ElapsedMillis() (int64, bool) {
	d, ok := t.Elapsed()
	if !ok {
		return 0, false
	}
	return d.Milliseconds(), true
}

// ElapsedSecs returns the elapsed time in whole seconds, truncating any
// sub-second remainder.
func (t *Timer) ElapsedSecs() (int64, bool) {
	d, ok := t.Elapsed()
	if !ok {
		return 0, false
	}
	return int64(d / time.Second), true
}
