// Package clocktest provides a deterministic Clock for tests.
package clocktest

import (
	"time"

	"github.com/psantana5/devtimer/pkg/clock"
)

// Fake is a Clock whose instant only moves when the test says so. Sleep
// advances the instant by exactly the requested duration, which makes
// delayed starts and benchmark samples fully deterministic.
type Fake struct {
	now   time.Time
	slept []time.Duration
}

// Prove we implement the interface.
var _ clock.Clock = (*Fake)(nil)

// New returns a Fake positioned at start.
func New(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	return f.now
}

// Advance moves the current instant forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// Sleep advances the instant by exactly d and records the request.
func (f *Fake) Sleep(d time.Duration) {
	f.now = f.now.Add(d)
	f.slept = append(f.slept, d)
}

// SleepCalls returns the durations passed to Sleep, in call order.
func (f *Fake) SleepCalls() []time.Duration {
	out := make([]time.Duration, len(f.slept))
	copy(out, f.slept)
	return out
}
