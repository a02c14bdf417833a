// Package clock is the instant source for the timing packages. Production
// code uses the system clock; tests substitute a deterministic one.
package clock

import "time"

// Clock supplies monotonic instants and blocking waits.
type Clock interface {
	// Now returns the current instant. The system implementation carries the
	// platform monotonic reading, so subtracting two instants is immune to
	// wall-clock adjustments.
	Now() time.Time

	// Sleep blocks the calling goroutine for at least d.
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// System returns the process-wide system clock.
func System() Clock { return systemClock{} }
