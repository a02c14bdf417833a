package timer

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"sort"
	"time"

	"github.com/psantana5/devtimer/pkg/clock"
)

// Registry owns a set of Timers keyed by unique string tags. Callers drive
// the timers only through tag-qualified operations; the registry keeps
// ownership of every entry it creates.
//
// Like Timer, a Registry is not safe for concurrent use.
type Registry struct {
	clock  clock.Clock
	timers map[string]*Timer
}

// NewRegistry creates an empty Registry on the system clock.
func NewRegistry() *Registry {
	return NewRegistryWithClock(clock.System())
}

// NewRegistryWithClock creates an empty Registry whose timers read instants
// from c.
func NewRegistryWithClock(c clock.Clock) *Registry {
	return &Registry{clock: c, timers: make(map[string]*Timer)}
}

// Create inserts a fresh empty Timer under tag. It fails with
// ErrDuplicateTag when the tag is taken.
func (r *Registry) Create(tag string) error {
	if _, ok := r.timers[tag]; ok {
		return &TagError{Tag: tag, Op: "create", Err: ErrDuplicateTag}
	}
	r.timers[tag] = newTimer(tag, r.clock)
	return nil
}

// Start starts the timer registered under tag.
func (r *Registry) Start(tag string) error {
	t, ok := r.timers[tag]
	if !ok {
		return &TagError{Tag: tag, Op: "start", Err: ErrUnknownTag}
	}
	return t.Start()
}

// Stop stops the timer registered under tag.
func (r *Registry) Stop(tag string) error {
	t, ok := r.timers[tag]
	if !ok {
		return &TagError{Tag: tag, Op: "stop", Err: ErrUnknownTag}
	}
	return t.Stop()
}

// Reset clears the marks of the timer registered under tag.
func (r *Registry) Reset(tag string) error {
	t, ok := r.timers[tag]
	if !ok {
		return &TagError{Tag: tag, Op: "reset", Err: ErrUnknownTag}
	}
	t.Reset()
	return nil
}

// Elapsed returns the tagged timer's elapsed duration. The false result
// does not distinguish an absent tag from an incomplete timer.
func (r *Registry) Elapsed(tag string) (time.Duration, bool) {
	t, ok := r.timers[tag]
	if !ok {
		return 0, false
	}
	return t.Elapsed()
}

// ElapsedNanos returns the tagged timer's elapsed nanoseconds.
func (r *Registry) ElapsedNanos(tag string) (int64, bool) {
	t, ok := r.timers[tag]
	if !ok {
		return 0, false
	}
	return t.ElapsedNanos()
}

// ElapsedMicros returns the tagged timer's elapsed microseconds.
func (r *Registry) ElapsedMicros(tag string) (int64, bool) {
	t, ok := r.timers[tag]
	if !ok {
		return 0, false
	}
	return t.ElapsedMicros()
}

// ElapsedMillis returns the tagged timer's elapsed milliseconds.
func (r *Registry) ElapsedMillis(tag string) (int64, bool) {
	t, ok := r.timers[tag]
	if !ok {
		return 0, false
	}
	return t.ElapsedMillis()
}

// ElapsedSecs returns the tagged timer's elapsed whole seconds.
func (r *Registry) ElapsedSecs(tag string) (int64, bool) {
	t, ok := r.timers[tag]
	if !ok {
		return 0, false
	}
	return t.ElapsedSecs()
}

// Delete removes the entry under tag. It fails with ErrUnknownTag when the
// tag is absent.
func (r *Registry) Delete(tag string) error {
	if _, ok := r.timers[tag]; !ok {
		return &TagError{Tag: tag, Op: "delete", Err: ErrUnknownTag}
	}
	delete(r.timers, tag)
	return nil
}

// Clear removes all entries unconditionally.
func (r *Registry) Clear() {
	r.timers = make(map[string]*Timer)
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.timers) }

// Entries yields (tag, timer) pairs in unspecified order. The sequence is
// restartable. The registry retains ownership of the yielded timers.
func (r *Registry) Entries() iter.Seq2[string, *Timer] {
	return func(yield func(string, *Timer) bool) {
		for tag, t := range r.timers {
			if !yield(tag, t) {
				return
			}
		}
	}
}

// WriteReport writes one "<tag> - <nanos> ns" line per completed entry, in
// lexical tag order. Entries without a completed measurement contribute a
// per-entry error instead of a line; completed lines are still written.
func (r *Registry) WriteReport(w io.Writer) error {
	tags := make([]string, 0, len(r.timers))
	for tag := range r.timers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var incomplete []error
	for _, tag := range tags {
		nanos, ok := r.timers[tag].ElapsedNanos()
		if !ok {
			incomplete = append(incomplete, &TagError{Tag: tag, Op: "report", Err: ErrIncomplete})
			continue
		}
		if _, err := fmt.Fprintf(w, "%s - %d ns\n", tag, nanos); err != nil {
			return err
		}
	}
	return errors.Join(incomplete...)
}

// PrintReport writes the report to stdout.
func (r *Registry) PrintReport() error {
	return r.WriteReport(os.Stdout)
}
