// Package bench times a repeated operation and reduces the per-iteration
// samples to fastest, slowest and average.
package bench

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/psantana5/devtimer/pkg/clock"
	"github.com/psantana5/devtimer/pkg/timer"
)

// ErrInvalidIterations rejects runs with no samples; the reduction needs at
// least one to avoid dividing by zero.
var ErrInvalidIterations = errors.New("iteration count must be at least 1")

// Operation is the unit of work being measured. The index runs 0..N-1. The
// runner treats it as fully opaque: side effects are the caller's problem,
// and a returned error aborts the whole run with no partial report.
type Operation func(i int) error

// Runner executes benchmark runs sequentially on the calling goroutine.
// Once a run begins it cannot be aborted except by the operation failing.
type Runner struct {
	clock       clock.Clock
	onIteration func(i int, sample time.Duration)
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock substitutes the instant source, for deterministic tests.
func WithClock(c clock.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithIterationCallback registers a callback invoked after each iteration
// with its index and measured sample.
func WithIterationCallback(fn func(i int, sample time.Duration)) Option {
	return func(r *Runner) { r.onIteration = fn }
}

// New creates a Runner on the system clock.
func New(opts ...Option) *Runner {
	r := &Runner{clock: clock.System()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes op exactly iterations times in index order, recording a
// start mark immediately before each invocation and a stop mark immediately
// after. Any suspension inside op counts toward its sample. Fails with
// ErrInvalidIterations, without invoking op, when iterations < 1.
func (r *Runner) Run(iterations int, op Operation) (*Report, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}
	t := timer.NewWithClock("bench", r.clock)
	samples := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		t.Reset()
		t.TryStart()
		if err := op(i); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		t.TryStop()
		sample, _ := t.Elapsed()
		samples = append(samples, sample)
		if r.onIteration != nil {
			r.onIteration(i, sample)
		}
	}
	return reduce(samples), nil
}

// RunThrough is Run bound to a registry entry: every iteration is timed by
// the timer registered under tag, which is reset before each one. After a
// successful run the entry holds the marks of the last iteration. Fails
// with ErrUnknownTag, without invoking op, when the tag is absent.
func (r *Runner) RunThrough(reg *timer.Registry, tag string, iterations int, op Operation) (*Report, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}
	samples := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		if err := reg.Reset(tag); err != nil {
			return nil, err
		}
		if err := reg.Start(tag); err != nil {
			return nil, err
		}
		if err := op(i); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		if err := reg.Stop(tag); err != nil {
			return nil, err
		}
		sample, ok := reg.Elapsed(tag)
		if !ok {
			return nil, &timer.TagError{Tag: tag, Op: "benchmark", Err: timer.ErrIncomplete}
		}
		samples = append(samples, sample)
		if r.onIteration != nil {
			r.onIteration(i, sample)
		}
	}
	return reduce(samples), nil
}

// Run executes op with a Runner on the system clock.
func Run(iterations int, op Operation) (*Report, error) {
	return New().Run(iterations, op)
}

// RunThrough executes op through a registry tag with a Runner on the system
// clock.
func RunThrough(reg *timer.Registry, tag string, iterations int, op Operation) (*Report, error) {
	return New().RunThrough(reg, tag, iterations, op)
}

// reduce sorts the samples ascending and folds them into a Report. The
// average divides the full sum by the sample count, duplicates included.
func reduce(samples []time.Duration) *Report {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	var sum time.Duration
	for _, s := range samples {
		sum += s
	}
	return &Report{
		fastest:    samples[0],
		slowest:    samples[len(samples)-1],
		average:    sum / time.Duration(len(samples)),
		iterations: len(samples),
	}
}
