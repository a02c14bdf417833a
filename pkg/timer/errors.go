package timer

import (
	"errors"
	"fmt"
)

// Failure causes surfaced by timers and registries. All of them are
// recoverable: reset the timer, pick another tag, or switch to the Try
// variants.
var (
	ErrAlreadyStarted = errors.New("timer already started")
	ErrAlreadyStopped = errors.New("timer already stopped")
	ErrNotStarted     = errors.New("timer not started")
	ErrDuplicateTag   = errors.New("duplicate tag")
	ErrUnknownTag     = errors.New("unknown tag")
	ErrIncomplete     = errors.New("timer has no completed measurement")
)

// LifecycleError reports a start or stop call that violated the timer's
// single-measurement lifecycle.
type LifecycleError struct {
	Name string // diagnostic timer name
	Op   string // "start", "stop", "start_after"
	Err  error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s failed for timer %q: %v", e.Op, e.Name, e.Err)
}

func (e *LifecycleError) Unwrap() error { return e.Err }

// TagError reports a registry operation that referenced a bad tag.
type TagError struct {
	Tag string
	Op  string // "create", "delete", "report", ...
	Err error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("%s failed for tag %q: %v", e.Op, e.Tag, e.Err)
}

func (e *TagError) Unwrap() error { return e.Err }
