package timer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/psantana5/devtimer/pkg/clock/clocktest"
)

func TestElapsedUnavailableUntilStopped(t *testing.T) {
	fake := clocktest.New(time.Unix(0, 0))
	tmr := NewWithClock("unit", fake)

	if _, ok := tmr.Elapsed(); ok {
		t.Error("Elapsed should be unavailable before start")
	}

	if err := tmr.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	fake.Advance(10 * time.Millisecond)

	if _, ok := tmr.Elapsed(); ok {
		t.Error("Elapsed should be unavailable before stop")
	}

	if err := tmr.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	got, ok := tmr.Elapsed()
	if !ok {
		t.Fatal("Elapsed should be available after start and stop")
	}
	if got != 10*time.Millisecond {
		t.Errorf("Elapsed = %v, want %v", got, 10*time.Millisecond)
	}
}

func TestUnitConversionsTruncate(t *testing.T) {
	fake := clocktest.New(time.Unix(0, 0))
	tmr := NewWithClock("units", fake)

	if err := tmr.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	fake.Advance(1_234_567_891 * time.Nanosecond)
	if err := tmr.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	nanos, _ := tmr.ElapsedNanos()
	tests := []struct {
		name string
		got  func() (int64, bool)
		want int64
	}{
		{"nanos", tmr.ElapsedNanos, 1_234_567_891},
		{"micros", tmr.ElapsedMicros, nanos / 1_000},
		{"millis", tmr.ElapsedMillis, nanos / 1_000_000},
		{"secs", tmr.ElapsedSecs, nanos / 1_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.got()
			if !ok {
				t.Fatalf("%s unavailable on completed timer", tt.name)
			}
			if got != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestLifecycleViolations(t *testing.T) {
	tests := []struct {
		name    string
		drive   func(t *testing.T, tmr *Timer) error
		wantErr error
	}{
		{
			name: "double start",
			drive: func(t *testing.T, tmr *Timer) error {
				if err := tmr.Start(); err != nil {
					t.Fatalf("first Start() error = %v", err)
				}
				return tmr.Start()
			},
			wantErr: ErrAlreadyStarted,
		},
		{
			name: "start after stop without reset",
			drive: func(t *testing.T, tmr *Timer) error {
				if err := tmr.Start(); err != nil {
					t.Fatalf("Start() error = %v", err)
				}
				if err := tmr.Stop(); err != nil {
					t.Fatalf("Stop() error = %v", err)
				}
				return tmr.Start()
			},
			wantErr: ErrAlreadyStarted,
		},
		{
			name: "stop before start",
			drive: func(t *testing.T, tmr *Timer) error {
				return tmr.Stop()
			},
			wantErr: ErrNotStarted,
		},
		{
			name: "double stop",
			drive: func(t *testing.T, tmr *Timer) error {
				if err := tmr.Start(); err != nil {
					t.Fatalf("Start() error = %v", err)
				}
				if err := tmr.Stop(); err != nil {
					t.Fatalf("first Stop() error = %v", err)
				}
				return tmr.Stop()
			},
			wantErr: ErrAlreadyStopped,
		},
		{
			name: "start_after on started timer",
			drive: func(t *testing.T, tmr *Timer) error {
				if err := tmr.Start(); err != nil {
					t.Fatalf("Start() error = %v", err)
				}
				return tmr.StartAfter(time.Second)
			},
			wantErr: ErrAlreadyStarted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := clocktest.New(time.Unix(0, 0))
			err := tt.drive(t, NewWithClock(tt.name, fake))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			var lerr *LifecycleError
			if !errors.As(err, &lerr) {
				t.Errorf("error %v should be a *LifecycleError", err)
			}
		})
	}
}

func TestTryVariants(t *testing.T) {
	fake := clocktest.New(time.Unix(0, 0))
	tmr := NewWithClock("checked", fake)

	if !tmr.TryStart() {
		t.Error("first TryStart should set the mark")
	}
	if tmr.TryStart() {
		t.Error("second TryStart should be a no-op")
	}

	fake.Advance(time.Millisecond)

	if !tmr.TryStop() {
		t.Error("first TryStop should set the mark")
	}
	if tmr.TryStop() {
		t.Error("second TryStop should be a no-op")
	}

	got, ok := tmr.Elapsed()
	if !ok || got != time.Millisecond {
		t.Errorf("Elapsed = %v, %v; want %v, true", got, ok, time.Millisecond)
	}
}

func TestResetYieldsIndependentMeasurement(t *testing.T) {
	fake := clocktest.New(time.Unix(0, 0))
	tmr := NewWithClock("reuse", fake)

	if err := tmr.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	fake.Advance(50 * time.Millisecond)
	if err := tmr.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	tmr.Reset()
	if tmr.State() != StateEmpty {
		t.Errorf("State after Reset = %v, want %v", tmr.State(), StateEmpty)
	}
	if _, ok := tmr.Elapsed(); ok {
		t.Error("Elapsed should be unavailable after Reset")
	}

	if err := tmr.Start(); err != nil {
		t.Fatalf("Start() after Reset error = %v", err)
	}
	fake.Advance(70 * time.Millisecond)
	if err := tmr.Stop(); err != nil {
		t.Fatalf("Stop() after Reset error = %v", err)
	}

	got, ok := tmr.Elapsed()
	if !ok || got != 70*time.Millisecond {
		t.Errorf("second measurement = %v, %v; want %v, true", got, ok, 70*time.Millisecond)
	}
}

func TestFiftyMillisecondScenario(t *testing.T) {
	fake := clocktest.New(time.Unix(0, 0))
	tmr := NewWithClock("scenario", fake)

	if err := tmr.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	fake.Advance(50 * time.Millisecond)
	if err := tmr.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if millis, ok := tmr.ElapsedMillis(); !ok || millis != 50 {
		t.Errorf("ElapsedMillis = %d, %v; want 50, true", millis, ok)
	}
	if secs, ok := tmr.ElapsedSecs(); !ok || secs != 0 {
		t.Errorf("ElapsedSecs = %d, %v; want 0, true", secs, ok)
	}
}

func TestStartAfterSleepsThenMarks(t *testing.T) {
	fake := clocktest.New(time.Unix(0, 0))
	tmr := NewWithClock("delayed", fake)

	if err := tmr.StartAfter(2 * time.Second); err != nil {
		t.Fatalf("StartAfter() error = %v", err)
	}

	calls := fake.SleepCalls()
	if len(calls) != 1 || calls[0] != 2*time.Second {
		t.Errorf("Sleep calls = %v, want [2s]", calls)
	}

	// The start mark is taken after the wait, so only time advanced past the
	// sleep counts toward the measurement.
	fake.Advance(10 * time.Millisecond)
	if err := tmr.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	got, ok := tmr.Elapsed()
	if !ok || got != 10*time.Millisecond {
		t.Errorf("Elapsed = %v, %v; want %v, true", got, ok, 10*time.Millisecond)
	}
}

func TestMustStartPanicsOnReuse(t *testing.T) {
	tmr := NewNamed("strict")
	tmr.MustStart()

	defer func() {
		if recover() == nil {
			t.Error("MustStart on a started timer should panic")
		}
	}()
	tmr.MustStart()
}

func TestDefaultNameGenerated(t *testing.T) {
	a := New()
	b := New()

	if !strings.HasPrefix(a.Name(), "timer-") {
		t.Errorf("default name %q should start with timer-", a.Name())
	}
	if a.Name() == b.Name() {
		t.Errorf("default names should be distinct, both %q", a.Name())
	}
}

func TestSystemClockMeasurement(t *testing.T) {
	tmr := NewNamed("wall")
	if err := tmr.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := tmr.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	got, ok := tmr.Elapsed()
	if !ok {
		t.Fatal("Elapsed unavailable after start and stop")
	}
	if got < 5*time.Millisecond {
		t.Errorf("Elapsed = %v, want at least 5ms", got)
	}
}
