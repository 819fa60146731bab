// Package ticker provides the suspendable periodic timer behind a countdown.
// Callbacks never run on the timer goroutine directly: each fire is handed to
// a post function that forwards it onto the caller's event loop.
package ticker

import (
	"errors"
	"sync"
	"time"

	"github.com/ensigniasec/countdown/internal/countdown"
)

// ErrCancelSuspended is the panic value raised when a suspended Ticker is cancelled.
var ErrCancelSuspended = errors.New("ticker: cancel called while suspended; resume first")

// Timer is the subset of *time.Timer used by Ticker.
type Timer interface {
	Stop() bool
	Reset(d time.Duration) bool
}

// Clock provides time-related operations so tests can drive Tickers deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the default Clock implementation using the standard library.
//
//nolint:gochecknoglobals // stateless default implementation.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Scheduler starts Tickers that share a clock and an event loop.
type Scheduler struct {
	clock Clock
	post  func(func())
}

// NewScheduler returns a Scheduler. post is called from timer goroutines and
// must hand the function over to the owning event loop. A nil clock selects SystemClock.
func NewScheduler(clock Clock, post func(func())) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock, post: post}
}

// Every starts a Ticker firing once per period, the first fire one period from now.
func (s *Scheduler) Every(period time.Duration, fire func()) countdown.TickHandle {
	return Start(s.clock, period, func() { s.post(fire) })
}

// Ticker fires a callback on a fixed period. Suspending it records how far
// into the current period it was, and resuming continues from that point, so
// a pause neither skips nor repeats a beat.
type Ticker struct {
	clock  Clock
	period time.Duration
	fire   func()

	mu        sync.Mutex
	timer     Timer
	next      time.Time
	remaining time.Duration // valid while suspended
	suspended bool
	cancelled bool
}

// Start begins a Ticker on clock. fire runs on the clock's timer goroutine.
func Start(clock Clock, period time.Duration, fire func()) *Ticker {
	t := &Ticker{clock: clock, period: period, fire: fire}
	t.mu.Lock()
	t.next = clock.Now().Add(period)
	t.timer = clock.AfterFunc(period, t.onFire)
	t.mu.Unlock()
	return t
}

func (t *Ticker) onFire() {
	t.mu.Lock()
	if t.suspended || t.cancelled {
		t.mu.Unlock()
		return
	}
	now := t.clock.Now()
	t.next = t.next.Add(t.period)
	if !t.next.After(now) {
		// Fell behind; skip the missed beats instead of firing a burst.
		missed := now.Sub(t.next)/t.period + 1
		t.next = t.next.Add(missed * t.period)
	}
	t.timer.Reset(t.next.Sub(now))
	t.mu.Unlock()

	t.fire()
}

// Suspend stops further fires until Resume. Suspending twice is a no-op.
func (t *Ticker) Suspend() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.suspended || t.cancelled {
		return
	}
	t.suspended = true
	t.timer.Stop()
	t.remaining = t.next.Sub(t.clock.Now())
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Resume restarts a suspended Ticker with the time that was left in its period.
func (t *Ticker) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.suspended || t.cancelled {
		return
	}
	t.suspended = false
	t.next = t.clock.Now().Add(t.remaining)
	t.timer.Reset(t.remaining)
}

// Cancel stops the Ticker permanently. It panics with ErrCancelSuspended when
// the Ticker is suspended.
func (t *Ticker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.suspended {
		panic(ErrCancelSuspended)
	}
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.timer.Stop()
}

// Suspended reports whether the Ticker is suspended.
func (t *Ticker) Suspended() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.suspended
}

// Cancelled reports whether the Ticker has been cancelled.
func (t *Ticker) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}
