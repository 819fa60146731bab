package countdown

//go:generate mockgen -destination=mock_countdown/mock_countdown.go -package=mock_countdown github.com/ensigniasec/countdown/internal/countdown Presenter,Notifier,Scheduler,TickHandle

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultTickInterval = time.Second

// Presenter receives every visual update produced by the controller.
type Presenter interface {
	// ShowCountdown cross-fades between the countdown display (true) and the duration picker (false).
	ShowCountdown(visible bool)
	UpdateLabel(text string)
	UpdateProgress(fraction float64)
	// PlayTickAnimation starts the decorative per-second rotation.
	PlayTickAnimation()
	// ResetVisuals returns decorative state (icon rotation) to its resting position.
	ResetVisuals()
	SetToggleLabel(running bool)
	SetCancelEnabled(enabled bool)
}

// Notifier plays the end-of-countdown alert. Implementations must not block.
type Notifier interface {
	PlayCompletionSound()
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func()

func (f NotifierFunc) PlayCompletionSound() { f() }

// TickHandle is a periodic timer exclusively owned by the controller.
// Cancel must never be called while the handle is suspended.
type TickHandle interface {
	Suspend()
	Resume()
	Cancel()
}

// Scheduler starts periodic tick sources. Implementations deliver fire on the
// same execution context that drives the controller.
type Scheduler interface {
	Every(period time.Duration, fire func()) TickHandle
}

// Option mutates Controller configuration.
type Option func(*Controller)

// WithTickInterval overrides the one second tick period.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.period = d
		}
	}
}

// WithLogger routes transition logs to the given logger instead of the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// run is one started countdown. It only exists while the controller is Running or Paused.
type run struct {
	id     string
	handle TickHandle
}

// Controller is the countdown state machine. It is not safe for concurrent
// use: every method, including tick delivery, must run on one execution context.
type Controller struct {
	presenter Presenter
	notifier  Notifier
	scheduler Scheduler
	period    time.Duration
	log       logrus.FieldLogger

	state     State
	duration  int
	remaining int
	active    *run
}

// New constructs an idle Controller.
func New(presenter Presenter, notifier Notifier, scheduler Scheduler, opts ...Option) *Controller {
	c := &Controller{
		presenter: presenter,
		notifier:  notifier,
		scheduler: scheduler,
		period:    defaultTickInterval,
		log:       logrus.StandardLogger(),
		state:     Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Duration reports the configured total seconds of the current or last countdown.
func (c *Controller) Duration() int { return c.duration }

// Remaining reports the seconds left. It is zero while Idle.
func (c *Controller) Remaining() int { return c.remaining }

// RunID identifies the active countdown, or "" while Idle.
func (c *Controller) RunID() string {
	if c.active == nil {
		return ""
	}
	return c.active.id
}

// Start begins a countdown of the given number of seconds. It only succeeds from Idle.
func (c *Controller) Start(seconds int) error {
	if c.state != Idle {
		c.log.WithField("state", c.state).Debug("start ignored: countdown already active")
		return ErrNotIdle
	}
	if seconds <= 0 {
		c.log.WithField("duration", seconds).Debug("start ignored: non-positive duration")
		return ErrInvalidDuration
	}

	id := uuid.NewString()
	c.duration = seconds
	c.remaining = seconds
	c.state = Running
	c.active = &run{id: id}
	c.active.handle = c.scheduler.Every(c.period, func() { c.Tick(id) })

	c.presenter.UpdateLabel(FormatClock(c.remaining))
	c.presenter.UpdateProgress(1)
	c.presenter.ShowCountdown(true)
	c.presenter.SetToggleLabel(true)
	c.presenter.SetCancelEnabled(true)

	c.log.WithFields(logrus.Fields{"run_id": id, "duration": seconds}).Debug("countdown started")
	return nil
}

// Toggle pauses a running countdown or resumes a paused one. It is a no-op while Idle.
func (c *Controller) Toggle() {
	switch c.state {
	case Running:
		c.active.handle.Suspend()
		c.state = Paused
		c.presenter.SetToggleLabel(false)
	case Paused:
		c.active.handle.Resume()
		c.state = Running
		c.presenter.SetToggleLabel(true)
	case Idle:
		return
	}
	c.log.WithFields(logrus.Fields{"run_id": c.active.id, "state": c.state, "remaining": c.remaining}).Debug("countdown toggled")
}

// Cancel abandons the active countdown and returns to Idle. It is a no-op while Idle.
func (c *Controller) Cancel() {
	if c.state == Idle {
		return
	}
	c.log.WithFields(logrus.Fields{"run_id": c.active.id, "remaining": c.remaining}).Debug("countdown cancelled")
	c.stop()
}

// Close releases the tick handle when the owning screen goes away.
func (c *Controller) Close() {
	c.Cancel()
}

// Tick advances the countdown by one second. Ticks for a run other than the
// active one, or arriving while Paused, are dropped.
func (c *Controller) Tick(runID string) {
	if c.state != Running || c.active == nil || c.active.id != runID {
		c.log.WithFields(logrus.Fields{"run_id": runID, "state": c.state}).Debug("dropping stale tick")
		return
	}

	c.remaining--
	c.presenter.UpdateLabel(FormatClock(c.remaining))
	c.presenter.UpdateProgress(Fraction(c.remaining, c.duration))
	c.presenter.PlayTickAnimation()

	if c.remaining > 0 {
		return
	}
	c.log.WithField("run_id", runID).Debug("countdown complete")
	c.stop()
	c.notifier.PlayCompletionSound()
}

// stop releases the active run and resets the presenter. A suspended handle is
// resumed before it is cancelled.
func (c *Controller) stop() {
	r := c.active
	if c.state == Paused {
		r.handle.Resume()
	}
	c.state = Idle
	c.active = nil
	c.remaining = 0

	c.presenter.ShowCountdown(false)
	c.presenter.ResetVisuals()
	c.presenter.SetToggleLabel(false)
	c.presenter.SetCancelEnabled(false)

	r.handle.Cancel()
}
