package countdown_test

import (
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/countdown/internal/countdown"
	"github.com/ensigniasec/countdown/internal/countdown/mock_countdown"
	"github.com/ensigniasec/countdown/internal/ticker"
	"github.com/ensigniasec/countdown/internal/ticker/tickertest"
)

// recordingPresenter keeps the latest value of every presenter output.
type recordingPresenter struct {
	visible       bool
	label         string
	labels        []string
	fraction      float64
	animations    int
	resets        int
	running       bool
	cancelEnabled bool
	calls         int
}

func (p *recordingPresenter) ShowCountdown(visible bool) { p.calls++; p.visible = visible }
func (p *recordingPresenter) UpdateLabel(text string) {
	p.calls++
	p.label = text
	p.labels = append(p.labels, text)
}
func (p *recordingPresenter) UpdateProgress(fraction float64) { p.calls++; p.fraction = fraction }
func (p *recordingPresenter) PlayTickAnimation()              { p.calls++; p.animations++ }
func (p *recordingPresenter) ResetVisuals()                   { p.calls++; p.resets++ }
func (p *recordingPresenter) SetToggleLabel(running bool)     { p.calls++; p.running = running }
func (p *recordingPresenter) SetCancelEnabled(enabled bool)   { p.calls++; p.cancelEnabled = enabled }

type harness struct {
	clock  *tickertest.Clock
	pres   *recordingPresenter
	sounds int
	ctrl   *countdown.Controller
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newHarness wires a controller to a real Ticker on a fake clock. Fires are
// delivered synchronously, so the test goroutine is the controller's only context.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock: tickertest.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		pres:  &recordingPresenter{},
	}
	sched := ticker.NewScheduler(h.clock, func(fn func()) { fn() })
	h.ctrl = countdown.New(h.pres, countdown.NotifierFunc(func() { h.sounds++ }), sched, countdown.WithLogger(quietLogger()))
	return h
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(time.Second)
	}
}

func TestStart_InitialisesRunningCountdown(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.Start(90))

	assert.Equal(t, countdown.Running, h.ctrl.State())
	assert.Equal(t, 90, h.ctrl.Remaining())
	assert.Equal(t, 90, h.ctrl.Duration())
	assert.NotEmpty(t, h.ctrl.RunID())
	assert.True(t, h.pres.visible)
	assert.True(t, h.pres.running)
	assert.True(t, h.pres.cancelEnabled)
	assert.Equal(t, "00:01:30", h.pres.label)
	assert.InDelta(t, 1.0, h.pres.fraction, 1e-9)
	assert.Equal(t, 1, h.clock.Pending())
}

func TestStart_RejectsNonPositiveDuration(t *testing.T) {
	t.Parallel()

	for _, d := range []int{0, -1, -3600} {
		h := newHarness(t)
		err := h.ctrl.Start(d)
		require.ErrorIs(t, err, countdown.ErrInvalidDuration)
		assert.Equal(t, countdown.Idle, h.ctrl.State())
		assert.Equal(t, 0, h.ctrl.Remaining())
		assert.Equal(t, 0, h.pres.calls, "rejected start must not touch the presenter")
		assert.Equal(t, 0, h.clock.Pending(), "rejected start must not acquire a tick handle")
	}
}

func TestStart_WhileActiveIsRejected(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.Start(10))
	h.ticks(2)
	id := h.ctrl.RunID()

	require.ErrorIs(t, h.ctrl.Start(99), countdown.ErrNotIdle)
	assert.Equal(t, 8, h.ctrl.Remaining())
	assert.Equal(t, 10, h.ctrl.Duration())
	assert.Equal(t, id, h.ctrl.RunID())

	h.ctrl.Toggle()
	require.ErrorIs(t, h.ctrl.Start(99), countdown.ErrNotIdle)
	assert.Equal(t, countdown.Paused, h.ctrl.State())
}

func TestTick_DecrementsAndFormats(t *testing.T) {
	t.Parallel()

	const total = 3725 // 01:02:05
	tests := []struct {
		name  string
		ticks int
		label string
	}{
		{name: "one tick", ticks: 1, label: "01:02:04"},
		{name: "six ticks crosses minute", ticks: 6, label: "01:01:59"},
		{name: "one hour five seconds", ticks: 125, label: "01:00:00"},
		{name: "below one hour", ticks: 126, label: "00:59:59"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			require.NoError(t, h.ctrl.Start(total))

			h.ticks(tt.ticks)

			assert.Equal(t, countdown.Running, h.ctrl.State())
			assert.Equal(t, total-tt.ticks, h.ctrl.Remaining())
			assert.Equal(t, tt.label, h.pres.label)
			assert.Equal(t, countdown.FormatClock(total-tt.ticks), h.pres.label)
			assert.InDelta(t, float64(total-tt.ticks)/total, h.pres.fraction, 1e-9)
			assert.Equal(t, tt.ticks, h.pres.animations)
		})
	}
}

func TestToggle_PauseResumeKeepsRemaining(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(30))
	h.ticks(4)

	h.ctrl.Toggle()
	assert.Equal(t, countdown.Paused, h.ctrl.State())
	assert.False(t, h.pres.running)
	assert.Equal(t, 26, h.ctrl.Remaining())

	h.ctrl.Toggle()
	assert.Equal(t, countdown.Running, h.ctrl.State())
	assert.True(t, h.pres.running)
	assert.Equal(t, 26, h.ctrl.Remaining())
}

func TestToggle_NoTicksWhilePaused(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(10))

	h.ticks(3)
	require.Equal(t, 7, h.ctrl.Remaining())

	h.ctrl.Toggle()
	h.clock.Advance(5 * time.Minute)
	assert.Equal(t, 7, h.ctrl.Remaining(), "paused countdown must not observe elapsed time")
	assert.Equal(t, 3, h.pres.animations)

	h.ctrl.Toggle()
	h.ticks(1)
	assert.Equal(t, 6, h.ctrl.Remaining(), "resume continues from the frozen value")
	assert.Equal(t, "00:00:06", h.pres.label)
}

func TestToggle_MidPeriodResumeDoesNotDoubleFire(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(10))

	h.clock.Advance(1400 * time.Millisecond) // one tick, 400ms into the next period
	require.Equal(t, 9, h.ctrl.Remaining())

	h.ctrl.Toggle()
	h.clock.Advance(time.Hour)
	h.ctrl.Toggle()

	h.clock.Advance(599 * time.Millisecond)
	assert.Equal(t, 9, h.ctrl.Remaining())
	h.clock.Advance(time.Millisecond)
	assert.Equal(t, 8, h.ctrl.Remaining())
}

func TestIdleToggleAndCancelAreNoOps(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.ctrl.Toggle()
	h.ctrl.Cancel()
	h.ctrl.Close()

	assert.Equal(t, countdown.Idle, h.ctrl.State())
	assert.Equal(t, 0, h.pres.calls)
}

func TestCancel_FromAnyActiveState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pause bool
	}{
		{name: "running", pause: false},
		{name: "paused", pause: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			require.NoError(t, h.ctrl.Start(60))
			h.ticks(2)
			if tt.pause {
				h.ctrl.Toggle()
			}

			require.NotPanics(t, h.ctrl.Cancel, "suspended handle must be resumed before cancel")

			assert.Equal(t, countdown.Idle, h.ctrl.State())
			assert.Equal(t, 0, h.ctrl.Remaining())
			assert.Empty(t, h.ctrl.RunID())
			assert.False(t, h.pres.visible)
			assert.False(t, h.pres.running)
			assert.False(t, h.pres.cancelEnabled)
			assert.Equal(t, 1, h.pres.resets)
			assert.Equal(t, 0, h.clock.Pending())

			h.clock.Advance(time.Minute)
			assert.Equal(t, 0, h.ctrl.Remaining())
			assert.Equal(t, 0, h.sounds)

			// A second cancel from Idle is a no-op.
			calls := h.pres.calls
			h.ctrl.Cancel()
			assert.Equal(t, calls, h.pres.calls)
		})
	}
}

func TestCompletion_ReturnsToIdleAndNotifiesOnce(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(5))

	h.ticks(4)
	assert.Equal(t, countdown.Running, h.ctrl.State())
	assert.Equal(t, 0, h.sounds)

	h.ticks(1)
	assert.Equal(t, countdown.Idle, h.ctrl.State())
	assert.Equal(t, 1, h.sounds)
	assert.Equal(t, "00:00:00", h.pres.label)
	assert.InDelta(t, 0.0, h.pres.fraction, 1e-9)
	assert.False(t, h.pres.visible)

	h.ticks(10)
	assert.Equal(t, 1, h.sounds)

	// The controller can be started again after completing.
	require.NoError(t, h.ctrl.Start(2))
	h.ticks(2)
	assert.Equal(t, 2, h.sounds)
}

func TestTick_StaleRunIsDropped(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.Start(10))
	stale := h.ctrl.RunID()
	h.ctrl.Cancel()
	require.NoError(t, h.ctrl.Start(10))

	h.ctrl.Tick(stale)
	assert.Equal(t, 10, h.ctrl.Remaining())

	h.ctrl.Toggle()
	h.ctrl.Tick(h.ctrl.RunID())
	assert.Equal(t, 10, h.ctrl.Remaining(), "tick delivered while paused is dropped")

	h.ctrl.Toggle()
	h.ctrl.Tick(h.ctrl.RunID())
	assert.Equal(t, 9, h.ctrl.Remaining())
}

func TestCancelPaused_ResumesBeforeCancel(t *testing.T) {
	t.Parallel()
	mc := gomock.NewController(t)

	presenter := mock_countdown.NewMockPresenter(mc)
	presenter.EXPECT().UpdateLabel(gomock.Any()).AnyTimes()
	presenter.EXPECT().UpdateProgress(gomock.Any()).AnyTimes()
	presenter.EXPECT().ShowCountdown(gomock.Any()).AnyTimes()
	presenter.EXPECT().SetToggleLabel(gomock.Any()).AnyTimes()
	presenter.EXPECT().SetCancelEnabled(gomock.Any()).AnyTimes()
	presenter.EXPECT().ResetVisuals().Times(1)

	handle := mock_countdown.NewMockTickHandle(mc)
	scheduler := mock_countdown.NewMockScheduler(mc)
	scheduler.EXPECT().Every(2*time.Second, gomock.Any()).Return(handle).Times(1)

	gomock.InOrder(
		handle.EXPECT().Suspend(),
		handle.EXPECT().Resume(),
		handle.EXPECT().Cancel(),
	)

	notifier := mock_countdown.NewMockNotifier(mc)
	notifier.EXPECT().PlayCompletionSound().Times(0)

	ctrl := countdown.New(presenter, notifier, scheduler,
		countdown.WithTickInterval(2*time.Second), countdown.WithLogger(quietLogger()))
	require.NoError(t, ctrl.Start(3))
	ctrl.Toggle()
	ctrl.Cancel()
	ctrl.Cancel()
}

func TestCompletion_PresenterOrderAndSound(t *testing.T) {
	t.Parallel()
	mc := gomock.NewController(t)

	presenter := mock_countdown.NewMockPresenter(mc)
	handle := mock_countdown.NewMockTickHandle(mc)
	scheduler := mock_countdown.NewMockScheduler(mc)
	notifier := mock_countdown.NewMockNotifier(mc)

	var fire func()
	scheduler.EXPECT().Every(time.Second, gomock.Any()).DoAndReturn(
		func(_ time.Duration, f func()) countdown.TickHandle {
			fire = f
			return handle
		})

	gomock.InOrder(
		presenter.EXPECT().UpdateLabel("00:00:01"),
		presenter.EXPECT().UpdateProgress(1.0),
		presenter.EXPECT().ShowCountdown(true),
		presenter.EXPECT().SetToggleLabel(true),
		presenter.EXPECT().SetCancelEnabled(true),

		presenter.EXPECT().UpdateLabel("00:00:00"),
		presenter.EXPECT().UpdateProgress(0.0),
		presenter.EXPECT().PlayTickAnimation(),
		presenter.EXPECT().ShowCountdown(false),
		presenter.EXPECT().ResetVisuals(),
		presenter.EXPECT().SetToggleLabel(false),
		presenter.EXPECT().SetCancelEnabled(false),
		handle.EXPECT().Cancel(),
		notifier.EXPECT().PlayCompletionSound(),
	)

	ctrl := countdown.New(presenter, notifier, scheduler, countdown.WithLogger(quietLogger()))
	require.NoError(t, ctrl.Start(1))
	require.NotNil(t, fire)

	fire()
	assert.Equal(t, countdown.Idle, ctrl.State())

	// The cancelled handle's last queued callback arrives late and is ignored.
	fire()
	assert.Equal(t, countdown.Idle, ctrl.State())
}
