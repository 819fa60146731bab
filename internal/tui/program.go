package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/countdown"
	"github.com/ensigniasec/countdown/internal/ticker"
)

// Run starts the Bubble Tea countdown screen and blocks until the user quits
// or ctx ends. Ticks are posted onto the program's update loop so every
// controller call happens inside Update. Finished runs go to rec when it is
// not nil.
func Run(ctx context.Context, cfg config.Config, notifier countdown.Notifier, rec Recorder) error {
	scr := newScreen()

	var p *tea.Program
	sched := ticker.NewScheduler(ticker.SystemClock, func(fn func()) {
		p.Send(dispatchMsg{fn: fn})
	})
	ctrl := countdown.New(scr, scr.completionNotifier(notifier), sched,
		countdown.WithTickInterval(cfg.TickInterval))

	model := newModel(cfg, ctrl, scr, rec)
	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	// Run TUI blocking in this goroutine.
	_, err := p.Run()
	// The update loop has stopped; release any ticker still running.
	ctrl.Close()
	if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
