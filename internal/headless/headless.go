// Package headless runs a countdown without a terminal UI. The controller is
// driven from a single event loop; progress is reported through logrus and
// commands are read line by line from an input stream.
package headless

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/countdown"
	"github.com/ensigniasec/countdown/internal/storage"
	"github.com/ensigniasec/countdown/internal/ticker"
)

const eventBufferSize = 16

// ErrCancelled is returned when the user cancels the countdown before it completes.
var ErrCancelled = errors.New("countdown cancelled")

// Recorder stores finished runs; *storage.Storage satisfies it.
type Recorder interface {
	Record(run storage.Run) error
}

// loop serialises every controller call onto the goroutine running Run.
type loop struct {
	events chan func()
	done   chan struct{}
}

func newLoop() *loop {
	return &loop{events: make(chan func(), eventBufferSize), done: make(chan struct{})}
}

// post hands fn to the loop. It is dropped once the loop has exited.
func (l *loop) post(fn func()) {
	select {
	case l.events <- fn:
	case <-l.done:
	}
}

// Run starts a countdown of seconds and blocks until it completes, is
// cancelled from input, or ctx ends. The finished run is passed to rec when
// rec is not nil.
func Run(ctx context.Context, cfg config.Config, seconds int, in io.Reader, notifier countdown.Notifier, clock ticker.Clock, rec Recorder) error {
	l := newLoop()
	defer close(l.done)

	log := logrus.StandardLogger()
	completed := false
	done := countdown.NotifierFunc(func() {
		completed = true
		log.Info("countdown complete")
		notifier.PlayCompletionSound()
	})

	sched := ticker.NewScheduler(clock, l.post)
	ctrl := countdown.New(newLogPresenter(log), done, sched, countdown.WithTickInterval(cfg.TickInterval))
	if err := ctrl.Start(seconds); err != nil {
		return fmt.Errorf("start countdown: %w", err)
	}
	defer ctrl.Close()

	run := storage.Run{ID: ctrl.RunID(), Seconds: ctrl.Duration(), Outcome: storage.OutcomeCancelled}

	if in != nil {
		go readCommands(in, l.post, ctrl)
	}

	err := l.wait(ctx, ctrl, &completed)
	if err == nil {
		run.Outcome = storage.OutcomeCompleted
	}
	if rec != nil {
		run.FinishedAt = clock.Now()
		if recErr := rec.Record(run); recErr != nil {
			log.Debugf("record run: %v", recErr)
		}
	}
	return err
}

// wait runs posted events until the controller returns to Idle or ctx ends.
func (l *loop) wait(ctx context.Context, ctrl *countdown.Controller, completed *bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
		}
		if ctrl.State() != countdown.Idle {
			continue
		}
		if *completed {
			return nil
		}
		return ErrCancelled
	}
}

// readCommands translates input lines into controller calls posted onto the loop.
func readCommands(in io.Reader, post func(func()), ctrl *countdown.Controller) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch cmd := strings.ToLower(strings.TrimSpace(scanner.Text())); cmd {
		case "":
			continue
		case "p", "pause", "resume", "t", "toggle":
			post(ctrl.Toggle)
		case "c", "cancel", "q", "quit":
			post(ctrl.Cancel)
		default:
			logrus.Warnf("unknown command %q (expected toggle, cancel or quit)", cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		logrus.Debugf("error reading commands: %v", err)
	}
}
