// Package notify implements the completion alert for a finished countdown.
// Every notifier is fire-and-forget: failures are logged and never reach the controller.
package notify

import (
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/countdown"
)

// bel is the ASCII bell; terminals answer it with the system alert tone.
const bel = "\a"

const defaultCommandTimeout = 5 * time.Second

// Bell rings the terminal bell by writing BEL to its writer.
type Bell struct {
	w io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlayCompletionSound implements countdown.Notifier.
func (b *Bell) PlayCompletionSound() {
	if _, err := io.WriteString(b.w, bel); err != nil {
		logrus.Debugf("bell write failed: %v", err)
	}
}

// Runner executes an external command; it matches exec.CommandContext(...).Run.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Command plays a sound by running an external player such as paplay or afplay.
type Command struct {
	argv    []string
	timeout time.Duration
	run     Runner
}

// CommandOption mutates Command configuration.
type CommandOption func(*Command)

// WithRunner replaces the process runner; used by tests.
func WithRunner(r Runner) CommandOption {
	return func(c *Command) {
		if r != nil {
			c.run = r
		}
	}
}

// NewCommand returns a Command running argv with the given timeout. A
// non-positive timeout selects the default.
func NewCommand(argv []string, timeout time.Duration, opts ...CommandOption) *Command {
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	c := &Command{argv: argv, timeout: timeout, run: execRunner}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PlayCompletionSound implements countdown.Notifier. The command runs in the background.
func (c *Command) PlayCompletionSound() {
	if len(c.argv) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		if err := c.run(ctx, c.argv[0], c.argv[1:]...); err != nil {
			logrus.WithField("command", c.argv[0]).Debugf("completion sound failed: %v", err)
		}
	}()
}

// Multi fans a completion out to several notifiers in order.
type Multi []countdown.Notifier

// PlayCompletionSound implements countdown.Notifier.
func (m Multi) PlayCompletionSound() {
	for _, n := range m {
		n.PlayCompletionSound()
	}
}

// FromConfig builds the notifier described by the sound settings. The bell is
// written to w. With nothing configured the result is a silent Multi.
func FromConfig(cfg config.Sound, w io.Writer) countdown.Notifier {
	var m Multi
	if cfg.Bell {
		m = append(m, NewBell(w))
	}
	if len(cfg.Command) > 0 {
		m = append(m, NewCommand(cfg.Command, cfg.Timeout))
	}
	return m
}
