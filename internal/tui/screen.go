package tui

import (
	"github.com/ensigniasec/countdown/internal/countdown"
)

// screen is the countdown.Presenter backing the TUI. The controller writes to
// it from inside Update; the model drains the recorded effects afterwards and
// turns them into animation commands.
type screen struct {
	label         string
	fraction      float64
	visible       bool
	running       bool
	cancelEnabled bool
	completed     bool

	effects effects
}

// effects are presenter calls that need a follow-up tea.Cmd.
type effects struct {
	progress bool
	tick     bool
	reset    bool
	fade     bool
}

func newScreen() *screen {
	return &screen{}
}

func (s *screen) ShowCountdown(visible bool) {
	if s.visible == visible {
		return
	}
	s.visible = visible
	s.effects.fade = true
}

func (s *screen) UpdateLabel(text string) { s.label = text }

func (s *screen) UpdateProgress(fraction float64) {
	s.fraction = fraction
	s.effects.progress = true
}

func (s *screen) PlayTickAnimation() { s.effects.tick = true }

func (s *screen) ResetVisuals() {
	s.effects.tick = false
	s.effects.reset = true
}

func (s *screen) SetToggleLabel(running bool) { s.running = running }

func (s *screen) SetCancelEnabled(enabled bool) { s.cancelEnabled = enabled }

// drain returns and clears the pending effects.
func (s *screen) drain() effects {
	fx := s.effects
	s.effects = effects{}
	return fx
}

// completionNotifier marks the screen complete before forwarding to n.
func (s *screen) completionNotifier(n countdown.Notifier) countdown.Notifier {
	return countdown.NotifierFunc(func() {
		s.completed = true
		n.PlayCompletionSound()
	})
}
