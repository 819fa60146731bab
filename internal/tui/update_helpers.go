package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/countdown/internal/countdown"
	"github.com/ensigniasec/countdown/internal/storage"
)

const noticeZeroDuration = "Pick a duration longer than zero"

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ctrl.Close()
		m.settle()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.screen.completed = false
		if m.ctrl.State() != countdown.Idle {
			m.ctrl.Toggle()
			return m, m.flush()
		}
		if err := m.ctrl.Start(m.picker.Seconds()); err != nil {
			logrus.Debugf("start countdown: %v", err)
			if errors.Is(err, countdown.ErrInvalidDuration) {
				m.notice = noticeZeroDuration
			}
			return m, m.flush()
		}
		m.current = &activeRun{id: m.ctrl.RunID(), seconds: m.ctrl.Duration()}
		return m, m.flush()

	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
		return m, m.flush()
	}

	// The picker is locked while a countdown is active.
	if m.ctrl.State() != countdown.Idle {
		return m, nil
	}
	m.screen.completed = false

	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.Increment()
	case key.Matches(msg, m.keys.Down):
		m.picker.Decrement()
	case key.Matches(msg, m.keys.Left):
		m.picker.Prev()
	case key.Matches(msg, m.keys.Right):
		m.picker.Next()
	case key.Matches(msg, m.keys.StepUp):
		m.picker.AddStep(1)
	case key.Matches(msg, m.keys.StepDown):
		m.picker.AddStep(-1)
	}
	return m, nil
}

// flush turns the presenter effects recorded by the controller into commands.
func (m *Model) flush() tea.Cmd {
	m.settle()
	fx := m.screen.drain()
	var cmds []tea.Cmd
	if fx.progress {
		cmds = append(cmds, m.progress.SetPercent(m.screen.fraction))
	}
	if fx.tick {
		m.rotationSeq++
		m.rotation = 0
		cmds = append(cmds, rotateCmd(m.rotationSeq))
	}
	if fx.reset {
		m.rotationSeq++
		m.rotation = 0
	}
	if fx.fade {
		m.fadeSeq++
		cmds = append(cmds, fadeCmd(m.fadeSeq))
	}
	return tea.Batch(cmds...)
}

// settle records the current run once the controller is back to Idle.
func (m *Model) settle() {
	if m.current == nil || m.ctrl.State() != countdown.Idle {
		return
	}
	run := storage.Run{
		ID:         m.current.id,
		Seconds:    m.current.seconds,
		Outcome:    storage.OutcomeCancelled,
		FinishedAt: time.Now(),
	}
	if m.screen.completed {
		run.Outcome = storage.OutcomeCompleted
	}
	m.current = nil
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Record(run); err != nil {
		logrus.Debugf("record run: %v", err)
	}
}

func rotateCmd(seq int) tea.Cmd {
	return tea.Tick(rotationFrameInterval, func(time.Time) tea.Msg {
		return rotateMsg{seq: seq}
	})
}

func fadeCmd(seq int) tea.Cmd {
	return tea.Tick(fadeFrameInterval, func(time.Time) tea.Msg {
		return fadeMsg{seq: seq}
	})
}
