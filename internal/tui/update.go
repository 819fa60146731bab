package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.progress.Width = progressWidth(x.Width)
		m.help.Width = x.Width
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(x)
		return m, cmd

	case dispatchMsg:
		x.fn()
		return m, m.flush()

	case rotateMsg:
		if x.seq != m.rotationSeq || m.rotation >= rotationSteps {
			return m, nil
		}
		m.rotation++
		if m.rotation < rotationSteps {
			return m, rotateCmd(x.seq)
		}
		return m, nil

	case fadeMsg:
		if x.seq != m.fadeSeq {
			return m, nil
		}
		if m.stepFade() {
			return m, nil
		}
		return m, fadeCmd(x.seq)

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(x)
		if p, ok := pm.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd
	}

	return m, nil
}

// stepFade moves the cross-fade one frame toward its target and reports
// whether the target was reached.
func (m *Model) stepFade() bool {
	target := 0.0
	if m.screen.visible {
		target = 1
	}
	const step = 1.0 / fadeSteps
	switch {
	case m.fade < target:
		m.fade = min(target, m.fade+step)
	case m.fade > target:
		m.fade = max(target, m.fade-step)
	}
	return m.fade == target
}

func progressWidth(windowWidth int) int {
	return max(progressMinWidth, min(progressMaxWidth, windowWidth-viewPaddingCols))
}
