package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// rotationFrames are the icon positions for each eighth turn.
var rotationFrames = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"} //nolint:gochecknoglobals

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.theme))
	b.WriteString("\n\n")
	b.WriteString(m.renderIcon())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n\n")
	if n := m.renderNotice(); n != "" {
		b.WriteString(n)
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, viewPaddingCols/2).Render(b.String())
}

func renderHeader(th theme) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.accent.Hex())).Render("⏱  Countdown")
}

func (m Model) renderIcon() string {
	frame := rotationFrames[m.rotation%rotationSteps]
	return lipgloss.NewStyle().Bold(true).Foreground(m.blend(m.fade)).Render(frame)
}

// renderBody cross-fades between the picker and the running countdown.
func (m Model) renderBody() string {
	if m.fade >= 0.5 {
		label := lipgloss.NewStyle().Bold(true).Foreground(m.blend(m.fade)).Render(m.screen.label)
		return label + "\n\n" + m.progress.View()
	}
	alpha := 1 - m.fade
	normal := lipgloss.NewStyle().Foreground(m.blend(alpha * 0.5))
	focused := lipgloss.NewStyle().Bold(true).Underline(true).Foreground(m.blend(alpha))
	return m.picker.View(normal, focused)
}

func (m Model) renderNotice() string {
	switch {
	case m.notice != "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render(m.notice)
	case m.screen.completed:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.accent.Hex())).Render("⏰ Time's up!")
	default:
		return ""
	}
}

func (m Model) renderButtons() string {
	button := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())

	caption := "Start"
	if m.screen.running {
		caption = "Pause"
	}
	toggle := button.BorderForeground(lipgloss.Color(m.theme.accent.Hex())).Render(caption)

	cancelStyle := button.BorderForeground(lipgloss.Color(m.theme.muted.Hex()))
	if m.screen.cancelEnabled {
		cancelStyle = cancelStyle.BorderForeground(lipgloss.Color(m.theme.accent.Hex()))
	} else {
		cancelStyle = cancelStyle.Foreground(lipgloss.Color(m.theme.muted.Hex())).Faint(true)
	}
	cancel := cancelStyle.Render("Cancel")

	return lipgloss.JoinHorizontal(lipgloss.Top, toggle, " ", cancel)
}

// blend returns the colour fraction f of the way from muted to accent.
func (m Model) blend(f float64) lipgloss.Color {
	f = max(0, min(1, f))
	return lipgloss.Color(m.theme.muted.BlendLab(m.theme.accent, f).Clamped().Hex())
}
