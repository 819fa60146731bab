package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/countdown"
	"github.com/ensigniasec/countdown/internal/storage"
)

const (
	fallbackAccent = "#FF5F87"
	fallbackMuted  = "#626262"
)

// theme holds the two colours every animated element blends between.
type theme struct {
	accent colorful.Color
	muted  colorful.Color
}

func newTheme(cfg config.Theme) theme {
	return theme{
		accent: parseHex(cfg.Accent, fallbackAccent),
		muted:  parseHex(cfg.Muted, fallbackMuted),
	}
}

func parseHex(s, fallback string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		logrus.Debugf("invalid theme colour %q: %v", s, err)
		c, _ = colorful.Hex(fallback)
	}
	return c
}

// Recorder stores finished runs; *storage.Storage satisfies it.
type Recorder interface {
	Record(run storage.Run) error
}

// activeRun is the countdown in progress, kept until it is recorded.
type activeRun struct {
	id      string
	seconds int
}

// Model is the root Bubble Tea model.
type Model struct {
	ctrl     *countdown.Controller
	screen   *screen
	picker   durationPicker
	progress progress.Model
	help     help.Model
	keys     keyMap
	theme    theme
	recorder Recorder
	current  *activeRun

	// rotation counts eighth turns of the tick icon for generation rotationSeq.
	rotation    int
	rotationSeq int
	// fade is 0 while the picker is shown and 1 while the countdown is shown.
	fade    float64
	fadeSeq int

	notice   string
	width    int
	height   int
	quitting bool
}

// newModel builds the model around a controller that presents to scr. rec
// may be nil.
func newModel(cfg config.Config, ctrl *countdown.Controller, scr *screen, rec Recorder) Model {
	th := newTheme(cfg.Theme)
	p := progress.New(progress.WithGradient(th.muted.Hex(), th.accent.Hex()))
	p.Width = progressMaxWidth
	return Model{
		ctrl:     ctrl,
		screen:   scr,
		picker:   newDurationPicker(cfg.Duration, cfg.PickerStep),
		progress: p,
		help:     help.New(),
		keys:     newKeyMap(),
		theme:    th,
		recorder: rec,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("countdown")
}
