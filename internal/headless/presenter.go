package headless

import (
	"github.com/sirupsen/logrus"
)

const percent = 100

// logPresenter reports countdown output as log lines. Label and progress are
// buffered and emitted together once per tick.
type logPresenter struct {
	log      logrus.FieldLogger
	label    string
	fraction float64
	visible  bool
	paused   bool
}

func newLogPresenter(log logrus.FieldLogger) *logPresenter {
	return &logPresenter{log: log}
}

func (p *logPresenter) ShowCountdown(visible bool) {
	p.visible = visible
	p.paused = false
	if visible {
		p.log.WithField("remaining", p.label).Info("countdown started")
		return
	}
	p.log.Debug("countdown hidden")
}

func (p *logPresenter) UpdateLabel(text string) { p.label = text }

func (p *logPresenter) UpdateProgress(fraction float64) { p.fraction = fraction }

func (p *logPresenter) PlayTickAnimation() {
	p.log.WithFields(logrus.Fields{
		"remaining": p.label,
		"progress":  int(p.fraction*percent + 0.5),
	}).Info("tick")
}

func (p *logPresenter) ResetVisuals() {}

func (p *logPresenter) SetToggleLabel(running bool) {
	if !p.visible {
		return
	}
	switch {
	case running && p.paused:
		p.log.WithField("remaining", p.label).Info("resumed")
	case !running:
		p.log.WithField("remaining", p.label).Info("paused")
	}
	p.paused = !running
}

func (p *logPresenter) SetCancelEnabled(enabled bool) {
	p.log.WithField("enabled", enabled).Debug("cancel availability changed")
}
