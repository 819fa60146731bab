package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type pickerField int

const (
	hoursField pickerField = iota
	minutesField
	secondsField
)

// durationPicker edits an hh:mm:ss duration one field at a time. Field edits
// wrap within their range; step edits clamp to [0, 23:59:59].
type durationPicker struct {
	hours   int
	minutes int
	seconds int
	focus   pickerField
	step    int
}

func newDurationPicker(initial, step time.Duration) durationPicker {
	p := durationPicker{step: int(step / time.Second), focus: minutesField}
	p.Set(int(initial / time.Second))
	return p
}

// Set replaces the value with total seconds, clamped to the picker range.
func (p *durationPicker) Set(total int) {
	total = max(0, min(total, maxPickerSeconds))
	p.hours = total / (minutesPerHour * secondsPerMinute)
	p.minutes = total / secondsPerMinute % minutesPerHour
	p.seconds = total % secondsPerMinute
}

// Seconds returns the picked duration in whole seconds.
func (p durationPicker) Seconds() int {
	return (p.hours*minutesPerHour+p.minutes)*secondsPerMinute + p.seconds
}

func (p *durationPicker) Increment() { p.adjust(1) }

func (p *durationPicker) Decrement() { p.adjust(-1) }

func (p *durationPicker) adjust(delta int) {
	switch p.focus {
	case hoursField:
		p.hours = wrap(p.hours+delta, maxPickerHours+1)
	case minutesField:
		p.minutes = wrap(p.minutes+delta, minutesPerHour)
	case secondsField:
		p.seconds = wrap(p.seconds+delta, secondsPerMinute)
	}
}

// Next moves focus one field to the right, wrapping.
func (p *durationPicker) Next() { p.focus = pickerField(wrap(int(p.focus)+1, pickerFields)) }

// Prev moves focus one field to the left, wrapping.
func (p *durationPicker) Prev() { p.focus = pickerField(wrap(int(p.focus)-1, pickerFields)) }

// AddStep adds sign steps to the value.
func (p *durationPicker) AddStep(sign int) {
	p.Set(p.Seconds() + sign*p.step)
}

// View renders the three fields with the focused one highlighted.
func (p durationPicker) View(normal, focused lipgloss.Style) string {
	fields := []int{p.hours, p.minutes, p.seconds}
	parts := make([]string, len(fields))
	for i, v := range fields {
		style := normal
		if pickerField(i) == p.focus {
			style = focused
		}
		parts[i] = style.Render(fmt.Sprintf("%02d", v))
	}
	sep := normal.Render(":")
	captions := normal.Faint(true).Render("hh   mm   ss")
	return strings.Join(parts, " "+sep+" ") + "\n" + captions
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
