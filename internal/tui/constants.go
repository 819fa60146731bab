package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	// crossFadeMS matches the half-second fade between picker and countdown.
	crossFadeMS = 500
	fadeSteps   = 10
	// rotationSteps is the number of eighth turns in one per-tick rotation.
	rotationSteps = 8
	rotationMS    = 1000

	progressMaxWidth = 60
	progressMinWidth = 10
	// viewPaddingCols is the horizontal padding applied around the whole view.
	viewPaddingCols = 4

	maxPickerHours   = 23
	minutesPerHour   = 60
	secondsPerMinute = 60
	pickerFields     = 3

	fadeFrameInterval     = time.Duration(crossFadeMS/fadeSteps) * time.Millisecond
	rotationFrameInterval = time.Duration(rotationMS/rotationSteps) * time.Millisecond
	maxPickerSeconds      = maxPickerHours*minutesPerHour*secondsPerMinute + (minutesPerHour-1)*secondsPerMinute + secondsPerMinute - 1
)
