package countdown

import "fmt"

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// FormatClock renders seconds as a zero-padded HH:MM:SS label. Negative values render as 00:00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute
	secs := seconds % secondsPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// Fraction returns remaining/total clamped to [0,1].
func Fraction(remaining, total int) float64 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	if remaining >= total {
		return 1
	}
	return float64(remaining) / float64(total)
}
