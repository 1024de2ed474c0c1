// Package format provides shared formatting utilities for human-readable output.
package format

import (
	"fmt"
	"time"
)

// Placeholder is shown in cells that have no value.
const Placeholder = "-"

// Seconds formats a measurement in seconds with millisecond precision.
func Seconds(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// OptionalSeconds is Seconds, except that zero renders as Placeholder.
func OptionalSeconds(v float64) string {
	if v == 0 {
		return Placeholder
	}

	return Seconds(v)
}

// Points formats a score as a whole number.
func Points(score float64) string {
	return fmt.Sprintf("%.0f", score)
}

// Duration formats a duration for human-readable output.
// Handles microseconds, milliseconds, seconds, and minutes.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.0fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d.Milliseconds()))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return fmt.Sprintf("%.1fm", d.Minutes())
}
