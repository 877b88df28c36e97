// Package clock converts the Excel-style serial time fractions used by the
// time-clock exports (0.0 = midnight, 0.5 = noon) into hours and display
// strings, and derives worked hours from a login/logout pair.
package clock

import (
	"fmt"
	"math"
)

// LunchBreakThresholdHours is the shift length above which one unpaid
// lunch hour is deducted.
const LunchBreakThresholdHours = 5.0

// FractionToClock renders a fractional-day value as "HH:MM".
// Returns an empty string when the value is absent or not a number.
func FractionToClock(fraction *float64) string {
	if fraction == nil || math.IsNaN(*fraction) {
		return ""
	}

	totalMinutes := int(math.Round(*fraction * 24 * 60))
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FractionToHours converts a fractional-day value to hours.
func FractionToHours(fraction float64) float64 {
	return fraction * 24
}

// ShiftHours derives worked hours from a login/logout pair of
// fractional-day values. Either value absent means no shift (0 hours).
// A negative raw difference means the shift crossed midnight, so a full
// day is added back. Shifts longer than the lunch threshold lose one
// unpaid hour. A zero-duration shift yields 0 hours, not 24.
func ShiftHours(logIn, logOut *float64) float64 {
	if logIn == nil || logOut == nil {
		return 0
	}

	worked := FractionToHours(*logOut) - FractionToHours(*logIn)
	if worked < 0 {
		worked += 24
	}
	if worked > LunchBreakThresholdHours {
		worked -= 1
	}

	return worked
}

// DisplayHours floors a worked-hours value at zero for presentation.
// Aggregation uses the raw value from ShiftHours.
func DisplayHours(hours float64) float64 {
	if hours < 0 {
		return 0
	}
	return hours
}
