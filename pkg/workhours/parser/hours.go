package parser

import (
	"math"
	"strings"
)

// offMarker marks a day off in the time columns.
const offMarker = "off"

// ComputeHours returns the hours elapsed from in to out, rounded to 2 decimals.
// An out time earlier than the in time is taken to fall on the next day.
// Empty, "off", or unparseable values on either side yield 0.
// Lunch is not deducted.
func ComputeHours(in, out string) float64 {
	in = strings.TrimSpace(in)
	out = strings.TrimSpace(out)
	if in == "" || out == "" || strings.EqualFold(in, offMarker) || strings.EqualFold(out, offMarker) {
		return 0
	}

	inMins, ok := ParseTimeToMinutes(in)
	if !ok {
		return 0
	}
	outMins, ok := ParseTimeToMinutes(out)
	if !ok {
		return 0
	}

	diff := outMins - inMins
	if diff < 0 {
		diff += MinutesPerDay
	}
	return roundHours(float64(diff) / 60)
}

// roundHours rounds half away from zero to two decimal places.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
