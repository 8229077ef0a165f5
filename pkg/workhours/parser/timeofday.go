package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 24 * 60

// timePattern matches H, HMM, H:MM, H.MM with an optional AM/PM marker.
var timePattern = regexp.MustCompile(`^(\d{1,2})[.:]?(\d{2})?\s*([aApP][mM])?$`)

// ParseTimeToMinutes parses a free-form time of day into minutes since midnight.
// The second return value is false when text is not a recognised time or
// falls outside a single day.
func ParseTimeToMinutes(text string) (int, bool) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	mins := 0
	if m[2] != "" {
		if mins, err = strconv.Atoi(m[2]); err != nil {
			return 0, false
		}
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}

	total := hours*60 + mins
	if total >= MinutesPerDay {
		return 0, false
	}
	return total, true
}

// FormatMinutes renders minutes since midnight as 24-hour HH:MM.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// CanonicalTime returns text as HH:MM when it parses, otherwise trimmed text.
func CanonicalTime(text string) string {
	text = strings.TrimSpace(text)
	if mins, ok := ParseTimeToMinutes(text); ok {
		return FormatMinutes(mins)
	}
	return text
}
