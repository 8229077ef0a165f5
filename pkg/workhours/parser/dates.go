package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/workhours-go/pkg/workhours/models"
)

// UnknownDate is emitted when a file carries no date metadata.
const UnknownDate = "N/A"

var (
	dateLabelPattern = regexp.MustCompile(`(?i)Date\s*:\s*(.+)`)
	dateTokenPattern = regexp.MustCompile(`\d{1,2}[-\s/]\d{1,2}[-\s/]\d{2,4}`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// DateLocation says where to look for the "Date : <value>" metadata.
type DateLocation struct {
	// Row and Col address the preferred cell (0-based).
	Row int
	Col int
	// ScanRows is how many leading rows to search when the cell has no date.
	ScanRows int
}

// DefaultDateLocation checks B3 first, then the first 10 rows.
func DefaultDateLocation() DateLocation {
	return DateLocation{Row: 2, Col: 1, ScanRows: 10}
}

// ExtractDateText returns the trimmed value following "Date :" in the grid,
// or "" when no such label exists.
func ExtractDateText(grid models.Grid, loc DateLocation) string {
	if v := matchDateLabel(grid.Cell(loc.Row, loc.Col)); v != "" {
		return v
	}
	for i := 0; i < loc.ScanRows && i < grid.Len(); i++ {
		if v := matchDateLabel(grid.RowText(i, " ")); v != "" {
			return v
		}
	}
	return ""
}

func matchDateLabel(text string) string {
	if text == "" {
		return ""
	}
	m := dateLabelPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// NormalizeDate cleans an extracted date into DD-MM-YYYY form on a best-effort
// basis. Day and month ranges are not validated.
func NormalizeDate(raw string) string {
	clean := strings.TrimSpace(strings.ReplaceAll(raw, "/", "-"))
	if clean == "" {
		return UnknownDate
	}
	if token := dateTokenPattern.FindString(clean); token != "" {
		return whitespaceRun.ReplaceAllString(token, "-")
	}
	return clean
}
