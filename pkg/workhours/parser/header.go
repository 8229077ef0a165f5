package parser

import (
	"strings"

	"github.com/ukaji3/workhours-go/pkg/workhours/models"
)

// HeaderMatcher holds parameters for header row detection.
type HeaderMatcher struct {
	// Markers are lower-case substrings looked for in a row's concatenated text.
	Markers []string
	// MinMatches is the number of distinct markers a row must contain.
	MinMatches int
}

// DefaultHeaderMatcher returns the markers seen in attendance exports.
// A single marker is enough to identify the header.
func DefaultHeaderMatcher() HeaderMatcher {
	return HeaderMatcher{
		Markers:    []string{"safetypassno", "employeename", "in time"},
		MinMatches: 1,
	}
}

// Score returns how many markers the row contains. Cells are concatenated
// without separators and lower-cased before matching.
func (m HeaderMatcher) Score(row []string) int {
	text := strings.ToLower(strings.Join(row, ""))
	score := 0
	for _, marker := range m.Markers {
		marker = strings.ToLower(marker)
		if marker != "" && strings.Contains(text, marker) {
			score++
		}
	}
	return score
}

// FindHeader returns the index of the first row that qualifies as the header.
func (m HeaderMatcher) FindHeader(grid models.Grid) (int, bool) {
	need := m.MinMatches
	if need < 1 {
		need = 1
	}
	for rowIdx, row := range grid {
		if m.Score(row) >= need {
			return rowIdx, true
		}
	}
	return -1, false
}
