// Package workhours extracts attendance records from spreadsheet exports
// and aggregates them into one dataset with computed working hours.
package workhours

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/workhours-go/pkg/workhours/models"
	"github.com/ukaji3/workhours-go/pkg/workhours/parser"
)

// DefaultOutputFile is the name of the exported workbook.
const DefaultOutputFile = "Calculated_Working_Hours.xlsx"

// Options configures extraction behavior.
type Options struct {
	// Header controls header row detection.
	Header parser.HeaderMatcher
	// Fields maps canonical fields to accepted header labels.
	Fields parser.FieldMap
	// Shifts resolves shift codes to start and end times.
	Shifts parser.ShiftCatalog
	// Date says where the "Date :" metadata is looked up.
	Date parser.DateLocation
	// Logger receives per-file diagnostics.
	Logger zerolog.Logger
	// OnStatus, if set, is called whenever a file changes state.
	OnStatus func(models.FileStatus)
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Header: parser.DefaultHeaderMatcher(),
		Fields: parser.DefaultFieldMap(),
		Shifts: parser.DefaultShiftCatalog(),
		Date:   parser.DefaultDateLocation(),
		Logger: log.Logger,
	}
}
