package workhours

import (
	"fmt"
	"strings"

	"github.com/ukaji3/workhours-go/pkg/workhours/models"
	"github.com/ukaji3/workhours-go/pkg/workhours/parser"
)

// lunchMissing is written when a row has no lunch value.
const lunchMissing = "NA"

// Extractor turns one decoded sheet into attendance records.
type Extractor struct {
	opts Options
}

// NewExtractor creates an Extractor.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Extract decodes workbook bytes and extracts the records of its first sheet.
// Errors are returned as *FileError.
func (e *Extractor) Extract(name string, data []byte) ([]models.AttendanceRecord, error) {
	grid, sheetName, err := parser.DecodeGrid(data)
	if err != nil {
		return nil, NewFileError(name, StageDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}

	records, err := e.ExtractGrid(grid)
	if err != nil {
		return nil, NewFileError(name, StageHeader, err)
	}

	e.opts.Logger.Debug().
		Str("file", name).
		Str("sheet", sheetName).
		Int("rows", grid.Len()).
		Int("records", len(records)).
		Msg("Extracted sheet")
	return records, nil
}

// ExtractGrid extracts records from a grid. Sequence numbers are local
// to the grid, starting at 1.
func (e *Extractor) ExtractGrid(grid models.Grid) ([]models.AttendanceRecord, error) {
	date := parser.NormalizeDate(parser.ExtractDateText(grid, e.opts.Date))

	headerRow, ok := e.opts.Header.FindHeader(grid)
	if !ok {
		return nil, ErrHeaderNotFound
	}
	columns := e.opts.Fields.Resolve(grid[headerRow])
	if !columns.Has(parser.FieldEmployeeName) {
		e.opts.Logger.Debug().
			Int("header_row", headerRow).
			Strs("labels", e.opts.Fields[parser.FieldEmployeeName]).
			Msg("Employee name column not found; no records will be extracted")
	}

	var records []models.AttendanceRecord
	for _, row := range grid[headerRow+1:] {
		name := columns.Value(row, parser.FieldEmployeeName)
		if strings.TrimSpace(name) == "" {
			continue
		}

		rec := e.buildRecord(columns, row)
		rec.SequenceNumber = len(records) + 1
		rec.Date = date
		records = append(records, rec)
	}
	return records, nil
}

func (e *Extractor) buildRecord(columns parser.ColumnIndex, row []string) models.AttendanceRecord {
	inTime := parser.CanonicalTime(columns.Value(row, parser.FieldInTime))
	outTime := parser.CanonicalTime(columns.Value(row, parser.FieldOutTime))

	lunch := strings.TrimSpace(columns.Value(row, parser.FieldLunch))
	if lunch == "" {
		lunch = lunchMissing
	}

	code := parser.NormalizeCode(columns.Value(row, parser.FieldShift))
	shift := e.opts.Shifts.Lookup(code)

	return models.AttendanceRecord{
		SafetyPassNo: columns.Value(row, parser.FieldSafetyPassNo),
		EmployeeName: columns.Value(row, parser.FieldEmployeeName),
		VendorCode:   columns.Value(row, parser.FieldVendorCode),
		ShiftCode:    code,
		ShiftStart:   shift.Start,
		ShiftEnd:     shift.End,
		InTime:       inTime,
		OutTime:      outTime,
		Lunch:        lunch,
		WorkingHours: parser.ComputeHours(inTime, outTime),
	}
}
