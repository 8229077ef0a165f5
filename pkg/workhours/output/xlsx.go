// Package output renders and exports aggregated attendance data.
package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/workhours-go/pkg/workhours/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the exported worksheet.
const SheetName = "Processed Attendance"

// ErrNothingToExport is returned when the record set is empty.
var ErrNothingToExport = errors.New("no records to export")

// Column is one exported column with its width hint in characters.
type Column struct {
	Title string
	Width float64
}

// Columns lists the exported columns in order.
var Columns = []Column{
	{"SL.NO.", 8},
	{"Date", 12},
	{"Safety Pass No", 15},
	{"Employee Name", 25},
	{"Vendor Code", 10},
	{"Shift", 6},
	{"Shift-In", 10},
	{"Shift-Out", 10},
	{"In-Time", 10},
	{"Out-Time", 10},
	{"Lunch", 8},
	{"Working Hours", 15},
}

// BuildWorkbook lays the records out as a new workbook.
// The caller must close the returned file.
func BuildWorkbook(records []models.AttendanceRecord) (*excelize.File, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c.Title
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := recordRow(rec)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, c := range Columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, c.Width); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteXLSX encodes the records as an xlsx workbook to w.
func WriteXLSX(w io.Writer, records []models.AttendanceRecord) error {
	f, err := BuildWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// SaveXLSX writes the records as an xlsx workbook at path.
func SaveXLSX(path string, records []models.AttendanceRecord) error {
	f, err := BuildWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

func recordRow(rec models.AttendanceRecord) []interface{} {
	return []interface{}{
		rec.SequenceNumber,
		rec.Date,
		cellValue(rec.SafetyPassNo),
		rec.EmployeeName,
		cellValue(rec.VendorCode),
		rec.ShiftCode,
		rec.ShiftStart,
		rec.ShiftEnd,
		rec.InTime,
		rec.OutTime,
		rec.Lunch,
		rec.WorkingHours,
	}
}

// cellValue writes numeric identifiers as numbers. Only plain digit strings
// convert; values with a sign or a leading zero stay text so they round-trip.
func cellValue(s string) interface{} {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return s
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s
		}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
