package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/workhours-go/pkg/workhours/models"
	"github.com/xuri/excelize/v2"
)

func sampleBatch(t *testing.T) *models.Batch {
	t.Helper()

	ds := models.NewDataset()
	require.NoError(t, ds.Append(
		models.AttendanceRecord{
			Date: "05-06-2024", SafetyPassNo: "1001", EmployeeName: "Asha", VendorCode: "V01",
			ShiftCode: "A", ShiftStart: "06:00", ShiftEnd: "14:00",
			InTime: "06:00", OutTime: "14:30", Lunch: "NA", WorkingHours: 8.5,
		},
		models.AttendanceRecord{
			Date: "05-06-2024", SafetyPassNo: "0042", EmployeeName: "Ravi", VendorCode: "V02",
			InTime: "OFF", OutTime: "OFF", Lunch: "NA",
		},
	))
	ds.Seal()

	return &models.Batch{
		ID: "batch-1",
		Files: []models.FileStatus{
			{Name: "day1.xlsx", State: models.StateSuccess, Records: 2},
			{Name: "bad.xlsx", State: models.StateFailed, Message: "could not identify the header row"},
		},
		Dataset: ds,
	}
}

func TestWriteXLSX(t *testing.T) {
	batch := sampleBatch(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, batch.Dataset.Records()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"SL.NO.", "Date", "Safety Pass No", "Employee Name", "Vendor Code", "Shift",
		"Shift-In", "Shift-Out", "In-Time", "Out-Time", "Lunch", "Working Hours",
	}, rows[0])
	assert.Equal(t, []string{
		"1", "05-06-2024", "1001", "Asha", "V01", "A", "06:00", "14:00", "06:00", "14:30", "NA", "8.5",
	}, rows[1])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "0042", rows[2][2])
	assert.Equal(t, "0", rows[2][11])

	width, err := f.GetColWidth(SheetName, "D")
	require.NoError(t, err)
	assert.InDelta(t, 25, width, 0.01)

	width, err = f.GetColWidth(SheetName, "L")
	require.NoError(t, err)
	assert.InDelta(t, 15, width, 0.01)

	// Numeric pass numbers are stored as numbers
	cellType, err := f.GetCellType(SheetName, "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Calculated_Working_Hours.xlsx")
	require.NoError(t, SaveXLSX(path, sampleBatch(t).Dataset.Records()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(SheetName, "D3")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", value)
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteXLSX(&buf, nil), ErrNothingToExport)
	assert.Zero(t, buf.Len())
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"0", int64(0)},
		{"007", "007"},
		{"V01", "V01"},
		{"12.5", "12.5"},
		{"+5", "+5"},
		{"-5", "-5"},
		{"1 2", "1 2"},
		{"99999999999999999999", "99999999999999999999"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cellValue(tt.input), "cellValue(%q)", tt.input)
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleBatch(t), false)
	require.NoError(t, err)

	var view BatchView
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, "batch-1", view.ID)
	assert.True(t, view.ExportEnabled)
	require.Len(t, view.Records, 2)
	assert.Equal(t, 2, view.Records[1].SequenceNumber)
	assert.Equal(t, models.StateFailed, view.Files[1].State)
	assert.Contains(t, string(data), `"sl_no":1`)

	pretty, err := ToJSON(sampleBatch(t), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")
}

func TestToJSONEmptyBatch(t *testing.T) {
	data, err := ToJSON(&models.Batch{ID: "empty", Dataset: models.NewDataset()}, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"records":[]`)
	assert.Contains(t, string(data), `"export_enabled":false`)
}

func TestWriteStatusAndTable(t *testing.T) {
	batch := sampleBatch(t)

	var buf bytes.Buffer
	require.NoError(t, WriteStatus(&buf, batch))
	status := buf.String()
	assert.Contains(t, status, "2 Files")
	assert.Contains(t, status, "Success (2 records)")
	assert.Contains(t, status, "Failed")

	buf.Reset()
	require.NoError(t, WriteTable(&buf, batch))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "SL.NO."))
	assert.Contains(t, lines[1], "Asha")
	assert.True(t, strings.HasSuffix(lines[1], "8.5"))
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, &models.Batch{Dataset: models.NewDataset()}))
	assert.Zero(t, buf.Len())
}
