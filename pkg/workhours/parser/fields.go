package parser

import "strings"

// Field is a canonical attendance column.
type Field string

const (
	FieldSafetyPassNo Field = "safety_pass_no"
	FieldEmployeeName Field = "employee_name"
	FieldVendorCode   Field = "vendor_code"
	FieldShift        Field = "shift"
	FieldInTime       Field = "in_time"
	FieldOutTime      Field = "out_time"
	FieldLunch        Field = "lunch"
)

// Fields lists every canonical field.
var Fields = []Field{
	FieldSafetyPassNo,
	FieldEmployeeName,
	FieldVendorCode,
	FieldShift,
	FieldInTime,
	FieldOutTime,
	FieldLunch,
}

// FieldMap maps a canonical field to the header labels accepted for it,
// in order of preference.
type FieldMap map[Field][]string

// DefaultFieldMap returns the labels used by attendance exports.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		FieldSafetyPassNo: {"Safety Pass No"},
		FieldEmployeeName: {"Employee Name"},
		FieldVendorCode:   {"Vendor Code"},
		FieldShift:        {"Shift"},
		FieldInTime:       {"In Time", "In-Time"},
		FieldOutTime:      {"Out Time", "Out-Time"},
		FieldLunch:        {"Lunch"},
	}
}

// ColumnIndex holds, per field, the column positions of its accepted labels.
type ColumnIndex map[Field][]int

// Resolve matches header labels against the map. Labels are compared exactly
// after trimming; when a label repeats, the leftmost column is used.
func (fm FieldMap) Resolve(header []string) ColumnIndex {
	positions := make(map[string]int, len(header))
	for col, label := range header {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, seen := positions[label]; !seen {
			positions[label] = col
		}
	}

	idx := make(ColumnIndex, len(fm))
	for field, labels := range fm {
		for _, label := range labels {
			if col, ok := positions[label]; ok {
				idx[field] = append(idx[field], col)
			}
		}
	}
	return idx
}

// Has reports whether any column was found for the field.
func (ci ColumnIndex) Has(f Field) bool {
	return len(ci[f]) > 0
}

// Value returns the first non-empty cell among the field's columns.
func (ci ColumnIndex) Value(row []string, f Field) string {
	for _, col := range ci[f] {
		if col < len(row) && row[col] != "" {
			return row[col]
		}
	}
	return ""
}
