package parser

import "strings"

// GeneralShift is the code for general duty with no fixed shift.
const GeneralShift = "G"

// Shift is the display start and end of a shift.
type Shift struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// ShiftCatalog maps shift codes to their start and end times.
// It is immutable once built.
type ShiftCatalog struct {
	shifts map[string]Shift
}

// DefaultShiftCatalog returns the standard three-shift rota.
func DefaultShiftCatalog() ShiftCatalog {
	return NewShiftCatalog(map[string]Shift{
		"A": {Start: "06:00", End: "14:00"},
		"B": {Start: "14:00", End: "22:00"},
		"C": {Start: "22:00", End: "06:00"},
	})
}

// NewShiftCatalog builds a catalog from a copy of shifts.
// An entry for the general shift code is ignored.
func NewShiftCatalog(shifts map[string]Shift) ShiftCatalog {
	m := make(map[string]Shift, len(shifts))
	for code, s := range shifts {
		code = strings.TrimSpace(code)
		if code == "" || code == GeneralShift {
			continue
		}
		m[code] = s
	}
	return ShiftCatalog{shifts: m}
}

// NormalizeCode trims the code and maps the general shift to "".
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == GeneralShift {
		return ""
	}
	return code
}

// Lookup returns the shift for code. Empty, general, and unknown codes
// return an empty Shift.
func (c ShiftCatalog) Lookup(code string) Shift {
	code = NormalizeCode(code)
	if code == "" {
		return Shift{}
	}
	return c.shifts[code]
}

// Len returns the number of known shift codes.
func (c ShiftCatalog) Len() int {
	return len(c.shifts)
}
