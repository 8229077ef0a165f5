package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMapResolve(t *testing.T) {
	header := []string{"SL", " Employee Name ", "In-Time", "In Time", "Employee Name", "Out-Time"}
	idx := DefaultFieldMap().Resolve(header)

	assert.Equal(t, []int{1}, idx[FieldEmployeeName], "leftmost duplicate wins")
	assert.Equal(t, []int{3, 2}, idx[FieldInTime], "labels keep their preference order")
	assert.Equal(t, []int{5}, idx[FieldOutTime])
	assert.False(t, idx.Has(FieldLunch))
	assert.False(t, idx.Has(FieldSafetyPassNo))
}

func TestColumnIndexValue(t *testing.T) {
	idx := DefaultFieldMap().Resolve([]string{"Employee Name", "In-Time", "In Time", "Lunch"})

	tests := []struct {
		name     string
		row      []string
		field    Field
		expected string
	}{
		{"preferred label", []string{"Asha", "08:00", "09:00"}, FieldInTime, "09:00"},
		{"alternate label", []string{"Asha", "08:00", ""}, FieldInTime, "08:00"},
		{"short row", []string{"Asha"}, FieldInTime, ""},
		{"missing column", []string{"Asha", "", "", "30m"}, FieldVendorCode, ""},
		{"raw value", []string{" Asha "}, FieldEmployeeName, " Asha "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, idx.Value(tt.row, tt.field))
		})
	}
}
