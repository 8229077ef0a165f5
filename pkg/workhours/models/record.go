package models

// AttendanceRecord is one normalized attendance row.
type AttendanceRecord struct {
	// SequenceNumber is the 1-based position in the aggregated dataset.
	SequenceNumber int `json:"sl_no"`
	// Date is the file's metadata date, DD-MM-YYYY when recognised.
	Date string `json:"date"`
	// SafetyPassNo is passed through from the source row.
	SafetyPassNo string `json:"safety_pass_no"`
	// EmployeeName is passed through from the source row (never blank).
	EmployeeName string `json:"employee_name"`
	// VendorCode is passed through from the source row.
	VendorCode string `json:"vendor_code"`
	// ShiftCode is the single-character shift, empty for general shift.
	ShiftCode string `json:"shift"`
	// ShiftStart is the catalog start time for ShiftCode.
	ShiftStart string `json:"shift_in"`
	// ShiftEnd is the catalog end time for ShiftCode.
	ShiftEnd string `json:"shift_out"`
	// InTime is HH:MM when parseable, otherwise the trimmed source value.
	InTime string `json:"in_time"`
	// OutTime is HH:MM when parseable, otherwise the trimmed source value.
	OutTime string `json:"out_time"`
	// Lunch is the trimmed source value or "NA".
	Lunch string `json:"lunch"`
	// WorkingHours is the elapsed time between InTime and OutTime in hours.
	WorkingHours float64 `json:"working_hours"`
}
