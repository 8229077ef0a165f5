package models

import "errors"

// ErrDatasetSealed is returned when appending to a sealed dataset.
var ErrDatasetSealed = errors.New("dataset is sealed")

// Dataset is the append-only ordered record set of one batch.
// Sequence numbers always form the run 1..Len().
type Dataset struct {
	records []AttendanceRecord
	sealed  bool
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

// Append adds records in order, re-stamping their sequence numbers
// to continue the dataset's run.
func (d *Dataset) Append(records ...AttendanceRecord) error {
	if d.sealed {
		return ErrDatasetSealed
	}
	base := len(d.records)
	for i, rec := range records {
		rec.SequenceNumber = base + i + 1
		d.records = append(d.records, rec)
	}
	return nil
}

// Seal freezes the dataset.
func (d *Dataset) Seal() {
	d.sealed = true
}

// Sealed reports whether the dataset has been sealed.
func (d *Dataset) Sealed() bool {
	return d.sealed
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the records.
func (d *Dataset) Records() []AttendanceRecord {
	out := make([]AttendanceRecord, len(d.records))
	copy(out, d.records)
	return out
}
