package output

import (
	"encoding/json"

	"github.com/ukaji3/workhours-go/pkg/workhours/models"
)

// BatchView is the serialisable form of a batch.
type BatchView struct {
	ID            string                    `json:"id"`
	Files         []models.FileStatus       `json:"files"`
	Records       []models.AttendanceRecord `json:"records"`
	ExportEnabled bool                      `json:"export_enabled"`
}

// NewBatchView snapshots a batch.
func NewBatchView(b *models.Batch) BatchView {
	view := BatchView{
		ID:            b.ID,
		Files:         b.Files,
		Records:       []models.AttendanceRecord{},
		ExportEnabled: b.ExportEnabled(),
	}
	if b.Dataset != nil {
		view.Records = b.Dataset.Records()
	}
	return view
}

// ToJSON serializes a batch to JSON.
func ToJSON(b *models.Batch, pretty bool) ([]byte, error) {
	view := NewBatchView(b)
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
