package models

// FileState is the processing state of one input file.
type FileState string

const (
	// StatePending means the file has not been processed yet.
	StatePending FileState = "pending"
	// StateSuccess means the file's records were added to the dataset.
	StateSuccess FileState = "success"
	// StateFailed means the file was skipped after an error.
	StateFailed FileState = "failed"
)

// FileStatus reports the outcome for one input file.
type FileStatus struct {
	// Name is the file's display name.
	Name string `json:"name"`
	// State is pending, success, or failed.
	State FileState `json:"state"`
	// Records is the number of records contributed by the file.
	Records int `json:"records"`
	// Err holds the failure cause when State is failed.
	Err error `json:"-"`
	// Message is Err rendered as text.
	Message string `json:"message,omitempty"`
}

// Batch is the result of processing one set of files together.
type Batch struct {
	// ID identifies the batch in logs.
	ID string `json:"id"`
	// Files lists per-file status in selection order.
	Files []FileStatus `json:"files"`
	// Dataset holds the aggregated records.
	Dataset *Dataset `json:"-"`
}

// ExportEnabled reports whether there is anything to export.
func (b *Batch) ExportEnabled() bool {
	return b.Dataset != nil && b.Dataset.Len() > 0
}

// Succeeded returns the number of files processed successfully.
func (b *Batch) Succeeded() int {
	n := 0
	for _, f := range b.Files {
		if f.State == StateSuccess {
			n++
		}
	}
	return n
}
