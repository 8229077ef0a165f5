package workhours

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/workhours-go/pkg/workhours/models"
)

// Input is one file selected for a batch.
type Input struct {
	// Name is the display name of the file.
	Name string
	// Data is the raw workbook content.
	Data []byte
	// Err is set when the file could not be read.
	Err error
}

// LoadInputs reads the files at paths in order. A file that cannot be read
// is kept with Err set so the batch can report it as failed.
func LoadInputs(paths []string) []Input {
	inputs := make([]Input, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		inputs = append(inputs, Input{Name: filepath.Base(p), Data: data, Err: err})
	}
	return inputs
}

// Aggregator processes batches of files into a single dataset.
type Aggregator struct {
	opts      Options
	extractor *Extractor
}

// NewAggregator creates an Aggregator.
func NewAggregator(opts Options) *Aggregator {
	return &Aggregator{
		opts:      opts,
		extractor: NewExtractor(opts),
	}
}

// Run processes inputs sequentially, in order, into a new sealed batch.
// A failing file is marked failed and skipped; it never aborts the batch.
func (a *Aggregator) Run(inputs []Input) *models.Batch {
	batch := &models.Batch{
		ID:      uuid.NewString(),
		Files:   make([]models.FileStatus, len(inputs)),
		Dataset: models.NewDataset(),
	}
	logger := a.opts.Logger.With().Str("batch", batch.ID).Logger()

	for i, in := range inputs {
		batch.Files[i] = models.FileStatus{Name: in.Name, State: models.StatePending}
		a.notify(batch.Files[i])
	}
	logger.Info().
		Int("files", len(inputs)).
		Int("shifts", a.opts.Shifts.Len()).
		Msg("Batch started")

	for i, in := range inputs {
		status := &batch.Files[i]

		n, err := a.processFile(batch.Dataset, in)
		if err != nil {
			logger.Error().Err(err).Str("file", in.Name).Msg("File failed")
			status.State = models.StateFailed
			status.Err = err
			status.Message = err.Error()
		} else {
			logger.Info().Str("file", in.Name).Int("records", n).Msg("File processed")
			status.State = models.StateSuccess
			status.Records = n
		}
		a.notify(*status)
	}

	batch.Dataset.Seal()
	logger.Info().
		Int("succeeded", batch.Succeeded()).
		Int("failed", len(inputs)-batch.Succeeded()).
		Int("records", batch.Dataset.Len()).
		Msg("Batch finished")
	return batch
}

func (a *Aggregator) processFile(ds *models.Dataset, in Input) (int, error) {
	if in.Err != nil {
		return 0, NewFileError(in.Name, StageRead, in.Err)
	}

	records, err := a.extractor.Extract(in.Name, in.Data)
	if err != nil {
		return 0, err
	}
	if err := ds.Append(records...); err != nil {
		return 0, NewFileError(in.Name, StageAppend, err)
	}
	return len(records), nil
}

func (a *Aggregator) notify(s models.FileStatus) {
	if a.opts.OnStatus != nil {
		a.opts.OnStatus(s)
	}
}
