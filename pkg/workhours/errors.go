package workhours

import (
	"errors"
	"fmt"
)

// ErrDecode indicates the file bytes are not a readable workbook.
var ErrDecode = errors.New("cannot decode workbook")

// ErrHeaderNotFound indicates no row matched the header markers.
var ErrHeaderNotFound = errors.New("could not identify the header row")

// Processing stages reported in FileError.
const (
	StageRead   = "read"
	StageDecode = "decode"
	StageHeader = "header"
	StageAppend = "append"
)

// FileError represents a failure while processing one input file.
type FileError struct {
	File  string
	Stage string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("processing %q failed at %s: %v", e.File, e.Stage, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(file, stage string, err error) *FileError {
	return &FileError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
