// Package parser provides attendance sheet parsing utilities.
package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ukaji3/workhours-go/pkg/workhours/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// DecodeGrid decodes workbook bytes and returns the cell grid of the first sheet
// together with that sheet's name.
func DecodeGrid(data []byte) (models.Grid, string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", ErrNoSheets
	}
	sheetName := sheets[0]

	grid, err := ExtractGrid(f, sheetName)
	if err != nil {
		return nil, sheetName, err
	}
	return grid, sheetName, nil
}

// ExtractGrid reads every row of a sheet as displayed text.
// Empty rows are kept so row indexes match the sheet.
func ExtractGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheetName, err)
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]string, len(row))
		copy(cells, row)
		grid[rowIdx] = cells
	}
	return grid, nil
}
