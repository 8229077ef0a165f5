// Package models defines data structures for attendance extraction.
package models

import "strings"

// Grid is the decoded cell content of one sheet.
// Rows are 0-indexed and may be ragged; missing cells read as "".
type Grid [][]string

// Cell returns the value at row, col (both 0-based), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// RowText joins the cells of a row with sep.
func (g Grid) RowText(row int, sep string) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	return strings.Join(g[row], sep)
}

// Len returns the number of rows.
func (g Grid) Len() int {
	return len(g)
}
