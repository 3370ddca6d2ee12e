// dataset/types.go

package dataset

import (
	"errors"
	"fmt"
)

// Column headers of the volcano CSV.
const (
	ColName      = "Volcano Name"
	ColLatitude  = "Latitude"
	ColLongitude = "Longitude"
	ColType      = "Type"
	ColElevation = "Elevation (m)"
)

// UnknownName replaces a blank or absent volcano name.
const UnknownName = "Unknown"

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// Record is one volcano row. Records are immutable after load.
type Record struct {
	Name         string
	Latitude     float64
	Longitude    float64
	Type         string
	Elevation    float64
	HasElevation bool
}

// RowError describes a row that was skipped during load.
// Row is the 1-based data row number (the header is row 0).
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: column %q: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Report summarises a load.
type Report struct {
	Rows    int
	Skipped []*RowError
}

// Table is the loaded, read-only record set in file order.
type Table struct {
	records []Record
	types   []string
}

// NewTable builds a table from already parsed records, preserving their order.
func NewTable(records []Record) *Table {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Table{records: rs, types: distinctTypes(rs)}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns the i-th record in file order.
func (t *Table) At(i int) Record { return t.records[i] }

// Records returns the records in file order. The slice must not be modified.
func (t *Table) Records() []Record { return t.records }

// Types returns the distinct Type values in first-seen order.
func (t *Table) Types() []string {
	out := make([]string, len(t.types))
	copy(out, t.types)
	return out
}

func distinctTypes(records []Record) []string {
	seen := make(map[string]struct{}, 16)
	var types []string
	for _, r := range records {
		if _, ok := seen[r.Type]; ok {
			continue
		}
		seen[r.Type] = struct{}{}
		types = append(types, r.Type)
	}
	return types
}
