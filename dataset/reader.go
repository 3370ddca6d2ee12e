// dataset/reader.go
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load opens path and reads the volcano table from it.
func Load(path string) (*Table, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	t, rep, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return t, rep, nil
}

// Read parses a header-delimited CSV into a Table.
// Rows with an unusable latitude or longitude are skipped and listed in the report.
func Read(r io.Reader) (*Table, *Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated; missing cells read as blank
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, nil, err
	}

	rep := &Report{}
	var records []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", row, err)
		}
		if isBlankRow(fields) {
			continue
		}
		rep.Rows++

		rec, rowErr := idx.record(row, fields)
		if rowErr != nil {
			rep.Skipped = append(rep.Skipped, rowErr)
			continue
		}
		records = append(records, rec)
	}

	return NewTable(records), rep, nil
}

type columnIndex struct {
	name, lat, lon, typ, elev int
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[normalizeHeader(h)] = i
	}
	lookup := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	idx := columnIndex{
		name: lookup(ColName),
		lat:  lookup(ColLatitude),
		lon:  lookup(ColLongitude),
		typ:  lookup(ColType),
		elev: lookup(ColElevation),
	}

	var missing []string
	for _, c := range []struct {
		name string
		i    int
	}{{ColLatitude, idx.lat}, {ColLongitude, idx.lon}, {ColType, idx.typ}} {
		if c.i < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func (idx columnIndex) record(row int, fields []string) (Record, *RowError) {
	cell := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	lat, err := parseCoord(cell(idx.lat), 90)
	if err != nil {
		return Record{}, &RowError{Row: row, Column: ColLatitude, Err: err}
	}
	lon, err := parseCoord(cell(idx.lon), 180)
	if err != nil {
		return Record{}, &RowError{Row: row, Column: ColLongitude, Err: err}
	}

	rec := Record{
		Name:      strings.TrimSpace(cell(idx.name)),
		Latitude:  lat,
		Longitude: lon,
		Type:      strings.TrimSpace(cell(idx.typ)),
	}
	if rec.Name == "" {
		rec.Name = UnknownName
	}
	if elev, err := parseFloat(cell(idx.elev)); err == nil {
		rec.Elevation = elev
		rec.HasElevation = true
	}
	return rec, nil
}

func isBlankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
