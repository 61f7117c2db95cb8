package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Structural failures. Row-level problems never produce errors; they are
// handled by Normalize.
var (
	ErrEmptyInput   = errors.New("input contains no tabular data")
	ErrNoUsableRows = errors.New("no usable rows after cleaning")
)

// Load reads an Exportify-style CSV file into raw rows.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// Read parses CSV data into raw rows keyed by header name. Rows shorter
// than the header are padded with empty values; longer rows are truncated.
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing row %d: %w", len(rows)+2, err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// FromFile loads and normalizes a CSV in one step. It returns
// ErrNoUsableRows when cleaning leaves nothing to analyze.
func FromFile(path string) ([]Track, Report, error) {
	rows, err := Load(path)
	if err != nil {
		return nil, Report{}, err
	}

	tracks, report := Normalize(rows)
	if len(tracks) == 0 {
		return nil, report, fmt.Errorf("%s: %w", path, ErrNoUsableRows)
	}
	return tracks, report, nil
}
