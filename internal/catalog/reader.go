package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// RowError indicates a row that does not have exactly FieldCount fields.
type RowError struct {
	Line   int // 1-based line number in the input file
	Fields int // number of fields found
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, FieldCount, e.Fields)
}

// ReadFile parses a product export CSV into an ordered slice of records,
// one per line, header included. All fields stay as text.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = FieldCount

	var rows []Record
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				return nil, &RowError{Line: parseErr.Line, Fields: len(fields)}
			}
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		rows = append(rows, NewRecord(fields))
	}

	return rows, nil
}
