package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteFile serializes all records (header first) to path in the original
// row order, overwriting any existing file. It returns the number of rows
// written.
func WriteFile(rows []Record, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write(row.Fields()); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush output file: %w", err)
	}

	return len(rows), nil
}
