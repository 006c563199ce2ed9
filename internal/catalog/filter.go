package catalog

import "unicode/utf8"

// Qualifies reports whether a record's DefaultContent should be translated:
// non-empty and at most maxRowLength characters. Length is counted in
// characters, not bytes, so multi-byte content is capped consistently.
func Qualifies(r Record, maxRowLength int) bool {
	n := utf8.RuneCountInString(r.DefaultContent)
	return 0 < n && n <= maxRowLength
}

// Stats summarizes a table's translation workload.
type Stats struct {
	TotalRows      int // all rows, header included
	Qualifying     int // data rows eligible for translation
	CharacterCount int // total characters across qualifying rows
	OverCap        int // rows whose DefaultContent exceeds maxRowLength
}

// Summarize computes workload statistics for rows under the given cap.
// The header (index 0) never qualifies but is counted in TotalRows and,
// like every row, in OverCap.
func Summarize(rows []Record, maxRowLength int) Stats {
	stats := Stats{TotalRows: len(rows)}
	for i, row := range rows {
		if utf8.RuneCountInString(row.DefaultContent) > maxRowLength {
			stats.OverCap++
		}
		if i == 0 {
			continue
		}
		if Qualifies(row, maxRowLength) {
			stats.Qualifying++
			stats.CharacterCount += utf8.RuneCountInString(row.DefaultContent)
		}
	}
	return stats
}
