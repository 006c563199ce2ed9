package catalog

import (
	"strings"
	"testing"
)

func TestQualifies(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		maxRowLength int
		want         bool
	}{
		{"empty never qualifies", "", 1000, false},
		{"single char", "a", 1000, true},
		{"exactly at cap", strings.Repeat("a", 10), 10, true},
		{"one over cap", strings.Repeat("a", 11), 10, false},
		{"far over cap", strings.Repeat("a", 1000), 10, false},
		{"multi-byte counted as characters", strings.Repeat("ü", 10), 10, true},
		{"multi-byte over cap", strings.Repeat("ü", 11), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{DefaultContent: tt.content}
			if got := Qualifies(rec, tt.maxRowLength); got != tt.want {
				t.Errorf("Qualifies(%d chars, max %d) = %v, want %v",
					len([]rune(tt.content)), tt.maxRowLength, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	// Data row DefaultContent lengths: 0, 5, 10, 11, 1000. With a cap of 10
	// exactly two rows qualify (5 and 10) for a total of 15 characters.
	rows := []Record{
		{DefaultContent: "Default"}, // header
		{DefaultContent: ""},
		{DefaultContent: strings.Repeat("a", 5)},
		{DefaultContent: strings.Repeat("b", 10)},
		{DefaultContent: strings.Repeat("c", 11)},
		{DefaultContent: strings.Repeat("d", 1000)},
	}

	stats := Summarize(rows, 10)

	if stats.TotalRows != 6 {
		t.Errorf("TotalRows = %d, want 6", stats.TotalRows)
	}
	if stats.Qualifying != 2 {
		t.Errorf("Qualifying = %d, want 2", stats.Qualifying)
	}
	if stats.CharacterCount != 15 {
		t.Errorf("CharacterCount = %d, want 15", stats.CharacterCount)
	}
	if stats.OverCap != 2 {
		t.Errorf("OverCap = %d, want 2", stats.OverCap)
	}
}

func TestSummarize_HeaderNeverQualifies(t *testing.T) {
	// A header with translatable-looking content must not count
	rows := []Record{
		{DefaultContent: "hello"},
	}

	stats := Summarize(rows, 1000)

	if stats.Qualifying != 0 {
		t.Errorf("Qualifying = %d, want 0", stats.Qualifying)
	}
	if stats.CharacterCount != 0 {
		t.Errorf("CharacterCount = %d, want 0", stats.CharacterCount)
	}
}

func TestSummarize_EmptyTable(t *testing.T) {
	stats := Summarize(nil, 1000)

	if stats.TotalRows != 0 || stats.Qualifying != 0 || stats.CharacterCount != 0 || stats.OverCap != 0 {
		t.Errorf("Expected zero stats for empty table, got %+v", stats)
	}
}
