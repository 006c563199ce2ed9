package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/shoptrans/internal/catalog"
	"codeberg.org/snonux/shoptrans/internal/translate"
)

// ErrNothingToTranslate signals a clean early exit: no row in the input
// qualifies for translation, so no network call is made and no output file
// is written.
var ErrNothingToTranslate = errors.New("nothing to translate")

// Config holds everything a run needs, decoupled from flag parsing.
type Config struct {
	InputPath      string
	OutputPath     string
	SourceLanguage string // two-letter code, upper-cased before use
	MaxRowLength   int    // rows with longer DefaultContent are skipped
}

// Pipeline translates a product export file row by row.
type Pipeline struct {
	cfg      Config
	provider translate.Provider
}

// New creates a pipeline for the given configuration and provider.
func New(cfg Config, provider translate.Provider) *Pipeline {
	return &Pipeline{cfg: cfg, provider: provider}
}

// Run executes one full read, translate, write cycle. Any failed row aborts
// the run before the output file is written; there is no partial output.
func (p *Pipeline) Run(ctx context.Context) error {
	rows, err := catalog.ReadFile(p.cfg.InputPath)
	if err != nil {
		return err
	}

	stats := catalog.Summarize(rows, p.cfg.MaxRowLength)
	fmt.Printf("Max row length is %d\n", p.cfg.MaxRowLength)
	fmt.Printf("%d qualifying rows / %d total rows\n", stats.Qualifying, stats.TotalRows)
	fmt.Printf("%d characters to be translated\n", stats.CharacterCount)
	fmt.Printf("%d rows with >%d chars\n", stats.OverCap, p.cfg.MaxRowLength)

	if stats.CharacterCount == 0 {
		return ErrNothingToTranslate
	}

	sourceLang := strings.ToUpper(p.cfg.SourceLanguage)

	translated := 0
	for i := range rows {
		if i == 0 {
			// Header row is never translated
			continue
		}
		if !catalog.Qualifies(rows[i], p.cfg.MaxRowLength) {
			continue
		}

		fmt.Printf("Translating %d/%d...\n", translated+1, stats.Qualifying)
		targetLang := strings.ToUpper(rows[i].Locale)
		translation, err := p.provider.Translate(ctx, rows[i].DefaultContent, sourceLang, targetLang)
		if err != nil {
			return fmt.Errorf("failed to translate row %d: %w", i+1, err)
		}
		rows[i].TranslatedContent = translation
		translated++
	}

	written, err := catalog.WriteFile(rows, p.cfg.OutputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d rows to %s\n", written, p.cfg.OutputPath)

	return nil
}
