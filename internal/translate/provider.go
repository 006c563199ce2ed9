package translate

import "context"

// Provider translates a single text from sourceLang to targetLang.
// Language codes are upper-cased two-letter codes (e.g. "EN", "DE").
type Provider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Name returns the name of the translation provider
	Name() string
}
