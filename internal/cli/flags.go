package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	InFile         string
	OutFile        string
	SourceLanguage string
	MaxRowLength   int

	// Provider flags
	Provider string
	APIURL   string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		// Rows longer than this are skipped to bound the characters sent
		// to the translation API (DeepL's free plan is 0.5M chars/month).
		MaxRowLength: 1000,
		Provider:     "deepl",
	}
}
