package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/shoptrans/internal/cli"
	"codeberg.org/snonux/shoptrans/internal/pipeline"
	"codeberg.org/snonux/shoptrans/internal/translate"
)

func main() {
	// Load .env before anything reads the environment
	godotenv.Load()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	if len(flags.SourceLanguage) != 2 {
		return fmt.Errorf("source language must be a 2-letter code, got %q", flags.SourceLanguage)
	}
	if flags.MaxRowLength <= 0 {
		return fmt.Errorf("max row length must be positive, got %d", flags.MaxRowLength)
	}

	provider, err := createProvider(cmd, flags)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		InputPath:      flags.InFile,
		OutputPath:     flags.OutFile,
		SourceLanguage: strings.ToUpper(flags.SourceLanguage),
		MaxRowLength:   flags.MaxRowLength,
	}

	err = pipeline.New(cfg, translate.NewBreaker(provider)).Run(cmd.Context())
	if errors.Is(err, pipeline.ErrNothingToTranslate) {
		fmt.Fprintln(os.Stderr, "Nothing to translate, exiting...")
		return err
	}
	return err
}

func createProvider(cmd *cobra.Command, flags *cli.Flags) (translate.Provider, error) {
	switch flags.Provider {
	case "deepl":
		key := cli.GetDeepLKey()
		if key == "" {
			return nil, fmt.Errorf("DeepL API key is required (set DEEPL_API_KEY)")
		}
		return translate.NewDeepLClient(key, translate.WithAPIURL(flags.APIURL)), nil

	case "openai":
		key := cli.GetOpenAIKey()
		if key == "" {
			return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
		}
		return translate.NewOpenAIProvider(key), nil

	case "gemini":
		return translate.NewGeminiProvider(cmd.Context(), cli.GetGeminiKey())

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", flags.Provider)
	}
}
