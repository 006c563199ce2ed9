package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/shoptrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shoptrans",
		Short: "Shopify CSV product file translator",
		Long: `shoptrans translates Shopify's CSV product export file to multiple
languages by calling a remote translation API per row. The target language
of each row is taken from the row's own locale column.

Examples:
  shoptrans --in-file products.csv --source-language en --out-file out.csv
  shoptrans --in-file products.csv --source-language de --out-file out.csv --max-row-length 500`,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.shoptrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InFile, "in-file", "i", "", "Shopify's CSV file path")
	cmd.Flags().StringVarP(&flags.OutFile, "out-file", "o", "", "Output file path (.csv)")
	cmd.Flags().StringVarP(&flags.SourceLanguage, "source-language", "s", "", "Source language to translate from (2 letters)")
	cmd.Flags().IntVar(&flags.MaxRowLength, "max-row-length", flags.MaxRowLength,
		"Skip rows longer than this number of characters, to reduce characters processed by the API")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: deepl, openai or gemini")
	cmd.Flags().StringVar(&flags.APIURL, "api-url", "", "Override the DeepL API endpoint URL")

	cmd.MarkFlagRequired("in-file")
	cmd.MarkFlagRequired("out-file")
	cmd.MarkFlagRequired("source-language")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	bindings := map[string]string{
		"translate.max_row_length": "max-row-length",
		"translate.provider":       "provider",
		"translate.api_url":        "api-url",
	}
	for key, name := range bindings {
		var flag *pflag.Flag
		if flag = cmd.Flags().Lookup(name); flag == nil {
			continue
		}
		viper.BindPFlag(key, flag)
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".shoptrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shoptrans")
	}

	// Environment variables
	viper.SetEnvPrefix("SHOPTRANS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetDeepLKey retrieves the DeepL API key from environment or config
func GetDeepLKey() string {
	// First check environment variable
	if key := os.Getenv("DEEPL_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.deepl_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.gemini_key")
}
