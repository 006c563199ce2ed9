// Package cli provides the command-line interface for shoptrans, including
// flag definitions, viper configuration loading and API key lookup.
package cli
