// Package main provides the refdex CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/refdex/refdex/internal/action"
	"github.com/refdex/refdex/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Pick up REFDEX_CONFIG / EDITOR from a .env file if one is present.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refdex",
	Short: "Bibliography lookup and dispatch",
	Long: `refdex looks up entries in your BibTeX databases and dispatches on the
one you pick: open or create its note, insert a formatted citation, or
open its document file.

The bibliography is reloaded on every invocation; nothing is cached.

Examples:
  refdex note
  refdex cite --mode org
  refdex open --key Ahn2026-rs
  refdex list --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// pickerOptions builds the call-scoped overrides shared by all actions.
func pickerOptions(searchField, annotationField, key string) action.Options {
	return action.Options{
		SearchField:     searchField,
		AnnotationField: annotationField,
		Key:             key,
	}
}
