package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/refdex/refdex/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  refdex config                          # Show all config
  refdex config notes-dir                # Get specific value
  refdex config notes-dir ~/org/refs     # Set value
  refdex config bibliography a.bib,b.bib # Set bibliography files

Keys:
  bibliography      Comma-separated BibTeX files to load
  notes-dir         Directory holding <key>.org note files
  docs-dir          Directory holding <key>.<ext> documents
  opener            Command used to open documents
  log-file          Append-only log for opener output
  editor            Editor for note files
  search-field      Field used to build selection labels
  annotation-field  Field shown beside each label`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	// No args: show all config
	if len(args) == 0 {
		fmt.Printf("bibliography:     %s\n", strings.Join(cfg.Bibliography, ", "))
		fmt.Printf("notes-dir:        %s\n", cfg.NotesDir)
		fmt.Printf("docs-dir:         %s\n", cfg.DocsDir)
		fmt.Printf("opener:           %s\n", cfg.Opener)
		fmt.Printf("log-file:         %s\n", cfg.LogFile)
		fmt.Printf("editor:           %s\n", cfg.Editor)
		fmt.Printf("search-field:     %s\n", cfg.SearchField)
		fmt.Printf("annotation-field: %s\n", cfg.AnnotationField)
		return nil
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		value, err := getConfigValue(cfg, key)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}

	// Two args: set value
	if err := setConfigValue(cfg, key, args[1]); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, args[1])
	return nil
}

func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "bibliography":
		return strings.Join(cfg.Bibliography, ","), nil
	case "notes-dir":
		return cfg.NotesDir, nil
	case "docs-dir":
		return cfg.DocsDir, nil
	case "opener":
		return cfg.Opener, nil
	case "log-file":
		return cfg.LogFile, nil
	case "editor":
		return cfg.Editor, nil
	case "search-field":
		return cfg.SearchField, nil
	case "annotation-field":
		return cfg.AnnotationField, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "bibliography":
		paths := strings.Split(value, ",")
		for i, p := range paths {
			paths[i] = config.ExpandTilde(strings.TrimSpace(p))
		}
		cfg.Bibliography = paths
	case "notes-dir":
		cfg.NotesDir = config.ExpandTilde(value)
	case "docs-dir":
		cfg.DocsDir = config.ExpandTilde(value)
	case "opener":
		cfg.Opener = value
	case "log-file":
		cfg.LogFile = config.ExpandTilde(value)
	case "editor":
		cfg.Editor = value
	case "search-field":
		cfg.SearchField = value
	case "annotation-field":
		cfg.AnnotationField = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
