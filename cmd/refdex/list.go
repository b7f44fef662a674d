package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refdex/refdex/internal/bibtex"
	"github.com/refdex/refdex/internal/index"
)

var (
	listSearch string
	listJSON   bool
)

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Field used to build the labels")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output entries as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "List all bibliography entries",
	Long: `List all bibliography entries.

Prints the display index the chooser would present, or the underlying
entries as JSON.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	store, err := bibtex.Parse(cfg.Bibliography, cfg.Fields)
	if err != nil {
		return fmt.Errorf("loading bibliography: %w", err)
	}

	if listJSON {
		entries := make([]ListEntry, 0, len(store))
		for _, key := range store.Keys() {
			e := store[key]
			entries = append(entries, ListEntry{
				Key:    e.Key,
				Type:   e.Type,
				Title:  e.Title,
				Author: e.Author,
			})
		}
		return outputJSON(entries)
	}

	searchField := cfg.SearchField
	if listSearch != "" {
		searchField = listSearch
	}

	idx := index.Build(store, searchField)
	for _, label := range idx.Labels() {
		fmt.Println(label)
	}
	return nil
}
