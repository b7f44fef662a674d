package main

import (
	"github.com/spf13/cobra"

	"github.com/refdex/refdex/internal/action"
)

var (
	noteSearch     string
	noteAnnotation string
	noteKey        string
)

func init() {
	noteCmd.Flags().StringVar(&noteSearch, "search", "", "Field used to build the selection labels")
	noteCmd.Flags().StringVar(&noteAnnotation, "annotation", "", "Field shown beside each label")
	noteCmd.Flags().StringVar(&noteKey, "key", "", "Skip the chooser and use this citation key")
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note [flags]",
	Short: "Open or create the note for a bibliography entry",
	Long: `Open or create the note for a bibliography entry.

Pick an entry, then open <notes_dir>/<key>.org in your editor. A missing
note is created with the entry's title and author as front matter; an
existing note is opened untouched.`,
	RunE: runNote,
}

func runNote(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	p := action.New(cfg)
	return p.Note(pickerOptions(noteSearch, noteAnnotation, noteKey))
}
