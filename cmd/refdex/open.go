package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/refdex/refdex/internal/action"
	"github.com/refdex/refdex/internal/document"
)

var (
	openSearch     string
	openAnnotation string
	openKey        string
)

func init() {
	openCmd.Flags().StringVar(&openSearch, "search", "", "Field used to build the selection labels")
	openCmd.Flags().StringVar(&openAnnotation, "annotation", "", "Field shown beside each label")
	openCmd.Flags().StringVar(&openKey, "key", "", "Skip the chooser and use this citation key")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open [flags]",
	Short: "Open the document for a bibliography entry",
	Long: `Open the document for a bibliography entry.

Pick an entry, then probe <docs_dir>/<key>.{pdf,epub,doc,docx} in that
order and launch the configured viewer on the first match. The viewer runs
detached; its output goes to the configured log file.`,
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	p := action.New(cfg)

	err := p.Open(pickerOptions(openSearch, openAnnotation, openKey))
	var nf *document.NotFoundError
	if errors.As(err, &nf) {
		exitWithError(ExitNotFound, "%s", nf)
	}
	return err
}
