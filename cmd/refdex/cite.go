package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/refdex/refdex/internal/action"
	"github.com/refdex/refdex/internal/clipboard"
)

var (
	citeSearch     string
	citeAnnotation string
	citeKey        string
	citeMode       string
	citeFor        string
	citeCopy       bool
)

func init() {
	citeCmd.Flags().StringVar(&citeSearch, "search", "", "Field used to build the selection labels")
	citeCmd.Flags().StringVar(&citeAnnotation, "annotation", "", "Field shown beside each label")
	citeCmd.Flags().StringVar(&citeKey, "key", "", "Skip the chooser and use this citation key")
	citeCmd.Flags().StringVar(&citeMode, "mode", "", "Citation markup: latex, org, or empty for the bare key")
	citeCmd.Flags().StringVar(&citeFor, "for", "", "Infer the markup mode from this file's extension")
	citeCmd.Flags().BoolVar(&citeCopy, "copy", false, "Also copy the citation to the clipboard")
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite [flags]",
	Short: "Insert a formatted citation for a bibliography entry",
	Long: `Insert a formatted citation for a bibliography entry.

Pick an entry and print its citation to stdout, formatted for the target
document context: \cite{key} for LaTeX, [cite:@key] for org, or the bare
key when no mode applies.

Examples:
  refdex cite --mode latex
  refdex cite --for draft.org
  refdex cite --key doe2020 --copy`,
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	mode, err := citationMode()
	if err != nil {
		return err
	}

	var out strings.Builder
	p := action.New(cfg)
	picked, err := p.Cite(&out, mode, pickerOptions(citeSearch, citeAnnotation, citeKey))
	if err != nil {
		return err
	}
	if !picked {
		return nil
	}

	fmt.Fprintln(os.Stdout, out.String())

	if citeCopy {
		if err := clipboard.Copy(out.String()); err != nil {
			return fmt.Errorf("copying citation: %w", err)
		}
	}
	return nil
}

// citationMode resolves --mode and --for into a citation mode. --mode wins
// when both are given.
func citationMode() (action.Mode, error) {
	if citeMode != "" {
		switch action.Mode(citeMode) {
		case action.ModeLaTeX, action.ModeOrg:
			return action.Mode(citeMode), nil
		default:
			return action.ModeNone, fmt.Errorf("unknown mode %q (latex, org)", citeMode)
		}
	}
	if citeFor != "" {
		return action.ModeForFile(citeFor), nil
	}
	return action.ModeNone, nil
}
