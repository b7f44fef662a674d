package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refdex/refdex/internal/action"
)

var (
	doiSearch     string
	doiAnnotation string
	doiKey        string
)

func init() {
	doiCmd.Flags().StringVar(&doiSearch, "search", "", "Field used to build the selection labels")
	doiCmd.Flags().StringVar(&doiAnnotation, "annotation", "", "Field shown beside each label")
	doiCmd.Flags().StringVar(&doiKey, "key", "", "Skip the chooser and use this citation key")
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi [flags]",
	Short: "Extract the DOI from an entry's document",
	Long: `Extract the DOI from an entry's document.

Pick an entry, resolve its PDF, and scan the first pages for a DOI.`,
	RunE: runDOI,
}

func runDOI(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	p := action.New(cfg)

	doi, picked, err := p.DOI(pickerOptions(doiSearch, doiAnnotation, doiKey))
	if err != nil || !picked {
		return err
	}
	if doi == "" {
		return fmt.Errorf("no DOI found in document")
	}

	fmt.Println(doi)
	return nil
}
