package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/skills"
)

var taxonomyPath string

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the skill taxonomy used for gap analysis",
	Long: `Prints the skill taxonomy, one skill per line. By default this is the
built-in taxonomy; pass --taxonomy to inspect a custom taxonomy file the way
the analyzer will load it (normalized, lowercased, deduplicated).`,
	RunE: runTaxonomy,
}

func init() {
	taxonomyCmd.Flags().StringVarP(&taxonomyPath, "taxonomy", "t", "", "Path to custom skill taxonomy file (one skill per line)")
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(_ *cobra.Command, _ []string) error {
	taxonomy := skills.DefaultTaxonomy()
	if taxonomyPath != "" {
		var err error
		taxonomy, err = skills.LoadTaxonomyFile(taxonomyPath)
		if err != nil {
			return err
		}
	}

	for _, skill := range taxonomy {
		fmt.Fprintln(os.Stdout, skill)
	}
	return nil
}
