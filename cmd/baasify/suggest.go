package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/baasify/internal/advisor"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Draft a bottleneck statement for a sector",
	Long: `Suggest asks the model for one specific technical R&D bottleneck in the
given sector where nature could plausibly offer a solution. The sentence is
printed to stdout, ready to feed into 'solve --problem'.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().String("sector", "Textile", "industrial sector to draft a bottleneck for")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	sector, _ := cmd.Flags().GetString("sector")

	backend, err := newBackend(cmd)
	if err != nil {
		return err
	}
	suggestion, err := advisor.SuggestBottleneck(cmd.Context(), backend, sector)
	if err != nil {
		return err
	}
	fmt.Println(suggestion)
	return nil
}
