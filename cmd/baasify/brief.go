package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/baasify/internal/advisor"
)

var briefCmd = &cobra.Command{
	Use:   "brief <asset-id>",
	Short: "Produce an executive narration for a vault asset",
	Long: `Brief generates a short spoken-style strategic synthesis of an asset for
an executive audience. Markdown decoration is scrubbed from the output so
the text can be fed directly to a speech engine.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrief,
}

func init() {
	rootCmd.AddCommand(briefCmd)
}

func runBrief(cmd *cobra.Command, args []string) error {
	v, _, err := openVault(cmd)
	if err != nil {
		return err
	}
	asset, err := v.Get(args[0])
	if err != nil {
		return err
	}

	backend, err := newBackend(cmd)
	if err != nil {
		return err
	}
	text, err := advisor.StrategicBrief(cmd.Context(), backend, asset)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
