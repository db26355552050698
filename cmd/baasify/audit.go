package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/baasify/internal/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit <asset-id>",
	Short: "Generate an environmental passport for a vault asset",
	Long: `Audit runs an environmental lifecycle assessment for an asset and attaches
the resulting passport (SPP record) to it in the vault. A later audit of the
same asset replaces the passport wholesale.`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	v, path, err := openVault(cmd)
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
	passport, err := audit.Generate(cmd.Context(), backend, asset)
	if err != nil {
		return err
	}

	if err := v.AttachPassport(asset.ID, passport); err != nil {
		return err
	}
	if err := v.SaveFile(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Attached %s to %s\n", passport.ID, asset.ID)

	out, err := yaml.Marshal(passport)
	if err != nil {
		return fmt.Errorf("encoding passport: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
