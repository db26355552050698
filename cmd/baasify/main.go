// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the baasify CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/baasify/internal/gemini"
	"github.com/pdiddy/baasify/internal/secrets"
	"github.com/pdiddy/baasify/internal/vault"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the baasify CLI.
var rootCmd = &cobra.Command{
	Use:   "baasify",
	Short: "Biomimicry-as-a-service R&D asset generation",
	Long: `baasify turns a free-text industrial problem statement into a structured,
scored R&D asset grounded in biological mechanisms. The generation pipeline,
the suggestion helper, and the environmental audit all delegate synthesis to
a generative model and repair its output into well-formed records.

Each operation is a subcommand: solve, suggest, brief, audit, and vault.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./baasify.yaml or ~/.config/baasify/config.yaml)")
	rootCmd.PersistentFlags().String("model", "", "generative model identifier")
	rootCmd.PersistentFlags().String("vault-file", "vault.yaml", "path to the asset vault file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("baasify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "baasify"))
		}
	}

	viper.SetEnvPrefix("BAASIFY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("ai.model", gemini.DefaultModel)
	viper.SetDefault("ai.max_retries", 3)
	viper.SetDefault("pipeline.queue_delay", 4*time.Second)
	viper.SetDefault("pipeline.stage_delay", 2*time.Second)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newBackend builds the Gemini client from flags, config, and secrets.
// Precedence: --model flag, then config/env, then the built-in default;
// the API key comes from config/env or .secrets/gemini-api-key.
func newBackend(cmd *cobra.Command) (*gemini.Client, error) {
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("ai.model")
	}
	apiKey := secretDefault("gemini-api-key", viper.GetString("ai.api_key"))
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: set ai.api_key, BAASIFY_AI_API_KEY, or .secrets/gemini-api-key")
	}
	return &gemini.Client{
		APIKey:     apiKey,
		Model:      model,
		MaxRetries: viper.GetInt("ai.max_retries"),
	}, nil
}

// openVault loads the vault file named by --vault-file, or returns an
// empty vault if the file does not exist yet.
func openVault(cmd *cobra.Command) (*vault.Vault, string, error) {
	path, _ := cmd.Flags().GetString("vault-file")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return vault.New(), path, nil
	}
	v, err := vault.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return v, path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
