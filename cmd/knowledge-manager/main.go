// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the knowledge-manager CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/knowledge-manager/internal/knowledge"
	"github.com/pdiddy/knowledge-manager/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the knowledge-manager CLI.
var rootCmd = &cobra.Command{
	Use:   "knowledge-manager",
	Short: "Store, search, and report on research findings",
	Long: `knowledge-manager maintains a local knowledge base of research findings.
An external research agent produces structured result files; the CLI ingests
them as content-addressed documents, searches them by keyword relevance, and
assembles top-ranked matches into Markdown reports.

Each operation is a subcommand: ingest, search, report, history, and export.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./knowledge-manager.yaml or ~/.config/knowledge-manager/config.yaml)")
	rootCmd.PersistentFlags().String("output-dir", "", "research output directory (contains .knowledge/)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("knowledge-manager")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "knowledge-manager"))
		}
	}

	viper.SetEnvPrefix("KNOWLEDGE_MANAGER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openStore builds a Store from the output-dir flag, falling back to the
// output_dir config key, then to the store default.
func openStore(cmd *cobra.Command) (*knowledge.Store, error) {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	return knowledge.NewStore(types.StoreConfig{OutputDir: outputDir})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
