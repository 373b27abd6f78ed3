// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blueprint-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blueprint-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the blueprint-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "blueprint-engine",
	Short: "Turn a research topic into a cited video-script blueprint",
	Long: `blueprint-engine chains an LLM, an academic search API, and a content
reader into a research pipeline: a topic is decomposed into sub-queries,
papers are searched and enriched, insights are extracted, and a two-stage
co-writer turns the findings into a cited four-section video script.

Run the pipeline directly with "run", explore individual stages with
"search" and "decompose", or start the HTTP API with "serve".`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blueprint-engine.yaml or ~/.config/blueprint-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blueprint-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blueprint-engine"))
		}
	}

	viper.SetEnvPrefix("BLUEPRINT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
