// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose [topic]",
	Short: "Split a topic into diverse academic sub-queries",
	Long: `Decompose asks the LLM to split a research topic into 3-4 short,
diverse academic search queries plus a rationale. Without LLM credentials
the topic keywords are returned unchanged as a single query.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecompose,
}

func runDecompose(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	c, err := buildComponents(loadConfig(), log)
	if err != nil {
		return err
	}
	defer c.Close()

	topic := strings.Join(args, " ")
	keywords, _ := cmd.Flags().GetString("keywords")
	if keywords == "" {
		keywords = topic
	}

	decomp := c.decomposer.Decompose(context.Background(), topic, keywords)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(decomp)
	}

	fmt.Printf("Reasoning: %s\n\nSub-queries:\n", decomp.Reasoning)
	for i, q := range decomp.SubQueries {
		fmt.Printf("  %d. %s\n", i+1, q)
	}
	return nil
}

func init() {
	decomposeCmd.Flags().String("keywords", "", "base keywords for the fallback query (default: the topic)")
	decomposeCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(decomposeCmd)
}
