// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-engine/internal/research"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords]",
	Short: "Search the academic API for papers",
	Long: `Search queries the academic search API for papers matching the given
keywords. With --fallback, a query returning fewer than three papers is
broadened to its first three tokens and re-run, and the merged result is
returned.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	keywords := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")
	useFallback, _ := cmd.Flags().GetBool("fallback")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := context.Background()

	var papers []types.Paper
	if useFallback {
		result, err := research.SearchWithFallback(ctx, c.scholar, keywords, limit, log)
		if err != nil {
			return err
		}
		papers = result.Papers
		if result.UsedFallback {
			fmt.Fprintf(os.Stderr, "broadened query to %q\n", result.EffectiveKeywords)
		}
	} else {
		papers, err = c.scholar.Search(ctx, keywords, limit)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	if len(papers) == 0 {
		fmt.Println("No papers found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-60s  %-6s  %-9s  %s\n",
		"Rank", "Title", "Year", "Citations", "Authors")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for i, p := range papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		year := "-"
		if p.Year > 0 {
			year = fmt.Sprintf("%d", p.Year)
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-60s  %-6s  %-9d  %s\n",
			i+1, title, year, p.CitationCount, research.FormatAuthors(p.Authors))
	}
	return nil
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum number of results (default 15)")
	searchCmd.Flags().Bool("fallback", false, "broaden the query when results are sparse")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
