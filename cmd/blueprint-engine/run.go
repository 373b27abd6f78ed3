// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-engine/internal/pipeline"
	"github.com/pdiddy/blueprint-engine/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run [topic]",
	Short: "Run the full research pipeline for a topic",
	Long: `Run executes the complete pipeline: the topic is decomposed into
sub-queries, papers are searched and deduplicated, content is fetched in
deep mode, insights are extracted, and the co-writer produces the final
cited video-script blueprint.

The blueprint is written as YAML to --out (default blueprint.yaml). With
--save and a configured store path, the result is also persisted as a
project.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
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
	deep, _ := cmd.Flags().GetBool("deep")
	maxPapers, _ := cmd.Flags().GetInt("max-papers")
	outPath, _ := cmd.Flags().GetString("out")

	result, err := c.runner.Run(context.Background(), pipeline.Request{
		Topic:     topic,
		Keywords:  keywords,
		DeepMode:  deep,
		MaxPapers: maxPapers,
	})
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding blueprint: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(os.Stderr, "papers: %d found, %d fetched, %d full-text\n",
		result.PapersFound, result.PapersFetched, result.FullTextCount)
	fmt.Fprintf(os.Stderr, "blueprint written to %s\n", outPath)

	if save, _ := cmd.Flags().GetBool("save"); save {
		if c.store == nil {
			return fmt.Errorf("--save requires store.path in the configuration")
		}
		id, err := c.store.SaveProject(context.Background(), store.SaveProjectRequest{
			UserID:     "cli",
			Title:      topic,
			QueryTopic: topic,
			Insights:   result.Blueprint.Insights,
			Narrative:  result.Blueprint.Narrative,
			Papers:     result.Papers,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved project %s\n", id)
	}
	return nil
}

func init() {
	runCmd.Flags().String("keywords", "", "base search keywords (default: the topic)")
	runCmd.Flags().Bool("deep", false, "fetch full paper content instead of abstracts")
	runCmd.Flags().Int("max-papers", 0, "papers to fetch content for in deep mode (default 8)")
	runCmd.Flags().String("out", "blueprint.yaml", "output file for the blueprint")
	runCmd.Flags().Bool("save", false, "persist the blueprint as a project")

	rootCmd.AddCommand(runCmd)
}
