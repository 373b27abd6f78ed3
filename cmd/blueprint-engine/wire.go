// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/cowriter"
	"github.com/pdiddy/blueprint-engine/internal/decompose"
	"github.com/pdiddy/blueprint-engine/internal/fetcher"
	"github.com/pdiddy/blueprint-engine/internal/interview"
	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/internal/pipeline"
	"github.com/pdiddy/blueprint-engine/internal/research"
	"github.com/pdiddy/blueprint-engine/internal/scholar"
	"github.com/pdiddy/blueprint-engine/internal/store"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// loadConfig assembles the pipeline configuration from viper with
// secrets filling in credentials the config file leaves empty.
func loadConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Scholar: types.ScholarConfig{
			APIKey:            loadedSecrets.Get("semantic-scholar-api-key", viper.GetString("scholar.api_key")),
			MaxResults:        viper.GetInt("scholar.max_results"),
			RequestsPerSecond: viper.GetFloat64("scholar.requests_per_second"),
			TranscriptDir:     viper.GetString("scholar.transcript_dir"),
		},
		Reader: types.ReaderConfig{
			BaseURL:   viper.GetString("reader.base_url"),
			APIKey:    loadedSecrets.Get("reader-api-key", viper.GetString("reader.api_key")),
			MaxPapers: viper.GetInt("reader.max_papers"),
		},
		LLM: types.LLMConfig{
			BaseURL: viper.GetString("llm.base_url"),
			Model:   viper.GetString("llm.model"),
			APIKey:  loadedSecrets.Get("llm-api-key", viper.GetString("llm.api_key")),
		},
		Store: types.StoreConfig{
			Path: viper.GetString("store.path"),
		},
		Server: types.ServerConfig{
			Addr:        viper.GetString("server.addr"),
			FrontendURL: viper.GetString("server.frontend_url"),
		},
	}
}

// newLogger builds the process logger.
func newLogger() (*zap.Logger, error) {
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// components holds the fully wired pipeline stages.
type components struct {
	scholar     *scholar.Client
	fetcher     *fetcher.Fetcher
	decomposer  *decompose.Decomposer
	extractor   *research.Extractor
	narrator    *cowriter.Narrator
	editor      *cowriter.Editor
	runner      *pipeline.Runner
	interviewer *interview.Interviewer
	store       *store.Store
}

// buildComponents constructs every stage from the configuration. A
// missing LLM key leaves the LLM-backed stages keyless: the decomposer
// degrades to its base-keywords fallback, the others report
// ErrMissingCredentials when invoked.
func buildComponents(cfg types.PipelineConfig, log *zap.Logger) (*components, error) {
	sc := scholar.NewClient(cfg.Scholar, log)
	ft := fetcher.New(cfg.Reader, log)

	client, err := llm.New(cfg.LLM, log)
	if err != nil {
		if !errors.Is(err, llm.ErrMissingCredentials) {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, "warning: no LLM credentials; generation stages are disabled")
		client = nil
	}

	c := &components{scholar: sc, fetcher: ft}
	if client != nil {
		c.decomposer = decompose.New(client, log)
		c.extractor = research.NewExtractor(client, log)
		c.narrator = cowriter.NewNarrator(client, log)
		c.editor = cowriter.NewEditor(client, log)
		c.interviewer = interview.New(client, log)
	} else {
		c.decomposer = decompose.New(nil, log)
		c.extractor = research.NewExtractor(nil, log)
		c.narrator = cowriter.NewNarrator(nil, log)
		c.editor = cowriter.NewEditor(nil, log)
		c.interviewer = interview.New(nil, log)
	}
	c.runner = pipeline.NewRunner(c.decomposer, sc, ft, c.extractor, c.narrator, c.editor, log)

	if cfg.Store.Path != "" {
		st, err := store.Open(cfg.Store)
		if err != nil {
			return nil, err
		}
		c.store = st
	}
	return c, nil
}

// Close releases held resources.
func (c *components) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
