// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve starts the HTTP API exposing search, decomposition, content
fetching, analysis, the full deep-research pipeline, the interview
conversation, and project persistence.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := loadConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	c, err := buildComponents(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	opts := server.Options{
		Config:      cfg.Server,
		Searcher:    c.scholar,
		Decomposer:  c.decomposer,
		Fetcher:     c.fetcher,
		Extractor:   c.extractor,
		Narrator:    c.narrator,
		Editor:      c.editor,
		Runner:      c.runner,
		Interviewer: c.interviewer,
		Log:         log,
	}
	if c.store != nil {
		opts.Store = c.store
	}
	return server.New(opts).Run()
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")

	rootCmd.AddCommand(serveCmd)
}
