// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decompose splits one research topic into 3-4 diverse
// sub-queries for the academic search fan-out.
package decompose

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Completer abstracts the LLM so tests can supply a fake.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Decomposer asks the LLM for diverse sub-queries. Every failure path
// (no client, transport error, malformed response) falls back to a
// single-element list containing the base keywords verbatim; it never
// retries and never fails.
type Decomposer struct {
	llm Completer
	log *zap.Logger
}

// New builds a Decomposer. A nil completer is allowed and always takes
// the fallback path, so the rest of the pipeline still runs keyless.
func New(c Completer, log *zap.Logger) *Decomposer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decomposer{llm: c, log: log}
}

// Decompose returns 3-4 sub-queries for topic, or the base keywords as
// a single-element fallback.
func (d *Decomposer) Decompose(ctx context.Context, topic, baseKeywords string) types.Decomposition {
	if d.llm == nil {
		return fallback(baseKeywords, "API key not configured, using base keywords only")
	}

	userPrompt := fmt.Sprintf(`Topic: %q
Base Keywords: %q

Decompose this topic into 3-4 diverse search queries for comprehensive academic research.
Remember: each query should explore a DIFFERENT angle to maximize paper diversity.`, topic, baseKeywords)

	raw, err := d.llm.Complete(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: "user", Content: userPrompt}},
		JSONMode:    true,
		Temperature: 0.7,
	})
	if err != nil {
		d.log.Warn("decomposition failed, using base keywords", zap.Error(err))
		return fallback(baseKeywords, fmt.Sprintf("Error occurred, using base keywords: %v", err))
	}

	var dec types.Decomposition
	if err := json.Unmarshal([]byte(raw), &dec); err != nil {
		d.log.Warn("decomposition response unparseable", zap.Error(err))
		return fallback(baseKeywords, fmt.Sprintf("JSON parse error, using base keywords: %v", err))
	}
	if len(dec.SubQueries) == 0 {
		d.log.Warn("decomposition returned no sub-queries")
		return fallback(baseKeywords, "Empty sub-query list, using base keywords")
	}

	d.log.Info("decomposition complete",
		zap.Int("sub_queries", len(dec.SubQueries)),
		zap.Strings("queries", dec.SubQueries))
	return dec
}

func fallback(baseKeywords, reasoning string) types.Decomposition {
	return types.Decomposition{
		Reasoning:  reasoning,
		SubQueries: []string{baseKeywords},
	}
}
