// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cowriter implements the two-stage script generation: the
// Narrator compiles an exhaustive cited research report, and the Editor
// reshapes it into a four-section video script. Citations must survive
// both stages.
package cowriter

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Completer abstracts the LLM client.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Narrator compiles source papers and insights into a research report.
type Narrator struct {
	llm Completer
	log *zap.Logger
}

// NewNarrator builds a Narrator. A nil completer means credentials were
// never configured; SynthesizeReport reports that eagerly.
func NewNarrator(c Completer, log *zap.Logger) *Narrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Narrator{llm: c, log: log}
}

// SynthesizeReport produces the stage-one research report as free text.
// Temperature is kept low for factual accuracy.
func (n *Narrator) SynthesizeReport(ctx context.Context, topic string, papers []types.EnrichedPaper, insights []types.Insight) (string, error) {
	if n.llm == nil {
		return "", llm.ErrMissingCredentials
	}

	userPrompt := fmt.Sprintf(`RESEARCH TOPIC: %q

EXTRACTED KEY INSIGHTS:
%s

SOURCE MATERIALS (Papers with Content):
%s

INSTRUCTIONS:
Write a COMPREHENSIVE RESEARCH REPORT synthesizing all the above information.
Remember:
- Include EVERY relevant detail, statistic, and finding
- ALWAYS cite sources in [Author, Year] format
- Be thorough - this report will be transformed into a video script`,
		topic, buildInsightsText(insights), buildSourcesText(papers))

	report, err := n.llm.Complete(ctx, llm.Request{
		System:      narratorPrompt,
		Messages:    []llm.Message{{Role: "user", Content: userPrompt}},
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("synthesizing report: %w", err)
	}

	n.log.Info("research report generated",
		zap.Int("words", len(strings.Fields(report))))
	return report, nil
}
