// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// maxInsightPapers bounds the batch handed to the LLM per call.
const maxInsightPapers = 10

// insightPrompt instructs the model to extract citable insights.
const insightPrompt = `You are a research analyst extracting KEY INSIGHTS from academic papers for a deep-dive video.

For each paper abstract provided, extract 1-2 unique insights that would be interesting for a video.

**RULES:**
- Focus on surprising facts, statistics, or counterintuitive findings
- Make insights quotable and memorable
- Keep each insight to 1-2 sentences max
- Include the paper reference in each insight

**OUTPUT FORMAT (JSON ONLY):**
{
    "insights": [
        {
            "insight": "The actual insight text with specific data/findings",
            "source": "Author et al. (Year)",
            "paperId": "the paper ID"
        }
    ]
}`

// Completer abstracts the LLM so tests can supply a fake.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Extractor pulls citable insights out of paper abstracts.
type Extractor struct {
	llm Completer
	log *zap.Logger
}

// NewExtractor builds an Extractor.
func NewExtractor(c Completer, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{llm: c, log: log}
}

// ExtractInsights asks the LLM for 1-2 insights per paper from a batch
// of at most ten. Papers without an abstract cannot be attributed and
// are excluded from the prompt entirely. Source and paperId fields pass
// through from the model unmodified.
func (e *Extractor) ExtractInsights(ctx context.Context, papers []types.Paper, topic string) ([]types.Insight, error) {
	if e.llm == nil {
		return nil, llm.ErrMissingCredentials
	}

	prompt := buildPapersPrompt(papers, topic)
	if prompt == "" {
		e.log.Warn("no papers with abstracts to analyze")
		return nil, nil
	}

	raw, err := e.llm.Complete(ctx, llm.Request{
		System:      insightPrompt,
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		JSONMode:    true,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("extracting insights: %w", err)
	}

	var resp struct {
		Insights []types.Insight `json:"insights"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("parsing insight response: %w", err)
	}

	e.log.Info("insights extracted", zap.Int("count", len(resp.Insights)))
	return resp.Insights, nil
}

// buildPapersPrompt formats the paper batch for the model, skipping
// abstract-less papers. Returns "" when nothing is analyzable.
func buildPapersPrompt(papers []types.Paper, topic string) string {
	var b strings.Builder
	n := 0
	for _, p := range papers {
		if p.Abstract == "" {
			continue
		}
		n++
		if n > maxInsightPapers {
			break
		}
		year := "N/A"
		if p.Year > 0 {
			year = fmt.Sprintf("%d", p.Year)
		}
		fmt.Fprintf(&b, "\nPaper %d:\n- ID: %s\n- Title: %s\n- Authors: %s\n- Year: %s\n- Abstract: %s\n---\n",
			n, p.PaperID, p.Title, FormatAuthors(p.Authors), year, p.Abstract)
	}
	if b.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("Topic: %s\n\nPapers to analyze:\n%s", topic, b.String())
}

// FormatAuthors renders up to three author names, with "et al." beyond.
func FormatAuthors(authors []string) string {
	if len(authors) == 0 {
		return "Unknown"
	}
	if len(authors) <= 3 {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:3], ", ") + " et al."
}
