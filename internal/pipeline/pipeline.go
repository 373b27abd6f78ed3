// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the research stages into a single run:
// decompose, parallel search, deduplicate, optional content fetch,
// insight extraction, report synthesis, script editing. Data flows
// strictly downstream; there is no branching back.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/fetcher"
	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/internal/research"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// ErrNoPapers reports that every search came back empty. The run cannot
// proceed past deduplication without at least one paper.
var ErrNoPapers = errors.New("no papers found for the given topic")

// Decomposer splits a topic into diverse sub-queries.
type Decomposer interface {
	Decompose(ctx context.Context, topic, baseKeywords string) types.Decomposition
}

// ContentFetcher enriches papers with fetched full text.
type ContentFetcher interface {
	FetchAll(ctx context.Context, papers []types.Paper, maxPapers int) []types.EnrichedPaper
}

// InsightExtractor pulls citable insights from a paper batch.
type InsightExtractor interface {
	ExtractInsights(ctx context.Context, papers []types.Paper, topic string) ([]types.Insight, error)
}

// ReportSynthesizer is the Narrator stage.
type ReportSynthesizer interface {
	SynthesizeReport(ctx context.Context, topic string, papers []types.EnrichedPaper, insights []types.Insight) (string, error)
}

// ScriptCrafter is the Editor stage.
type ScriptCrafter interface {
	CraftScript(ctx context.Context, topic, report string, refs []types.Reference) (types.Narrative, error)
}

// Request describes one pipeline run.
type Request struct {
	Topic    string
	Keywords string
	DeepMode bool
	// MaxPapers bounds live content fetches in deep mode. Zero means
	// the fetcher default.
	MaxPapers int
}

// Result is the terminal artifact plus the intermediate stage outputs
// callers surface alongside it.
type Result struct {
	Blueprint     types.ContentBlueprint `json:"blueprint"`
	Papers        []types.Paper          `json:"papers"`
	Reasoning     string                 `json:"reasoning"`
	SubQueries    []string               `json:"subQueries"`
	PapersFound   int                    `json:"papersFound"`
	PapersFetched int                    `json:"papersFetched"`
	FullTextCount int                    `json:"fullTextCount"`
	Report        string                 `json:"report"`
}

// Runner wires the stages together. All collaborators are injected so
// tests can substitute fakes.
type Runner struct {
	decomposer Decomposer
	searcher   research.Searcher
	fetcher    ContentFetcher
	extractor  InsightExtractor
	narrator   ReportSynthesizer
	editor     ScriptCrafter
	log        *zap.Logger
}

// NewRunner builds a Runner.
func NewRunner(d Decomposer, s research.Searcher, f ContentFetcher, x InsightExtractor, n ReportSynthesizer, e ScriptCrafter, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{decomposer: d, searcher: s, fetcher: f, extractor: x, narrator: n, editor: e, log: log}
}

// Run executes the full pipeline. Per-query and per-paper failures
// degrade inside their stages; zero papers after deduplication and any
// Narrator or Editor failure abort the run.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	keywords := req.Keywords
	if keywords == "" {
		keywords = req.Topic
	}
	maxPapers := req.MaxPapers
	if maxPapers <= 0 {
		maxPapers = fetcher.DefaultMaxPapers
	}

	r.log.Info("pipeline started",
		zap.String("topic", req.Topic),
		zap.Bool("deep", req.DeepMode))

	// DECOMPOSE
	decomp := r.decomposer.Decompose(ctx, req.Topic, keywords)
	r.log.Info("topic decomposed", zap.Strings("subQueries", decomp.SubQueries))

	// SEARCH + DEDUPLICATE
	papers := research.MultiSearch(ctx, r.searcher, decomp.SubQueries, 0, r.log)
	if len(papers) == 0 {
		// Last resort: one broadened single-query search before giving up.
		fb, err := research.SearchWithFallback(ctx, r.searcher, keywords, 0, r.log)
		if err == nil {
			papers = fb.Papers
		}
	}
	if len(papers) == 0 {
		return nil, ErrNoPapers
	}
	r.log.Info("papers collected", zap.Int("count", len(papers)))

	// FETCH_CONTENT (deep mode) or abstract-only enrichment
	var enriched []types.EnrichedPaper
	fetched := 0
	if req.DeepMode && r.fetcher != nil {
		enriched = r.fetcher.FetchAll(ctx, papers, maxPapers)
		fetched = min(maxPapers, len(papers))
	} else {
		enriched = abstractOnly(papers)
	}
	fullText := 0
	for _, p := range enriched {
		if p.Content.Type == types.ContentFullText {
			fullText++
		}
	}

	// EXTRACT_INSIGHTS
	insights, err := r.extractor.ExtractInsights(ctx, papers, req.Topic)
	if err != nil {
		if errors.Is(err, llm.ErrMissingCredentials) {
			return nil, err
		}
		r.log.Warn("insight extraction degraded", zap.Error(err))
		insights = nil
	}

	// NARRATE
	report, err := r.narrator.SynthesizeReport(ctx, req.Topic, enriched, insights)
	if err != nil {
		return nil, fmt.Errorf("narrate stage: %w", err)
	}

	// EDIT
	refs := BuildReferences(enriched)
	narrative, err := r.editor.CraftScript(ctx, req.Topic, report, refs)
	if err != nil {
		return nil, fmt.Errorf("edit stage: %w", err)
	}

	// COMPLETE
	return &Result{
		Blueprint: types.ContentBlueprint{
			Insights:   insights,
			Narrative:  narrative,
			References: refs,
		},
		Papers:        papers,
		Reasoning:     decomp.Reasoning,
		SubQueries:    decomp.SubQueries,
		PapersFound:   len(papers),
		PapersFetched: fetched,
		FullTextCount: fullText,
		Report:        report,
	}, nil
}

// BuildReferences derives the reference list from the papers handed to
// the Narrator, one entry per paper, in order.
func BuildReferences(papers []types.EnrichedPaper) []types.Reference {
	refs := make([]types.Reference, len(papers))
	for i, p := range papers {
		refs[i] = types.Reference{
			Title:   p.Title,
			Authors: research.FormatAuthors(p.Authors),
			Year:    p.Year,
			URL:     p.URL,
		}
	}
	return refs
}

// abstractOnly builds abstract-typed content for every paper without
// touching the reader service. Fast mode.
func abstractOnly(papers []types.Paper) []types.EnrichedPaper {
	enriched := make([]types.EnrichedPaper, len(papers))
	for i, p := range papers {
		content := p.Abstract
		if content == "" {
			content = "No content available."
		}
		wc := 0
		if p.Abstract != "" {
			wc = len(strings.Fields(p.Abstract))
		}
		enriched[i] = types.EnrichedPaper{
			Paper: p,
			Content: types.EnrichedContent{
				Type:      types.ContentAbstract,
				Content:   content,
				Source:    "abstract",
				WordCount: wc,
			},
		}
	}
	return enriched
}
