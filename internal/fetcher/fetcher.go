// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetcher retrieves extended paper text through a reader
// service, falling back through PDF, landing page, and abstract.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/httputil"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

const (
	// fullTextThreshold separates full_text from partial content.
	fullTextThreshold = 2000

	// minMeaningful is the shortest reader response worth keeping.
	minMeaningful = 200

	// noContentFallback stands in when a paper has no abstract either.
	noContentFallback = "No content available."

	// DefaultMaxPapers bounds live fetch attempts per batch.
	DefaultMaxPapers = 8
)

// Fetcher retrieves paper content via an external reader service.
type Fetcher struct {
	http *http.Client
	cfg  types.ReaderConfig
	log  *zap.Logger
}

// New builds a Fetcher from config.
func New(cfg types.ReaderConfig, log *zap.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://r.jina.ai/"
	}
	if cfg.MaxPapers <= 0 {
		cfg.MaxPapers = DefaultMaxPapers
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
		log:  log,
	}
}

// Fetch attempts, in order: the PDF via the reader service, the landing
// page via the reader service, then the abstract. The first success
// wins; every failure degrades to the next rung, never to an error.
func (f *Fetcher) Fetch(ctx context.Context, paperURL, pdfURL, abstract string) types.EnrichedContent {
	if pdfURL != "" {
		if text, err := f.readURL(ctx, pdfURL); err == nil {
			processed := Truncate(text)
			contentType := types.ContentPartial
			if len(processed) > fullTextThreshold {
				contentType = types.ContentFullText
			}
			return types.EnrichedContent{
				Type:      contentType,
				Content:   processed,
				Source:    "reader_pdf",
				WordCount: countWords(processed),
			}
		} else {
			f.log.Debug("pdf fetch failed", zap.String("url", pdfURL), zap.Error(err))
		}
	}

	if paperURL != "" {
		if text, err := f.readURL(ctx, paperURL); err == nil {
			processed := Truncate(text)
			return types.EnrichedContent{
				Type:      types.ContentPartial,
				Content:   processed,
				Source:    "reader_page",
				WordCount: countWords(processed),
			}
		} else {
			f.log.Debug("page fetch failed", zap.String("url", paperURL), zap.Error(err))
		}
	}

	return abstractContent(abstract)
}

// FetchAll fetches live content for the first maxPapers papers in order;
// the remainder get abstract-typed content built from their abstract
// field. A failed fetch degrades that one paper, never the batch. When
// maxPapers <= 0 the configured default applies.
func (f *Fetcher) FetchAll(ctx context.Context, papers []types.Paper, maxPapers int) []types.EnrichedPaper {
	if maxPapers <= 0 {
		maxPapers = f.cfg.MaxPapers
	}

	enriched := make([]types.EnrichedPaper, 0, len(papers))
	fullText := 0

	for i, p := range papers {
		if i >= maxPapers {
			enriched = append(enriched, types.EnrichedPaper{Paper: p, Content: abstractContent(p.Abstract)})
			continue
		}

		f.log.Info("fetching content",
			zap.Int("index", i+1),
			zap.Int("of", min(len(papers), maxPapers)),
			zap.String("title", p.Title))

		content := f.Fetch(ctx, p.URL, p.OpenAccessPDF, p.Abstract)
		if content.Type == types.ContentFullText {
			fullText++
		}
		enriched = append(enriched, types.EnrichedPaper{Paper: p, Content: content})
	}

	f.log.Info("content fetch complete",
		zap.Int("full_text", fullText),
		zap.Int("abstract_only", len(enriched)-fullText))
	return enriched
}

// readURL calls the reader service for one target URL and returns its
// markdown body. Short bodies count as failures.
func (f *Fetcher) readURL(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.BaseURL+target, nil)
	if err != nil {
		return "", fmt.Errorf("creating reader request: %w", err)
	}
	req.Header.Set("Accept", "text/markdown")
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	if f.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.cfg.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, f.http, req, 0, f.log)
	if err != nil {
		return "", fmt.Errorf("reader request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reader returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading reader response: %w", err)
	}
	if len(body) <= minMeaningful {
		return "", fmt.Errorf("reader content too short (%d chars)", len(body))
	}
	return string(body), nil
}

// abstractContent builds the last-rung content block from an abstract.
func abstractContent(abstract string) types.EnrichedContent {
	content := abstract
	if content == "" {
		content = noContentFallback
	}
	return types.EnrichedContent{
		Type:      types.ContentAbstract,
		Content:   content,
		Source:    "abstract",
		WordCount: countWords(abstract),
	}
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
