// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar queries the Semantic Scholar paper search API and
// normalizes results into canonical Paper records.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/blueprint-engine/internal/httputil"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// apiBase is the Semantic Scholar paper search endpoint. Declared as a
// var so tests can substitute an httptest server.
var apiBase = "https://api.semanticscholar.org/graph/v1/paper/search"

// searchFields is the CSV of paper fields requested from the provider.
const searchFields = "paperId,title,abstract,authors,year,citationCount,url,openAccessPdf"

// DefaultLimit is the result limit used when the caller passes limit <= 0.
const DefaultLimit = 15

// Client issues keyword queries against the search provider. Upstream
// failures (non-200, timeout, malformed payload) degrade to an empty
// result set so that one failing sub-query never aborts a fan-out.
type Client struct {
	http    *http.Client
	cfg     types.ScholarConfig
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewClient builds a search client from config. A zero RequestsPerSecond
// defaults to 1 req/s, matching the provider's unauthenticated allowance.
func NewClient(cfg types.ScholarConfig, log *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultLimit
	}
	if cfg.UserAgent == "" {
		// The provider rejects requests without a descriptive agent.
		cfg.UserAgent = "blueprint-engine/1.0 (research pipeline)"
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		log:     log,
	}
}

// Search queries the provider and returns papers with non-empty titles.
// The error return is reserved for caller mistakes (empty keywords);
// upstream failures are logged and yield an empty slice.
func (c *Client) Search(ctx context.Context, keywords string, limit int) ([]types.Paper, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, fmt.Errorf("empty search keywords")
	}
	if limit <= 0 {
		limit = c.cfg.MaxResults
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"query":  {keywords},
		"limit":  {fmt.Sprintf("%d", limit)},
		"fields": {searchFields},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0, c.log)
	if err != nil {
		c.log.Warn("search request failed", zap.String("keywords", keywords), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("search returned non-200",
			zap.String("keywords", keywords), zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("reading search response", zap.String("keywords", keywords), zap.Error(err))
		return nil, nil
	}
	c.writeTranscript(keywords, body)

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		c.log.Warn("search payload malformed", zap.String("keywords", keywords), zap.Error(err))
		return nil, nil
	}

	papers := make([]types.Paper, 0, len(sr.Data))
	for _, p := range sr.Data {
		if p.Title == "" {
			continue
		}
		paper := types.Paper{
			PaperID:       p.PaperID,
			Title:         p.Title,
			Abstract:      p.Abstract,
			Year:          p.Year,
			CitationCount: p.CitationCount,
			URL:           p.URL,
		}
		for _, a := range p.Authors {
			paper.Authors = append(paper.Authors, a.Name)
		}
		if p.OpenAccessPDF != nil {
			paper.OpenAccessPDF = p.OpenAccessPDF.URL
		}
		papers = append(papers, paper)
	}

	c.log.Info("search complete",
		zap.String("keywords", keywords),
		zap.Int("returned", len(papers)),
		zap.Int("total_available", sr.Total))
	return papers, nil
}

// Semantic Scholar API JSON structures.
type searchResponse struct {
	Total int        `json:"total"`
	Data  []apiPaper `json:"data"`
}

type apiPaper struct {
	PaperID       string      `json:"paperId"`
	Title         string      `json:"title"`
	Abstract      string      `json:"abstract"`
	Authors       []apiAuthor `json:"authors"`
	Year          int         `json:"year"`
	CitationCount int         `json:"citationCount"`
	URL           string      `json:"url"`
	OpenAccessPDF *apiPDF     `json:"openAccessPdf"`
}

type apiAuthor struct {
	Name string `json:"name"`
}

type apiPDF struct {
	URL string `json:"url"`
}
