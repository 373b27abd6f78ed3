// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

const (
	// minResults is the result count below which the query is broadened.
	minResults = 3

	// fallbackTokens is how many leading tokens the broadened query keeps.
	fallbackTokens = 3

	// fallbackLimit is the larger result limit for the broadened search.
	fallbackLimit = 15
)

// FallbackResult reports a single-query search and whether broadening
// was needed to fill it.
type FallbackResult struct {
	Papers            []types.Paper `json:"papers"`
	UsedFallback      bool          `json:"usedFallback"`
	EffectiveKeywords string        `json:"effectiveKeywords"`
}

// SearchWithFallback runs one search and, when it returns fewer than
// three papers, broadens the query to its first three whitespace tokens
// and merges the unique results of a second, larger search. A query of
// three or fewer tokens has nothing to truncate, so no broadened call
// is attempted.
func SearchWithFallback(ctx context.Context, s Searcher, keywords string, limit int, log *zap.Logger) (FallbackResult, error) {
	if log == nil {
		log = zap.NewNop()
	}

	papers, err := s.Search(ctx, keywords, limit)
	if err != nil {
		return FallbackResult{}, err
	}

	result := FallbackResult{
		Papers:            papers,
		EffectiveKeywords: keywords,
	}

	tokens := strings.Fields(keywords)
	if len(papers) >= minResults || len(tokens) <= fallbackTokens {
		return result, nil
	}

	broadened := strings.Join(tokens[:fallbackTokens], " ")
	log.Info("broadening sparse query",
		zap.String("original", keywords),
		zap.String("broadened", broadened),
		zap.Int("initial_results", len(papers)))

	more, err := s.Search(ctx, broadened, fallbackLimit)
	if err != nil {
		return result, nil
	}

	result.Papers = Dedupe([][]types.Paper{papers, more})
	result.UsedFallback = true
	result.EffectiveKeywords = broadened
	return result, nil
}
