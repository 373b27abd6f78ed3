// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research runs the search fan-out, the smart fallback path,
// and insight extraction over the resulting papers.
package research

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Searcher issues one keyword query. *scholar.Client implements it.
type Searcher interface {
	Search(ctx context.Context, keywords string, limit int) ([]types.Paper, error)
}

// MultiSearch fans subQueries out to the searcher concurrently and
// merges the results, deduplicated first-seen-wins by paperId. Each
// sub-query writes into its own slot and merging happens only after all
// goroutines have joined, in sub-query submission order, so the result
// set does not depend on completion order. A failed sub-query
// contributes nothing and never aborts the batch.
func MultiSearch(ctx context.Context, s Searcher, subQueries []string, limitPerQuery int, log *zap.Logger) []types.Paper {
	if log == nil {
		log = zap.NewNop()
	}

	results := make([][]types.Paper, len(subQueries))

	var g errgroup.Group
	for i, q := range subQueries {
		i, q := i, q
		g.Go(func() error {
			papers, err := s.Search(ctx, q, limitPerQuery)
			if err != nil {
				log.Warn("sub-query failed", zap.String("query", q), zap.Error(err))
				return nil
			}
			results[i] = papers
			return nil
		})
	}
	g.Wait()

	return Dedupe(results)
}

// Dedupe merges result slices in order, keeping the first paper seen
// for every paperId.
func Dedupe(results [][]types.Paper) []types.Paper {
	seen := make(map[string]bool)
	var merged []types.Paper
	for _, batch := range results {
		for _, p := range batch {
			if seen[p.PaperID] {
				continue
			}
			seen[p.PaperID] = true
			merged = append(merged, p)
		}
	}
	return merged
}
