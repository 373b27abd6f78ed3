// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// fakeSearcher maps keywords to canned results, optionally delaying
// some queries to shuffle goroutine completion order.
type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]types.Paper
	errs    map[string]error
	delays  map[string]time.Duration
	calls   []string
}

func (f *fakeSearcher) Search(_ context.Context, keywords string, _ int) ([]types.Paper, error) {
	f.mu.Lock()
	f.calls = append(f.calls, keywords)
	f.mu.Unlock()
	if d, ok := f.delays[keywords]; ok {
		time.Sleep(d)
	}
	if err, ok := f.errs[keywords]; ok {
		return nil, err
	}
	return f.results[keywords], nil
}

func paper(id, title string) types.Paper {
	return types.Paper{PaperID: id, Title: title}
}

func TestMultiSearch_MergeOrderFollowsSubmission(t *testing.T) {
	fs := &fakeSearcher{
		results: map[string][]types.Paper{
			"q1": {paper("P1", "first"), paper("P2", "second")},
			"q2": {paper("P3", "third")},
			"q3": {paper("P4", "fourth")},
		},
		// q1 finishes last; its papers must still come first.
		delays: map[string]time.Duration{"q1": 30 * time.Millisecond},
	}

	got := MultiSearch(context.Background(), fs, []string{"q1", "q2", "q3"}, 15, nil)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"P1", "P2", "P3", "P4"}, ids(got))
}

func TestMultiSearch_DedupeFirstSeenWins(t *testing.T) {
	fs := &fakeSearcher{
		results: map[string][]types.Paper{
			"q1": {paper("P1", "from q1"), paper("P2", "second")},
			"q2": {{PaperID: "P1", Title: "from q2", Year: 2020}, paper("P3", "third")},
		},
	}

	got := MultiSearch(context.Background(), fs, []string{"q1", "q2"}, 15, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "from q1", got[0].Title, "first occurrence must win")
	assert.Equal(t, []string{"P1", "P2", "P3"}, ids(got))
}

func TestMultiSearch_QueryFailureDoesNotAbort(t *testing.T) {
	fs := &fakeSearcher{
		results: map[string][]types.Paper{
			"q1": {paper("P1", "first")},
			"q3": {paper("P2", "second")},
		},
		errs: map[string]error{"q2": errors.New("boom")},
	}

	got := MultiSearch(context.Background(), fs, []string{"q1", "q2", "q3"}, 15, nil)

	assert.Equal(t, []string{"P1", "P2"}, ids(got))
}

func TestMultiSearch_NoQueries(t *testing.T) {
	fs := &fakeSearcher{}
	got := MultiSearch(context.Background(), fs, nil, 15, nil)
	assert.Empty(t, got)
	assert.Empty(t, fs.calls)
}

func ids(papers []types.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.PaperID
	}
	return out
}
