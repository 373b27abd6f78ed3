// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

type fakeCompleter struct {
	response string
	err      error
	lastReq  llm.Request
	called   bool
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.called = true
	f.lastReq = req
	return f.response, f.err
}

func abstractPaper(id, title, abstract string) types.Paper {
	return types.Paper{PaperID: id, Title: title, Abstract: abstract, Authors: []string{"Doe"}, Year: 2021}
}

func TestExtractInsights_ParsesResponse(t *testing.T) {
	fc := &fakeCompleter{response: `{
		"insights": [
			{"insight": "Focus improved 23% in trials.", "source": "Doe et al. (2021)", "paperId": "P1"},
			{"insight": "Effects fade within an hour.", "source": "Doe et al. (2021)", "paperId": "P1"}
		]
	}`}
	ex := NewExtractor(fc, nil)

	got, err := ex.ExtractInsights(context.Background(), []types.Paper{
		abstractPaper("P1", "Binaural beats", "A trial of auditory stimulation."),
	}, "binaural beats")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Focus improved 23% in trials.", got[0].Text)
	assert.Equal(t, "P1", got[0].PaperID)
	assert.True(t, fc.lastReq.JSONMode)
}

func TestExtractInsights_SkipsAbstractless(t *testing.T) {
	fc := &fakeCompleter{response: `{"insights": []}`}
	ex := NewExtractor(fc, nil)

	_, err := ex.ExtractInsights(context.Background(), []types.Paper{
		{PaperID: "P1", Title: "No abstract here"},
		abstractPaper("P2", "Has one", "Some findings."),
	}, "topic")

	require.NoError(t, err)
	prompt := fc.lastReq.Messages[0].Content
	assert.NotContains(t, prompt, "P1")
	assert.Contains(t, prompt, "P2")
}

func TestExtractInsights_CapsBatchAtTen(t *testing.T) {
	fc := &fakeCompleter{response: `{"insights": []}`}
	ex := NewExtractor(fc, nil)

	papers := make([]types.Paper, 14)
	for i := range papers {
		id := fmt.Sprintf("P%02d", i)
		papers[i] = abstractPaper(id, "title "+id, "abstract "+id)
	}

	_, err := ex.ExtractInsights(context.Background(), papers, "topic")

	require.NoError(t, err)
	prompt := fc.lastReq.Messages[0].Content
	assert.Equal(t, maxInsightPapers, strings.Count(prompt, "- ID: P"))
	assert.NotContains(t, prompt, "P10")
}

func TestExtractInsights_NoAnalyzablePapers(t *testing.T) {
	fc := &fakeCompleter{response: `{"insights": []}`}
	ex := NewExtractor(fc, nil)

	got, err := ex.ExtractInsights(context.Background(), []types.Paper{
		{PaperID: "P1", Title: "abstract-less"},
	}, "topic")

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, fc.called, "no LLM call without analyzable papers")
}

func TestExtractInsights_Errors(t *testing.T) {
	tests := []struct {
		name string
		fc   *fakeCompleter
	}{
		{"transport error", &fakeCompleter{err: errors.New("boom")}},
		{"malformed json", &fakeCompleter{response: `not json`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewExtractor(tt.fc, nil)
			_, err := ex.ExtractInsights(context.Background(), []types.Paper{
				abstractPaper("P1", "t", "a"),
			}, "topic")
			assert.Error(t, err)
		})
	}
}

func TestExtractInsights_NilCompleter(t *testing.T) {
	ex := NewExtractor(nil, nil)
	_, err := ex.ExtractInsights(context.Background(), []types.Paper{
		abstractPaper("P1", "t", "a"),
	}, "topic")
	assert.ErrorIs(t, err, llm.ErrMissingCredentials)
}

func TestFormatAuthors(t *testing.T) {
	assert.Equal(t, "Unknown", FormatAuthors(nil))
	assert.Equal(t, "A, B", FormatAuthors([]string{"A", "B"}))
	assert.Equal(t, "A, B, C et al.", FormatAuthors([]string{"A", "B", "C", "D"}))
}
