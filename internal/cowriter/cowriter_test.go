// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cowriter

import (
	"context"
	"errors"
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
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func enriched(id, title, abstract string, ct types.ContentType, content string) types.EnrichedPaper {
	return types.EnrichedPaper{
		Paper: types.Paper{PaperID: id, Title: title, Abstract: abstract,
			Authors: []string{"Smith", "Zhang"}, Year: 2023},
		Content: types.EnrichedContent{Type: ct, Content: content, Source: "reader_pdf"},
	}
}

func TestSynthesizeReport(t *testing.T) {
	fc := &fakeCompleter{response: "Anxiety rose 43% [Smith, Zhang, 2023]."}
	n := NewNarrator(fc, nil)

	report, err := n.SynthesizeReport(context.Background(), "social media anxiety",
		[]types.EnrichedPaper{enriched("P1", "Teens and screens", "abs", types.ContentFullText, "full body text")},
		[]types.Insight{{Text: "Anxiety rose 43%.", Source: "Smith et al. (2023)"}})

	require.NoError(t, err)
	assert.Equal(t, "Anxiety rose 43% [Smith, Zhang, 2023].", report)
	assert.False(t, fc.lastReq.JSONMode, "narrator output is free text")
	assert.InDelta(t, 0.5, fc.lastReq.Temperature, 0.001)

	prompt := fc.lastReq.Messages[0].Content
	assert.Contains(t, prompt, "SOURCE 1: [Smith, Zhang, 2023]")
	assert.Contains(t, prompt, "Content Type: FULL_TEXT")
	assert.Contains(t, prompt, "full body text")
	assert.Contains(t, prompt, "1. Anxiety rose 43%. [Source: Smith et al. (2023)]")
}

func TestSynthesizeReport_CapsSourcesAtTen(t *testing.T) {
	fc := &fakeCompleter{response: "report"}
	n := NewNarrator(fc, nil)

	papers := make([]types.EnrichedPaper, 12)
	for i := range papers {
		papers[i] = enriched("P", "t", "a", types.ContentAbstract, "c")
	}
	_, err := n.SynthesizeReport(context.Background(), "topic", papers, nil)

	require.NoError(t, err)
	assert.Contains(t, fc.lastReq.Messages[0].Content, "SOURCE 10:")
	assert.NotContains(t, fc.lastReq.Messages[0].Content, "SOURCE 11:")
}

func TestSynthesizeReport_NoCompleter(t *testing.T) {
	n := NewNarrator(nil, nil)
	_, err := n.SynthesizeReport(context.Background(), "topic", nil, nil)
	assert.ErrorIs(t, err, llm.ErrMissingCredentials)
}

func TestCraftScript(t *testing.T) {
	fc := &fakeCompleter{response: `{
		"narrative": {
			"hook": "What if your phone is rewiring you? [Smith, 2023]",
			"introduction": "intro",
			"deep_dive": "the core [Smith, 2023]",
			"conclusion": "wrap up"
		}
	}`}
	e := NewEditor(fc, nil)

	got, err := e.CraftScript(context.Background(), "topic",
		"Report text [Smith, 2023].",
		[]types.Reference{{Title: "Teens and screens", Authors: "Smith, Zhang", Year: 2023}})

	require.NoError(t, err)
	assert.Equal(t, "intro", got.Introduction)
	assert.Equal(t, "wrap up", got.Conclusion)
	assert.True(t, fc.lastReq.JSONMode)
	assert.InDelta(t, 0.7, fc.lastReq.Temperature, 0.001)
	assert.Contains(t, fc.lastReq.Messages[0].Content, "[1] Smith, Zhang (2023). Teens and screens")
}

func TestCraftScript_MalformedOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "sorry, here is your script:"},
		{"missing narrative", `{"something": "else"}`},
		{"empty sections", `{"narrative": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditor(&fakeCompleter{response: tt.response}, nil)
			_, err := e.CraftScript(context.Background(), "topic", "report", nil)
			assert.ErrorIs(t, err, ErrMalformedScript)
		})
	}
}

func TestCraftScript_TransportError(t *testing.T) {
	e := NewEditor(&fakeCompleter{err: errors.New("boom")}, nil)
	_, err := e.CraftScript(context.Background(), "topic", "report", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedScript)
}
