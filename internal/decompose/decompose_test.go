// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decompose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/blueprint-engine/internal/llm"
)

// fakeCompleter returns a canned response or error.
type fakeCompleter struct {
	response string
	err      error
	lastReq  llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func TestDecompose_ValidResponse(t *testing.T) {
	fc := &fakeCompleter{response: `{
		"reasoning": "mechanism, impact, population angles",
		"sub_queries": ["binaural beats neuroscience", "audio focus productivity", "auditory stimulation students"]
	}`}
	d := New(fc, nil)

	got := d.Decompose(context.Background(), "binaural beats for focus", "binaural beats focus")

	assert.Len(t, got.SubQueries, 3)
	assert.Equal(t, "mechanism, impact, population angles", got.Reasoning)
	assert.True(t, fc.lastReq.JSONMode)
	assert.InDelta(t, 0.7, fc.lastReq.Temperature, 0.001)
}

func TestDecompose_FallbackPaths(t *testing.T) {
	tests := []struct {
		name string
		fc   *fakeCompleter
	}{
		{"transport error", &fakeCompleter{err: errors.New("connection refused")}},
		{"malformed json", &fakeCompleter{response: `not json at all`}},
		{"missing sub_queries key", &fakeCompleter{response: `{"reasoning": "hm"}`}},
		{"empty sub_queries", &fakeCompleter{response: `{"reasoning": "hm", "sub_queries": []}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.fc, nil)
			got := d.Decompose(context.Background(), "topic", "base keywords")

			assert.Equal(t, []string{"base keywords"}, got.SubQueries,
				"fallback must be the base keywords verbatim")
			assert.NotEmpty(t, got.Reasoning)
		})
	}
}

func TestDecompose_NilCompleter(t *testing.T) {
	d := New(nil, nil)
	got := d.Decompose(context.Background(), "topic", "base keywords")
	assert.Equal(t, []string{"base keywords"}, got.SubQueries)
}
