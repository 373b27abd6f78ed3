// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{Path: filepath.Join(t.TempDir(), "projects.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func saveReq() SaveProjectRequest {
	return SaveProjectRequest{
		UserID:     "user-1",
		Title:      "Binaural Beats",
		QueryTopic: "binaural beats for focus",
		Insights:   []types.Insight{{Text: "Focus improved 23%.", Source: "Doe (2021)", PaperID: "P1"}},
		Narrative: types.Narrative{
			Hook:         "What if sound could sharpen your mind?",
			Introduction: "intro",
			DeepDive:     "the core",
			Conclusion:   "takeaways",
		},
		Papers: []types.Paper{
			{PaperID: "P1", Title: "Auditory entrainment", Authors: []string{"Doe", "Roe"},
				Year: 2021, CitationCount: 12, URL: "https://example.org/p1", Abstract: "abs"},
			{PaperID: "P2", Title: "Second study"},
		},
	}
}

func TestSaveProject_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.SaveProject(ctx, saveReq())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	p, err := s.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "Binaural Beats", p.Title)
	assert.Equal(t, "draft", p.Status)
	assert.False(t, p.CreatedAt.IsZero())

	papers, err := s.ListPapers(ctx, id)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, "P1", papers[0].PaperID)
	assert.Equal(t, []string{"Doe", "Roe"}, papers[0].Authors)
	assert.Equal(t, 12, papers[0].CitationCount)
}

func TestSaveProject_CanvasDocument(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.SaveProject(ctx, saveReq())
	require.NoError(t, err)

	doc, err := s.LoadCanvas(ctx, id)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "heading", doc[0].Type)
	assert.Equal(t, "Binaural Beats", doc[0].Content[0].Text)

	numbered := 0
	for _, b := range doc {
		if b.Type == "numberedListItem" {
			numbered++
		}
	}
	assert.Equal(t, 1, numbered)
}

func TestListProjects_NewestFirstPerUser(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	req := saveReq()
	_, err := s.SaveProject(ctx, req)
	require.NoError(t, err)

	req.UserID = "user-2"
	_, err = s.SaveProject(ctx, req)
	require.NoError(t, err)

	got, err := s.ListProjects(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "user-1", got[0].UserID)
}

func TestGetProject_Missing(t *testing.T) {
	s := testStore(t)
	_, err := s.GetProject(context.Background(), "no-such-id")
	assert.Error(t, err)
}
