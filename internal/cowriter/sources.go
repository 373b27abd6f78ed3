// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cowriter

import (
	"fmt"
	"strings"

	"github.com/pdiddy/blueprint-engine/internal/research"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// maxSourcePapers bounds the source block handed to the Narrator.
const maxSourcePapers = 10

// buildSourcesText formats enriched papers as numbered source blocks.
func buildSourcesText(papers []types.EnrichedPaper) string {
	var b strings.Builder
	for i, p := range papers {
		if i >= maxSourcePapers {
			break
		}
		year := "n.d."
		if p.Year > 0 {
			year = fmt.Sprintf("%d", p.Year)
		}
		content := p.Content.Content
		if content == "" {
			content = p.Abstract
		}
		if content == "" {
			content = "No content available."
		}
		fmt.Fprintf(&b, "\nSOURCE %d: [%s, %s]\nTitle: %s\nContent Type: %s\n---\n%s\n===\n",
			i+1, research.FormatAuthors(p.Authors), year, p.Title,
			strings.ToUpper(string(p.Content.Type)), content)
	}
	return b.String()
}

// buildInsightsText formats pre-extracted insights as a numbered list.
func buildInsightsText(insights []types.Insight) string {
	if len(insights) == 0 {
		return "No pre-extracted insights available."
	}
	lines := make([]string, len(insights))
	for i, in := range insights {
		source := in.Source
		if source == "" {
			source = "Unknown"
		}
		lines[i] = fmt.Sprintf("%d. %s [Source: %s]", i+1, in.Text, source)
	}
	return strings.Join(lines, "\n")
}

// buildReferencesText formats the reference list for citation verification.
func buildReferencesText(refs []types.Reference) string {
	if len(refs) == 0 {
		return "No references available."
	}
	lines := make([]string, len(refs))
	for i, r := range refs {
		authors := r.Authors
		if authors == "" {
			authors = "Unknown"
		}
		year := "n.d."
		if r.Year > 0 {
			year = fmt.Sprintf("%d", r.Year)
		}
		lines[i] = fmt.Sprintf("[%d] %s (%s). %s", i+1, authors, year, r.Title)
	}
	return strings.Join(lines, "\n")
}
