// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cowriter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// citationPattern matches inline citations: [Smith, 2023] or
// [Smith, 2023; Zhang, 2022].
var citationPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// yearPattern distinguishes citations from other bracketed text.
var yearPattern = regexp.MustCompile(`\b(1[89]|20)\d{2}[a-z]?\b`)

// VerifyCitations scans every section of a script for inline citation
// tokens and returns the ones with no counterpart in the report, sorted.
// The script may not introduce sources the report never mentioned.
func VerifyCitations(narrative types.Narrative, report string) []string {
	known := make(map[string]bool)
	for _, token := range extractCitations(report) {
		known[token] = true
	}

	seen := make(map[string]bool)
	for _, section := range narrative.Sections() {
		for _, token := range extractCitations(section) {
			if !known[token] && !seen[token] {
				seen[token] = true
			}
		}
	}

	unknown := make([]string, 0, len(seen))
	for token := range seen {
		unknown = append(unknown, token)
	}
	sort.Strings(unknown)
	return unknown
}

// extractCitations finds all citation tokens in text. Multi-citations
// separated by semicolons yield one token each; bracketed text without
// a plausible year is not a citation.
func extractCitations(text string) []string {
	matches := citationPattern.FindAllStringSubmatch(text, -1)
	var tokens []string
	for _, m := range matches {
		for _, part := range strings.Split(m[1], ";") {
			token := strings.TrimSpace(part)
			if token != "" && yearPattern.MatchString(token) {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}
