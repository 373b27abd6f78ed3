// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetcher

import (
	"regexp"
	"strings"
)

// MaxContentLength is the character budget for one paper's text, sized
// to keep multiple papers inside the LLM context window.
const MaxContentLength = 15000

// truncationMarker is appended whenever text is hard-truncated.
const truncationMarker = "\n\n[... Content truncated for analysis ...]"

// skipHeadingRe matches section headings whose bodies carry no analytic
// value: references, acknowledgments, supplementary material, funding,
// and author contributions.
var skipHeadingRe = regexp.MustCompile(`(?i)^(references?|acknowledge?ments?|supplementary\b.*|funding|author\s+contributions?)\s*$`)

// blankRunRe collapses runs of three or more newlines.
var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Truncate fits fetched markdown into the character budget. Text within
// budget is returned unchanged. Oversized text first loses boilerplate
// sections (matched by heading, case-insensitive), then is hard-cut at
// the budget with a trailing marker.
func Truncate(content string) string {
	if len(content) <= MaxContentLength {
		return content
	}

	processed := stripBoilerplate(content)
	processed = blankRunRe.ReplaceAllString(processed, "\n\n")

	if len(processed) > MaxContentLength {
		processed = processed[:MaxContentLength] + truncationMarker
	}
	return strings.TrimSpace(processed)
}

// stripBoilerplate walks the markdown by heading boundaries and drops
// every section whose heading matches skipHeadingRe. A skipped section
// ends at the next heading of any level.
func stripBoilerplate(content string) string {
	lines := strings.Split(content, "\n")
	var kept []string
	skipping := false

	for _, line := range lines {
		if heading, ok := headingText(line); ok {
			skipping = skipHeadingRe.MatchString(heading)
			if skipping {
				continue
			}
		}
		if !skipping {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// headingText returns the text of a markdown heading line (# through ###).
func headingText(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"### ", "## ", "# "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)), true
		}
	}
	return "", false
}
