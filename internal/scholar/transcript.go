// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
)

// writeTranscript persists a raw provider response for debugging when a
// transcript directory is configured. Failures are logged and ignored;
// transcripts are not part of core correctness.
func (c *Client) writeTranscript(keywords string, body []byte) {
	if c.cfg.TranscriptDir == "" {
		return
	}

	if err := os.MkdirAll(c.cfg.TranscriptDir, 0o755); err != nil {
		c.log.Warn("creating transcript directory", zap.Error(err))
		return
	}

	name := fmt.Sprintf("%s-%s.json",
		time.Now().UTC().Format("20060102T150405"), slugify(keywords))
	if err := os.WriteFile(filepath.Join(c.cfg.TranscriptDir, name), body, 0o644); err != nil {
		c.log.Warn("writing transcript", zap.String("file", name), zap.Error(err))
	}
}

// slugify reduces keywords to a safe filename fragment.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}
	slug := b.String()
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}
