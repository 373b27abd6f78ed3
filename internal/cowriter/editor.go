// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cowriter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// ErrMalformedScript reports that the Editor returned structured output
// the script schema cannot accept. There is no usable partial result.
var ErrMalformedScript = errors.New("editor returned a malformed script")

// Editor transforms a research report into the final video script.
type Editor struct {
	llm Completer
	log *zap.Logger
}

// NewEditor builds an Editor.
func NewEditor(c Completer, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{llm: c, log: log}
}

// CraftScript runs the stage-two transformation. The model answers in
// JSON mode; anything that does not decode into the four-section
// narrative is ErrMalformedScript.
func (e *Editor) CraftScript(ctx context.Context, topic, report string, refs []types.Reference) (types.Narrative, error) {
	if e.llm == nil {
		return types.Narrative{}, llm.ErrMissingCredentials
	}

	userPrompt := fmt.Sprintf(`VIDEO TOPIC: %q

RESEARCH REPORT TO TRANSFORM:
%s

AVAILABLE REFERENCES (for citation verification):
%s

INSTRUCTIONS:
Transform the Research Report above into an ENGAGING VIDEO SCRIPT.

Remember:
- PRESERVE all citations from the report in your script
- Make it captivating while staying factually accurate
- Aim for 1500-1800 total words across all sections`,
		topic, report, buildReferencesText(refs))

	raw, err := e.llm.Complete(ctx, llm.Request{
		System:      editorPrompt,
		Messages:    []llm.Message{{Role: "user", Content: userPrompt}},
		JSONMode:    true,
		Temperature: 0.7,
	})
	if err != nil {
		return types.Narrative{}, fmt.Errorf("crafting script: %w", err)
	}

	var resp struct {
		Narrative types.Narrative `json:"narrative"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return types.Narrative{}, fmt.Errorf("%w: %v", ErrMalformedScript, err)
	}
	if resp.Narrative.Hook == "" && resp.Narrative.DeepDive == "" {
		return types.Narrative{}, fmt.Errorf("%w: narrative sections missing", ErrMalformedScript)
	}

	total := 0
	for _, s := range resp.Narrative.Sections() {
		total += len(strings.Fields(s))
	}
	e.log.Info("final script generated", zap.Int("words", total))

	if unknown := VerifyCitations(resp.Narrative, report); len(unknown) > 0 {
		e.log.Warn("script cites sources absent from the report",
			zap.Strings("citations", unknown))
	}
	return resp.Narrative, nil
}
