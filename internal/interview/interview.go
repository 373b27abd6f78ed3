// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interview runs the adaptive keyword-refinement conversation
// that turns a vague topic into a targeted academic search query. Each
// turn the model either probes with a question, proposes research
// angles, or finalizes the keywords.
package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/llm"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Turn-count thresholds for steering the model toward finalization.
const (
	nudgeTurns = 7
	forceTurns = 10
)

const nudgeInstruction = " (SYSTEM: Conversation is getting long. Consider finalizing if you have enough depth. If not, ask ONE more focused question.)"
const forceInstruction = " (SYSTEM: MAX TURNS REACHED. YOU MUST FINALIZE with final_keywords NOW regardless of depth.)"

// Completer abstracts the LLM client.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Interviewer drives the conversation.
type Interviewer struct {
	llm Completer
	log *zap.Logger
}

// New builds an Interviewer.
func New(c Completer, log *zap.Logger) *Interviewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interviewer{llm: c, log: log}
}

// Continue sends the conversation so far and returns the model's next
// turn. The action tag is validated before anything is returned; an
// unknown tag is an error, not a silent default.
func (iv *Interviewer) Continue(ctx context.Context, conversation []types.ChatMessage) (types.InterviewTurn, error) {
	if iv.llm == nil {
		return types.InterviewTurn{}, llm.ErrMissingCredentials
	}

	system := architectPrompt
	switch turns := len(conversation); {
	case turns >= forceTurns:
		system += forceInstruction
	case turns >= nudgeTurns:
		system += nudgeInstruction
	}

	messages := make([]llm.Message, len(conversation))
	for i, m := range conversation {
		messages[i] = llm.Message{Role: m.Role, Content: m.Content}
	}

	raw, err := iv.llm.Complete(ctx, llm.Request{
		System:   system,
		Messages: messages,
		JSONMode: true,
	})
	if err != nil {
		return types.InterviewTurn{}, fmt.Errorf("continuing interview: %w", err)
	}

	var resp struct {
		NextAction    string                 `json:"next_action"`
		ReplyMessage  string                 `json:"reply_message"`
		Options       []types.ResearchOption `json:"options"`
		FinalKeywords string                 `json:"final_keywords"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return types.InterviewTurn{}, fmt.Errorf("parsing interview response: %w", err)
	}

	action, err := types.ParseInterviewAction(resp.NextAction)
	if err != nil {
		return types.InterviewTurn{}, err
	}
	if action == types.ActionFinalize && resp.FinalKeywords == "" {
		return types.InterviewTurn{}, fmt.Errorf("finalize turn carries no keywords")
	}

	iv.log.Info("interview turn",
		zap.String("action", string(action)),
		zap.Int("turns", len(conversation)))

	return types.InterviewTurn{
		Action:        action,
		ReplyMessage:  resp.ReplyMessage,
		Options:       resp.Options,
		FinalKeywords: resp.FinalKeywords,
	}, nil
}
