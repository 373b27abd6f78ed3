// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interview

import (
	"context"
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
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func conversation(turns int) []types.ChatMessage {
	msgs := make([]types.ChatMessage, turns)
	for i := range msgs {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		msgs[i] = types.ChatMessage{Role: role, Content: fmt.Sprintf("turn %d", i)}
	}
	return msgs
}

func TestContinue_ProposeTurn(t *testing.T) {
	fc := &fakeCompleter{response: `{
		"next_action": "propose",
		"reply_message": "A few angles to pick from.",
		"options": [
			{"label": "Cognitive Development", "description": "Thinking and language."},
			{"label": "Mental Health", "description": "Emotion regulation."}
		]
	}`}
	iv := New(fc, nil)

	got, err := iv.Continue(context.Background(), conversation(1))

	require.NoError(t, err)
	assert.Equal(t, types.ActionPropose, got.Action)
	assert.Len(t, got.Options, 2)
	assert.True(t, fc.lastReq.JSONMode)
	assert.Len(t, fc.lastReq.Messages, 1)
}

func TestContinue_FinalizeTurn(t *testing.T) {
	fc := &fakeCompleter{response: `{
		"next_action": "finalize",
		"reply_message": "Here is the plan.",
		"final_keywords": "screen time speech delay toddler developmental psychology"
	}`}
	iv := New(fc, nil)

	got, err := iv.Continue(context.Background(), conversation(5))

	require.NoError(t, err)
	assert.Equal(t, types.ActionFinalize, got.Action)
	assert.Equal(t, "screen time speech delay toddler developmental psychology", got.FinalKeywords)
}

func TestContinue_FinalizeWithoutKeywords(t *testing.T) {
	fc := &fakeCompleter{response: `{"next_action": "finalize", "reply_message": "done"}`}
	iv := New(fc, nil)

	_, err := iv.Continue(context.Background(), conversation(5))

	assert.Error(t, err)
}

func TestContinue_UnknownAction(t *testing.T) {
	fc := &fakeCompleter{response: `{"next_action": "ponder", "reply_message": "hmm"}`}
	iv := New(fc, nil)

	_, err := iv.Continue(context.Background(), conversation(3))

	assert.Error(t, err)
}

func TestContinue_TurnSteering(t *testing.T) {
	tests := []struct {
		name   string
		turns  int
		nudged bool
		forced bool
	}{
		{"short conversation", 3, false, false},
		{"long conversation nudges", 7, true, false},
		{"max turns forces finalize", 10, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{response: `{"next_action": "probe", "reply_message": "q"}`}
			iv := New(fc, nil)

			_, err := iv.Continue(context.Background(), conversation(tt.turns))

			require.NoError(t, err)
			assert.Equal(t, tt.nudged, strings.Contains(fc.lastReq.System, "Consider finalizing"))
			assert.Equal(t, tt.forced, strings.Contains(fc.lastReq.System, "MAX TURNS REACHED"))
		})
	}
}

func TestContinue_NoCompleter(t *testing.T) {
	iv := New(nil, nil)
	_, err := iv.Continue(context.Background(), conversation(1))
	assert.ErrorIs(t, err, llm.ErrMissingCredentials)
}
