// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// InterviewAction is the tagged outcome of one interview turn. The LLM
// response is validated against these tags at the boundary; anything
// else is rejected rather than defaulted.
type InterviewAction string

const (
	// ActionProbe asks the user a clarifying question.
	ActionProbe InterviewAction = "probe"

	// ActionPropose offers 2-3 research angle options.
	ActionPropose InterviewAction = "propose"

	// ActionFinalize ends the interview with search keywords.
	ActionFinalize InterviewAction = "finalize"
)

// ParseInterviewAction validates an action tag from a structured LLM response.
func ParseInterviewAction(s string) (InterviewAction, error) {
	switch a := InterviewAction(s); a {
	case ActionProbe, ActionPropose, ActionFinalize:
		return a, nil
	default:
		return "", fmt.Errorf("unknown interview action %q", s)
	}
}

// ChatMessage is one turn of the interview conversation.
type ChatMessage struct {
	// Role is "user" or "assistant".
	Role string `json:"role"`

	Content string `json:"content"`
}

// ResearchOption is one proposed research angle.
type ResearchOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// InterviewTurn is the validated result of one interview exchange.
type InterviewTurn struct {
	Action InterviewAction `json:"next_action"`

	ReplyMessage string `json:"reply_message"`

	// Options is populated only for ActionPropose.
	Options []ResearchOption `json:"options,omitempty"`

	// FinalKeywords is populated only for ActionFinalize.
	FinalKeywords string `json:"final_keywords,omitempty"`
}
