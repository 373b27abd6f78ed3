// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm wraps the OpenAI-compatible chat-completion provider
// behind a small request/response surface. Stage packages declare their
// own Completer interfaces so tests can supply fakes.
package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// ErrMissingCredentials reports an absent API key. Stages that need the
// LLM check for it eagerly at entry instead of degrading silently.
var ErrMissingCredentials = errors.New("llm: API key not configured")

// DefaultBaseURL is the Groq OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the chat model used when config leaves it unset.
const DefaultModel = "llama-3.3-70b-versatile"

// Message is one chat turn.
type Message struct {
	// Role is "system", "user", or "assistant".
	Role    string
	Content string
}

// Request describes one chat completion.
type Request struct {
	// System is prepended as the system message when non-empty.
	System string

	// Messages are the remaining conversation turns, oldest first.
	Messages []Message

	// JSONMode constrains the response to a single JSON object.
	JSONMode bool

	// Temperature controls sampling; zero means provider default.
	Temperature float32
}

// Client calls the chat-completion provider.
type Client struct {
	api   *openai.Client
	model string
	log   *zap.Logger
}

// New builds a client from config. It returns ErrMissingCredentials
// when no API key is configured, so callers fail at startup rather than
// mid-pipeline.
func New(cfg types.LLMConfig, log *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL

	return &Client{
		api:   openai.NewClientWithConfig(apiCfg),
		model: cfg.Model,
		log:   log,
	}, nil
}

// Complete sends one chat completion and returns the raw response text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.JSONMode {
		apiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: provider returned no choices")
	}

	content := resp.Choices[0].Message.Content
	c.log.Debug("chat completion",
		zap.String("model", c.model),
		zap.Bool("json_mode", req.JSONMode),
		zap.Int("response_chars", len(content)))
	return content, nil
}
