// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request budget (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the descriptive User-Agent header sent with requests.
	// The search provider blocks requests without one.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScholarConfig holds settings for the academic search client.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional Semantic Scholar key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the default result limit per query (default 15).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// RequestsPerSecond throttles outbound search calls (default 1).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// TranscriptDir, when set, receives a raw copy of each provider
	// response for debugging. Not part of core correctness.
	TranscriptDir string `json:"transcript_dir,omitempty" yaml:"transcript_dir,omitempty"`
}

// ReaderConfig holds settings for the content-extraction service.
type ReaderConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the reader endpoint prefix; the target URL is appended.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is an optional bearer token for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxPapers bounds how many papers get live fetch attempts per batch
	// (default 8); the rest fall back to their abstracts.
	MaxPapers int `json:"max_papers" yaml:"max_papers"`
}

// LLMConfig holds settings for the chat-completion provider.
type LLMConfig struct {
	// BaseURL is the OpenAI-compatible endpoint base.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the model identifier (e.g. "llama-3.3-70b-versatile").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates requests. Stages that need the LLM fail
	// eagerly with a configuration error when it is absent.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// StoreConfig holds settings for the document store.
type StoreConfig struct {
	// Path is the SQLite database file (default "blueprint.db").
	Path string `json:"path" yaml:"path"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// FrontendURL is added to the CORS allow list.
	FrontendURL string `json:"frontend_url" yaml:"frontend_url"`
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Scholar ScholarConfig `json:"scholar" yaml:"scholar"`
	Reader  ReaderConfig  `json:"reader" yaml:"reader"`
	LLM     LLMConfig     `json:"llm" yaml:"llm"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}
