package provider

import (
	"context"

	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/types"
)

// LanguageModel defines the interface that all LLM providers must implement
type LanguageModel interface {
	// Generate produces a complete response (blocking)
	Generate(ctx context.Context, req GenerateRequest) (*types.GenerateResponse, error)

	// ID returns the unique identifier for this model
	ID() string
}

// GenerateRequest contains all parameters for generating text
type GenerateRequest struct {
	// Messages is the conversation history
	Messages []types.Message `json:"messages"`

	// System is an optional system prompt
	System string `json:"system,omitempty"`

	// Temperature controls randomness (0.0 to 2.0). Nil leaves the provider default.
	Temperature *float32 `json:"temperature,omitempty"`

	// MaxTokens is the maximum number of tokens to generate
	MaxTokens int `json:"max_tokens,omitempty"`

	// ResponseFormat asks the provider to enforce an output shape, if it can
	ResponseFormat types.ResponseFormat `json:"response_format,omitempty"`
}

// Float32 returns a pointer to v, for optional request settings.
func Float32(v float32) *float32 {
	return &v
}
