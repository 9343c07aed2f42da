package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/types"
)

const (
	DefaultModel = "claude-3-5-haiku-latest"

	// Anthropic requires max_tokens
	defaultMaxTokens = 1024
)

// Provider implements the LanguageModel interface for Anthropic Claude
type Provider struct {
	client anthropic.Client
	model  string
}

// Config holds Anthropic-specific configuration
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// New creates a new Anthropic provider
func New(apiKey, model string) (*Provider, error) {
	return NewWithConfig(Config{
		APIKey: apiKey,
		Model:  model,
	})
}

// NewWithConfig creates a new Anthropic provider with custom configuration
func NewWithConfig(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, types.ErrMissingAPIKey
	}

	if config.Model == "" {
		config.Model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Provider{
		client: anthropic.NewClient(opts...),
		model:  config.Model,
	}, nil
}

// ID returns the model identifier
func (p *Provider) ID() string {
	return fmt.Sprintf("anthropic:%s", p.model)
}

// Generate implements the Generate method of the LanguageModel interface.
// ResponseFormat is ignored; Claude has no JSON mode.
func (p *Provider) Generate(ctx context.Context, req provider.GenerateRequest) (*types.GenerateResponse, error) {
	msgReq := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		Messages:  convertMessages(req.Messages),
		MaxTokens: defaultMaxTokens,
	}

	if len(msgReq.Messages) == 0 {
		return nil, types.ErrInvalidMessage
	}

	if req.System != "" {
		msgReq.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	if req.MaxTokens > 0 {
		msgReq.MaxTokens = int64(req.MaxTokens)
	}

	if req.Temperature != nil {
		msgReq.Temperature = anthropic.Float(float64(*req.Temperature))
	}

	resp, err := p.client.Messages.New(ctx, msgReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return nil, types.ErrEmptyResponse
	}

	return &types.GenerateResponse{
		Content:      text.String(),
		Model:        string(resp.Model),
		FinishReason: string(resp.StopReason),
		Usage: types.Usage{
			PromptTokens:      int(resp.Usage.InputTokens),
			CompletionTokens:  int(resp.Usage.OutputTokens),
			TotalTokens:       int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
			CachedInputTokens: int(resp.Usage.CacheReadInputTokens),
		},
	}, nil
}

func convertMessages(messages []types.Message) []anthropic.MessageParam {
	var result []anthropic.MessageParam

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}

		switch msg.Role {
		case types.RoleUser:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case types.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return result
}
