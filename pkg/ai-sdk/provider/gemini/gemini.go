package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/types"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

// Provider implements the LanguageModel interface for Google Gemini
type Provider struct {
	client *genai.Client
	model  string
}

// Config holds Gemini-specific configuration
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the Gemini API endpoint
	BaseURL string
}

// New creates a new Gemini provider
func New(ctx context.Context, apiKey, model string) (*Provider, error) {
	return NewWithConfig(ctx, Config{
		APIKey: apiKey,
		Model:  model,
	})
}

// NewWithConfig creates a new Gemini provider with custom configuration
func NewWithConfig(ctx context.Context, config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, types.ErrMissingAPIKey
	}

	if config.Model == "" {
		config.Model = DefaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}

	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Provider{
		client: client,
		model:  config.Model,
	}, nil
}

// Generate implements the Generate method of the LanguageModel interface
func (p *Provider) Generate(ctx context.Context, req provider.GenerateRequest) (*types.GenerateResponse, error) {
	config := &genai.GenerateContentConfig{}

	if req.Temperature != nil {
		config.Temperature = genai.Ptr(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.ResponseFormat == types.ResponseFormatJSONObject {
		config.ResponseMIMEType = "application/json"
	}

	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(req.System)},
		}
	}

	contents := convertMessages(req.Messages)
	if len(contents) == 0 {
		return nil, types.ErrInvalidMessage
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini api error: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, types.ErrEmptyResponse
	}

	candidate := resp.Candidates[0]

	response := &types.GenerateResponse{
		FinishReason: mapFinishReason(candidate.FinishReason),
		Model:        p.model,
	}

	if resp.UsageMetadata != nil {
		response.Usage = types.Usage{
			PromptTokens:      int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens:  int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:       int(resp.UsageMetadata.TotalTokenCount),
			CachedInputTokens: int(resp.UsageMetadata.CachedContentTokenCount),
		}
	}

	if candidate.Content != nil {
		var text strings.Builder
		for _, part := range candidate.Content.Parts {
			text.WriteString(part.Text)
		}
		response.Content = text.String()
	}

	if strings.TrimSpace(response.Content) == "" {
		return nil, types.ErrEmptyResponse
	}

	return response, nil
}

// ID returns the model identifier
func (p *Provider) ID() string {
	return fmt.Sprintf("gemini:%s", p.model)
}

// convertMessages converts types.Message to Gemini content format
func convertMessages(messages []types.Message) []*genai.Content {
	var result []*genai.Content

	for _, msg := range messages {
		// System messages go through SystemInstruction
		if msg.Role == types.RoleSystem || msg.Content == "" {
			continue
		}

		// Gemini uses "user" or "model"
		role := genai.RoleUser
		if msg.Role == types.RoleAssistant {
			role = genai.RoleModel
		}

		result = append(result, genai.NewContentFromText(msg.Content, genai.Role(role)))
	}

	return result
}

// mapFinishReason maps Gemini finish reasons to standard format
func mapFinishReason(reason genai.FinishReason) string {
	switch reason {
	case genai.FinishReasonMaxTokens:
		return types.FinishReasonLength
	case genai.FinishReasonSafety, genai.FinishReasonRecitation:
		return types.FinishReasonContentFilter
	default:
		return types.FinishReasonStop
	}
}
