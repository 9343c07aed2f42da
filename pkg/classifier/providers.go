package classifier

import (
	"context"

	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider/anthropic"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider/gemini"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider/openai"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/types"
)

// Models names the model used for each provider. Empty fields use the
// provider default.
type Models struct {
	Gemini    string
	OpenAI    string
	Anthropic string
}

// DefaultStrategies returns the provider chain: Gemini, then OpenAI, then
// Anthropic. While ANTHROPIC_API_KEY is unset the Anthropic strategy reports
// Unavailable and the chain is exactly Gemini, OpenAI, keyword fallback.
// Setting it adds a third provider call before the fallback.
func DefaultStrategies(models Models) []Strategy {
	return []Strategy{
		GeminiStrategy(models.Gemini),
		OpenAIStrategy(models.OpenAI),
		AnthropicStrategy(models.Anthropic),
	}
}

// GeminiStrategy returns free-form text, often wrapped in a json code fence.
func GeminiStrategy(model string) *ProviderStrategy {
	return NewProviderStrategy(ProviderStrategyConfig{
		Name:       "gemini",
		Credential: func(c Credentials) string { return c.Gemini },
		NewModel: func(ctx context.Context, apiKey string) (provider.LanguageModel, error) {
			p, err := gemini.New(ctx, apiKey, model)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		ResponseFormat: types.ResponseFormatText,
		StripFences:    true,
	})
}

// OpenAIStrategy relies on the provider's JSON mode.
func OpenAIStrategy(model string) *ProviderStrategy {
	return NewProviderStrategy(ProviderStrategyConfig{
		Name:       "openai",
		Credential: func(c Credentials) string { return c.OpenAI },
		NewModel: func(_ context.Context, apiKey string) (provider.LanguageModel, error) {
			p, err := openai.New(apiKey, model)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		ResponseFormat: types.ResponseFormatJSONObject,
	})
}

func AnthropicStrategy(model string) *ProviderStrategy {
	return NewProviderStrategy(ProviderStrategyConfig{
		Name:       "anthropic",
		Credential: func(c Credentials) string { return c.Anthropic },
		NewModel: func(_ context.Context, apiKey string) (provider.LanguageModel, error) {
			p, err := anthropic.New(apiKey, model)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		ResponseFormat: types.ResponseFormatText,
		StripFences:    true,
	})
}
