package classifier

import (
	"context"
	"fmt"

	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/types"
)

// Strategy is one step of the classification chain.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, description string, creds Credentials) Outcome
}

// ModelFactory builds a language model client for a single attempt.
type ModelFactory func(ctx context.Context, apiKey string) (provider.LanguageModel, error)

// ProviderStrategy asks an LLM provider for a classification.
type ProviderStrategy struct {
	name           string
	credential     func(Credentials) string
	newModel       ModelFactory
	responseFormat types.ResponseFormat
	stripFences    bool
}

type ProviderStrategyConfig struct {
	Name string

	// Credential picks this provider's key out of the resolved credentials
	Credential func(Credentials) string

	NewModel ModelFactory

	// ResponseFormat is requested from the provider. Providers that cannot
	// enforce it ignore it.
	ResponseFormat types.ResponseFormat

	// StripFences removes markdown code fences before decoding
	StripFences bool
}

func NewProviderStrategy(config ProviderStrategyConfig) *ProviderStrategy {
	return &ProviderStrategy{
		name:           config.Name,
		credential:     config.Credential,
		newModel:       config.NewModel,
		responseFormat: config.ResponseFormat,
		stripFences:    config.StripFences,
	}
}

func (s *ProviderStrategy) Name() string {
	return s.name
}

// Attempt never panics or returns an error: missing keys yield Unavailable
// and every other problem yields Failed.
func (s *ProviderStrategy) Attempt(ctx context.Context, description string, creds Credentials) (outcome Outcome) {
	apiKey := s.credential(creds)
	if apiKey == "" {
		return Unavailable()
	}

	defer func() {
		if r := recover(); r != nil {
			outcome = Failed(fmt.Errorf("%w: %s: panic: %v", ErrProviderLogic, s.name, r))
		}
	}()

	model, err := s.newModel(ctx, apiKey)
	if err != nil {
		return Failed(fmt.Errorf("%w: %s: %w", ErrProviderLogic, s.name, err))
	}

	resp, err := model.Generate(ctx, provider.GenerateRequest{
		Messages:       []types.Message{types.NewUserMessage(BuildPrompt(description))},
		Temperature:    provider.Float32(0),
		ResponseFormat: s.responseFormat,
	})
	if err != nil {
		return Failed(fmt.Errorf("%w: %s: %w", ErrProviderTransport, model.ID(), err))
	}

	content := resp.Content
	if s.stripFences {
		content = StripFences(content)
	}

	result, err := DecodeResult(content)
	if err != nil {
		return Failed(fmt.Errorf("%s: %w", model.ID(), err))
	}

	return Succeeded(result)
}
