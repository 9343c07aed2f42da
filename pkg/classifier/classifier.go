package classifier

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Classifier runs the provider chain and the keyword fallback. It keeps no
// state between calls and is safe for concurrent use.
type Classifier struct {
	credentials CredentialSource
	strategies  []Strategy
	logger      zerolog.Logger
}

type ClassifierDependencies struct {
	Credentials CredentialSource

	// Strategies are tried in order. Nil means DefaultStrategies with default models.
	Strategies []Strategy

	// Logger defaults to the global zerolog logger
	Logger *zerolog.Logger
}

func New(deps ClassifierDependencies) *Classifier {
	credentials := deps.Credentials
	if credentials == nil {
		credentials = StaticCredentials{}
	}

	strategies := deps.Strategies
	if strategies == nil {
		strategies = DefaultStrategies(Models{})
	}

	logger := log.Logger
	if deps.Logger != nil {
		logger = *deps.Logger
	}

	return &Classifier{
		credentials: credentials,
		strategies:  strategies,
		logger:      logger,
	}
}

// Classify always returns a result. Provider failures are logged and the
// next strategy is tried; the keyword fallback answers when every provider
// is unavailable or fails.
func (c *Classifier) Classify(ctx context.Context, description string) Result {
	logger := c.logger.With().Str("classification_id", uuid.NewString()).Logger()

	creds, rescued := ResolveCredentials(c.credentials.Credentials())
	if rescued {
		logger.Debug().Msg("Google API key found in the OpenAI slot, using it for Gemini")
	}

	for _, strategy := range c.strategies {
		outcome := strategy.Attempt(ctx, description, creds)

		switch outcome.Status {
		case OutcomeSuccess:
			if !outcome.Result.Valid() {
				logger.Warn().
					Str("strategy", strategy.Name()).
					Str("suggested_category", string(outcome.Result.SuggestedCategory)).
					Str("suggested_priority", string(outcome.Result.SuggestedPriority)).
					Msg("Provider suggested a value outside the known categories or priorities")
			}

			logger.Info().Str("strategy", strategy.Name()).Msg("Ticket classified")
			return outcome.Result

		case OutcomeFailed:
			logger.Warn().Err(outcome.Err).Str("strategy", strategy.Name()).Msg("Provider classification failed")

		default:
			logger.Debug().Str("strategy", strategy.Name()).Msg("Provider skipped, no API key")
		}
	}

	logger.Info().Str("strategy", "keyword_fallback").Msg("Ticket classified")

	return Fallback(description)
}
