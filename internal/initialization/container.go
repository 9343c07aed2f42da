package initialization

import (
	"github.com/flowbaker/ticket-classifier/internal/config"
	"github.com/flowbaker/ticket-classifier/internal/controllers"
	"github.com/flowbaker/ticket-classifier/internal/server"
	"github.com/flowbaker/ticket-classifier/pkg/classifier"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// ClassifierContainer wires configuration into the classifier and the HTTP server
type ClassifierContainer struct {
	config *config.Config
	loader *config.Loader
}

func NewClassifierContainer(opts config.Options) (*ClassifierContainer, error) {
	cfg, loader, err := config.Load(opts)
	if err != nil {
		return nil, err
	}

	return &ClassifierContainer{
		config: cfg,
		loader: loader,
	}, nil
}

func (c *ClassifierContainer) GetConfig() *config.Config {
	return c.config
}

// BuildClassifier returns a classifier that reads provider keys live from configuration
func (c *ClassifierContainer) BuildClassifier() *classifier.Classifier {
	log.Debug().
		Str("gemini_model", c.config.GeminiModel).
		Str("openai_model", c.config.OpenAIModel).
		Str("anthropic_model", c.config.AnthropicModel).
		Msg("Building classifier")

	return classifier.New(classifier.ClassifierDependencies{
		Credentials: c.loader.LiveCredentials(),
		Strategies:  classifier.DefaultStrategies(c.config.Models()),
	})
}

func (c *ClassifierContainer) BuildHTTPServer() *fiber.App {
	classifyController := controllers.NewClassifyController(controllers.ClassifyControllerDependencies{
		Classifier: c.BuildClassifier(),
		Timeout:    c.config.ClassifyTimeout,
	})

	return server.NewHTTPServer(server.HTTPServerDependencies{
		ClassifyController: classifyController,
	})
}
