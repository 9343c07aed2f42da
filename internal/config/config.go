package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider/anthropic"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider/gemini"
	"github.com/flowbaker/ticket-classifier/pkg/ai-sdk/provider/openai"
	"github.com/flowbaker/ticket-classifier/pkg/classifier"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the classifier service configuration
type Config struct {
	HTTPAddress string

	// Provider credentials. Read through LiveCredentials at request time;
	// the values here are a snapshot taken by Load.
	GeminiAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	GeminiModel    string
	OpenAIModel    string
	AnthropicModel string

	// ClassifyTimeout bounds a single HTTP classification request. Zero disables it.
	ClassifyTimeout time.Duration
}

// Set up explicit mappings between struct fields and environment variables
var envMappings = map[string]string{
	"HTTPAddress":     "HTTP_ADDRESS",
	"GeminiAPIKey":    "GOOGLE_API_KEY",
	"OpenAIAPIKey":    "OPENAI_API_KEY",
	"AnthropicAPIKey": "ANTHROPIC_API_KEY",
	"GeminiModel":     "GEMINI_MODEL",
	"OpenAIModel":     "OPENAI_MODEL",
	"AnthropicModel":  "ANTHROPIC_MODEL",
	"ClassifyTimeout": "CLASSIFY_TIMEOUT",
}

// Options control where Load looks for a config file
type Options struct {
	// ConfigFile is an explicit path. When empty the default search paths are used.
	ConfigFile string

	// Watch re-reads the config file when it changes on disk
	Watch bool
}

// Loader keeps the provider keys of a loaded Config current.
// Viper itself is never read after Load returns: its watcher rewrites the
// instance's maps without locking.
type Loader struct {
	configFile string
	file       atomic.Pointer[classifier.Credentials]
}

// Load loads configuration from files and environment variables
func Load(opts Options) (*Config, *Loader, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("classifier_config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.ticket-classifier")
	}

	loader := &Loader{}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.ConfigFile != "" {
			return nil, nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		loader.configFile = v.ConfigFileUsed()
		log.Info().Msgf("Using config file: %s", loader.configFile)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, nil, err
	}

	if loader.configFile != "" {
		if err := loader.reloadFileCredentials(); err != nil {
			return nil, nil, err
		}

		if opts.Watch {
			v.OnConfigChange(func(e fsnotify.Event) {
				log.Info().Str("file", e.Name).Msg("Config file changed")

				if err := loader.reloadFileCredentials(); err != nil {
					log.Warn().Err(err).Msg("Keeping previous provider keys")
				}
			})
			v.WatchConfig()
		}
	}

	log.Debug().
		Str("http_address", config.HTTPAddress).
		Bool("gemini_key_set", config.GeminiAPIKey != "").
		Bool("openai_key_set", config.OpenAIAPIKey != "").
		Bool("anthropic_key_set", config.AnthropicAPIKey != "").
		Msg("Config loaded")

	return &config, loader, nil
}

// reloadFileCredentials reads the provider keys from the config file with a
// private viper instance and publishes them for LiveCredentials.
func (l *Loader) reloadFileCredentials() error {
	v := viper.New()
	v.SetConfigFile(l.configFile)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	l.file.Store(&classifier.Credentials{
		Gemini:    v.GetString("GeminiAPIKey"),
		OpenAI:    v.GetString("OpenAIAPIKey"),
		Anthropic: v.GetString("AnthropicAPIKey"),
	})

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8000")
	v.SetDefault("GeminiModel", gemini.DefaultModel)
	v.SetDefault("OpenAIModel", openai.DefaultModel)
	v.SetDefault("AnthropicModel", anthropic.DefaultModel)
	v.SetDefault("ClassifyTimeout", 30*time.Second)
}

func validateConfig(config *Config) error {
	if config.HTTPAddress == "" {
		return fmt.Errorf("HTTP_ADDRESS must not be empty")
	}

	if config.ClassifyTimeout < 0 {
		return fmt.Errorf("CLASSIFY_TIMEOUT must not be negative, got %s", config.ClassifyTimeout)
	}

	return nil
}

// Models returns the model name for each provider
func (c *Config) Models() classifier.Models {
	return classifier.Models{
		Gemini:    c.GeminiModel,
		OpenAI:    c.OpenAIModel,
		Anthropic: c.AnthropicModel,
	}
}

// LiveCredentials resolves the provider keys on every call, so changes to
// the environment or a watched config file apply to the next classification
// without a restart. A non-empty environment variable wins over the file.
func (l *Loader) LiveCredentials() classifier.CredentialSource {
	return liveCredentials{loader: l}
}

type liveCredentials struct {
	loader *Loader
}

func (c liveCredentials) Credentials() classifier.Credentials {
	var file classifier.Credentials
	if snapshot := c.loader.file.Load(); snapshot != nil {
		file = *snapshot
	}

	return classifier.Credentials{
		Gemini:    envOr(envMappings["GeminiAPIKey"], file.Gemini),
		OpenAI:    envOr(envMappings["OpenAIAPIKey"], file.OpenAI),
		Anthropic: envOr(envMappings["AnthropicAPIKey"], file.Anthropic),
	}
}

func envOr(envVar, fallback string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}

	return fallback
}
