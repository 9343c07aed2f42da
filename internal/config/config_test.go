package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/flowbaker/ticket-classifier/pkg/classifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, envVar := range envMappings {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}

	// Keep the default search paths away from any real config file
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	config, _, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":8000", config.HTTPAddress)
	assert.Equal(t, "gemini-1.5-flash", config.GeminiModel)
	assert.Equal(t, "gpt-4o-mini", config.OpenAIModel)
	assert.Equal(t, 30*time.Second, config.ClassifyTimeout)
	assert.Empty(t, config.GeminiAPIKey)
	assert.Empty(t, config.OpenAIAPIKey)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("GOOGLE_API_KEY", "AIza-env")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("CLASSIFY_TIMEOUT", "5s")

	config, _, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":9090", config.HTTPAddress)
	assert.Equal(t, "AIza-env", config.GeminiAPIKey)
	assert.Equal(t, "gpt-4o", config.OpenAIModel)
	assert.Equal(t, 5*time.Second, config.ClassifyTimeout)
	assert.Equal(t, classifier.Models{Gemini: "gemini-1.5-flash", OpenAI: "gpt-4o", Anthropic: "claude-3-5-haiku-latest"}, config.Models())
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "classifier.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openaiapikey: sk-file\ngeminimodel: gemini-2.0-flash\n"), 0o600))

	config, loader, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "sk-file", config.OpenAIAPIKey)
	assert.Equal(t, "gemini-2.0-flash", config.GeminiModel)
	assert.Equal(t, "sk-file", loader.LiveCredentials().Credentials().OpenAI)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, _, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_NegativeTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLASSIFY_TIMEOUT", "-1s")

	_, _, err := Load(Options{})
	assert.Error(t, err)
}

func TestLiveCredentials_ReflectEnvironmentChanges(t *testing.T) {
	clearEnv(t)

	_, loader, err := Load(Options{})
	require.NoError(t, err)

	source := loader.LiveCredentials()
	assert.Equal(t, classifier.Credentials{}, source.Credentials())

	t.Setenv("GOOGLE_API_KEY", "AIza-live")
	t.Setenv("OPENAI_API_KEY", "sk-live")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-live")

	assert.Equal(t, classifier.Credentials{
		Gemini:    "AIza-live",
		OpenAI:    "sk-live",
		Anthropic: "sk-ant-live",
	}, source.Credentials())
}

func TestLiveCredentials_WatchedFileUnderConcurrentReads(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "classifier.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geminiapikey: AIza-before\nopenaiapikey: sk-file\n"), 0o600))

	_, loader, err := Load(Options{ConfigFile: path, Watch: true})
	require.NoError(t, err)

	source := loader.LiveCredentials()
	require.Equal(t, "AIza-before", source.Credentials().Gemini)

	done := make(chan struct{})
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					_ = source.Credentials()
				}
			}
		}()
	}

	require.NoError(t, os.WriteFile(path, []byte("geminiapikey: AIza-after\nopenaiapikey: sk-file\n"), 0o600))

	require.Eventually(t, func() bool {
		return source.Credentials().Gemini == "AIza-after"
	}, 5*time.Second, 20*time.Millisecond)

	close(done)
	wg.Wait()

	t.Setenv("OPENAI_API_KEY", "sk-env")
	assert.Equal(t, classifier.Credentials{Gemini: "AIza-after", OpenAI: "sk-env"}, source.Credentials())
}
