package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCredentials(t *testing.T) {
	tests := []struct {
		name     string
		raw      Credentials
		expected Credentials
		rescued  bool
	}{
		{
			name:     "none",
			raw:      Credentials{},
			expected: Credentials{},
		},
		{
			name:     "both set",
			raw:      Credentials{Gemini: "AIza-gemini", OpenAI: "sk-openai"},
			expected: Credentials{Gemini: "AIza-gemini", OpenAI: "sk-openai"},
		},
		{
			name:     "google key in openai slot",
			raw:      Credentials{OpenAI: "AIzaSyExample"},
			expected: Credentials{Gemini: "AIzaSyExample"},
			rescued:  true,
		},
		{
			name:     "google key in openai slot with gemini set",
			raw:      Credentials{Gemini: "AIza-primary", OpenAI: "AIza-secondary"},
			expected: Credentials{Gemini: "AIza-primary", OpenAI: "AIza-secondary"},
		},
		{
			name:     "openai key only",
			raw:      Credentials{OpenAI: "sk-openai"},
			expected: Credentials{OpenAI: "sk-openai"},
		},
		{
			name:     "whitespace counts as empty",
			raw:      Credentials{Gemini: "  ", OpenAI: " AIzaSyExample\n", Anthropic: "\t"},
			expected: Credentials{Gemini: "AIzaSyExample"},
			rescued:  true,
		},
		{
			name:     "anthropic untouched",
			raw:      Credentials{Anthropic: "sk-ant"},
			expected: Credentials{Anthropic: "sk-ant"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, rescued := ResolveCredentials(tt.raw)
			assert.Equal(t, tt.expected, resolved)
			assert.Equal(t, tt.rescued, rescued)
		})
	}
}
