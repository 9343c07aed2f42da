package classifier

import "strings"

// GeminiKeyPrefix is the prefix every Google API key starts with.
const GeminiKeyPrefix = "AIza"

// Credentials holds the API key for each provider slot. Empty means the
// provider is unavailable.
type Credentials struct {
	Gemini    string
	OpenAI    string
	Anthropic string
}

// CredentialSource returns the currently configured keys. It is consulted on
// every Classify call, so implementations should read live configuration.
type CredentialSource interface {
	Credentials() Credentials
}

// StaticCredentials is a CredentialSource with fixed keys.
type StaticCredentials Credentials

func (s StaticCredentials) Credentials() Credentials {
	return Credentials(s)
}

// ResolveCredentials trims every slot and moves a Google key that was pasted
// into the OpenAI slot over to the Gemini slot when the Gemini slot is empty.
// The second return value reports whether that move happened.
func ResolveCredentials(raw Credentials) (Credentials, bool) {
	resolved := Credentials{
		Gemini:    strings.TrimSpace(raw.Gemini),
		OpenAI:    strings.TrimSpace(raw.OpenAI),
		Anthropic: strings.TrimSpace(raw.Anthropic),
	}

	if resolved.Gemini == "" && strings.HasPrefix(resolved.OpenAI, GeminiKeyPrefix) {
		resolved.Gemini = resolved.OpenAI
		resolved.OpenAI = ""
		return resolved, true
	}

	return resolved, false
}
