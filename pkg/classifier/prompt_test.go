package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("I was charged twice")

	assert.Contains(t, prompt, "Available Categories: billing, technical, account, general")
	assert.Contains(t, prompt, "Available Priorities: low, medium, high, critical")
	assert.Contains(t, prompt, `"suggested_category" and "suggested_priority"`)
	assert.Contains(t, prompt, "Description: I was charged twice")
}
