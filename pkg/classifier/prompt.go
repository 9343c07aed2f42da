package classifier

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are a support ticket classification assistant.
Analyze the following support ticket description and suggest the most appropriate category and priority level.

Available Categories: %s
Available Priorities: %s

Response must be ONLY a valid JSON object with keys: "suggested_category" and "suggested_priority".

Description: %s`

// BuildPrompt renders the instruction sent to every provider.
func BuildPrompt(description string) string {
	categories := make([]string, len(Categories))
	for i, c := range Categories {
		categories[i] = string(c)
	}

	priorities := make([]string, len(Priorities))
	for i, p := range Priorities {
		priorities[i] = string(p)
	}

	return fmt.Sprintf(promptTemplate, strings.Join(categories, ", "), strings.Join(priorities, ", "), description)
}
