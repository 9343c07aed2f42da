package classifier

import "strings"

const (
	fenceMarker     = "```"
	jsonFenceMarker = "```json"
)

// StripFences extracts the payload from a markdown code fence. A json-tagged
// fence wins over a plain one; the payload ends at the next fence marker or at
// the end of the text. Text without fences is returned trimmed.
func StripFences(text string) string {
	marker := ""
	switch {
	case strings.Contains(text, jsonFenceMarker):
		marker = jsonFenceMarker
	case strings.Contains(text, fenceMarker):
		marker = fenceMarker
	default:
		return strings.TrimSpace(text)
	}

	_, after, _ := strings.Cut(text, marker)
	inner, _, _ := strings.Cut(after, fenceMarker)

	return strings.TrimSpace(inner)
}
