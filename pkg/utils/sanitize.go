package utils

import (
	"html"
	"strings"
)

// SanitizeString trims whitespace and escapes HTML entities in free-text
// fields before they reach the store.
func SanitizeString(input string) string {
	trimmed := strings.TrimSpace(input)

	return html.EscapeString(trimmed)
}
