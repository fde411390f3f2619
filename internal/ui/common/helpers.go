package common

import "strings"

// TruncateName trims name and shortens it to at most maxLen runes, marking the
// cut with an ellipsis.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}
