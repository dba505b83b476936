package validators

import "strings"

// SanitizeString trims whitespace and strips control characters.
func SanitizeString(value string) string {
	value = strings.TrimSpace(value)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, value)
}
