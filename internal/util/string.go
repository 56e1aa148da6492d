package util

import "strings"

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseWhitespace reduces any run of whitespace to a single space and
// trims the ends. Splitting and rejoining keeps token boundaries intact.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveAll deletes every occurrence of the given tokens from s.
// Spacing is left as-is; callers collapse whitespace afterwards.
func RemoveAll(s string, tokens ...string) string {
	for _, token := range tokens {
		if token == "" {
			continue
		}
		s = strings.ReplaceAll(s, token, "")
	}
	return s
}

// SplitTokens splits on any whitespace and drops empty tokens.
func SplitTokens(s string) []string {
	return strings.Fields(s)
}

// Contains checks if a string slice contains a specific item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
