package utils

import "strings"

// StripCodeFences removes markdown fences the model wraps JSON in.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ExtractJSONArray returns the span from the first '[' to the last ']' of
// the fence-stripped text, dropping any prose around the array. When no
// such span exists the stripped text is returned unchanged; callers that
// parse it will then report malformed output.
func ExtractJSONArray(raw string) string {
	s := StripCodeFences(raw)
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}
