package question

import (
	"encoding/json"
	"strings"
)

const delimiter = "`"

// ExtractDelimitedSegment returns the text between the first pair of
// backticks, or "" when the text has fewer than two backticks.
func ExtractDelimitedSegment(text string) string {
	parts := strings.Split(text, delimiter)
	if len(parts) >= 3 {
		return parts[1]
	}
	return ""
}

// ExtractJSONSegment scans every backtick-enclosed span and returns the
// first one holding a JSON object. A leading "json" fence tag is dropped.
// When no span parses it returns the first non-empty span, so a malformed
// fenced object still reaches the JSON parser.
func ExtractJSONSegment(text string) string {
	parts := strings.Split(text, delimiter)
	if len(parts) < 3 {
		return ""
	}

	fallback := ""
	// Odd indexes are enclosed; the last part never has a closing backtick.
	for i := 1; i < len(parts)-1; i += 2 {
		candidate := strings.TrimSpace(parts[i])
		candidate = strings.TrimSpace(strings.TrimPrefix(candidate, "json"))
		if isJSONObject(candidate) {
			return candidate
		}
		if fallback == "" {
			fallback = candidate
		}
	}
	return fallback
}

func isJSONObject(s string) bool {
	if !strings.HasPrefix(s, "{") {
		return false
	}
	var obj map[string]json.RawMessage
	return json.Unmarshal([]byte(s), &obj) == nil
}
