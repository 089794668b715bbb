// Package textutil extracts structured payloads from model output that may be
// wrapped in markdown fences or surrounding prose.
package textutil

import (
	"errors"
	"strings"
)

var (
	ErrEmptyText   = errors.New("text is empty")
	ErrNoJSONFound = errors.New("no JSON object found in text")
)

// ExtractJSONObject returns the first balanced top-level {...} block in text.
// Markdown code fences (```json ... ```) are stripped before scanning, and any
// prose around the object is ignored.
func ExtractJSONObject(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}

	candidate := trimmed
	if strings.HasPrefix(trimmed, "```") {
		if inner, ok := stripFence(trimmed); ok {
			candidate = inner
		}
	}

	if payload, ok := findJSONObject(candidate); ok {
		return payload, nil
	}
	if payload, ok := findJSONObject(trimmed); ok {
		return payload, nil
	}
	return "", ErrNoJSONFound
}

func stripFence(s string) (string, bool) {
	start := strings.Index(s, "```")
	if start == -1 {
		return "", false
	}
	end := strings.Index(s[start+3:], "```")
	if end == -1 {
		return "", false
	}
	content := s[start+3 : start+3+end]
	// drop the language tag line, e.g. "json"
	if idx := strings.Index(content, "\n"); idx != -1 {
		content = content[idx+1:]
	}
	return strings.TrimSpace(content), true
}

func findJSONObject(input string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return input[start : i+1], true
				}
			}
		}
	}
	return "", false
}
