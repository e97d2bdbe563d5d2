package render

import (
	"strconv"
	"strings"
)

// ErrorMapping splits a server error payload into messages addressed to
// known component ids and page level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates message lists, trimming whitespace and
// dropping blanks and duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload assigns each payload key to one of fieldIDs. Keys may be
// plain ids, dotted paths or JSON pointers ("/body/email", "$.data.tags[0]");
// request wrappers and array indices are ignored when matching. Keys that
// match no id, or that name the form itself ("", "non_field_errors",
// "__all__"), become page level messages.
func MapErrorPayload(fieldIDs []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}

	known := make(map[string]struct{}, len(fieldIDs))
	for _, id := range fieldIDs {
		if id = strings.TrimSpace(id); id != "" {
			known[id] = struct{}{}
		}
	}

	for raw, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		id, ok := matchFieldID(raw, known)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[id] = append(mapping.Fields[id], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// SplitErrors separates form level keys from field keys without matching
// against known ids. Field keys are trimmed and kept verbatim.
func SplitErrors(payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	for key, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		if isFormLevelKey(key) {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string)
		}
		id := strings.TrimSpace(key)
		mapping.Fields[id] = append(mapping.Fields[id], normalized...)
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

var payloadWrappers = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func matchFieldID(raw string, known map[string]struct{}) (string, bool) {
	key := strings.TrimSpace(raw)
	if isFormLevelKey(key) || len(known) == 0 {
		return "", false
	}
	if _, ok := known[key]; ok {
		return key, true
	}

	segments := pathSegments(key)
	for len(segments) > 0 {
		if _, wrapper := payloadWrappers[strings.ToLower(segments[0])]; !wrapper {
			break
		}
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return "", false
	}

	// Longest dotted prefix first so "owner.email" beats "owner".
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := known[candidate]; ok {
			return candidate, true
		}
	}
	// Ids in page documents are flat, so fall back to the deepest segment.
	for i := len(segments) - 1; i >= 0; i-- {
		if _, ok := known[segments[i]]; ok {
			return segments[i], true
		}
	}
	return "", false
}

func pathSegments(path string) []string {
	clean := strings.TrimLeft(path, "#$./")
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			continue
		}
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		out = append(out, part)
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
