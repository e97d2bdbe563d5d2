package model

import (
	"math"
	"strconv"
	"strings"
)

var integerPropKeys = map[string]struct{}{
	"labelCol":    {},
	"inputCol":    {},
	"colSpan":     {},
	"sideOffset":  {},
	"alignOffset": {},
}

// NormalizeProps returns a copy of props with integer layout keys coerced
// to int, walking nested maps and lists (footer rows carry colSpan per
// cell). Values that cannot be read as integers are left untouched.
func NormalizeProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for key, value := range props {
		if _, ok := integerPropKeys[key]; ok {
			if num, ok := toIntValue(value); ok {
				out[key] = num
				continue
			}
		}
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return NormalizeProps(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}

func toIntValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int(v), true
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		value, err := strconv.Atoi(trimmed)
		if err == nil {
			return value, true
		}
	}
	return 0, false
}
