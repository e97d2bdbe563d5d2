package field

import (
	"strings"

	"github.com/goliatone/go-uikit/pkg/render"
)

// Option is one selectable (value, label) pair.
type Option struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label" yaml:"label"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// matchOption returns the index of the first option carrying value, or -1.
// Option values are expected to be unique; every option is still rendered
// when they are not, and the duplicate is reported at debug level.
func matchOption(env *render.Env, fieldID string, options []Option, value string) int {
	match := -1
	for i, opt := range options {
		if opt.Value != value {
			continue
		}
		if match < 0 {
			match = i
			continue
		}
		env.Logger().Debug().
			Str("field", fieldID).
			Str("value", value).
			Int("first", match).
			Int("duplicate", i).
			Msg("duplicate option value, first match is selected")
		break
	}
	return match
}

func hasOption(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value && !opt.Disabled {
			return true
		}
	}
	return false
}

// FilterOptions keeps options whose label or value contains query, ignoring
// case. A blank query keeps everything.
func FilterOptions(options []Option, query string) []Option {
	indices := filterIndices(options, query)
	out := make([]Option, 0, len(indices))
	for _, idx := range indices {
		out = append(out, options[idx])
	}
	return out
}

// filterIndices is FilterOptions reporting positions in options.
func filterIndices(options []Option, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]int, 0, len(options))
	for i, opt := range options {
		if query == "" || strings.Contains(strings.ToLower(opt.Label), query) || strings.Contains(strings.ToLower(opt.Value), query) {
			out = append(out, i)
		}
	}
	return out
}
