package tui

import (
	"fmt"
	"strings"
)

// State collects answers keyed by component id. Dotted ids ("address.city")
// nest in the collected values, so JSON output mirrors the id structure.
type State struct {
	values map[string]any
	errors map[string][]string
}

// NewState seeds the state with server-provided errors keyed by id.
func NewState(errs map[string][]string) *State {
	return &State{
		values: make(map[string]any),
		errors: cloneErrors(errs),
	}
}

// Values returns the collected values (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// ErrorsFor returns the errors attached to an id.
func (s *State) ErrorsFor(id string) []string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	return s.errors[id]
}

// GetValue resolves a dotted id.
func (s *State) GetValue(path string) (any, bool) {
	if s == nil || path == "" {
		return nil, false
	}
	var current any = s.values
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = node[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

// SetValue writes a value under a dotted id, creating intermediate maps.
func (s *State) SetValue(path string, value any) error {
	if s == nil {
		return fmt.Errorf("tui: state is nil")
	}
	segments := strings.Split(path, ".")
	node := s.values
	for i, segment := range segments {
		if segment == "" {
			return fmt.Errorf("tui: empty segment in id %q", path)
		}
		if i == len(segments)-1 {
			node[segment] = value
			return nil
		}
		child, ok := node[segment].(map[string]any)
		if !ok {
			if _, exists := node[segment]; exists {
				return fmt.Errorf("tui: id %q conflicts with value at %q", path, segment)
			}
			child = make(map[string]any)
			node[segment] = child
		}
		node = child
	}
	return nil
}

func cloneErrors(src map[string][]string) map[string][]string {
	out := make(map[string][]string, len(src))
	for k, v := range src {
		out[k] = append([]string(nil), v...)
	}
	return out
}
