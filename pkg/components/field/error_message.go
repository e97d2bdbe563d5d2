package field

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// ErrorMessage renders messages in one paragraph, separated by line breaks.
// Nothing is rendered for an empty list.
func ErrorMessage(messages []string) markup.HTML {
	if len(messages) == 0 {
		return ""
	}
	var b markup.Builder
	b.Open("p", markup.Class(styles.ErrorText))
	for i, msg := range messages {
		b.Open("span").Text(msg)
		if i < len(messages)-1 {
			b.Void("br")
		}
		b.Close("span")
	}
	b.Close("p")
	return b.HTML()
}

// ErrorList is the standalone error message component.
type ErrorList struct {
	// For names the field whose environment errors are appended.
	For      string   `json:"for,omitempty" yaml:"for,omitempty"`
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Render implements render.Component.
func (e ErrorList) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	messages := env.FieldErrors(e.For, e.Messages)
	fallback := ErrorMessage(messages)
	if fallback == "" {
		return "", nil
	}
	return env.Partial(render.PartialErrorMessage, map[string]any{"messages": messages}, fallback), nil
}
