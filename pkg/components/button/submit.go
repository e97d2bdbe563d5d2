package button

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Submit is a submit button that shows a spinner and loading text while
// the caller reports a pending submission.
type Submit struct {
	ID             string           `json:"id,omitempty" yaml:"id,omitempty"`
	Label          string           `json:"label,omitempty" yaml:"label,omitempty"`
	LoadingContent string           `json:"loadingContent,omitempty" yaml:"loadingContent,omitempty"`
	Pending        bool             `json:"isPending,omitempty" yaml:"isPending,omitempty"`
	Variant        string           `json:"variant,omitempty" yaml:"variant,omitempty" validate:"omitempty,oneof=success warning destructive"`
	FormID         string           `json:"formId,omitempty" yaml:"formId,omitempty"`
	Class          string           `json:"className,omitempty" yaml:"className,omitempty"`
	Content        render.Component `json:"-" yaml:"-"`
}

// Render implements render.Component.
func (s Submit) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	content, err := pendingContent(ctx, env, s.Pending, s.Label, s.Content, s.LoadingContent)
	if err != nil {
		return "", err
	}
	variant := s.Variant
	if variant == "" {
		variant = Success
	}
	return Button{
		ID:       s.ID,
		Type:     "submit",
		Variant:  variant,
		FormID:   s.FormID,
		Disabled: s.Pending,
		Class:    s.Class,
	}.render(env, content), nil
}
