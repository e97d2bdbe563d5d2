// Package button renders action buttons: a styled base button, a
// pending-aware submit button, submit and delete buttons guarded by a
// confirmation dialog, and a back button.
package button

import (
	"context"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Variant names re-exported for callers.
const (
	Primary     = string(styles.VariantPrimary)
	Secondary   = string(styles.VariantSecondary)
	Destructive = string(styles.VariantDestructive)
	Outline     = string(styles.VariantOutline)
	Ghost       = string(styles.VariantGhost)
	Success     = string(styles.VariantSuccess)
	Warning     = string(styles.VariantWarning)
)

// Button is a styled button element.
type Button struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty" validate:"omitempty,oneof=primary secondary destructive outline ghost success warning link"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=button submit reset"`
	FormID  string `json:"formId,omitempty" yaml:"formId,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	// Action is emitted as data-action for the browser runtime.
	Action   string           `json:"action,omitempty" yaml:"action,omitempty"`
	Disabled bool             `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Class    string           `json:"className,omitempty" yaml:"className,omitempty"`
	Content  render.Component `json:"-" yaml:"-"`
}

// Render implements render.Component.
func (b Button) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	content := markup.Text(b.Label)
	if b.Content != nil {
		out, err := b.Content.Render(ctx, env)
		if err != nil {
			return "", err
		}
		content = out
	}
	return b.render(env, content), nil
}

func (b Button) render(env *render.Env, content markup.HTML) markup.HTML {
	variant := styles.ParseVariant(b.Variant, styles.VariantPrimary)
	typ := buttonType(b.Type)

	var out markup.Builder
	out.Element("button", content,
		markup.A("id", b.ID),
		markup.A("type", typ),
		markup.A("name", b.Name),
		markup.A("value", b.Value),
		markup.A("form", b.FormID),
		markup.Data("action", b.Action),
		markup.Data("variant", string(variant)),
		markup.Bool("disabled", b.Disabled),
		markup.Class(styles.Button(variant), b.Class),
	)
	return env.Partial(render.PartialButton, map[string]any{
		"id":       b.ID,
		"type":     typ,
		"variant":  string(variant),
		"disabled": b.Disabled,
		"content":  string(content),
	}, out.HTML())
}

func buttonType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "submit":
		return "submit"
	case "reset":
		return "reset"
	default:
		return "button"
	}
}

// pendingContent swaps content for spinner plus loading text while pending.
func pendingContent(ctx context.Context, env *render.Env, pending bool, label string, content render.Component, loading string) (markup.HTML, error) {
	if pending {
		return markup.Join(styles.Spinner(), markup.Text(env.Or(loading, render.MsgButtonLoading))), nil
	}
	if content != nil {
		return content.Render(ctx, env)
	}
	return markup.Text(label), nil
}
