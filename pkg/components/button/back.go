package button

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Back navigates to BackTo, or back in history when BackTo is blank.
type Back struct {
	Label  string `json:"context,omitempty" yaml:"context,omitempty"`
	BackTo string `json:"backTo,omitempty" yaml:"backTo,omitempty"`
	Class  string `json:"className,omitempty" yaml:"className,omitempty"`
}

// Render implements render.Component.
func (b Back) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	label := env.Or(b.Label, render.MsgButtonBack)
	if b.BackTo == "" {
		return Button{
			Variant: Secondary,
			Action:  "history-back",
			Class:   b.Class,
		}.render(env, markup.Text(label)), nil
	}
	var out markup.Builder
	out.TextElement("a", label,
		markup.A("href", b.BackTo),
		markup.Data("variant", Secondary),
		markup.Class(styles.Button(styles.VariantSecondary), b.Class),
	)
	return env.Partial(render.PartialButton, map[string]any{
		"href":    b.BackTo,
		"variant": Secondary,
		"content": label,
	}, out.HTML()), nil
}
