package display

import (
	"context"
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Alert is a callout with optional icon and title.
type Alert struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty"`
	// Icon is inline SVG markup; anything else is stripped.
	Icon             string           `json:"icon,omitempty" yaml:"icon,omitempty"`
	Variant          string           `json:"variant,omitempty" yaml:"variant,omitempty" validate:"omitempty,oneof=default destructive"`
	Class            string           `json:"className,omitempty" yaml:"className,omitempty"`
	TitleClass       string           `json:"titleClassName,omitempty" yaml:"titleClassName,omitempty"`
	DescriptionClass string           `json:"descriptionClassName,omitempty" yaml:"descriptionClassName,omitempty"`
	Content          render.Component `json:"-" yaml:"-"`
}

// Render implements render.Component.
func (a Alert) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	body := markup.Sanitize(a.Body)
	if a.Content != nil {
		out, err := a.Content.Render(ctx, env)
		if err != nil {
			return "", err
		}
		body = out
	}
	variant := "default"
	variantClass := "bg-card text-card-foreground"
	if strings.EqualFold(strings.TrimSpace(a.Variant), "destructive") {
		variant = "destructive"
		variantClass = "bg-card text-destructive *:data-[slot=alert-description]:text-destructive/90"
	}

	var b markup.Builder
	b.Open("div",
		markup.A("role", "alert"),
		markup.Data("slot", "alert"),
		markup.Data("variant", variant),
		markup.Class("relative grid w-full grid-cols-[0_1fr] items-start gap-y-0.5 rounded-lg border px-4 py-3 text-sm has-[>svg]:grid-cols-[calc(var(--spacing)*4)_1fr] has-[>svg]:gap-x-3", variantClass, a.Class),
	)
	b.Raw(markup.Icon(a.Icon))
	if a.Title != "" {
		b.TextElement("div", a.Title, markup.Data("slot", "alert-title"), markup.Class("col-start-2 line-clamp-1 min-h-4 font-medium tracking-tight", a.TitleClass))
	}
	b.Element("div", body, markup.Data("slot", "alert-description"), markup.Class("col-start-2 grid justify-items-start gap-1 text-sm text-muted-foreground", a.DescriptionClass))
	b.Close("div")

	return env.Partial(render.PartialAlert, map[string]any{
		"title":   a.Title,
		"variant": variant,
		"body":    string(body),
	}, b.HTML()), nil
}
