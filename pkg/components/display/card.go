package display

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// DefaultFooterClass is applied to the card footer unless overridden.
const DefaultFooterClass = "flex-col gap-2"

// Card groups content under an optional header and footer.
type Card struct {
	Title            string           `json:"title,omitempty" yaml:"title,omitempty"`
	Description      string           `json:"description,omitempty" yaml:"description,omitempty"`
	Class            string           `json:"className,omitempty" yaml:"className,omitempty"`
	TitleClass       string           `json:"titleClassName,omitempty" yaml:"titleClassName,omitempty"`
	DescriptionClass string           `json:"descriptionClassName,omitempty" yaml:"descriptionClassName,omitempty"`
	ActionClass      string           `json:"actionClassName,omitempty" yaml:"actionClassName,omitempty"`
	ContentClass     string           `json:"contentClassName,omitempty" yaml:"contentClassName,omitempty"`
	FooterClass      *string          `json:"footerClassName,omitempty" yaml:"footerClassName,omitempty"`
	Action           render.Component `json:"-" yaml:"-"`
	Content          render.Component `json:"-" yaml:"-"`
	Footer           render.Component `json:"-" yaml:"-"`
}

// Render implements render.Component. The header appears only when a
// title, description or action is set; the content slot always renders.
func (c Card) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	action, err := renderSlot(ctx, env, c.Action)
	if err != nil {
		return "", err
	}
	content, err := renderSlot(ctx, env, c.Content)
	if err != nil {
		return "", err
	}
	footer, err := renderSlot(ctx, env, c.Footer)
	if err != nil {
		return "", err
	}

	var b markup.Builder
	b.Open("div", markup.Data("slot", "card"), markup.Class("flex flex-col gap-6 rounded-xl border bg-card py-6 text-card-foreground shadow-sm", c.Class))
	if c.Title != "" || c.Description != "" || !action.Empty() {
		b.Open("div", markup.Data("slot", "card-header"), markup.Class("grid auto-rows-min grid-rows-[auto_auto] items-start gap-1.5 px-6 has-data-[slot=card-action]:grid-cols-[1fr_auto]"))
		if c.Title != "" {
			b.TextElement("div", c.Title, markup.Data("slot", "card-title"), markup.Class("leading-none font-semibold", c.TitleClass))
		}
		if c.Description != "" {
			b.TextElement("div", c.Description, markup.Data("slot", "card-description"), markup.Class("text-sm text-muted-foreground", c.DescriptionClass))
		}
		if !action.Empty() {
			b.Element("div", action, markup.Data("slot", "card-action"), markup.Class("col-start-2 row-span-2 row-start-1 self-start justify-self-end", c.ActionClass))
		}
		b.Close("div")
	}
	b.Element("div", content, markup.Data("slot", "card-content"), markup.Class("px-6", c.ContentClass))
	if !footer.Empty() {
		footerClass := DefaultFooterClass
		if c.FooterClass != nil {
			footerClass = *c.FooterClass
		}
		b.Element("div", footer, markup.Data("slot", "card-footer"), markup.Class("flex items-center px-6", footerClass))
	}
	b.Close("div")

	return env.Partial(render.PartialCard, map[string]any{
		"title":       c.Title,
		"description": c.Description,
		"action":      string(action),
		"content":     string(content),
		"footer":      string(footer),
	}, b.HTML()), nil
}

func renderSlot(ctx context.Context, env *render.Env, c render.Component) (markup.HTML, error) {
	if c == nil {
		return "", nil
	}
	return c.Render(ctx, env)
}
