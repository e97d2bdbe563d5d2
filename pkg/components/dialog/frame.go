package dialog

import (
	"context"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// Slots carries the header text and per-slot class overrides shared by the
// variants.
type Slots struct {
	Title            string `json:"title,omitempty" yaml:"title,omitempty"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	ContentClass     string `json:"contentClassName,omitempty" yaml:"contentClassName,omitempty"`
	HeaderClass      string `json:"headerClassName,omitempty" yaml:"headerClassName,omitempty"`
	TitleClass       string `json:"titleClassName,omitempty" yaml:"titleClassName,omitempty"`
	DescriptionClass string `json:"descriptionClassName,omitempty" yaml:"descriptionClassName,omitempty"`
	FooterClass      string `json:"footerClassName,omitempty" yaml:"footerClassName,omitempty"`
}

// OpenState configures ownership of the open flag.
type OpenState struct {
	Open         *bool      `json:"open,omitempty" yaml:"open,omitempty"`
	DefaultOpen  bool       `json:"defaultOpen,omitempty" yaml:"defaultOpen,omitempty"`
	OnOpenChange func(bool) `json:"-" yaml:"-"`
}

func (o OpenState) disclosure() *state.Disclosure {
	return state.NewDisclosure(state.DisclosureOptions{
		Open:         o.Open,
		DefaultOpen:  o.DefaultOpen,
		OnOpenChange: o.OnOpenChange,
	})
}

type frame struct {
	id         string
	role       string
	disclosure *state.Disclosure
	trigger    render.Component
	slots      Slots
	// alwaysHeader renders the header even when title and description are
	// blank.
	alwaysHeader bool
	body         markup.HTML
	footer       markup.HTML
	// wrap, when set, encloses header, body and footer (a form element).
	wrap func(inner markup.HTML) markup.HTML
}

func (f frame) render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	id := strings.TrimSpace(f.id)
	contentID := id + "-content"
	titleID := id + "-title"
	descriptionID := id + "-description"
	open := f.disclosure.IsOpen()
	stateName := f.disclosure.StateName()

	var b markup.Builder
	b.Open("div", markup.Data("slot", "dialog"), markup.Data("dialog", id), markup.Data("state", stateName))

	if f.trigger != nil {
		trigger, err := f.trigger.Render(ctx, env)
		if err != nil {
			return "", err
		}
		b.Element("div", trigger,
			markup.Data("slot", "dialog-trigger"),
			markup.Aria("haspopup", "dialog"),
			markup.Aria("expanded", boolString(open)),
			markup.Aria("controls", contentID),
		)
	}

	b.Element("div", "", markup.Data("slot", "dialog-overlay"), markup.Data("state", stateName), markup.Bool("hidden", !open), markup.Class(styles.Overlay))

	var inner markup.Builder
	if f.alwaysHeader || f.slots.Title != "" || f.slots.Description != "" {
		inner.Open("div", markup.Data("slot", "dialog-header"), markup.Class(styles.DlgHeader, f.slots.HeaderClass))
		if f.slots.Title != "" {
			inner.TextElement("h2", f.slots.Title, markup.A("id", titleID), markup.Class(styles.DlgTitle, f.slots.TitleClass))
		}
		if f.slots.Description != "" {
			inner.TextElement("p", f.slots.Description, markup.A("id", descriptionID), markup.Class(styles.DlgDesc, f.slots.DescriptionClass))
		}
		inner.Close("div")
	}
	inner.Raw(f.body)
	if !f.footer.Empty() {
		inner.Element("div", f.footer, markup.Data("slot", "dialog-footer"), markup.Class(styles.DlgFooter, f.slots.FooterClass))
	}
	content := inner.HTML()
	if f.wrap != nil {
		content = f.wrap(content)
	}

	b.Element("div", content,
		markup.A("id", contentID),
		markup.A("role", f.role),
		markup.Aria("modal", "true"),
		markup.Aria("labelledby", markup.If(f.slots.Title != "", titleID)),
		markup.Aria("describedby", markup.If(f.slots.Description != "", descriptionID)),
		markup.Data("state", stateName),
		markup.Bool("hidden", !open),
		markup.Class(styles.Dialog, f.slots.ContentClass),
	)
	b.Close("div")

	return env.Partial(render.PartialDialog, map[string]any{
		"id":          id,
		"role":        f.role,
		"open":        open,
		"title":       f.slots.Title,
		"description": f.slots.Description,
		"body":        string(f.body),
		"footer":      string(f.footer),
	}, b.HTML()), nil
}

func button(label string, variant styles.Variant, typ, action, class string, extra ...markup.Attr) markup.HTML {
	attrs := append([]markup.Attr{
		markup.A("type", typ),
		markup.Data("action", action),
		markup.Class(styles.Button(variant), class),
	}, extra...)
	var b markup.Builder
	b.TextElement("button", label, attrs...)
	return b.HTML()
}

func renderOptional(ctx context.Context, env *render.Env, c render.Component) (markup.HTML, error) {
	if c == nil {
		return "", nil
	}
	return c.Render(ctx, env)
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
