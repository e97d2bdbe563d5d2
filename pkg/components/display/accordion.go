package display

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// ErrUnknownItem is returned when toggling a value no item carries.
var ErrUnknownItem = errors.New("display: unknown accordion item")

// Accordion types.
const (
	AccordionSingle   = "single"
	AccordionMultiple = "multiple"
)

// AccordionItem is one collapsible section.
type AccordionItem struct {
	Value        string           `json:"value" yaml:"value"`
	Title        string           `json:"title" yaml:"title"`
	Text         string           `json:"content,omitempty" yaml:"content,omitempty"`
	ItemClass    string           `json:"itemClassName,omitempty" yaml:"itemClassName,omitempty"`
	TriggerClass string           `json:"triggerClassName,omitempty" yaml:"triggerClassName,omitempty"`
	ContentClass string           `json:"contentClassName,omitempty" yaml:"contentClassName,omitempty"`
	Content      render.Component `json:"-" yaml:"-"`
}

// AccordionProps configure an accordion. In single mode only the first
// default value is opened.
type AccordionProps struct {
	ID            string          `json:"id,omitempty" yaml:"id,omitempty"`
	Items         []AccordionItem `json:"items" yaml:"items"`
	Type          string          `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=single multiple"`
	Collapsible   bool            `json:"collapsible,omitempty" yaml:"collapsible,omitempty"`
	DefaultValue  []string        `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Class         string          `json:"className,omitempty" yaml:"className,omitempty"`
	OnValueChange func([]string)  `json:"-" yaml:"-"`
}

// MultipleAccordionProps configure an accordion whose items open
// independently.
type MultipleAccordionProps struct {
	ID            string          `json:"id,omitempty" yaml:"id,omitempty"`
	Items         []AccordionItem `json:"items" yaml:"items"`
	DefaultValue  []string        `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Class         string          `json:"className,omitempty" yaml:"className,omitempty"`
	OnValueChange func([]string)  `json:"-" yaml:"-"`
}

// Accordion owns the set of open items.
type Accordion struct {
	props AccordionProps
	open  map[string]bool
}

// NewAccordion builds an Accordion. Unknown types fall back to single.
func NewAccordion(props AccordionProps) *Accordion {
	if strings.ToLower(strings.TrimSpace(props.Type)) == AccordionMultiple {
		props.Type = AccordionMultiple
	} else {
		props.Type = AccordionSingle
	}
	a := &Accordion{props: props, open: make(map[string]bool)}
	for _, value := range props.DefaultValue {
		if !a.has(value) {
			continue
		}
		a.open[value] = true
		if props.Type == AccordionSingle {
			break
		}
	}
	return a
}

// NewMultipleAccordion builds an Accordion of type multiple.
func NewMultipleAccordion(props MultipleAccordionProps) *Accordion {
	return NewAccordion(AccordionProps{
		ID:            props.ID,
		Items:         props.Items,
		Type:          AccordionMultiple,
		DefaultValue:  props.DefaultValue,
		Class:         props.Class,
		OnValueChange: props.OnValueChange,
	})
}

// ID returns the accordion id.
func (a *Accordion) ID() string { return a.props.ID }

// Type returns "single" or "multiple".
func (a *Accordion) Type() string { return a.props.Type }

// Items returns the declared items.
func (a *Accordion) Items() []AccordionItem { return a.props.Items }

// IsOpen reports whether the item carrying value is expanded.
func (a *Accordion) IsOpen(value string) bool { return a.open[value] }

// OpenValues lists expanded item values in item order.
func (a *Accordion) OpenValues() []string {
	var out []string
	for _, item := range a.props.Items {
		if a.open[item.Value] {
			out = append(out, item.Value)
		}
	}
	return out
}

// Toggle activates the trigger of the item carrying value and reports
// whether that item is open afterwards. In single mode opening an item
// closes the others, and the open item only closes when the accordion is
// collapsible.
func (a *Accordion) Toggle(value string) (bool, error) {
	if !a.has(value) {
		return false, ErrUnknownItem
	}
	wasOpen := a.open[value]
	switch {
	case a.props.Type == AccordionMultiple:
		a.open[value] = !wasOpen
	case wasOpen && !a.props.Collapsible:
		return true, nil
	case wasOpen:
		delete(a.open, value)
	default:
		a.open = map[string]bool{value: true}
	}
	if !a.open[value] {
		delete(a.open, value)
	}
	if a.props.OnValueChange != nil {
		a.props.OnValueChange(a.OpenValues())
	}
	return a.open[value], nil
}

func (a *Accordion) has(value string) bool {
	for _, item := range a.props.Items {
		if item.Value == value {
			return true
		}
	}
	return false
}

// Render implements render.Component.
func (a *Accordion) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	prefix := strings.TrimSpace(a.props.ID)
	if prefix == "" {
		prefix = "accordion"
	}

	var b markup.Builder
	b.Open("div",
		markup.A("id", a.props.ID),
		markup.Data("slot", "accordion"),
		markup.Data("type", a.props.Type),
		markup.Data("collapsible", markup.If(a.props.Collapsible, "true")),
		markup.Class(a.props.Class),
	)
	for _, item := range a.props.Items {
		open := a.open[item.Value]
		stateName := "closed"
		if open {
			stateName = "open"
		}
		triggerID := prefix + "-trigger-" + item.Value
		contentID := prefix + "-content-" + item.Value
		locked := open && a.props.Type == AccordionSingle && !a.props.Collapsible

		content := markup.Text(item.Text)
		if item.Content != nil {
			out, err := item.Content.Render(ctx, env)
			if err != nil {
				return "", err
			}
			content = out
		}

		b.Open("div", markup.Data("slot", "accordion-item"), markup.Data("state", stateName), markup.Class("border-b last:border-b-0", item.ItemClass))
		b.Open("h3", markup.Class("flex"))
		b.Open("button",
			markup.A("type", "button"),
			markup.A("id", triggerID),
			markup.Data("value", item.Value),
			markup.Data("state", stateName),
			markup.Aria("controls", contentID),
			markup.Aria("expanded", boolString(open)),
			markup.Aria("disabled", markup.If(locked, "true")),
			markup.Class("flex flex-1 items-start justify-between gap-4 rounded-md py-4 text-left text-sm font-medium transition-all outline-none hover:underline [&[data-state=open]>svg]:rotate-180", item.TriggerClass),
		)
		b.Text(item.Title).Raw(styles.ChevronDown())
		b.Close("button")
		b.Close("h3")
		b.Open("div",
			markup.A("id", contentID),
			markup.A("role", "region"),
			markup.Aria("labelledby", triggerID),
			markup.Data("state", stateName),
			markup.Bool("hidden", !open),
			markup.Class("overflow-hidden text-sm"),
		)
		b.Element("div", content, markup.Class("pt-0 pb-4", item.ContentClass))
		b.Close("div")
		b.Close("div")
	}
	b.Close("div")

	return env.Partial(render.PartialAccordion, map[string]any{
		"id":   a.props.ID,
		"type": a.props.Type,
		"open": a.OpenValues(),
	}, b.HTML()), nil
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
