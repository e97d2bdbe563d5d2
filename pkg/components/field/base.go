package field

import (
	"errors"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Default column split for horizontal layouts.
const (
	DefaultLabelCol = 3
	DefaultInputCol = 9
)

var (
	// ErrReadOnly is returned when a read-only field receives input.
	ErrReadOnly = errors.New("field: field is read-only")
	// ErrUnknownOption is returned when a selection names no option.
	ErrUnknownOption = errors.New("field: unknown option")
	// ErrDateDisabled is returned when a date outside min/max is selected.
	ErrDateDisabled = errors.New("field: date is disabled")
)

// Layout switches between the stacked layout and the horizontal 12 column
// layout used from the md breakpoint up.
type Layout struct {
	Horizontal bool `json:"isHorizontal,omitempty" yaml:"isHorizontal,omitempty"`
	LabelCol   int  `json:"labelCol,omitempty" yaml:"labelCol,omitempty" validate:"omitempty,min=1,max=12"`
	InputCol   int  `json:"inputCol,omitempty" yaml:"inputCol,omitempty" validate:"omitempty,min=1,max=12"`
}

// Spans returns the label and input column spans, defaulting to 3/9.
func (l Layout) Spans() (label, input int) {
	return markup.ClampSpan(l.LabelCol, DefaultLabelCol), markup.ClampSpan(l.InputCol, DefaultInputCol)
}

// Base carries the props every field wrapper shares.
type Base struct {
	ID         string   `json:"id" yaml:"id"`
	Label      string   `json:"label" yaml:"label"`
	ErrorMsg   []string `json:"errorMsg,omitempty" yaml:"errorMsg,omitempty"`
	Layout     `yaml:",inline"`
	LabelClass string `json:"labelClassName,omitempty" yaml:"labelClassName,omitempty"`
}

// FieldID returns the trimmed id.
func (b Base) FieldID() string {
	return strings.TrimSpace(b.ID)
}

// align controls vertical alignment of label and control in horizontal
// layouts. Tall controls (popovers, file inputs) align to the top.
type align string

const (
	alignCenter align = "md:items-center"
	alignStart  align = "md:items-start"
)

// wrap lays out label, control and error messages, then hands the result to
// the theme's field partial.
func wrap(env *render.Env, kind string, base Base, a align, control markup.HTML) markup.HTML {
	id := base.FieldID()
	labelSpan, inputSpan := base.Layout.Spans()
	horizontal := base.Layout.Horizontal
	errs := env.FieldErrors(id, base.ErrorMsg)

	var b markup.Builder
	b.Open("div",
		markup.Class("grid gap-2", markup.If(horizontal, "md:grid-cols-12 "+string(a))),
		markup.Data("slot", "field"),
		markup.Data("field", kind),
	)
	b.TextElement("label", base.Label,
		markup.A("for", id),
		markup.Class(styles.Label, base.LabelClass, markup.If(horizontal, markup.GridSpan("md", labelSpan))),
	)
	b.Open("div", markup.Class(markup.If(horizontal, markup.GridSpan("md", inputSpan))))
	b.Raw(control)
	b.Raw(ErrorMessage(errs))
	b.Close("div")
	b.Close("div")

	return env.Partial(render.PartialField, map[string]any{
		"id":         id,
		"kind":       kind,
		"label":      base.Label,
		"horizontal": horizontal,
		"labelCol":   labelSpan,
		"inputCol":   inputSpan,
		"control":    string(control),
		"errors":     errs,
	}, b.HTML())
}

// inline lays out controls that sit next to their label (checkbox, switch).
func inline(env *render.Env, kind string, base Base, control markup.HTML, hidden markup.HTML) markup.HTML {
	id := base.FieldID()
	errs := env.FieldErrors(id, base.ErrorMsg)

	var b markup.Builder
	b.Open("div", markup.Data("slot", "field"), markup.Data("field", kind))
	b.Open("div", markup.Class("flex items-center space-x-2"))
	b.Raw(control)
	b.TextElement("label", base.Label, markup.A("for", id), markup.Class(styles.Label, "font-normal", base.LabelClass))
	b.Raw(hidden)
	b.Close("div")
	b.Raw(ErrorMessage(errs))
	b.Close("div")

	return env.Partial(render.PartialField, map[string]any{
		"id":      id,
		"kind":    kind,
		"label":   base.Label,
		"inline":  true,
		"control": string(control),
		"errors":  errs,
	}, b.HTML())
}

func hiddenInput(name, value string) markup.HTML {
	if name == "" {
		return ""
	}
	var b markup.Builder
	b.Void("input", markup.A("type", "hidden"), markup.A("name", name), markup.Keep("value", value))
	return b.HTML()
}
