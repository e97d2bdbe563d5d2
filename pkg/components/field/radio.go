package field

import (
	"context"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// RadioGroupProps configure a group of radio buttons. Name defaults to the
// field id.
type RadioGroupProps struct {
	Base          `yaml:",inline"`
	Name          string       `json:"name,omitempty" yaml:"name,omitempty"`
	Options       []Option     `json:"items" yaml:"items"`
	Value         *string      `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue  string       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	GroupClass    string       `json:"groupClassName,omitempty" yaml:"groupClassName,omitempty"`
	OnValueChange func(string) `json:"-" yaml:"-"`
}

// RadioGroup is a single choice field showing every option.
type RadioGroup struct {
	props RadioGroupProps
	value *state.Cell[string]
}

// NewRadioGroup builds a RadioGroup. It is controlled when props.Value is
// set.
func NewRadioGroup(props RadioGroupProps) *RadioGroup {
	return &RadioGroup{
		props: props,
		value: state.Resolve(props.Value, props.DefaultValue, props.OnValueChange),
	}
}

// ID returns the group name, which doubles as the field id.
func (f *RadioGroup) ID() string { return f.name() }

// Value returns the selected value.
func (f *RadioGroup) Value() string { return f.value.Get() }

// Mode reports who owns the value.
func (f *RadioGroup) Mode() state.Mode { return f.value.Mode() }

// Options returns the declared options.
func (f *RadioGroup) Options() []Option { return f.props.Options }

// Select chooses an option.
func (f *RadioGroup) Select(value string) error {
	if !hasOption(f.props.Options, value) {
		return ErrUnknownOption
	}
	f.value.Set(value)
	return nil
}

// SetValue is Select under the common field interaction name.
func (f *RadioGroup) SetValue(value string) error { return f.Select(value) }

// Sync applies a new caller-owned value to a controlled group.
func (f *RadioGroup) Sync(v string) error { return f.value.Sync(v) }

func (f *RadioGroup) name() string {
	if name := strings.TrimSpace(f.props.Name); name != "" {
		return name
	}
	return f.props.FieldID()
}

// Render implements render.Component.
func (f *RadioGroup) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	name := f.name()
	labelID := name + "-label"
	selected := matchOption(env, name, f.props.Options, f.value.Get())
	errs := env.FieldErrors(name, f.props.ErrorMsg)

	var b markup.Builder
	b.Open("div", markup.Class("grid gap-2"), markup.Data("slot", "field"), markup.Data("field", "radio-group"))
	b.TextElement("span", f.props.Label, markup.A("id", labelID), markup.Class(styles.Label, f.props.LabelClass))
	b.Open("div",
		markup.A("role", "radiogroup"),
		markup.Aria("labelledby", labelID),
		markup.Class("flex flex-wrap gap-4", f.props.GroupClass),
	)
	for i, opt := range f.props.Options {
		optionID := name + "-" + opt.Value
		b.Open("div", markup.Class("flex items-center space-x-2"))
		b.Void("input",
			markup.A("type", "radio"),
			markup.A("id", optionID),
			markup.A("name", name),
			markup.Keep("value", opt.Value),
			markup.Bool("checked", i == selected),
			markup.Bool("disabled", opt.Disabled),
			markup.Class(styles.Radio),
		)
		b.TextElement("label", opt.Label, markup.A("for", optionID), markup.Class(styles.Label))
		b.Close("div")
	}
	b.Close("div")
	b.Raw(ErrorMessage(errs))
	b.Close("div")

	return env.Partial(render.PartialField, map[string]any{
		"id":     name,
		"kind":   "radio-group",
		"label":  f.props.Label,
		"errors": errs,
	}, b.HTML()), nil
}
