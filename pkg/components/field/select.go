package field

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// SelectProps configure a native select.
type SelectProps struct {
	Base        `yaml:",inline"`
	Options     []Option `json:"items" yaml:"items"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	// UnselectedLabel adds a leading option with the empty value.
	UnselectedLabel string       `json:"unselectedOptionLabel,omitempty" yaml:"unselectedOptionLabel,omitempty"`
	Value           *string      `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue    string       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	TriggerClass    string       `json:"selectTriggerClassName,omitempty" yaml:"selectTriggerClassName,omitempty"`
	ContentClass    string       `json:"selectContentClassName,omitempty" yaml:"selectContentClassName,omitempty"`
	ItemClass       string       `json:"selectItemClassName,omitempty" yaml:"selectItemClassName,omitempty"`
	OnValueChange   func(string) `json:"-" yaml:"-"`
}

// Select is a single choice drop-down field.
type Select struct {
	props SelectProps
	value *state.Cell[string]
}

// NewSelect builds a Select. It is controlled when props.Value is set.
func NewSelect(props SelectProps) *Select {
	return &Select{
		props: props,
		value: state.Resolve(props.Value, props.DefaultValue, props.OnValueChange),
	}
}

// ID returns the field id.
func (f *Select) ID() string { return f.props.FieldID() }

// Value returns the selected value.
func (f *Select) Value() string { return f.value.Get() }

// Mode reports who owns the value.
func (f *Select) Mode() state.Mode { return f.value.Mode() }

// Options returns the declared options.
func (f *Select) Options() []Option { return f.props.Options }

// Select chooses an option. The empty value is accepted when an unselected
// option is rendered.
func (f *Select) Select(value string) error {
	if value == "" && f.props.UnselectedLabel != "" {
		f.value.Set(value)
		return nil
	}
	if !hasOption(f.props.Options, value) {
		return ErrUnknownOption
	}
	f.value.Set(value)
	return nil
}

// SetValue is Select under the common field interaction name.
func (f *Select) SetValue(value string) error { return f.Select(value) }

// Sync applies a new caller-owned value to a controlled select.
func (f *Select) Sync(v string) error { return f.value.Sync(v) }

// Render implements render.Component.
func (f *Select) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	id := f.props.FieldID()
	current := f.value.Get()
	selected := matchOption(env, id, f.props.Options, current)

	var b markup.Builder
	b.Open("select",
		markup.A("id", id),
		markup.A("name", id),
		markup.Data("slot", "select-trigger"),
		markup.Data("content-class", f.props.ContentClass),
		markup.Aria("invalid", ariaInvalid(env, f.props.Base)),
		markup.Class(styles.Select, "w-[180px]", f.props.TriggerClass),
	)
	if f.props.Placeholder != "" {
		b.TextElement("option", f.props.Placeholder,
			markup.Keep("value", ""),
			markup.Bool("disabled", true),
			markup.Bool("hidden", true),
			markup.Bool("selected", current == "" && f.props.UnselectedLabel == ""),
		)
	}
	if f.props.UnselectedLabel != "" {
		b.TextElement("option", f.props.UnselectedLabel,
			markup.Keep("value", ""),
			markup.Bool("selected", current == ""),
			markup.Class(f.props.ItemClass),
		)
	}
	for i, opt := range f.props.Options {
		b.TextElement("option", opt.Label,
			markup.Keep("value", opt.Value),
			markup.Bool("selected", i == selected),
			markup.Bool("disabled", opt.Disabled),
			markup.Class(f.props.ItemClass),
		)
	}
	b.Close("select")
	return wrap(env, "select", f.props.Base, alignCenter, b.HTML()), nil
}
