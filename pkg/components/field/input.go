package field

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// InputProps configure a text, number or password input.
type InputProps struct {
	Base         `yaml:",inline"`
	Type         string       `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=text number password"`
	Placeholder  string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value        *string      `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue string       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	ReadOnly     bool         `json:"isReadonly,omitempty" yaml:"isReadonly,omitempty"`
	InputClass   string       `json:"inputClassName,omitempty" yaml:"inputClassName,omitempty"`
	OnChange     func(string) `json:"-" yaml:"-"`
}

// Input is a single line text field.
type Input struct {
	props InputProps
	value *state.Cell[string]
}

// NewInput builds an Input. It is controlled when props.Value is set.
func NewInput(props InputProps) *Input {
	return &Input{
		props: props,
		value: state.Resolve(props.Value, props.DefaultValue, props.OnChange),
	}
}

// ID returns the field id.
func (f *Input) ID() string { return f.props.FieldID() }

// Value returns the current value.
func (f *Input) Value() string { return f.value.Get() }

// Mode reports who owns the value.
func (f *Input) Mode() state.Mode { return f.value.Mode() }

// SetValue applies typed input.
func (f *Input) SetValue(v string) error {
	if f.props.ReadOnly {
		return ErrReadOnly
	}
	f.value.Set(v)
	return nil
}

// Sync applies a new caller-owned value to a controlled input.
func (f *Input) Sync(v string) error { return f.value.Sync(v) }

// Render implements render.Component.
func (f *Input) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	id := f.props.FieldID()
	var b markup.Builder
	b.Void("input",
		markup.A("id", id),
		markup.A("name", id),
		markup.A("type", inputType(f.props.Type)),
		markup.A("placeholder", f.props.Placeholder),
		markup.Attr{Name: "value", Value: f.value.Get(), Keep: f.value.Controlled()},
		markup.Bool("readonly", f.props.ReadOnly),
		markup.Aria("invalid", ariaInvalid(env, f.props.Base)),
		markup.Class(styles.Input, f.props.InputClass),
	)
	return wrap(env, "input", f.props.Base, alignCenter, b.HTML()), nil
}

func inputType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "number":
		return "number"
	case "password":
		return "password"
	default:
		return "text"
	}
}

func ariaInvalid(env *render.Env, base Base) string {
	if len(env.FieldErrors(base.FieldID(), base.ErrorMsg)) > 0 {
		return "true"
	}
	return ""
}

// TextareaProps configure a multi-line text field.
type TextareaProps struct {
	Base          `yaml:",inline"`
	Placeholder   string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value         *string      `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue  string       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	ReadOnly      bool         `json:"isReadonly,omitempty" yaml:"isReadonly,omitempty"`
	Rows          int          `json:"rows,omitempty" yaml:"rows,omitempty"`
	TextareaClass string       `json:"textareaClassName,omitempty" yaml:"textareaClassName,omitempty"`
	OnChange      func(string) `json:"-" yaml:"-"`
}

// Textarea is a multi-line text field.
type Textarea struct {
	props TextareaProps
	value *state.Cell[string]
}

// NewTextarea builds a Textarea. It is controlled when props.Value is set.
func NewTextarea(props TextareaProps) *Textarea {
	return &Textarea{
		props: props,
		value: state.Resolve(props.Value, props.DefaultValue, props.OnChange),
	}
}

// ID returns the field id.
func (f *Textarea) ID() string { return f.props.FieldID() }

// Value returns the current value.
func (f *Textarea) Value() string { return f.value.Get() }

// Mode reports who owns the value.
func (f *Textarea) Mode() state.Mode { return f.value.Mode() }

// Sync applies a new caller-owned value to a controlled textarea.
func (f *Textarea) Sync(v string) error { return f.value.Sync(v) }

// SetValue applies typed input.
func (f *Textarea) SetValue(v string) error {
	if f.props.ReadOnly {
		return ErrReadOnly
	}
	f.value.Set(v)
	return nil
}

// Render implements render.Component.
func (f *Textarea) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	id := f.props.FieldID()
	rows := ""
	if f.props.Rows > 0 {
		rows = strconv.Itoa(f.props.Rows)
	}
	var b markup.Builder
	b.TextElement("textarea", f.value.Get(),
		markup.A("id", id),
		markup.A("name", id),
		markup.A("placeholder", f.props.Placeholder),
		markup.A("rows", rows),
		markup.Bool("readonly", f.props.ReadOnly),
		markup.Aria("invalid", ariaInvalid(env, f.props.Base)),
		markup.Class(styles.Textarea, f.props.TextareaClass),
	)
	return wrap(env, "textarea", f.props.Base, alignCenter, b.HTML()), nil
}
