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

// ToggleProps configure a checkbox or a switch.
type ToggleProps struct {
	Base            `yaml:",inline"`
	Checked         *bool      `json:"checked,omitempty" yaml:"checked,omitempty"`
	DefaultChecked  bool       `json:"defaultChecked,omitempty" yaml:"defaultChecked,omitempty"`
	ControlClass    string     `json:"controlClassName,omitempty" yaml:"controlClassName,omitempty"`
	OnCheckedChange func(bool) `json:"-" yaml:"-"`
}

// Toggle is a boolean field. The current state is submitted through a
// hidden input as "true" or "false", so unchecked values reach the server.
type Toggle struct {
	kind    string
	props   ToggleProps
	checked *state.Cell[bool]
}

// Checkbox is a Toggle rendered as a checkbox.
type Checkbox = Toggle

// Switch is a Toggle rendered as a switch.
type Switch = Toggle

// NewCheckbox builds a checkbox. It is controlled when props.Checked is set.
func NewCheckbox(props ToggleProps) *Checkbox {
	return newToggle("checkbox", props)
}

// NewSwitch builds a switch. It is controlled when props.Checked is set.
func NewSwitch(props ToggleProps) *Switch {
	return newToggle("switch", props)
}

func newToggle(kind string, props ToggleProps) *Toggle {
	return &Toggle{
		kind:    kind,
		props:   props,
		checked: state.Resolve(props.Checked, props.DefaultChecked, props.OnCheckedChange),
	}
}

// ID returns the field id.
func (f *Toggle) ID() string { return f.props.FieldID() }

// Kind returns "checkbox" or "switch".
func (f *Toggle) Kind() string { return f.kind }

// Checked reports the current state.
func (f *Toggle) Checked() bool { return f.checked.Get() }

// Mode reports who owns the state.
func (f *Toggle) Mode() state.Mode { return f.checked.Mode() }

// Toggle flips the state as a click would and returns the requested value.
func (f *Toggle) Toggle() bool {
	next := !f.checked.Get()
	f.checked.Set(next)
	return next
}

// SetChecked requests an explicit state.
func (f *Toggle) SetChecked(v bool) {
	f.checked.Set(v)
}

// SetValue parses "true"/"false" (and the other strconv.ParseBool forms,
// plus "on" and "off").
func (f *Toggle) SetValue(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on":
		f.checked.Set(true)
		return nil
	case "off", "":
		f.checked.Set(false)
		return nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	f.checked.Set(parsed)
	return nil
}

// Sync applies a new caller-owned state to a controlled toggle.
func (f *Toggle) Sync(v bool) error { return f.checked.Sync(v) }

// Render implements render.Component.
func (f *Toggle) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	id := f.props.FieldID()
	checked := f.checked.Get()
	stateName := "unchecked"
	if checked {
		stateName = "checked"
	}

	var control markup.Builder
	if f.kind == "switch" {
		control.Void("input",
			markup.A("type", "checkbox"),
			markup.A("id", id),
			markup.A("role", "switch"),
			markup.Aria("checked", boolString(checked)),
			markup.Bool("checked", checked),
			markup.Data("state", stateName),
			markup.Class(styles.Switch, f.props.ControlClass),
		)
	} else {
		control.Void("input",
			markup.A("type", "checkbox"),
			markup.A("id", id),
			markup.Bool("checked", checked),
			markup.Data("state", stateName),
			markup.Class(styles.Checkbox, f.props.ControlClass),
		)
	}
	return inline(env, f.kind, f.props.Base, control.HTML(), hiddenInput(id, strconv.FormatBool(checked))), nil
}
