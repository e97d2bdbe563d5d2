package field

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// ComboboxProps configure a searchable single choice field.
type ComboboxProps struct {
	Base              `yaml:",inline"`
	Options           []Option     `json:"items" yaml:"items"`
	Placeholder       string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	SearchPlaceholder string       `json:"searchPlaceholder,omitempty" yaml:"searchPlaceholder,omitempty"`
	EmptyMessage      string       `json:"emptyMessage,omitempty" yaml:"emptyMessage,omitempty"`
	Value             *string      `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue      string       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Open              *bool        `json:"open,omitempty" yaml:"open,omitempty"`
	DefaultOpen       bool         `json:"defaultOpen,omitempty" yaml:"defaultOpen,omitempty"`
	ButtonClass       string       `json:"buttonClassName,omitempty" yaml:"buttonClassName,omitempty"`
	OnValueChange     func(string) `json:"-" yaml:"-"`
	OnOpenChange      func(bool)   `json:"-" yaml:"-"`
}

// Combobox is a popover list with a search box. Choosing the current value
// again clears the selection.
type Combobox struct {
	props   ComboboxProps
	value   *state.Cell[string]
	popover *state.Disclosure
	query   string
}

// NewCombobox builds a Combobox. The value is controlled when props.Value
// is set and the popover when props.Open is set.
func NewCombobox(props ComboboxProps) *Combobox {
	return &Combobox{
		props: props,
		value: state.Resolve(props.Value, props.DefaultValue, props.OnValueChange),
		popover: state.NewDisclosure(state.DisclosureOptions{
			Open:         props.Open,
			DefaultOpen:  props.DefaultOpen,
			OnOpenChange: props.OnOpenChange,
		}),
	}
}

// ID returns the field id.
func (f *Combobox) ID() string { return f.props.FieldID() }

// Value returns the selected value, "" when nothing is selected.
func (f *Combobox) Value() string { return f.value.Get() }

// Mode reports who owns the value.
func (f *Combobox) Mode() state.Mode { return f.value.Mode() }

// Options returns the declared options.
func (f *Combobox) Options() []Option { return f.props.Options }

// Popover exposes the open state of the option list.
func (f *Combobox) Popover() *state.Disclosure { return f.popover }

// Select toggles value: a new value is selected, the current value is
// cleared. The popover closes either way.
func (f *Combobox) Select(value string) error {
	if !hasOption(f.props.Options, value) {
		return ErrUnknownOption
	}
	next := value
	if value == f.value.Get() {
		next = ""
	}
	f.value.Set(next)
	f.popover.Dismiss()
	f.query = ""
	return nil
}

// SetValue selects value without toggle semantics. The empty value clears.
func (f *Combobox) SetValue(value string) error {
	if value != "" && !hasOption(f.props.Options, value) {
		return ErrUnknownOption
	}
	f.value.Set(value)
	return nil
}

// Sync applies a new caller-owned value to a controlled combobox.
func (f *Combobox) Sync(v string) error { return f.value.Sync(v) }

// Filter narrows the rendered list to options matching query.
func (f *Combobox) Filter(query string) []Option {
	f.query = query
	return FilterOptions(f.props.Options, query)
}

// Render implements render.Component.
func (f *Combobox) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	id := f.props.FieldID()
	listID := id + "-listbox"
	current := f.value.Get()
	open := f.popover.IsOpen()
	selected := -1
	if current != "" {
		selected = matchOption(env, id, f.props.Options, current)
	}

	display := env.Or(f.props.Placeholder, render.MsgComboboxPlaceholder)
	if selected >= 0 {
		display = f.props.Options[selected].Label
	}

	var b markup.Builder
	b.Open("div", markup.Class("relative"), markup.Data("slot", "combobox"), markup.Data("state", f.popover.StateName()))
	b.Open("button",
		markup.A("type", "button"),
		markup.A("id", id),
		markup.A("role", "combobox"),
		markup.Aria("expanded", boolString(open)),
		markup.Aria("controls", listID),
		markup.Class(styles.Button(styles.VariantOutline, "w-[200px] justify-between"), f.props.ButtonClass),
	)
	b.Text(display).Raw(styles.ChevronsUpDown())
	b.Close("button")

	b.Open("div",
		markup.A("id", listID),
		markup.Data("state", f.popover.StateName()),
		markup.Bool("hidden", !open),
		markup.Class(styles.Popover, "w-[200px] p-0"),
	)
	b.Void("input",
		markup.A("type", "search"),
		markup.A("placeholder", env.Or(f.props.SearchPlaceholder, render.MsgComboboxSearch)),
		markup.A("value", f.query),
		markup.Aria("controls", listID+"-options"),
		markup.Class("flex h-9 w-full border-b bg-transparent px-3 py-3 text-sm outline-hidden"),
	)
	visible := filterIndices(f.props.Options, f.query)
	if len(visible) == 0 {
		b.TextElement("div", env.Or(f.props.EmptyMessage, render.MsgComboboxEmpty), markup.Class("py-6 text-center text-sm"), markup.Data("slot", "combobox-empty"))
	} else {
		b.Open("ul", markup.A("id", listID+"-options"), markup.A("role", "listbox"), markup.Class("max-h-[300px] overflow-y-auto p-1"))
		for _, idx := range visible {
			opt := f.props.Options[idx]
			isSelected := idx == selected
			b.Open("li",
				markup.A("role", "option"),
				markup.Data("value", opt.Value),
				markup.Aria("selected", boolString(isSelected)),
				markup.Bool("aria-disabled", opt.Disabled),
				markup.Class("relative flex cursor-default items-center gap-2 rounded-sm px-2 py-1.5 text-sm select-none"),
			)
			b.Raw(styles.Check(isSelected)).Text(opt.Label)
			b.Close("li")
		}
		b.Close("ul")
	}
	b.Close("div")
	b.Close("div")
	b.Raw(hiddenInput(id, current))

	return wrap(env, "combobox", f.props.Base, alignStart, b.HTML()), nil
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
