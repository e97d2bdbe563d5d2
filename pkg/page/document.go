package page

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-uikit/pkg/components/dialog"
	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// Action names an interaction applied to a built component.
type Action string

const (
	ActionToggle  Action = "toggle"
	ActionSelect  Action = "select"
	ActionSet     Action = "set"
	ActionOpen    Action = "open"
	ActionClose   Action = "close"
	ActionConfirm Action = "confirm"
	ActionSubmit  Action = "submit"
)

// ParseAction maps a case-insensitive name onto an Action.
func ParseAction(name string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(name)))
	switch action {
	case ActionToggle, ActionSelect, ActionSet, ActionOpen, ActionClose, ActionConfirm, ActionSubmit:
		return action, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAction, name)
}

// Interaction is one user event addressed to a component id. Value carries
// the chosen option, accordion item, date or text; Values carries submitted
// form data.
type Interaction struct {
	ID     string
	Action Action
	Value  string
	Values url.Values
}

// Entry pairs a declared component with its live value.
type Entry struct {
	Spec      model.Component
	Component render.Component
}

// Document is a built page: live component values that keep their state
// between interactions. It is safe for concurrent use.
type Document struct {
	Page model.Page

	mu      sync.Mutex
	roots   []render.Component
	entries []Entry
	byID    map[string]render.Component
}

// BuildOption customises Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	actions map[string]FormAction
}

// WithFormAction attaches a server action to the form dialog with id.
func WithFormAction(id string, action FormAction) BuildOption {
	return func(cfg *buildConfig) {
		if cfg.actions == nil {
			cfg.actions = make(map[string]FormAction)
		}
		cfg.actions[id] = action
	}
}

// Build resolves every component of doc through reg. Children are built
// before their parent and handed to its builder.
func Build(ctx context.Context, reg *Registry, doc model.Page, options ...BuildOption) (*Document, error) {
	if reg == nil {
		return nil, fmt.Errorf("page: registry is required")
	}
	var cfg buildConfig
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := &Document{Page: doc, byID: make(map[string]render.Component)}
	roots, err := out.build(ctx, reg, doc.Components, cfg)
	if err != nil {
		return nil, err
	}
	out.roots = roots
	return out, nil
}

func (d *Document) build(ctx context.Context, reg *Registry, specs []model.Component, cfg buildConfig) ([]render.Component, error) {
	built := make([]render.Component, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		descriptor, ok := reg.Descriptor(string(spec.Type))
		if !ok {
			return nil, fmt.Errorf("%w: %q (component %q)", ErrUnknownComponent, spec.Type, spec.ID)
		}

		idx := len(d.entries)
		d.entries = append(d.entries, Entry{Spec: spec})

		children, err := d.build(ctx, reg, spec.Children, cfg)
		if err != nil {
			return nil, err
		}
		component, err := descriptor.Build(ctx, BuildContext{Spec: spec, Children: children, Actions: cfg.actions})
		if err != nil {
			return nil, err
		}
		d.entries[idx].Component = component
		if spec.ID != "" {
			d.byID[spec.ID] = component
		}
		built = append(built, component)
	}
	return built, nil
}

// Entries returns every built component in document order, parents first.
func (d *Document) Entries() []Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Entry(nil), d.entries...)
}

// Component returns the live component declared with id.
func (d *Document) Component(id string) (render.Component, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	component, ok := d.byID[id]
	return component, ok
}

// Render renders the root components in order.
func (d *Document) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return render.RenderAll(ctx, env, d.roots...)
}

type (
	checkToggler  interface{ Toggle() bool }
	itemToggler   interface{ Toggle(string) (bool, error) }
	selecter      interface{ Select(string) error }
	dateSelecter  interface{ SelectDate(time.Time) error }
	valueSetter   interface{ SetValue(string) error }
	opener        interface{ Trigger() bool }
	dismisser     interface{ Dismiss() bool }
	popoverOwner  interface{ Popover() *state.Disclosure }
	confirmer     interface{ Confirm() error }
	stringValuer  interface{ Value() string }
	checkedValuer interface{ Checked() bool }
	dateValuer    interface{ Value() (time.Time, bool) }
)

// formDialog is the form dialog type built from documents.
type formDialog = dialog.Form[map[string]any]

// Interact applies one interaction. Uncontrolled components update their
// own state; controlled ones only report the requested change through
// their callbacks.
func (d *Document) Interact(ctx context.Context, in Interaction) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	component, ok := d.byID[in.ID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, in.ID)
	}
	if err := interact(ctx, component, in); err != nil {
		return fmt.Errorf("page: %s %q: %w", in.Action, in.ID, err)
	}
	return nil
}

func interact(ctx context.Context, component render.Component, in Interaction) error {
	switch in.Action {
	case ActionToggle:
		if c, ok := component.(itemToggler); ok {
			_, err := c.Toggle(in.Value)
			return err
		}
		if c, ok := component.(checkToggler); ok {
			c.Toggle()
			return nil
		}
	case ActionSelect:
		if c, ok := component.(dateSelecter); ok {
			date, err := field.ParseDate(in.Value)
			if err != nil {
				return err
			}
			return c.SelectDate(date)
		}
		if c, ok := component.(selecter); ok {
			return c.Select(in.Value)
		}
	case ActionSet:
		if c, ok := component.(valueSetter); ok {
			return c.SetValue(in.Value)
		}
	case ActionOpen:
		if c, ok := component.(opener); ok {
			c.Trigger()
			return nil
		}
		if c, ok := component.(popoverOwner); ok {
			c.Popover().Trigger()
			return nil
		}
	case ActionClose:
		if c, ok := component.(dismisser); ok {
			c.Dismiss()
			return nil
		}
		if c, ok := component.(popoverOwner); ok {
			c.Popover().Dismiss()
			return nil
		}
	case ActionConfirm:
		if c, ok := component.(confirmer); ok {
			return c.Confirm()
		}
	case ActionSubmit:
		if c, ok := component.(*formDialog); ok {
			_, err := c.Submit(ctx, in.Values)
			return err
		}
	}
	return ErrUnsupportedAction
}

// Values returns the current value of every field component keyed by id.
// Toggles report "true"/"false"; date pickers report a YYYY-MM-DD date or
// "" when empty.
func (d *Document) Values() map[string]string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[string]string)
	for _, entry := range d.entries {
		id := entry.Spec.ID
		if id == "" {
			continue
		}
		switch c := entry.Component.(type) {
		case dateValuer:
			if value, ok := c.Value(); ok {
				out[id] = value.UTC().Format(time.DateOnly)
			} else {
				out[id] = ""
			}
		case checkedValuer:
			out[id] = strconv.FormatBool(c.Checked())
		case stringValuer:
			out[id] = c.Value()
		}
	}
	return out
}
