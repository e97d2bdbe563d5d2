package dialog

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// Props configure a generic dialog.
type Props struct {
	ID        string `json:"id" yaml:"id"`
	Slots     `yaml:",inline"`
	OpenState `yaml:",inline"`
	Trigger   render.Component `json:"-" yaml:"-"`
	Body      render.Component `json:"-" yaml:"-"`
	Footer    render.Component `json:"-" yaml:"-"`
}

// Dialog is a titled overlay with caller-supplied body and footer.
type Dialog struct {
	props      Props
	disclosure *state.Disclosure
}

// New builds a Dialog.
func New(props Props) *Dialog {
	return &Dialog{props: props, disclosure: props.OpenState.disclosure()}
}

// ID returns the dialog id.
func (d *Dialog) ID() string { return d.props.ID }

// Disclosure exposes the open state.
func (d *Dialog) Disclosure() *state.Disclosure { return d.disclosure }

// Trigger opens the dialog as a trigger click would.
func (d *Dialog) Trigger() bool { return d.disclosure.Trigger() }

// Dismiss closes the dialog (escape key, overlay click, close button).
func (d *Dialog) Dismiss() bool { return d.disclosure.Dismiss() }

// Render implements render.Component.
func (d *Dialog) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	body, err := renderOptional(ctx, env, d.props.Body)
	if err != nil {
		return "", err
	}
	footer, err := renderOptional(ctx, env, d.props.Footer)
	if err != nil {
		return "", err
	}
	return frame{
		id:           d.props.ID,
		role:         "dialog",
		disclosure:   d.disclosure,
		trigger:      d.props.Trigger,
		slots:        d.props.Slots,
		alwaysHeader: true,
		body:         body,
		footer:       footer,
	}.render(ctx, env)
}
