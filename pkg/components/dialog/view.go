package dialog

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// ViewProps configure a read-only dialog.
type ViewProps struct {
	ID         string `json:"id" yaml:"id"`
	Slots      `yaml:",inline"`
	OpenState  `yaml:",inline"`
	CloseLabel string           `json:"closeButtonText,omitempty" yaml:"closeButtonText,omitempty"`
	Trigger    render.Component `json:"-" yaml:"-"`
	Body       render.Component `json:"-" yaml:"-"`
}

// View shows content with a single dismiss button.
type View struct {
	props      ViewProps
	disclosure *state.Disclosure
}

// NewView builds a View dialog.
func NewView(props ViewProps) *View {
	return &View{props: props, disclosure: props.OpenState.disclosure()}
}

// ID returns the dialog id.
func (v *View) ID() string { return v.props.ID }

// Disclosure exposes the open state.
func (v *View) Disclosure() *state.Disclosure { return v.disclosure }

// Trigger opens the dialog.
func (v *View) Trigger() bool { return v.disclosure.Trigger() }

// Dismiss closes the dialog.
func (v *View) Dismiss() bool { return v.disclosure.Dismiss() }

// Render implements render.Component.
func (v *View) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	body, err := renderOptional(ctx, env, v.props.Body)
	if err != nil {
		return "", err
	}
	return frame{
		id:           v.props.ID,
		role:         "dialog",
		disclosure:   v.disclosure,
		trigger:      v.props.Trigger,
		slots:        v.props.Slots,
		alwaysHeader: true,
		body:         body,
		footer:       button(env.Or(v.props.CloseLabel, render.MsgDialogClose), styles.VariantOutline, "button", "close", ""),
	}.render(ctx, env)
}
