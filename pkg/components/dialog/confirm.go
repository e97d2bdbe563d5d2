package dialog

import (
	"context"
	"errors"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// ErrClosed is returned when confirming or submitting a dialog that is not
// open.
var ErrClosed = errors.New("dialog: dialog is closed")

// ConfirmProps configure a confirmation dialog with one cancel and one
// action button. When FormID is set the action button submits that form.
type ConfirmProps struct {
	ID          string `json:"id" yaml:"id"`
	Slots       `yaml:",inline"`
	OpenState   `yaml:",inline"`
	CancelLabel string           `json:"cancelLabel,omitempty" yaml:"cancelLabel,omitempty"`
	ActionLabel string           `json:"actionLabel" yaml:"actionLabel"`
	FormID      string           `json:"formId,omitempty" yaml:"formId,omitempty"`
	CancelClass string           `json:"cancelButtonClassName,omitempty" yaml:"cancelButtonClassName,omitempty"`
	ActionClass string           `json:"actionButtonClassName,omitempty" yaml:"actionButtonClassName,omitempty"`
	Trigger     render.Component `json:"-" yaml:"-"`
	OnAction    func()           `json:"-" yaml:"-"`
}

// Confirm is an alert dialog asking the user to confirm one action.
type Confirm struct {
	props      ConfirmProps
	disclosure *state.Disclosure
}

// NewConfirm builds a Confirm dialog.
func NewConfirm(props ConfirmProps) *Confirm {
	return &Confirm{props: props, disclosure: props.OpenState.disclosure()}
}

// ID returns the dialog id.
func (c *Confirm) ID() string { return c.props.ID }

// Disclosure exposes the open state.
func (c *Confirm) Disclosure() *state.Disclosure { return c.disclosure }

// Trigger opens the dialog.
func (c *Confirm) Trigger() bool { return c.disclosure.Trigger() }

// Dismiss closes the dialog without running the action.
func (c *Confirm) Dismiss() bool { return c.disclosure.Dismiss() }

// Cancel closes the dialog without running the action.
func (c *Confirm) Cancel() bool { return c.disclosure.Dismiss() }

// Confirm runs OnAction, then closes. A closed dialog has no action button,
// so Confirm returns ErrClosed without running the action. Activations are
// not de-duplicated: a controlled dialog the caller keeps open runs the
// action on every call.
func (c *Confirm) Confirm() error {
	if !c.disclosure.IsOpen() {
		return ErrClosed
	}
	if c.props.OnAction != nil {
		c.props.OnAction()
	}
	c.disclosure.Dismiss()
	return nil
}

// Render implements render.Component.
func (c *Confirm) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	actionType := "button"
	if c.props.FormID != "" {
		actionType = "submit"
	}
	footer := markup.Join(
		button(env.Or(c.props.CancelLabel, render.MsgDialogCancel), styles.VariantOutline, "button", "cancel", c.props.CancelClass),
		button(c.props.ActionLabel, styles.VariantPrimary, actionType, "confirm", c.props.ActionClass, markup.A("form", c.props.FormID)),
	)
	return frame{
		id:           c.props.ID,
		role:         "alertdialog",
		disclosure:   c.disclosure,
		trigger:      c.props.Trigger,
		slots:        c.props.Slots,
		alwaysHeader: true,
		footer:       footer,
	}.render(ctx, env)
}
