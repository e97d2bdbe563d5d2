package dialog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// ErrNoAction is returned by Submit when the form has no server action.
var ErrNoAction = errors.New("dialog: form has no action")

// ActionState is the result of a form action. Messages are keyed by field
// id; form level keys ("", "__all__", "non_field_errors") render above the
// body.
type ActionState[T any] struct {
	Data     T                   `json:"data"`
	Success  bool                `json:"success"`
	Messages map[string][]string `json:"messages,omitempty"`
}

// ActionFunc handles a submitted form. It receives the previous state and
// the submitted values.
type ActionFunc[T any] func(ctx context.Context, prev ActionState[T], values url.Values) (ActionState[T], error)

// FormProps configure a form dialog.
type FormProps[T any] struct {
	ID        string `json:"id" yaml:"id"`
	Slots     `yaml:",inline"`
	OpenState `yaml:",inline"`
	// URL and Method are written on the form element for plain HTML
	// submission. Method defaults to post.
	URL           string            `json:"action,omitempty" yaml:"action,omitempty"`
	Method        string            `json:"method,omitempty" yaml:"method,omitempty"`
	Hidden        map[string]string `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	SubmitLabel   string            `json:"submitButtonText,omitempty" yaml:"submitButtonText,omitempty"`
	SubmitVariant string            `json:"submitButtonVariant,omitempty" yaml:"submitButtonVariant,omitempty"`
	SubmitClass   string            `json:"submitButtonClassName,omitempty" yaml:"submitButtonClassName,omitempty"`
	CancelLabel   string            `json:"cancelButtonText,omitempty" yaml:"cancelButtonText,omitempty"`
	CancelVariant string            `json:"cancelButtonVariant,omitempty" yaml:"cancelButtonVariant,omitempty"`
	CancelClass   string            `json:"cancelButtonClassName,omitempty" yaml:"cancelButtonClassName,omitempty"`
	Initial       ActionState[T]    `json:"-" yaml:"-"`
	Trigger       render.Component  `json:"-" yaml:"-"`
	// Body renders the form fields. close dismisses the dialog.
	Body   func(close func()) render.Component `json:"-" yaml:"-"`
	Action ActionFunc[T]                       `json:"-" yaml:"-"`
}

// Form is a dialog wrapping a form whose submission runs Action. A
// successful action closes the dialog; failed ones keep it open and show
// the returned messages next to the matching fields.
type Form[T any] struct {
	props      FormProps[T]
	disclosure *state.Disclosure
	state      ActionState[T]
	pending    bool
}

// NewForm builds a form dialog starting from props.Initial.
func NewForm[T any](props FormProps[T]) *Form[T] {
	return &Form[T]{
		props:      props,
		disclosure: props.OpenState.disclosure(),
		state:      props.Initial,
	}
}

// ID returns the dialog id.
func (f *Form[T]) ID() string { return f.props.ID }

// Disclosure exposes the open state.
func (f *Form[T]) Disclosure() *state.Disclosure { return f.disclosure }

// Trigger opens the dialog.
func (f *Form[T]) Trigger() bool { return f.disclosure.Trigger() }

// Dismiss closes the dialog.
func (f *Form[T]) Dismiss() bool { return f.disclosure.Dismiss() }

// Close is the callback handed to Body.
func (f *Form[T]) Close() { f.disclosure.Dismiss() }

// State returns the latest action state.
func (f *Form[T]) State() ActionState[T] { return f.state }

// Pending reports whether a submission is running.
func (f *Form[T]) Pending() bool { return f.pending }

// SetPending marks a submission tracked by the caller as running, which
// disables both footer buttons.
func (f *Form[T]) SetPending(p bool) { f.pending = p }

// Submit runs Action with values. The state is replaced by the action's
// result and the dialog closes when the result reports success. Action
// errors leave state and open flag untouched. A closed dialog returns
// ErrClosed.
func (f *Form[T]) Submit(ctx context.Context, values url.Values) (ActionState[T], error) {
	if !f.disclosure.IsOpen() {
		return f.state, ErrClosed
	}
	if f.props.Action == nil {
		return f.state, ErrNoAction
	}
	f.pending = true
	next, err := f.props.Action(ctx, f.state, values)
	f.pending = false
	if err != nil {
		return f.state, fmt.Errorf("dialog: form %q action: %w", f.props.ID, err)
	}
	f.state = next
	if next.Success {
		f.disclosure.Dismiss()
	}
	return next, nil
}

// Render implements render.Component.
func (f *Form[T]) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	messages := render.SplitErrors(f.state.Messages)
	bodyEnv := env.WithFieldErrors(messages.Fields)

	var body markup.Builder
	body.Raw(render.HiddenInputs(f.props.Hidden))
	body.Raw(field.ErrorMessage(messages.Form))
	if f.props.Body != nil {
		if c := f.props.Body(f.Close); c != nil {
			out, err := c.Render(ctx, bodyEnv)
			if err != nil {
				return "", err
			}
			body.Raw(out)
		}
	}

	footer := markup.Join(
		button(env.Or(f.props.SubmitLabel, render.MsgDialogSubmit),
			styles.ParseVariant(f.props.SubmitVariant, styles.VariantPrimary), "submit", "submit", f.props.SubmitClass,
			markup.Bool("disabled", f.pending)),
		button(env.Or(f.props.CancelLabel, render.MsgDialogCancel),
			styles.ParseVariant(f.props.CancelVariant, styles.VariantSecondary), "button", "close", f.props.CancelClass,
			markup.Bool("disabled", f.pending)),
	)

	formID := f.props.ID + "-form"
	method := strings.ToLower(strings.TrimSpace(f.props.Method))
	if method != "get" {
		method = "post"
	}
	return frame{
		id:         f.props.ID,
		role:       "dialog",
		disclosure: f.disclosure,
		trigger:    f.props.Trigger,
		slots:      f.props.Slots,
		body:       body.HTML(),
		footer:     footer,
		wrap: func(inner markup.HTML) markup.HTML {
			var b markup.Builder
			b.Element("form", inner,
				markup.A("id", formID),
				markup.A("action", f.props.URL),
				markup.A("method", method),
				markup.Bool("aria-busy", f.pending),
				markup.Class("grid gap-4"),
			)
			return b.HTML()
		},
	}.render(ctx, env)
}
