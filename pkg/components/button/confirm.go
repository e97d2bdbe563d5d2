package button

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/components/dialog"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// SubmitWithAlertProps configure a button that asks for confirmation
// before submitting FormID.
type SubmitWithAlertProps struct {
	Label          string `json:"label,omitempty" yaml:"label,omitempty"`
	LoadingContent string `json:"loadingContent,omitempty" yaml:"loadingContent,omitempty"`
	Pending        bool   `json:"isPending,omitempty" yaml:"isPending,omitempty"`
	// Variant defaults to destructive.
	Variant      string              `json:"variant,omitempty" yaml:"variant,omitempty" validate:"omitempty,oneof=success warning destructive"`
	TriggerClass string              `json:"triggerButtonClassName,omitempty" yaml:"triggerButtonClassName,omitempty"`
	Content      render.Component    `json:"-" yaml:"-"`
	Confirm      dialog.ConfirmProps `json:"confirm" yaml:"confirm"`
}

// SubmitWithAlert is a pending-aware trigger button opening a confirmation
// dialog whose action submits the form.
type SubmitWithAlert struct {
	props  SubmitWithAlertProps
	dialog *dialog.Confirm
}

// NewSubmitWithAlert builds a SubmitWithAlert.
func NewSubmitWithAlert(props SubmitWithAlertProps) *SubmitWithAlert {
	s := &SubmitWithAlert{props: props}
	s.dialog = dialog.NewConfirm(s.confirmProps())
	return s
}

// ID returns the dialog id.
func (s *SubmitWithAlert) ID() string { return s.props.Confirm.ID }

// Dialog exposes the confirmation dialog.
func (s *SubmitWithAlert) Dialog() *dialog.Confirm { return s.dialog }

func (s *SubmitWithAlert) confirmProps() dialog.ConfirmProps {
	props := s.props.Confirm
	variant := s.props.Variant
	if variant == "" {
		variant = Destructive
	}
	props.Trigger = render.ComponentFunc(func(ctx context.Context, env *render.Env) (markup.HTML, error) {
		content, err := pendingContent(ctx, env, s.props.Pending, s.props.Label, s.props.Content, s.props.LoadingContent)
		if err != nil {
			return "", err
		}
		return Button{
			Type:     "button",
			Variant:  variant,
			Disabled: s.props.Pending,
			Class:    s.props.TriggerClass,
		}.render(env, content), nil
	})
	return props
}

// Render implements render.Component.
func (s *SubmitWithAlert) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	return s.dialog.Render(ctx, env)
}

// DeleteProps configure a destructive button guarded by a confirmation
// dialog.
type DeleteProps struct {
	Label          string              `json:"label,omitempty" yaml:"label,omitempty"`
	LoadingContent string              `json:"loadingContent,omitempty" yaml:"loadingContent,omitempty"`
	Pending        bool                `json:"isPending,omitempty" yaml:"isPending,omitempty"`
	Class          string              `json:"deleteButtonClassName,omitempty" yaml:"deleteButtonClassName,omitempty"`
	Content        render.Component    `json:"-" yaml:"-"`
	Confirm        dialog.ConfirmProps `json:"confirm" yaml:"confirm"`
}

// NewDelete builds a delete button: a destructive trigger whose
// confirmation action submits Confirm.FormID.
func NewDelete(props DeleteProps) *SubmitWithAlert {
	return NewSubmitWithAlert(SubmitWithAlertProps{
		Label:          props.Label,
		LoadingContent: props.LoadingContent,
		Pending:        props.Pending,
		Variant:        Destructive,
		TriggerClass:   props.Class,
		Content:        props.Content,
		Confirm:        props.Confirm,
	})
}

// Pending reports whether the submission is running.
func (s *SubmitWithAlert) Pending() bool { return s.props.Pending }

// SetPending toggles the pending state; the trigger renders disabled and
// ignores activations while pending.
func (s *SubmitWithAlert) SetPending(p bool) { s.props.Pending = p }

// Trigger opens the confirmation dialog. It is a no-op while pending.
func (s *SubmitWithAlert) Trigger() bool {
	if s.props.Pending {
		return false
	}
	return s.dialog.Trigger()
}

// Dismiss closes the confirmation dialog.
func (s *SubmitWithAlert) Dismiss() bool { return s.dialog.Dismiss() }

// Confirm runs the confirmation action and closes the dialog.
func (s *SubmitWithAlert) Confirm() error { return s.dialog.Confirm() }
