package dialog_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/components/dialog"
	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

func mustRender(t *testing.T, c render.Component, env *render.Env) string {
	t.Helper()
	out, err := c.Render(context.Background(), env)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func TestDialogLifecycle(t *testing.T) {
	var events []bool
	d := dialog.New(dialog.Props{
		ID:        "edit",
		Slots:     dialog.Slots{Title: "Edit profile", Description: "Change your details."},
		OpenState: dialog.OpenState{OnOpenChange: func(open bool) { events = append(events, open) }},
		Trigger:   render.Static(markup.HTML(`<button type="button">Open</button>`)),
		Body:      render.Static(markup.HTML(`<p>body</p>`)),
	})

	closed := mustRender(t, d, nil)
	if !strings.Contains(closed, `data-state="closed"`) || !strings.Contains(closed, `aria-expanded="false"`) {
		t.Fatalf("expected closed dialog: %s", closed)
	}
	if strings.Contains(closed, "dialog-footer") {
		t.Fatalf("footer should be omitted when not supplied: %s", closed)
	}

	if !d.Trigger() {
		t.Fatalf("trigger should open the dialog")
	}
	open := mustRender(t, d, nil)
	for _, fragment := range []string{
		`role="dialog" aria-modal="true" aria-labelledby="edit-title" aria-describedby="edit-description" data-state="open"`,
		`<h2 id="edit-title"`,
		`<p>body</p>`,
	} {
		if !strings.Contains(open, fragment) {
			t.Fatalf("expected %q in %s", fragment, open)
		}
	}

	if !d.Dismiss() || d.Disclosure().IsOpen() {
		t.Fatalf("dismiss should close the dialog")
	}
	if diff := cmp.Diff([]bool{true, false}, events); diff != "" {
		t.Fatalf("open events mismatch (-want +got):\n%s", diff)
	}
}

func TestConfirmInvokesActionOncePerActivation(t *testing.T) {
	calls := 0
	c := dialog.NewConfirm(dialog.ConfirmProps{
		ID:          "del",
		Slots:       dialog.Slots{Title: "Delete?"},
		ActionLabel: "Delete",
		OnAction:    func() { calls++ },
	})

	c.Trigger()
	if c.Cancel(); calls != 0 || c.Disclosure().IsOpen() {
		t.Fatalf("cancel must close without running the action (calls=%d)", calls)
	}

	c.Trigger()
	if err := c.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one action call, got %d", calls)
	}
	if c.Disclosure().IsOpen() {
		t.Fatalf("confirm should close the dialog")
	}
}

func TestConfirmWhileClosedIsRejected(t *testing.T) {
	calls := 0
	c := dialog.NewConfirm(dialog.ConfirmProps{
		ID:          "del",
		ActionLabel: "Delete",
		OnAction:    func() { calls++ },
	})

	if err := c.Confirm(); !errors.Is(err, dialog.ErrClosed) {
		t.Fatalf("expected ErrClosed before the trigger, got %v", err)
	}
	c.Trigger()
	if err := c.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := c.Confirm(); !errors.Is(err, dialog.ErrClosed) {
		t.Fatalf("expected ErrClosed after closing, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one action call, got %d", calls)
	}
}

func TestConfirmControlledRunsOnEveryActivation(t *testing.T) {
	open := true
	calls := 0
	c := dialog.NewConfirm(dialog.ConfirmProps{
		ID:          "del",
		ActionLabel: "Delete",
		OpenState:   dialog.OpenState{Open: &open},
		OnAction:    func() { calls++ },
	})
	for i := 0; i < 2; i++ {
		if err := c.Confirm(); err != nil {
			t.Fatalf("confirm %d: %v", i, err)
		}
	}
	if calls != 2 {
		t.Fatalf("activations are not de-duplicated, expected 2 calls, got %d", calls)
	}
	if !c.Disclosure().IsOpen() {
		t.Fatalf("controlled dialog stays open until the caller syncs")
	}
}

func TestConfirmRendersLabelsAndForm(t *testing.T) {
	c := dialog.NewConfirm(dialog.ConfirmProps{
		ID:          "del",
		Slots:       dialog.Slots{Title: "Delete?"},
		ActionLabel: "Delete",
		FormID:      "delete-form",
	})
	got := mustRender(t, c, render.NewEnv(render.WithLocale("ja")))
	if !strings.Contains(got, `role="alertdialog"`) {
		t.Fatalf("expected alertdialog role: %s", got)
	}
	if !strings.Contains(got, ">キャンセル</button>") {
		t.Fatalf("expected localized cancel label: %s", got)
	}
	if !strings.Contains(got, `type="submit" data-action="confirm"`) || !strings.Contains(got, `form="delete-form">Delete</button>`) {
		t.Fatalf("expected action to submit the external form: %s", got)
	}
}

type profile struct {
	Name string
}

func TestFormSubmitClosesOnSuccess(t *testing.T) {
	attempts := 0
	f := dialog.NewForm(dialog.FormProps[profile]{
		ID:    "profile",
		Slots: dialog.Slots{Title: "Profile"},
		Body: func(close func()) render.Component {
			return field.NewInput(field.InputProps{Base: field.Base{ID: "name", Label: "Name"}})
		},
		Action: func(_ context.Context, prev dialog.ActionState[profile], values url.Values) (dialog.ActionState[profile], error) {
			attempts++
			name := values.Get("name")
			if name == "" {
				return dialog.ActionState[profile]{Messages: map[string][]string{
					"name":    {"Name is required"},
					"__all__": {"Fix the errors below"},
				}}, nil
			}
			return dialog.ActionState[profile]{Success: true, Data: profile{Name: name}}, nil
		},
	})
	f.Trigger()

	state, err := f.Submit(context.Background(), url.Values{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if state.Success || !f.Disclosure().IsOpen() {
		t.Fatalf("failed action must keep the dialog open")
	}
	got := mustRender(t, f, nil)
	if !strings.Contains(got, "Name is required") || !strings.Contains(got, "Fix the errors below") {
		t.Fatalf("expected action messages: %s", got)
	}
	if !strings.Contains(got, `<form id="profile-form" method="post"`) {
		t.Fatalf("expected wrapping form: %s", got)
	}

	state, err = f.Submit(context.Background(), url.Values{"name": {"Ada"}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !state.Success || state.Data.Name != "Ada" {
		t.Fatalf("unexpected state %+v", state)
	}
	if f.Disclosure().IsOpen() {
		t.Fatalf("successful action should close the dialog")
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestFormActionErrorAndPending(t *testing.T) {
	boom := errors.New("boom")
	f := dialog.NewForm(dialog.FormProps[struct{}]{
		ID: "f",
		Action: func(context.Context, dialog.ActionState[struct{}], url.Values) (dialog.ActionState[struct{}], error) {
			return dialog.ActionState[struct{}]{}, boom
		},
	})
	f.Trigger()
	if _, err := f.Submit(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped action error, got %v", err)
	}

	f.SetPending(true)
	got := mustRender(t, f, nil)
	if strings.Count(got, " disabled>") != 2 {
		t.Fatalf("pending should disable submit and cancel: %s", got)
	}
	if strings.Contains(got, "dialog-header") {
		t.Fatalf("header should be omitted without title or description: %s", got)
	}

	bare := dialog.NewForm(dialog.FormProps[struct{}]{ID: "bare"})
	bare.Trigger()
	if _, err := bare.Submit(context.Background(), nil); !errors.Is(err, dialog.ErrNoAction) {
		t.Fatalf("expected ErrNoAction, got %v", err)
	}
}

func TestFormSubmitWhileClosedIsRejected(t *testing.T) {
	calls := 0
	f := dialog.NewForm(dialog.FormProps[struct{}]{
		ID: "f",
		Action: func(_ context.Context, prev dialog.ActionState[struct{}], _ url.Values) (dialog.ActionState[struct{}], error) {
			calls++
			return dialog.ActionState[struct{}]{Success: true}, nil
		},
	})

	if _, err := f.Submit(context.Background(), url.Values{}); !errors.Is(err, dialog.ErrClosed) {
		t.Fatalf("expected ErrClosed on a never opened form, got %v", err)
	}
	f.Trigger()
	if _, err := f.Submit(context.Background(), url.Values{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := f.Submit(context.Background(), url.Values{}); !errors.Is(err, dialog.ErrClosed) {
		t.Fatalf("expected ErrClosed after a successful submit, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one action call, got %d", calls)
	}
}

func TestFormBodyCloseCallback(t *testing.T) {
	var closeFn func()
	f := dialog.NewForm(dialog.FormProps[struct{}]{
		ID: "f",
		Body: func(close func()) render.Component {
			closeFn = close
			return nil
		},
	})
	f.Trigger()
	mustRender(t, f, nil)
	closeFn()
	if f.Disclosure().IsOpen() {
		t.Fatalf("close callback should dismiss the dialog")
	}
}

func TestViewDialogCloseButton(t *testing.T) {
	v := dialog.NewView(dialog.ViewProps{ID: "info", Body: render.Static("<p>details</p>")})
	got := mustRender(t, v, nil)
	if !strings.Contains(got, `data-action="close"`) || !strings.Contains(got, ">Close</button>") {
		t.Fatalf("expected default close button: %s", got)
	}
	v.Trigger()
	v.Dismiss()
	if v.Disclosure().IsOpen() {
		t.Fatalf("dismiss should close the view dialog")
	}
}
