package page

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/components/button"
	"github.com/goliatone/go-uikit/pkg/components/dialog"
	"github.com/goliatone/go-uikit/pkg/components/display"
	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/runtime"
)

// RuntimeScriptKey is the theme asset key of the browser runtime. Themes
// that do not map it get DefaultRuntimeScriptPath.
const (
	RuntimeScriptKey         = "uikit.runtime"
	DefaultRuntimeScriptPath = "/_uikit/" + runtime.ScriptName
)

var runtimeScripts = []Script{{Src: RuntimeScriptKey, Defer: true}}

// NewDefaultRegistry returns a registry with every built-in component.
// Components that need the browser runtime (popovers, dialogs, accordions)
// declare it as a script.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()

	reg.MustRegister(string(model.TypeInput), Descriptor{Build: decoded(field.NewInput)})
	reg.MustRegister(string(model.TypeTextarea), Descriptor{Build: decoded(field.NewTextarea)})
	reg.MustRegister(string(model.TypeSelect), Descriptor{Build: decoded(field.NewSelect)})
	reg.MustRegister(string(model.TypeCombobox), Descriptor{Build: decoded(field.NewCombobox), Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeCheckbox), Descriptor{Build: decoded(field.NewCheckbox)})
	reg.MustRegister(string(model.TypeSwitch), Descriptor{Build: decoded(field.NewSwitch)})
	reg.MustRegister(string(model.TypeDatePicker), Descriptor{Build: decoded(field.NewDatePicker), Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeRadioGroup), Descriptor{Build: decoded(field.NewRadioGroup)})
	reg.MustRegister(string(model.TypeFileInput), Descriptor{Build: decoded(field.NewFileInput)})
	reg.MustRegister(string(model.TypeErrorMessage), Descriptor{Build: decoded(func(p field.ErrorList) field.ErrorList { return p })})

	reg.MustRegister(string(model.TypeDialog), Descriptor{Build: buildDialog, Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeConfirmDialog), Descriptor{Build: buildConfirm, Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeFormDialog), Descriptor{Build: buildFormDialog, Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeViewDialog), Descriptor{Build: buildView, Scripts: runtimeScripts})

	reg.MustRegister(string(model.TypeCard), Descriptor{Build: buildCard})
	reg.MustRegister(string(model.TypeTable), Descriptor{Build: decoded(func(p display.Table) display.Table { return p })})
	reg.MustRegister(string(model.TypeTooltip), Descriptor{Build: buildTooltip, Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeAccordion), Descriptor{Build: decoded(display.NewAccordion), Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeMultipleAccordion), Descriptor{Build: decoded(display.NewMultipleAccordion), Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeAlert), Descriptor{Build: buildAlert})

	reg.MustRegister(string(model.TypeButton), Descriptor{Build: buildButton})
	reg.MustRegister(string(model.TypeSubmitButton), Descriptor{Build: buildSubmit})
	reg.MustRegister(string(model.TypeSubmitWithAlert), Descriptor{Build: buildSubmitWithAlert, Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeDeleteButton), Descriptor{Build: buildDelete, Scripts: runtimeScripts})
	reg.MustRegister(string(model.TypeBackButton), Descriptor{Build: decoded(func(p button.Back) button.Back { return p }), Scripts: runtimeScripts})

	return reg
}

// decoded adapts a props constructor into a Builder.
func decoded[P any, C render.Component](build func(P) C) Builder {
	return func(_ context.Context, b BuildContext) (render.Component, error) {
		var props P
		if err := b.Decode(&props); err != nil {
			return nil, err
		}
		return build(props), nil
	}
}

// trigger renders the "trigger" prop as an outline button opening the
// dialog. Documents without one get no trigger.
func trigger(b BuildContext) render.Component {
	label := b.Prop("trigger")
	if label == "" {
		return nil
	}
	return button.Button{Label: label, Variant: button.Outline}
}

func buildDialog(_ context.Context, b BuildContext) (render.Component, error) {
	var props dialog.Props
	if err := b.Decode(&props); err != nil {
		return nil, err
	}
	props.Trigger = trigger(b)
	props.Body = b.Content()
	return dialog.New(props), nil
}

func buildConfirm(_ context.Context, b BuildContext) (render.Component, error) {
	var props dialog.ConfirmProps
	if err := b.Decode(&props); err != nil {
		return nil, err
	}
	props.Trigger = trigger(b)
	return dialog.NewConfirm(props), nil
}

func buildFormDialog(_ context.Context, b BuildContext) (render.Component, error) {
	var props dialog.FormProps[map[string]any]
	if err := b.Decode(&props); err != nil {
		return nil, err
	}
	props.Trigger = trigger(b)
	content := b.Content()
	if content != nil {
		props.Body = func(func()) render.Component { return content }
	}
	props.Action = b.Actions[b.Spec.ID]
	return dialog.NewForm(props), nil
}

func buildView(_ context.Context, b BuildContext) (render.Component, error) {
	var props dialog.ViewProps
	if err := b.Decode(&props); err != nil {
		return nil, err
	}
	props.Trigger = trigger(b)
	props.Body = b.Content()
	return dialog.NewView(props), nil
}

func buildCard(_ context.Context, b BuildContext) (render.Component, error) {
	var card display.Card
	if err := b.Decode(&card); err != nil {
		return nil, err
	}
	card.Content = b.Content()
	return card, nil
}

func buildTooltip(_ context.Context, b BuildContext) (render.Component, error) {
	var tip display.Tooltip
	if err := b.Decode(&tip); err != nil {
		return nil, err
	}
	if label := b.Prop("trigger"); label != "" {
		tip.Trigger = render.Static(markup.Text(label))
	}
	tip.Content = b.Content()
	return tip, nil
}

func buildAlert(_ context.Context, b BuildContext) (render.Component, error) {
	var alert display.Alert
	if err := b.Decode(&alert); err != nil {
		return nil, err
	}
	alert.Content = b.Content()
	return alert, nil
}

func buildButton(_ context.Context, b BuildContext) (render.Component, error) {
	var btn button.Button
	if err := b.Decode(&btn); err != nil {
		return nil, err
	}
	btn.Content = b.Content()
	return btn, nil
}

func buildSubmit(_ context.Context, b BuildContext) (render.Component, error) {
	var submit button.Submit
	if err := b.Decode(&submit); err != nil {
		return nil, err
	}
	submit.Content = b.Content()
	return submit, nil
}

func buildSubmitWithAlert(_ context.Context, b BuildContext) (render.Component, error) {
	var props button.SubmitWithAlertProps
	if err := b.Decode(&props); err != nil {
		return nil, err
	}
	if props.Confirm.ID == "" {
		props.Confirm.ID = b.Spec.ID
	}
	props.Content = b.Content()
	return button.NewSubmitWithAlert(props), nil
}

func buildDelete(_ context.Context, b BuildContext) (render.Component, error) {
	var props button.DeleteProps
	if err := b.Decode(&props); err != nil {
		return nil, err
	}
	if props.Confirm.ID == "" {
		props.Confirm.ID = b.Spec.ID
	}
	props.Content = b.Content()
	return button.NewDelete(props), nil
}
