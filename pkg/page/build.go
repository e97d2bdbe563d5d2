package page

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-uikit/pkg/components/dialog"
	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/render"
)

// FormAction handles submissions of form dialogs built from documents.
type FormAction = dialog.ActionFunc[map[string]any]

// BuildContext is handed to a Builder: the declared component and its
// already built children.
type BuildContext struct {
	Spec     model.Component
	Children []render.Component
	// Actions holds form dialog actions keyed by component id.
	Actions map[string]FormAction
}

// dateKeys are props decoded into time values. Documents may write them as
// plain dates ("2024-05-12") or RFC 3339 timestamps.
var dateKeys = []string{"value", "defaultValue", "min", "max", "month"}

// Decode fills target from the component props. The component id is
// injected as the "id" prop unless the props set one, integer layout keys
// are normalised, and target is validated afterwards.
func (b BuildContext) Decode(target any) error {
	props := model.NormalizeProps(b.Spec.Props)
	if props == nil {
		props = make(map[string]any)
	}
	if _, ok := props["id"]; !ok && b.Spec.ID != "" {
		props["id"] = b.Spec.ID
	}
	if b.Spec.Type == model.TypeDatePicker {
		for _, key := range dateKeys {
			if err := normalizeDate(props, key); err != nil {
				return fmt.Errorf("page: component %q prop %s: %w", b.Spec.ID, key, err)
			}
		}
	}

	data, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("page: component %q: encode props: %w", b.Spec.ID, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("page: component %q (%s): decode props: %w", b.Spec.ID, b.Spec.Type, err)
	}
	return validateProps(b.Spec, target)
}

// Prop returns a string prop, or "" when absent.
func (b BuildContext) Prop(key string) string {
	if value, ok := b.Spec.Props[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// Content returns the children as one component, or nil when there are
// none.
func (b BuildContext) Content() render.Component {
	if len(b.Children) == 0 {
		return nil
	}
	children := b.Children
	return render.ComponentFunc(func(ctx context.Context, env *render.Env) (markup.HTML, error) {
		return render.RenderAll(ctx, env, children...)
	})
}

func normalizeDate(props map[string]any, key string) error {
	switch value := props[key].(type) {
	case string:
		if strings.TrimSpace(value) == "" {
			delete(props, key)
			return nil
		}
		parsed, err := field.ParseDate(value)
		if err != nil {
			return err
		}
		props[key] = parsed.Format(time.RFC3339)
	case time.Time:
		props[key] = value.Format(time.RFC3339)
	}
	return nil
}
