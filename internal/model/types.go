package model

// ComponentType names a registered component builder.
type ComponentType string

const (
	TypeInput             ComponentType = "input"
	TypeTextarea          ComponentType = "textarea"
	TypeSelect            ComponentType = "select"
	TypeCombobox          ComponentType = "combobox"
	TypeCheckbox          ComponentType = "checkbox"
	TypeSwitch            ComponentType = "switch"
	TypeDatePicker        ComponentType = "date-picker"
	TypeRadioGroup        ComponentType = "radio-group"
	TypeFileInput         ComponentType = "file-input"
	TypeErrorMessage      ComponentType = "error-message"
	TypeDialog            ComponentType = "dialog"
	TypeConfirmDialog     ComponentType = "confirm-dialog"
	TypeFormDialog        ComponentType = "form-dialog"
	TypeViewDialog        ComponentType = "view-dialog"
	TypeCard              ComponentType = "card"
	TypeTable             ComponentType = "table"
	TypeTooltip           ComponentType = "tooltip"
	TypeAccordion         ComponentType = "accordion"
	TypeMultipleAccordion ComponentType = "multiple-accordion"
	TypeAlert             ComponentType = "alert"
	TypeButton            ComponentType = "button"
	TypeSubmitButton      ComponentType = "submit-button"
	TypeSubmitWithAlert   ComponentType = "submit-button-with-alert"
	TypeDeleteButton      ComponentType = "delete-button"
	TypeBackButton        ComponentType = "back-button"
)

// Component is one declared component inside a page document. Props are
// decoded into the typed props of the builder registered for Type. Children
// fill the component's primary slot (card content, dialog body).
type Component struct {
	Type     ComponentType  `json:"type" yaml:"type" validate:"required,component_type"`
	ID       string         `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,component_id"`
	Props    map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Children []Component    `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
}

// Page is a declarative document rendered as a single HTML fragment.
type Page struct {
	ID          string            `json:"id" yaml:"id" validate:"required,component_id"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Locale      string            `json:"locale,omitempty" yaml:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
	Theme       string            `json:"theme,omitempty" yaml:"theme,omitempty"`
	Variant     string            `json:"variant,omitempty" yaml:"variant,omitempty"`
	Action      string            `json:"action,omitempty" yaml:"action,omitempty"`
	Method      string            `json:"method,omitempty" yaml:"method,omitempty" validate:"omitempty,oneof=GET POST get post"`
	Components  []Component       `json:"components" yaml:"components" validate:"dive"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Source      string            `json:"-" yaml:"-"`
}

// Walk visits every component depth-first in document order.
func (p Page) Walk(fn func(Component) bool) {
	walkComponents(p.Components, fn)
}

func walkComponents(list []Component, fn func(Component) bool) bool {
	for _, component := range list {
		if !fn(component) {
			return false
		}
		if !walkComponents(component.Children, fn) {
			return false
		}
	}
	return true
}

// Types returns the distinct component types used by the page, in first
// appearance order.
func (p Page) Types() []ComponentType {
	seen := make(map[ComponentType]struct{})
	var out []ComponentType
	p.Walk(func(c Component) bool {
		if _, ok := seen[c.Type]; !ok {
			seen[c.Type] = struct{}{}
			out = append(out, c.Type)
		}
		return true
	})
	return out
}

// FieldIDs returns the ids of every component that declares one.
func (p Page) FieldIDs() []string {
	var out []string
	p.Walk(func(c Component) bool {
		if c.ID != "" {
			out = append(out, c.ID)
		}
		return true
	})
	return out
}
