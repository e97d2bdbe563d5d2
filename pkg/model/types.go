package model

import internalmodel "github.com/goliatone/go-uikit/internal/model"

// ComponentType re-exports the internal component type enumeration.
type ComponentType = internalmodel.ComponentType

const (
	TypeInput             = internalmodel.TypeInput
	TypeTextarea          = internalmodel.TypeTextarea
	TypeSelect            = internalmodel.TypeSelect
	TypeCombobox          = internalmodel.TypeCombobox
	TypeCheckbox          = internalmodel.TypeCheckbox
	TypeSwitch            = internalmodel.TypeSwitch
	TypeDatePicker        = internalmodel.TypeDatePicker
	TypeRadioGroup        = internalmodel.TypeRadioGroup
	TypeFileInput         = internalmodel.TypeFileInput
	TypeErrorMessage      = internalmodel.TypeErrorMessage
	TypeDialog            = internalmodel.TypeDialog
	TypeConfirmDialog     = internalmodel.TypeConfirmDialog
	TypeFormDialog        = internalmodel.TypeFormDialog
	TypeViewDialog        = internalmodel.TypeViewDialog
	TypeCard              = internalmodel.TypeCard
	TypeTable             = internalmodel.TypeTable
	TypeTooltip           = internalmodel.TypeTooltip
	TypeAccordion         = internalmodel.TypeAccordion
	TypeMultipleAccordion = internalmodel.TypeMultipleAccordion
	TypeAlert             = internalmodel.TypeAlert
	TypeButton            = internalmodel.TypeButton
	TypeSubmitButton      = internalmodel.TypeSubmitButton
	TypeSubmitWithAlert   = internalmodel.TypeSubmitWithAlert
	TypeDeleteButton      = internalmodel.TypeDeleteButton
	TypeBackButton        = internalmodel.TypeBackButton
)

type Component = internalmodel.Component
type Page = internalmodel.Page

// NormalizeProps coerces layout-related props (column spans) decoded from
// YAML or JSON into ints so typed decoding accepts "3", 3 and 3.0 alike.
func NormalizeProps(props map[string]any) map[string]any {
	return internalmodel.NormalizeProps(props)
}
