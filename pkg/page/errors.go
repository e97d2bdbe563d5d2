package page

import "errors"

var (
	// ErrUnknownComponent is returned when a document names a component
	// type the registry does not know.
	ErrUnknownComponent = errors.New("page: unknown component type")
	// ErrUnknownTarget is returned when an interaction names no component.
	ErrUnknownTarget = errors.New("page: unknown component id")
	// ErrUnsupportedAction is returned when a component cannot handle an
	// interaction.
	ErrUnsupportedAction = errors.New("page: unsupported action")
)
