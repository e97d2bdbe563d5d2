package field

import (
	"context"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// FileInputProps configure a file upload field.
type FileInputProps struct {
	Base       `yaml:",inline"`
	Accept     string `json:"accept,omitempty" yaml:"accept,omitempty"`
	Multiple   bool   `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Capture    string `json:"capture,omitempty" yaml:"capture,omitempty" validate:"omitempty,oneof=user environment"`
	InputClass string `json:"inputClassName,omitempty" yaml:"inputClassName,omitempty"`
}

// FileInput is a file upload field. It holds no state; the browser owns the
// chosen files.
type FileInput struct {
	props FileInputProps
}

// NewFileInput builds a FileInput.
func NewFileInput(props FileInputProps) *FileInput {
	return &FileInput{props: props}
}

// ID returns the field id.
func (f *FileInput) ID() string { return f.props.FieldID() }

// Render implements render.Component.
func (f *FileInput) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	id := f.props.FieldID()
	var b markup.Builder
	b.Void("input",
		markup.A("id", id),
		markup.A("name", id),
		markup.A("type", "file"),
		markup.A("accept", f.props.Accept),
		markup.Bool("multiple", f.props.Multiple),
		markup.A("capture", captureMode(f.props.Capture)),
		markup.Aria("invalid", ariaInvalid(env, f.props.Base)),
		markup.Class(styles.Input, f.props.InputClass),
	)
	return wrap(env, "file-input", f.props.Base, alignStart, b.HTML()), nil
}

func captureMode(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "user":
		return "user"
	case "environment":
		return "environment"
	default:
		return ""
	}
}
