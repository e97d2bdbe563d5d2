package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-uikit/pkg/page"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a flag value onto an OutputFormat, defaulting to
// JSON.
func ParseOutputFormat(name string) OutputFormat {
	switch OutputFormat(name) {
	case OutputFormatFormURLEncoded, OutputFormatPrettyText:
		return OutputFormat(name)
	default:
		return OutputFormatJSON
	}
}

// Theme styles the pretty output and the info lines printed between
// prompts.
type Theme struct {
	Key   lipgloss.Style
	Value lipgloss.Style
	Info  lipgloss.Style
	Error lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		Key:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Value: lipgloss.NewStyle(),
		Info:  lipgloss.NewStyle().Faint(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// SubmitTransformer mutates collected values before serialization.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithRegistry replaces the component registry used to build pages.
func WithRegistry(reg *page.Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithSubmitTransformer allows callers to mutate collected values prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme replaces the output styles.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
