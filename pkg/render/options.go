package render

import (
	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"
)

// RenderOptions describe per-request data renderers use to customise their
// output without mutating the page document.
type RenderOptions struct {
	// Locale selects the message catalog and is handed to the Translator.
	Locale string
	// Translator resolves message keys before the built-in catalog.
	Translator Translator
	// OnMissing decides the string used when a key cannot be translated.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved go-theme configuration (partials, tokens,
	// CSS variables, asset resolver).
	Theme *theme.RendererConfig
	// Errors surfaces server-side validation messages keyed by component id.
	// They are appended after any messages declared on the component.
	Errors map[string][]string
	// FormErrors are page level messages rendered above the components.
	FormErrors []string
	// Hidden lists hidden inputs emitted inside the page form.
	Hidden map[string]string
	// Subset limits rendering to matching components.
	Subset ComponentSubset
	// Logger receives diagnostics. A nil logger disables logging.
	Logger *zerolog.Logger
}
