package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render/template"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

var nopLogger = zerolog.Nop()

// Env is the rendering environment shared by every component of a render
// pass. A nil *Env is valid and renders with built-in defaults.
type Env struct {
	locale     string
	translator Translator
	onMissing  MissingTranslationHandler
	theme      *theme.RendererConfig
	templates  template.TemplateRenderer
	errors     map[string][]string
	logger     zerolog.Logger
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithLocale selects the message locale.
func WithLocale(locale string) EnvOption {
	return func(e *Env) {
		e.locale = strings.TrimSpace(locale)
	}
}

// WithTranslator installs a translator consulted before the built-in catalog.
func WithTranslator(t Translator) EnvOption {
	return func(e *Env) {
		e.translator = t
	}
}

// WithMissingTranslationHandler overrides how untranslated keys resolve.
func WithMissingTranslationHandler(fn MissingTranslationHandler) EnvOption {
	return func(e *Env) {
		if fn != nil {
			e.onMissing = fn
		}
	}
}

// WithTheme attaches a resolved theme configuration.
func WithTheme(cfg *theme.RendererConfig) EnvOption {
	return func(e *Env) {
		e.theme = cfg
	}
}

// WithTemplates attaches the template renderer used for theme partials.
func WithTemplates(renderer template.TemplateRenderer) EnvOption {
	return func(e *Env) {
		e.templates = renderer
	}
}

// WithErrors attaches server-side field errors keyed by component id.
func WithErrors(errs map[string][]string) EnvOption {
	return func(e *Env) {
		e.errors = cloneErrors(errs)
	}
}

// WithLogger attaches a logger for render diagnostics.
func WithLogger(logger zerolog.Logger) EnvOption {
	return func(e *Env) {
		e.logger = logger
	}
}

// NewEnv builds an Env from options.
func NewEnv(options ...EnvOption) *Env {
	env := &Env{
		locale:    DefaultLocale,
		onMissing: missingTranslationDefault,
		logger:    nopLogger,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(env)
	}
	if env.locale == "" {
		env.locale = DefaultLocale
	}
	return env
}

// EnvFromOptions derives an Env from per-request render options.
func EnvFromOptions(opts RenderOptions, templates template.TemplateRenderer) *Env {
	options := []EnvOption{
		WithLocale(opts.Locale),
		WithTranslator(opts.Translator),
		WithMissingTranslationHandler(opts.OnMissing),
		WithTheme(opts.Theme),
		WithTemplates(templates),
		WithErrors(opts.Errors),
	}
	if opts.Logger != nil {
		options = append(options, WithLogger(*opts.Logger))
	}
	return NewEnv(options...)
}

// Locale returns the active locale.
func (e *Env) Locale() string {
	if e == nil || e.locale == "" {
		return DefaultLocale
	}
	return e.locale
}

// Theme returns the active theme configuration, if any.
func (e *Env) Theme() *theme.RendererConfig {
	if e == nil {
		return nil
	}
	return e.theme
}

// Logger returns the diagnostics logger.
func (e *Env) Logger() *zerolog.Logger {
	if e == nil {
		return &nopLogger
	}
	return &e.logger
}

// FieldErrors returns the component's own messages followed by any
// environment messages registered for id.
func (e *Env) FieldErrors(id string, own []string) []string {
	var extra []string
	if e != nil && len(e.errors) > 0 {
		extra = e.errors[strings.TrimSpace(id)]
	}
	if len(extra) == 0 {
		return own
	}
	out := make([]string, 0, len(own)+len(extra))
	out = append(out, own...)
	out = append(out, extra...)
	return out
}

// WithFieldErrors returns a copy of e whose field errors also include errs,
// appended after the messages already registered for each id.
func (e *Env) WithFieldErrors(errs map[string][]string) *Env {
	var out Env
	if e == nil {
		out = *NewEnv()
	} else {
		out = *e
	}
	merged := cloneErrors(out.errors)
	for key, messages := range errs {
		key = strings.TrimSpace(key)
		if key == "" || len(messages) == 0 {
			continue
		}
		if merged == nil {
			merged = make(map[string][]string, len(errs))
		}
		merged[key] = append(merged[key], messages...)
	}
	out.errors = merged
	return &out
}

// Partial renders the theme partial mapped to key, handing it payload plus
// the builtin markup under "default". Without a mapping, or when the
// template fails, the builtin markup is returned.
func (e *Env) Partial(key string, payload map[string]any, fallback markup.HTML) markup.HTML {
	if e == nil || e.theme == nil || e.templates == nil {
		return fallback
	}
	name := strings.TrimSpace(e.theme.Partials[key])
	if name == "" {
		return fallback
	}

	data := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		data[k] = v
	}
	data["default"] = string(fallback)
	data["locale"] = e.Locale()

	rendered, err := e.templates.RenderTemplate(name, data)
	if err != nil {
		e.logger.Debug().Err(err).Str("partial", key).Str("template", name).Msg("theme partial failed, using builtin markup")
		return fallback
	}
	return markup.HTML(rendered)
}

func cloneErrors(src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string][]string, len(src))
	for key, messages := range src {
		out[strings.TrimSpace(key)] = append([]string(nil), messages...)
	}
	return out
}
