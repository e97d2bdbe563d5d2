package page

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/render"
	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	registry  *Registry
	templates rendertemplate.TemplateRenderer
	logger    zerolog.Logger
	build     []BuildOption
}

// WithRegistry replaces the default component registry.
func WithRegistry(reg *Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithTemplateRenderer sets the engine used for theme partials.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithLogger sets the logger used when render options carry none.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithBuildOptions forwards options to Build for every rendered page.
func WithBuildOptions(options ...BuildOption) Option {
	return func(cfg *config) {
		cfg.build = append(cfg.build, options...)
	}
}

// Renderer renders page documents as HTML fragments.
type Renderer struct {
	registry  *Registry
	templates rendertemplate.TemplateRenderer
	logger    zerolog.Logger
	build     []BuildOption
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer constructs an HTML renderer backed by NewDefaultRegistry
// unless WithRegistry is supplied.
func NewRenderer(options ...Option) *Renderer {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.registry == nil {
		cfg.registry = NewDefaultRegistry()
	}
	return &Renderer{
		registry:  cfg.registry,
		templates: cfg.templates,
		logger:    cfg.logger,
		build:     cfg.build,
	}
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return "html" }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Registry exposes the component registry.
func (r *Renderer) Registry() *Registry { return r.registry }

// Build builds doc with the renderer's registry and build options.
func (r *Renderer) Build(ctx context.Context, doc model.Page) (*Document, error) {
	return Build(ctx, r.registry, doc, r.build...)
}

// Render implements render.Renderer: it applies the subset, builds the
// document and renders it.
func (r *Renderer) Render(ctx context.Context, doc model.Page, opts render.RenderOptions) ([]byte, error) {
	render.ApplySubset(&doc, opts.Subset)
	built, err := r.Build(ctx, doc)
	if err != nil {
		return nil, err
	}
	out, err := r.RenderDocument(ctx, built, opts)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderDocument renders an already built document, so callers holding a
// Document across interactions re-render its current state.
func (r *Renderer) RenderDocument(ctx context.Context, doc *Document, opts render.RenderOptions) (markup.HTML, error) {
	if doc == nil {
		return "", fmt.Errorf("page: document is nil")
	}
	page := doc.Page

	mapping := render.MapErrorPayload(page.FieldIDs(), opts.Errors)
	opts.Errors = mapping.Fields
	formErrors := render.MergeFormErrors(opts.FormErrors, mapping.Form...)
	if opts.Locale == "" {
		opts.Locale = page.Locale
	}
	if opts.Logger == nil {
		logger := r.logger
		opts.Logger = &logger
	}
	env := render.EnvFromOptions(opts, r.templates)

	body, err := doc.Render(ctx, env)
	if err != nil {
		return "", fmt.Errorf("page: render %q: %w", page.ID, err)
	}

	names := make([]string, 0)
	for _, typ := range page.Types() {
		names = append(names, string(typ))
	}
	stylesheets, scripts := r.registry.Assets(names)

	cfg := env.Theme()
	var cssVars map[string]string
	var themeName, variant string
	if cfg != nil {
		cssVars = cfg.CSSVars
		themeName = cfg.Theme
		variant = cfg.Variant
	}

	var b markup.Builder
	b.Open("section",
		markup.A("id", page.ID),
		markup.Data("uikit-page", page.ID),
		markup.A("lang", env.Locale()),
		markup.Data("theme", themeName),
		markup.Data("variant", variant),
		markup.A("style", render.CSSVarsStyle(cssVars)),
		markup.Class("grid gap-6"),
	)
	for _, href := range stylesheets {
		b.Void("link", markup.A("rel", "stylesheet"), markup.A("href", r.assetURL(env, href)))
	}
	if page.Title != "" || page.Description != "" {
		b.Open("header", markup.Class("grid gap-1.5"))
		if page.Title != "" {
			b.TextElement("h1", page.Title, markup.Class("text-2xl font-semibold"))
		}
		if page.Description != "" {
			b.TextElement("p", page.Description, markup.Class("text-muted-foreground text-sm"))
		}
		b.Close("header")
	}
	b.Raw(field.ErrorMessage(formErrors))

	hidden := render.HiddenInputs(opts.Hidden)
	if page.Action != "" {
		method := strings.ToLower(page.Method)
		if method == "" {
			method = "post"
		}
		b.Open("form", markup.A("id", page.ID+"-form"), markup.A("action", page.Action), markup.A("method", method), markup.Class("grid gap-6"))
		b.Raw(hidden).Raw(body)
		b.Close("form")
	} else {
		b.Raw(hidden).Raw(body)
	}

	for _, script := range scripts {
		r.writeScript(&b, env, script)
	}
	b.Close("section")

	return env.Partial(render.PartialPage, map[string]any{
		"id":          page.ID,
		"title":       page.Title,
		"description": page.Description,
		"body":        string(body),
		"errors":      formErrors,
		"stylesheets": stylesheets,
	}, b.HTML()), nil
}

func (r *Renderer) writeScript(b *markup.Builder, env *render.Env, script Script) {
	if script.Src == "" && script.Inline == "" {
		return
	}
	typ := script.Type
	if script.Module {
		typ = "module"
	}
	attrs := []markup.Attr{
		markup.A("src", r.assetURL(env, script.Src)),
		markup.A("type", typ),
		markup.Bool("async", script.Async),
		markup.Bool("defer", script.Defer && script.Src != ""),
	}
	for _, key := range slices.Sorted(maps.Keys(script.Attrs)) {
		attrs = append(attrs, markup.A(key, script.Attrs[key]))
	}
	b.Open("script", attrs...)
	if script.Src == "" {
		b.Raw(markup.HTML(script.Inline))
	}
	b.Close("script")
}

// assetURL resolves key through the theme, mapping the runtime key to its
// default path when the theme does not.
func (r *Renderer) assetURL(env *render.Env, key string) string {
	if cfg := env.Theme(); cfg != nil && cfg.AssetURL != nil {
		if resolved := cfg.AssetURL(key); resolved != "" {
			return resolved
		}
	}
	if key == RuntimeScriptKey {
		return DefaultRuntimeScriptPath
	}
	return key
}
