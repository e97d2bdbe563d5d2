package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

const defaultRendererName = "html"

// ErrPageNotFound is returned when a request names a page the store lacks.
var ErrPageNotFound = errors.New("orchestrator: page not found")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithStore injects a loaded page store.
func WithStore(store *page.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithPagesFS loads every page document found in fsys.
func WithPagesFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		store, err := page.LoadFS(fsys)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load pages: %w", err)
			return
		}
		o.store = store
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that can mutate pages before
// rendering. Transformers run in registration order.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.transformers = append(o.transformers, t)
		}
	}
}

// WithThemeSelector resolves theme and variant names into renderer
// configuration ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks sets partials used when the selected theme does not
// map a key.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// WithLogger sets the logger handed to the default renderer and to render
// passes that do not carry their own.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from page document to rendered
// output. It applies sensible defaults (html renderer, empty store) while
// remaining open to dependency injection.
type Orchestrator struct {
	store           *page.Store
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	logger          zerolog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// PageID selects a document from the store. Ignored when Page is set.
	PageID string

	// Page bypasses the store when the caller already has a document.
	Page *model.Page

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant override the page's theme and variant when
	// a theme selector is configured.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request errors, locale and subset. An
	// explicit Theme wins over the selector.
	RenderOptions render.RenderOptions
}

// Generate resolves, transforms and renders the requested page.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	doc, err := o.resolvePage(req)
	if err != nil {
		return nil, err
	}
	for _, t := range o.transformers {
		if err := t.Transform(ctx, &doc); err != nil {
			return nil, fmt.Errorf("orchestrator: transform page %q: %w", doc.ID, err)
		}
	}

	opts := req.RenderOptions
	if opts.Logger == nil {
		logger := o.logger
		opts.Logger = &logger
	}
	if opts.Theme == nil && o.themeSelector != nil {
		cfg, err := o.resolveTheme(doc, req)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Pages lists the ids held by the store.
func (o *Orchestrator) Pages() []string {
	return o.store.IDs()
}

func (o *Orchestrator) resolvePage(req Request) (model.Page, error) {
	if req.Page != nil {
		return clonePage(*req.Page), nil
	}
	if req.PageID == "" {
		return model.Page{}, errors.New("orchestrator: page id or page is required")
	}
	doc, ok := o.store.Page(req.PageID)
	if !ok {
		return model.Page{}, fmt.Errorf("%w: %q", ErrPageNotFound, req.PageID)
	}
	return clonePage(doc), nil
}

func (o *Orchestrator) resolveTheme(doc model.Page, req Request) (*theme.RendererConfig, error) {
	name := req.ThemeName
	if name == "" {
		name = doc.Theme
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = doc.Variant
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return render.ThemeFromSelection(selection, o.themeFallbacks), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.store == nil {
		o.store, _ = page.LoadFS(nil)
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(page.NewRenderer(page.WithLogger(o.logger)))
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
