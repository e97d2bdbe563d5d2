// Package uikit is the convenience entry point: load page documents, render
// them through the orchestrator and serve the browser runtime.
package uikit

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

// RenderOptions describes per-request overrides such as locale, theme and
// server-side validation errors.
type RenderOptions = render.RenderOptions

// ComponentSubset aliases render.ComponentSubset for callers rendering part
// of a page.
type ComponentSubset = render.ComponentSubset

// Page is a declarative page document.
type Page = model.Page

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// ParsePage decodes and validates a JSON or YAML page document.
func ParsePage(data []byte, source string) (Page, error) {
	return page.Parse(data, source)
}

// GenerateHTML loads every page in fsys and renders pageID with the default
// HTML renderer. It is the simplest entry point for callers that just want
// HTML output.
func GenerateHTML(ctx context.Context, fsys fs.FS, pageID string, options ...orchestrator.Option) ([]byte, error) {
	options = append([]orchestrator.Option{orchestrator.WithPagesFS(fsys)}, options...)
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{PageID: pageID})
}

// GenerateHTMLFromPage renders an already loaded page with the named
// renderer (the default HTML renderer when empty).
func GenerateHTMLFromPage(ctx context.Context, doc Page, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Page: &doc, Renderer: rendererName})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator
// so theme and variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests registers manifests behind a selector that falls back
// to defaultTheme and defaultVariant.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeSelector(render.NewManifestSelector(defaultTheme, defaultVariant, manifests...))
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
