package gotemplate

import (
	"fmt"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-uikit/pkg/render/template"
)

// Engine names accepted by NewRenderer.
const (
	EnginePongo2     = "pongo2"
	EngineGoTemplate = "go-template"
)

// Engines lists the accepted engine names.
func Engines() []string {
	return []string{EngineGoTemplate, EnginePongo2}
}

// NewRenderer builds the engine registered under name from options. A blank
// name selects the pongo2 adapter, which adds the uikit filters (trim,
// classes, colspan); go-template is the upstream engine used as is.
func NewRenderer(name string, options ...Option) (template.TemplateRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EnginePongo2:
		return New(options...)
	case EngineGoTemplate:
		return NewGoTemplate(options...)
	default:
		return nil, fmt.Errorf("gotemplate: unknown engine %q (want one of %s)", name, strings.Join(Engines(), ", "))
	}
}

// NewGoTemplate builds a github.com/goliatone/go-template renderer from the
// same options New accepts. Global data is applied through GlobalContext
// once the engine is loaded.
func NewGoTemplate(options ...Option) (template.TemplateRenderer, error) {
	cfg, err := newConfig(options)
	if err != nil {
		return nil, err
	}

	var opts []gotemplatepkg.Option
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	opts = append(opts, gotemplatepkg.WithExtension(cfg.extension))
	if len(cfg.templateFn) > 0 {
		opts = append(opts, gotemplatepkg.WithTemplateFunc(cfg.templateFn))
	}

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load go-template engine: %w", err)
	}
	if len(cfg.globalData) > 0 {
		if err := engine.GlobalContext(cfg.globalData); err != nil {
			return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
		}
	}
	return engine, nil
}
