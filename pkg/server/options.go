package server

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

// GuardFunc rejects requests before they reach the page. Returning a
// StatusError selects the response code.
type GuardFunc func(r *http.Request) error

// Options configure a preview server.
type Options struct {
	InteractPath  string
	ValuesPath    string
	AssetsPath    string
	Renderer      *page.Renderer
	RenderOptions render.RenderOptions
	Logger        zerolog.Logger
	Guard         GuardFunc
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the default routes and a default HTML renderer.
func DefaultOptions() Options {
	return Options{
		InteractPath: "/interact",
		ValuesPath:   "/values",
		AssetsPath:   "/_uikit/",
		Logger:       zerolog.Nop(),
	}
}

// NewOptions applies fns over DefaultOptions and fills blanks.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.InteractPath == "" {
		opts.InteractPath = "/interact"
	}
	if opts.ValuesPath == "" {
		opts.ValuesPath = "/values"
	}
	if opts.AssetsPath == "" {
		opts.AssetsPath = "/_uikit/"
	}
	if opts.Renderer == nil {
		opts.Renderer = page.NewRenderer(page.WithLogger(opts.Logger))
	}
	return opts
}

// WithRenderer replaces the HTML renderer.
func WithRenderer(r *page.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = r
	}
}

// WithRenderOptions sets the options used for every render pass (theme,
// locale, translator).
func WithRenderOptions(opts render.RenderOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RenderOptions = opts
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithGuard installs a request guard.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithInteractPath moves the interaction endpoint.
func WithInteractPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.InteractPath = path
	}
}
