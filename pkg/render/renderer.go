package render

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/model"
)

// Component is anything that renders itself into markup. Components never
// fail on malformed props; errors are reserved for environment failures
// such as a broken child component.
type Component interface {
	Render(ctx context.Context, env *Env) (markup.HTML, error)
}

// ComponentFunc adapts a function into a Component.
type ComponentFunc func(ctx context.Context, env *Env) (markup.HTML, error)

// Render implements Component.
func (fn ComponentFunc) Render(ctx context.Context, env *Env) (markup.HTML, error) {
	if fn == nil {
		return "", nil
	}
	return fn(ctx, env)
}

// Static wraps fixed markup as a Component.
func Static(content markup.HTML) Component {
	return ComponentFunc(func(context.Context, *Env) (markup.HTML, error) {
		return content, nil
	})
}

// RenderAll renders components in order and concatenates their markup.
// Nil components are skipped.
func RenderAll(ctx context.Context, env *Env, components ...Component) (markup.HTML, error) {
	var b markup.Builder
	for _, component := range components {
		if component == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		out, err := component.Render(ctx, env)
		if err != nil {
			return "", err
		}
		b.Raw(out)
	}
	return b.HTML(), nil
}

// Renderer converts a page document into a byte representation (HTML
// fragment, prompt answers).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page model.Page, options RenderOptions) ([]byte, error)
}
