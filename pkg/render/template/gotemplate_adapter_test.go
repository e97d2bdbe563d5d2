package template_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
)

func partialsFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tmpl":      {Data: []byte(`Hello {{ name }}`)},
		"use-global.tmpl": {Data: []byte(`env={{ settings.env }}`)},
		"use-filter.tmpl": {Data: []byte(`{{ name|shout }}`)},
		"card.tmpl":       {Data: []byte(`<section class="{{ "card"|classes:extra }}">{{ default|safe }}</section>`)},
		"label.tmpl":      {Data: []byte(`{{ span|colspan:"md" }}`)},
	}
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var out bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &out)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "Hello Ada" {
		t.Fatalf("unexpected result %q", result)
	}
	if out.String() != result {
		t.Fatalf("writer mismatch: %q", out.String())
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_WrapsBuiltinMarkup(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("card", map[string]any{
		"default": `<div class="p-4">body</div>`,
		"extra":   "card shadow",
	})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	want := `<section class="card shadow"><div class="p-4">body</div></section>`
	if result != want {
		t.Fatalf("unexpected result\nwant: %s\n got: %s", want, result)
	}

	span, err := engine.RenderTemplate("label", map[string]any{"span": 20})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if span != "md:col-span-12" {
		t.Fatalf("expected clamped span, got %q", span)
	}
}

func TestGoTemplateEngine_RenderInlineContent(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.Render(`{{ label|trim }}`, map[string]any{"label": "  Name  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Name" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestGoTemplateEngine_ExtensionGlobalsAndI18n(t *testing.T) {
	files := fstest.MapFS{
		"empty.html": {Data: []byte(`{{ site }}: {{ translate(locale, "table.empty") }}`)},
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithExtension("html"),
		gotemplate.WithGlobalData(map[string]any{"site": "Acme"}),
		gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{})),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("empty", map[string]any{"locale": "ja"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	want := "Acme: " + mustCatalog(t, "ja", render.MsgTableEmpty)
	if result != want {
		t.Fatalf("unexpected result\nwant: %s\n got: %s", want, result)
	}
}

func TestNewRendererSelectsEngine(t *testing.T) {
	engine, err := gotemplate.NewRenderer("", gotemplate.WithFS(partialsFS()))
	if err != nil {
		t.Fatalf("default engine: %v", err)
	}
	if _, ok := engine.(*gotemplate.Engine); !ok {
		t.Fatalf("blank name should select the pongo2 adapter, got %T", engine)
	}

	native, err := gotemplate.NewRenderer(gotemplate.EngineGoTemplate, gotemplate.WithFS(partialsFS()))
	if err != nil {
		t.Fatalf("go-template engine: %v", err)
	}
	if _, ok := native.(*gotemplate.Engine); ok {
		t.Fatalf("go-template should not be the pongo2 adapter")
	}
	result, err := native.RenderString(`Hello {{ name }}`, map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Hello Ada" {
		t.Fatalf("unexpected result %q", result)
	}

	if _, err := gotemplate.NewRenderer("mustache", gotemplate.WithFS(partialsFS())); err == nil {
		t.Fatalf("expected unknown engine error")
	}
	if _, err := gotemplate.NewRenderer(gotemplate.EngineGoTemplate); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func mustCatalog(t *testing.T, locale, key string) string {
	t.Helper()
	msg, ok := render.CatalogMessage(locale, key)
	if !ok {
		t.Fatalf("missing catalog entry %s/%s", locale, key)
	}
	return msg
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(partialsFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
