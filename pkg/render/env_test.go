package render_test

import (
	"errors"
	"io"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

type stubTranslator struct {
	messages map[string]string
}

func (s stubTranslator) Translate(locale, key string, _ ...any) (string, error) {
	if msg, ok := s.messages[locale+":"+key]; ok {
		return msg, nil
	}
	return "", errors.New("missing")
}

type stubTemplates struct {
	calls []map[string]any
	out   string
	err   error
}

func (s *stubTemplates) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplates) RenderTemplate(_ string, data any, _ ...io.Writer) (string, error) {
	if payload, ok := data.(map[string]any); ok {
		s.calls = append(s.calls, payload)
	}
	return s.out, s.err
}

func (s *stubTemplates) RenderString(content string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(content, data, out...)
}

func (s *stubTemplates) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func (s *stubTemplates) GlobalContext(any) error { return nil }

func TestMessageFallsBackThroughCatalog(t *testing.T) {
	var env *render.Env
	if got := env.Message(render.MsgTableEmpty); got != "No data to display." {
		t.Fatalf("nil env should use english catalog, got %q", got)
	}

	ja := render.NewEnv(render.WithLocale("ja-JP"))
	if got := ja.Message(render.MsgButtonLoading); got != "処理中..." {
		t.Fatalf("expected base language lookup, got %q", got)
	}

	fr := render.NewEnv(render.WithLocale("fr"))
	if got := fr.Message(render.MsgDialogCancel); got != "Cancel" {
		t.Fatalf("unknown locale should fall back to english, got %q", got)
	}
}

func TestMessagePrefersTranslator(t *testing.T) {
	env := render.NewEnv(
		render.WithLocale("es"),
		render.WithTranslator(stubTranslator{messages: map[string]string{"es:table.empty": "Sin datos."}}),
	)
	if got := env.Message(render.MsgTableEmpty); got != "Sin datos." {
		t.Fatalf("expected translator message, got %q", got)
	}
	if got := env.Message(render.MsgButtonBack); got != "Back" {
		t.Fatalf("expected catalog fallback, got %q", got)
	}
}

func TestMessageMissingHandler(t *testing.T) {
	var seen error
	env := render.NewEnv(render.WithMissingTranslationHandler(func(_ string, key string, _ []any, err error) string {
		seen = err
		return "?" + key
	}))
	if got := env.Message("custom.key"); got != "?custom.key" {
		t.Fatalf("unexpected missing translation %q", got)
	}
	if !errors.Is(seen, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", seen)
	}
	if got := env.Or("Go back", render.MsgButtonBack); got != "Go back" {
		t.Fatalf("explicit value should win, got %q", got)
	}
}

func TestFieldErrorsAppendsEnvironmentMessages(t *testing.T) {
	env := render.NewEnv(render.WithErrors(map[string][]string{"email": {"taken"}}))
	got := env.FieldErrors("email", []string{"required"})
	if diff := cmp.Diff([]string{"required", "taken"}, got); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if got := env.FieldErrors("name", nil); got != nil {
		t.Fatalf("expected no errors, got %v", got)
	}
}

func TestPartialUsesThemeTemplate(t *testing.T) {
	templates := &stubTemplates{out: "<div>themed</div>"}
	env := render.NewEnv(
		render.WithTemplates(templates),
		render.WithTheme(&theme.RendererConfig{Partials: map[string]string{render.PartialCard: "cards/card"}}),
	)

	got := env.Partial(render.PartialCard, map[string]any{"title": "T"}, markup.HTML("<div>builtin</div>"))
	if got != "<div>themed</div>" {
		t.Fatalf("expected themed markup, got %q", got)
	}
	if len(templates.calls) != 1 {
		t.Fatalf("expected one template call, got %d", len(templates.calls))
	}
	want := map[string]any{"title": "T", "default": "<div>builtin</div>", "locale": "en"}
	if diff := cmp.Diff(want, templates.calls[0]); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	if got := env.Partial(render.PartialTable, nil, "builtin"); got != "builtin" {
		t.Fatalf("unmapped partial should use builtin markup, got %q", got)
	}
}

func TestPartialFallsBackOnTemplateError(t *testing.T) {
	env := render.NewEnv(
		render.WithTemplates(&stubTemplates{err: errors.New("boom")}),
		render.WithTheme(&theme.RendererConfig{Partials: map[string]string{render.PartialCard: "card"}}),
	)
	if got := env.Partial(render.PartialCard, nil, "builtin"); got != "builtin" {
		t.Fatalf("expected builtin markup after failure, got %q", got)
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{})
	translate, ok := funcs["translate"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("translate helper missing")
	}
	if got := translate(map[string]any{"locale": "ja"}, render.MsgButtonBack); got != "戻る" {
		t.Fatalf("unexpected translation %q", got)
	}
	current := funcs["current_locale"].(func(any) string)
	if got := current("ja-JP"); got != "ja-JP" {
		t.Fatalf("unexpected locale %q", got)
	}
	if got := current(42); got != "" {
		t.Fatalf("expected empty locale for unsupported source, got %q", got)
	}
}
