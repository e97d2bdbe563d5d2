package render_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/render"
)

func TestMapErrorPayload(t *testing.T) {
	mapping := render.MapErrorPayload(
		[]string{"email", "owner.email", "tags"},
		map[string][]string{
			"/body/email":        {" invalid ", "invalid"},
			"owner.email":        {"taken"},
			"$.data.tags[0]":     {"too short"},
			"non_field_errors":   {"try again"},
			"unknown":            {"ignored field"},
			"email.confirmEmpty": {""},
		},
	)

	wantFields := map[string][]string{
		"email":       {"invalid"},
		"owner.email": {"taken"},
		"tags":        {"too short"},
	}
	if diff := cmp.Diff(wantFields, mapping.Fields); diff != "" {
		t.Fatalf("field mapping mismatch (-want +got):\n%s", diff)
	}
	form := append([]string(nil), mapping.Form...)
	if len(form) != 2 {
		t.Fatalf("expected two form level messages, got %v", form)
	}
	joined := strings.Join(form, "|")
	if !strings.Contains(joined, "try again") || !strings.Contains(joined, "ignored field") {
		t.Fatalf("unexpected form messages %v", form)
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := render.MergeFormErrors([]string{"a", " "}, "b", "a")
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenInputsAreSortedAndEscaped(t *testing.T) {
	fields := render.MergeHiddenFields(
		map[string]string{"b": "2", " ": "x"},
		render.CSRFToken("_csrf", `t"k`),
		render.Hidden("a", 1),
	)
	got := render.HiddenInputs(fields).String()
	want := `<input type="hidden" name="_csrf" value="t&#34;k">` +
		`<input type="hidden" name="a" value="1">` +
		`<input type="hidden" name="b" value="2">`
	if got != want {
		t.Fatalf("unexpected hidden inputs\nwant: %s\n got: %s", want, got)
	}
	if render.MergeHiddenFields(nil) != nil {
		t.Fatalf("expected nil for empty merge")
	}
}

func TestApplySubsetPromotesMatchingDescendants(t *testing.T) {
	page := model.Page{
		ID: "p",
		Components: []model.Component{
			{Type: model.TypeCard, ID: "card", Children: []model.Component{
				{Type: model.TypeInput, ID: "name"},
				{Type: model.TypeDialog, ID: "dlg", Children: []model.Component{
					{Type: model.TypeButton, ID: "ok"},
				}},
			}},
			{Type: model.TypeTable, ID: "tbl"},
		},
	}

	render.ApplySubset(&page, render.ComponentSubset{IDs: []string{"dlg"}, Types: []model.ComponentType{model.TypeTable}})

	var ids []string
	for _, component := range page.Components {
		ids = append(ids, component.ID)
	}
	if diff := cmp.Diff([]string{"dlg", "tbl"}, ids); diff != "" {
		t.Fatalf("subset mismatch (-want +got):\n%s", diff)
	}
	if len(page.Components[0].Children) != 1 {
		t.Fatalf("matching component should keep its subtree")
	}
}

func TestThemeFromSelectionMergesVariant(t *testing.T) {
	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:      "acme",
			Tokens:    map[string]string{"primary": "#000", "radius": "4px"},
			Templates: map[string]string{render.PartialCard: "acme/card"},
			Assets:    theme.Assets{Prefix: "/static/acme", Files: map[string]string{"stylesheet": "acme.css"}},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens:    map[string]string{"primary": "#fff"},
					Templates: map[string]string{render.PartialTable: "acme/table-dark"},
				},
			},
		},
	}

	cfg := render.ThemeFromSelection(selection, map[string]string{render.PartialCard: "base/card", render.PartialAlert: "base/alert"})

	wantPartials := map[string]string{
		render.PartialCard:  "acme/card",
		render.PartialAlert: "base/alert",
		render.PartialTable: "acme/table-dark",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	if got := render.CSSVarsStyle(cfg.CSSVars); got != "--primary: #fff; --radius: 4px" {
		t.Fatalf("unexpected css vars %q", got)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/static/acme/acme.css" {
		t.Fatalf("unexpected asset url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}
}

func TestManifestSelectorDefaults(t *testing.T) {
	selector := render.NewManifestSelector("acme", "light", &theme.Manifest{Name: "acme"})
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "acme" || selection.Variant != "light" {
		t.Fatalf("unexpected selection %+v", selection)
	}
	if _, err := selector.Select("other", ""); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if err := selector.Add(&theme.Manifest{}); err == nil {
		t.Fatalf("expected error for unnamed manifest")
	}
}

func TestSplitErrorsAndWithFieldErrors(t *testing.T) {
	mapping := render.SplitErrors(map[string][]string{
		"name":    {"required"},
		"__all__": {"server busy"},
		"blank":   {" "},
	})
	if diff := cmp.Diff(map[string][]string{"name": {"required"}}, mapping.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"server busy"}, mapping.Form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}

	base := render.NewEnv(render.WithErrors(map[string][]string{"name": {"taken"}}))
	derived := base.WithFieldErrors(mapping.Fields)
	if diff := cmp.Diff([]string{"taken", "required"}, derived.FieldErrors("name", nil)); diff != "" {
		t.Fatalf("derived errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"taken"}, base.FieldErrors("name", nil)); diff != "" {
		t.Fatalf("base env must not change (-want +got):\n%s", diff)
	}
}
