package page_test

import (
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

const signupYAML = `
id: signup
title: Create account
locale: en
action: /signup
components:
  - type: input
    id: email
    props:
      label: Email
      isHorizontal: true
      labelCol: "4"
      inputCol: 8
  - type: checkbox
    id: terms
    props:
      label: Accept terms
  - type: card
    id: extras
    props:
      title: Extras
    children:
      - type: switch
        id: newsletter
        props: {label: Newsletter, defaultChecked: true}
`

func TestParseYAMLDocument(t *testing.T) {
	doc, err := page.Parse([]byte(signupYAML), "signup.yaml")
	require.NoError(t, err)

	assert.Equal(t, "signup", doc.ID)
	assert.Equal(t, "signup.yaml", doc.Source)
	require.Len(t, doc.Components, 3)
	assert.Equal(t, model.TypeInput, doc.Components[0].Type)
	assert.Equal(t, []string{"email", "terms", "extras", "newsletter"}, doc.FieldIDs())
	assert.Equal(t, []model.ComponentType{model.TypeInput, model.TypeCheckbox, model.TypeCard, model.TypeSwitch}, doc.Types())
}

func TestParseJSONDocument(t *testing.T) {
	doc, err := page.Parse([]byte(`{"id":"p","components":[{"type":"table","id":"t","props":{"headerRow":[{"label":"A"}]}}]}`), "p.json")
	require.NoError(t, err)
	require.Len(t, doc.Components, 1)
	assert.Equal(t, model.TypeTable, doc.Components[0].Type)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]struct {
		input string
		want  string
	}{
		"empty":        {input: "  ", want: "is empty"},
		"missing id":   {input: "components: []", want: "ID failed required"},
		"bad type":     {input: "id: p\ncomponents:\n  - type: Bad Type\n", want: "component_type"},
		"bad id":       {input: "id: p\ncomponents:\n  - type: input\n    id: 9lives\n", want: "component_id"},
		"duplicate id": {input: "id: p\ncomponents:\n  - type: input\n    id: a\n  - type: card\n    children:\n      - type: input\n        id: a\n", want: `duplicate component id "a"`},
		"bad method":   {input: "id: p\nmethod: DELETE\ncomponents: []\n", want: "Method failed oneof"},
		"not a doc":    {input: "[1, 2", want: "invalid JSON or YAML"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := page.Parse([]byte(tc.input), "doc.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadFSCollectsDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/signup.yaml": {Data: []byte(signupYAML)},
		"pages/about.json":  {Data: []byte(`{"id":"about","components":[]}`)},
		"pages/README.md":   {Data: []byte("not a page")},
	}
	store, err := page.LoadFS(fsys)
	require.NoError(t, err)

	assert.Equal(t, []string{"about", "signup"}, store.IDs())
	doc, ok := store.Page("signup")
	require.True(t, ok)
	assert.Equal(t, "pages/signup.yaml", doc.Source)

	empty, err := page.LoadFS(nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

func TestLoadFSRejectsDuplicatePages(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"id":"same","components":[]}`)},
		"b.json": {Data: []byte(`{"id":"same","components":[]}`)},
	}
	_, err := page.LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate page "same"`)
}

func TestParseThemeBuildsManifest(t *testing.T) {
	fsys := fstest.MapFS{"acme.yaml": {Data: []byte(`
name: acme
version: 1.0.0
tokens:
  primary: "#111"
templates:
  uikit.card: themes/acme/card.tmpl
assets:
  prefix: /static/acme
  files:
    uikit.runtime: runtime.js
variants:
  dark:
    tokens:
      primary: "#eee"
`)}}
	manifest, err := page.LoadTheme(fsys, "acme.yaml")
	require.NoError(t, err)
	assert.Equal(t, "acme", manifest.Name)

	cfg := render.ThemeFromSelection(&theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}, nil)
	assert.Equal(t, "themes/acme/card.tmpl", cfg.Partials[render.PartialCard])
	assert.Equal(t, "#eee", cfg.CSSVars["--primary"])
	assert.Equal(t, "/static/acme/runtime.js", cfg.AssetURL(page.RuntimeScriptKey))

	_, err = page.ParseTheme([]byte("tokens: {}"), "nameless.yaml")
	require.Error(t, err)
}
