package page_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

func staticBuilder(html string) page.Builder {
	return func(context.Context, page.BuildContext) (render.Component, error) {
		return render.Static(markup.HTML(html)), nil
	}
}

func TestRegistryDescriptorClone(t *testing.T) {
	reg := page.NewRegistry()
	require.NoError(t, reg.Register("test", page.Descriptor{Build: staticBuilder("x"), Stylesheets: []string{"/a.css"}}))

	desc, ok := reg.Descriptor(" TEST ")
	require.True(t, ok)
	assert.Equal(t, "test", desc.Name)
	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	assert.Equal(t, []string{"/a.css"}, original.Stylesheets)

	clone := reg.Clone()
	clone.MustRegister("extra", page.Descriptor{Build: staticBuilder("y")})
	assert.Equal(t, []string{"test"}, reg.Names())
	assert.Equal(t, []string{"extra", "test"}, clone.Names())
}

func TestRegistryRegisterValidates(t *testing.T) {
	reg := page.NewRegistry()
	assert.Error(t, reg.Register("  ", page.Descriptor{Build: staticBuilder("x")}))
	assert.Error(t, reg.Register("nil-builder", page.Descriptor{}))
	assert.Panics(t, func() { reg.MustRegister("", page.Descriptor{}) })
}

func TestRegistryAssetsDeduplicates(t *testing.T) {
	reg := page.NewRegistry()
	reg.MustRegister("input", page.Descriptor{
		Build:       staticBuilder(""),
		Stylesheets: []string{"/shared.css", "/input.css"},
		Scripts:     []page.Script{{Src: "/shared.js"}},
	})
	reg.MustRegister("select", page.Descriptor{
		Build:       staticBuilder(""),
		Stylesheets: []string{"/shared.css", "/select.css"},
		Scripts:     []page.Script{{Src: "/shared.js"}, {Src: "/select.js"}},
	})

	styles, scripts := reg.Assets([]string{"input", "select", "unknown"})
	assert.Equal(t, []string{"/shared.css", "/input.css", "/select.css"}, styles)
	require.Len(t, scripts, 2)
	assert.Equal(t, "/select.js", scripts[1].Src)
}

func TestDefaultRegistryKnowsEveryComponent(t *testing.T) {
	names := page.NewDefaultRegistry().Names()
	for _, want := range []string{
		"accordion", "alert", "back-button", "button", "card", "checkbox", "combobox",
		"confirm-dialog", "date-picker", "delete-button", "dialog", "error-message",
		"file-input", "form-dialog", "input", "multiple-accordion", "radio-group",
		"select", "submit-button", "submit-button-with-alert", "switch", "table",
		"textarea", "tooltip", "view-dialog",
	} {
		assert.Contains(t, names, want)
	}
	assert.Len(t, names, 25)
}
