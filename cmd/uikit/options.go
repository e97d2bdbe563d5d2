package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-theme"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
)

// addRenderFlags registers the flags shared by render and serve.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme-file", "", "theme manifest (yaml or json)")
	cmd.Flags().String("variant", "", "theme variant (defaults to the page variant)")
	cmd.Flags().String("locale", "", "message locale (defaults to the page locale)")
	cmd.Flags().String("templates", "", "directory of theme partial templates")
	cmd.Flags().String("engine", gotemplate.EnginePongo2, "partial template engine ("+strings.Join(gotemplate.Engines(), ", ")+")")
	cmd.Flags().String("template-ext", ".tmpl", "partial template file extension")
	cmd.Flags().StringSlice("only", nil, "render only these component ids")
	cmd.Flags().StringSlice("types", nil, "render only these component types")
}

func renderOptions(v *viper.Viper, doc model.Page, log zerolog.Logger) (render.RenderOptions, error) {
	opts := render.RenderOptions{
		Locale: v.GetString("locale"),
		Logger: &log,
	}
	for _, typ := range v.GetStringSlice("types") {
		opts.Subset.Types = append(opts.Subset.Types, model.ComponentType(strings.TrimSpace(typ)))
	}
	opts.Subset.IDs = v.GetStringSlice("only")

	path := v.GetString("theme-file")
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read theme %s: %w", path, err)
	}
	manifest, err := page.ParseTheme(data, path)
	if err != nil {
		return opts, err
	}
	variant := v.GetString("variant")
	if variant == "" {
		variant = doc.Variant
	}
	opts.Theme = render.ThemeFromSelection(&theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil)
	return opts, nil
}

func newPageRenderer(v *viper.Viper, log zerolog.Logger) (*page.Renderer, error) {
	options := []page.Option{page.WithLogger(log)}
	if dir := v.GetString("templates"); dir != "" {
		engine, err := gotemplate.NewRenderer(v.GetString("engine"),
			gotemplate.WithBaseDir(dir),
			gotemplate.WithExtension(v.GetString("template-ext")),
			gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{})),
		)
		if err != nil {
			return nil, fmt.Errorf("load templates %s: %w", dir, err)
		}
		options = append(options, page.WithTemplateRenderer(engine))
	}
	return page.NewRenderer(options...), nil
}
