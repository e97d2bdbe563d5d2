package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-uikit/pkg/renderers/tui"
)

const pageYAML = `
id: signup
title: Sign up
components:
  - type: input
    id: email
    props:
      label: Email
  - type: switch
    id: news
    props:
      label: Newsletter
  - type: accordion
    id: faq
    props:
      items:
        - {value: one, title: One, content: First}
`

const themeYAML = `
name: acme
tokens:
  primary: "#123"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2025-10-03"

	out, err := execute(t, context.Background(), "version")
	require.NoError(t, err)
	require.Contains(t, out, "uikit 1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2025-10-03")
}

func TestComponentsCommandListsTypes(t *testing.T) {
	out, err := execute(t, context.Background(), "components")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 25)
	require.Contains(t, lines, "date-picker")
	require.Contains(t, lines, "submit-button-with-alert")

	out, err = execute(t, context.Background(), "components", "--assets")
	require.NoError(t, err)
	require.Contains(t, out, "accordion\tuikit.runtime\n")
	require.Contains(t, out, "input\t\n")
}

func TestRenderCommandWritesHTML(t *testing.T) {
	doc := writeFile(t, "signup.yaml", pageYAML)

	out, err := execute(t, context.Background(), "render", doc)
	require.NoError(t, err)
	require.Contains(t, out, `data-uikit-page`)
	require.Contains(t, out, `id="email"`)
	require.Contains(t, out, `<script src="/_uikit/uikit.js" defer></script>`)
}

func TestRenderCommandSubsetAndTheme(t *testing.T) {
	doc := writeFile(t, "signup.yaml", pageYAML)
	themeFile := writeFile(t, "theme.yaml", themeYAML)

	out, err := execute(t, context.Background(), "render", doc, "--only", "email", "--theme-file", themeFile)
	require.NoError(t, err)
	require.Contains(t, out, `data-theme="acme"`)
	require.Contains(t, out, `id="email"`)
	require.NotContains(t, out, `id="news"`)
	require.NotContains(t, out, "uikit.js")
}

func TestRenderCommandThemePartialsTranslate(t *testing.T) {
	doc := writeFile(t, "signup.yaml", pageYAML)
	themeFile := writeFile(t, "theme.yaml", `
name: acme
templates:
  uikit.accordion: faq
`)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "faq.tmpl"),
		[]byte(`<aside data-empty="{{ translate(locale, "table.empty") }}">{{ default|safe }}</aside>`), 0o644))

	out, err := execute(t, context.Background(), "render", doc, "--theme-file", themeFile, "--templates", dir, "--locale", "en")
	require.NoError(t, err)
	require.Contains(t, out, `<aside data-empty="No data to display.">`)
	require.Contains(t, out, `data-slot="accordion"`)

	_, err = execute(t, context.Background(), "render", doc, "--templates", dir, "--engine", "mustache")
	require.ErrorContains(t, err, "unknown engine")
}

func TestRenderCommandReadsConfigFile(t *testing.T) {
	doc := writeFile(t, "signup.yaml", pageYAML)
	target := filepath.Join(t.TempDir(), "out.html")
	cfg := writeFile(t, "uikit.yaml", "output: "+target+"\n")

	out, err := execute(t, context.Background(), "--config", cfg, "render", doc)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(data), `data-uikit-page`)
}

func TestEnvironmentOverridesLogLevel(t *testing.T) {
	doc := writeFile(t, "signup.yaml", pageYAML)
	t.Setenv("UIKIT_LOG_LEVEL", "loud")

	_, err := execute(t, context.Background(), "render", doc)
	require.Error(t, err)
}

func TestRenderCommandRequiresPage(t *testing.T) {
	_, err := execute(t, context.Background(), "render")
	require.Error(t, err)

	_, err = execute(t, context.Background(), "render", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

type scriptedDriver struct {
	inputs  []string
	confirm []bool
}

func (d *scriptedDriver) Input(context.Context, tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	val := d.inputs[0]
	d.inputs = d.inputs[1:]
	return val, nil
}

func (d *scriptedDriver) Password(ctx context.Context, cfg tui.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	if len(d.confirm) == 0 {
		return false, errors.New("no confirm scripted")
	}
	val := d.confirm[0]
	d.confirm = d.confirm[1:]
	return val, nil
}

func (d *scriptedDriver) Select(context.Context, tui.SelectConfig) (int, error) {
	return -1, errors.New("no select scripted")
}

func (d *scriptedDriver) MultiSelect(context.Context, tui.SelectConfig) ([]int, error) {
	return nil, errors.New("no multiselect scripted")
}

func (d *scriptedDriver) TextArea(context.Context, tui.TextAreaConfig) (string, error) {
	return "", errors.New("no textarea scripted")
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestPromptCommandCollectsValues(t *testing.T) {
	original := newPromptDriver
	t.Cleanup(func() { newPromptDriver = original })
	newPromptDriver = func(io.Writer) tui.PromptDriver {
		return &scriptedDriver{inputs: []string{"ada@example.com"}, confirm: []bool{true}}
	}
	doc := writeFile(t, "signup.yaml", pageYAML)

	out, err := execute(t, context.Background(), "prompt", doc)
	require.NoError(t, err)

	var values map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	require.Equal(t, map[string]any{"email": "ada@example.com", "news": "true"}, values)
}

func TestServeCommandStopsWithContext(t *testing.T) {
	doc := writeFile(t, "signup.yaml", pageYAML)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	out, err := execute(t, ctx, "serve", doc, "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "http://127.0.0.1:"), out)
}
