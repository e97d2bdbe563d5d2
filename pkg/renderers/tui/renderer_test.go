package tui

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	passwords    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int
	passPos      int

	inputConfigs  []InputConfig
	selectConfigs []SelectConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectConfigs = append(s.selectConfigs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

const profileYAML = `
id: profile
title: Profile
components:
  - type: input
    id: name
    props:
      label: Name
  - type: input
    id: pw
    props:
      label: Password
      type: password
  - type: input
    id: ro
    props:
      label: Read only
      defaultValue: fixed
      isReadonly: true
  - type: textarea
    id: bio
    props:
      label: Bio
  - type: checkbox
    id: terms
    props:
      label: Accept terms
  - type: select
    id: color
    props:
      label: Color
      defaultValue: red
      items:
        - {value: red, label: Red}
        - {value: blue, label: Blue, disabled: true}
        - {value: green, label: Green}
  - type: date-picker
    id: due
    props:
      label: Due
      min: "2024-05-10"
  - type: multiple-accordion
    id: topics
    props:
      items:
        - {value: a, title: Alpha}
        - {value: b, title: Beta}
        - {value: c, title: Gamma}
  - type: input
    id: address.city
    props:
      label: City
`

func loadPage(t *testing.T, src string) model.Page {
	t.Helper()
	doc, err := page.Parse([]byte(src), "test.yaml")
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc
}

func profileDriver() *stubDriver {
	return &stubDriver{
		inputs:    []string{"Ada", "2024-06-01", "Paris"},
		passwords: []string{"secret"},
		textAreas: []string{"hello"},
		confirm:   []bool{true},
		selectIdx: []int{1},
		multiIdx:  [][]int{{0, 2}},
	}
}

func TestRenderCollectsJSON(t *testing.T) {
	driver := profileDriver()
	r := New(WithPromptDriver(driver))

	out, err := r.Render(context.Background(), loadPage(t, profileYAML), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := map[string]any{
		"name":    "Ada",
		"pw":      "secret",
		"ro":      "fixed",
		"bio":     "hello",
		"terms":   "true",
		"color":   "green",
		"due":     "2024-06-01",
		"topics":  []any{"a", "c"},
		"address": map[string]any{"city": "Paris"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if r.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderSelectSkipsDisabledOptions(t *testing.T) {
	driver := profileDriver()
	r := New(WithPromptDriver(driver))

	if _, err := r.Render(context.Background(), loadPage(t, profileYAML), render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(driver.selectConfigs) != 1 {
		t.Fatalf("expected one select prompt, got %d", len(driver.selectConfigs))
	}
	cfg := driver.selectConfigs[0]
	if diff := cmp.Diff([]string{"Red", "Green"}, cfg.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if cfg.DefaultIndex != 0 {
		t.Fatalf("expected current value as default, got %d", cfg.DefaultIndex)
	}
	if driver.inputConfigs[1].Placeholder != "YYYY-MM-DD" {
		t.Fatalf("expected date prompt, got %+v", driver.inputConfigs[1])
	}
}

func TestRenderRejectsDisabledDate(t *testing.T) {
	driver := profileDriver()
	driver.inputs = []string{"Ada", "2024-05-01", "Paris"}
	r := New(WithPromptDriver(driver))

	_, err := r.Render(context.Background(), loadPage(t, profileYAML), render.RenderOptions{})
	if !errors.Is(err, field.ErrDateDisabled) {
		t.Fatalf("expected ErrDateDisabled, got %v", err)
	}
}

func TestRenderFormEncoded(t *testing.T) {
	r := New(WithPromptDriver(profileDriver()), WithOutputFormat(OutputFormatFormURLEncoded))

	out, err := r.Render(context.Background(), loadPage(t, profileYAML), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	values, err := url.ParseQuery(string(out))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if got := values.Get("address.city"); got != "Paris" {
		t.Fatalf("expected nested key flattened, got %q", got)
	}
	if diff := cmp.Diff([]string{"a", "c"}, values["topics[]"]); diff != "" {
		t.Fatalf("topics mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPrettySortedKeys(t *testing.T) {
	r := New(WithPromptDriver(profileDriver()), WithOutputFormat(OutputFormatPrettyText))

	out, err := r.Render(context.Background(), loadPage(t, profileYAML), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	for _, line := range []string{"address.city = Paris\n", "color = green\n", "topics[1] = c\n"} {
		if !strings.Contains(text, line) {
			t.Fatalf("expected %q in output:\n%s", line, text)
		}
	}
	if strings.Index(text, "address.city") > strings.Index(text, "bio") {
		t.Fatalf("expected sorted keys:\n%s", text)
	}
}

func TestRenderControlledInputKeepsValue(t *testing.T) {
	src := `
id: controlled
components:
  - type: input
    id: slug
    props:
      label: Slug
      value: owned
`
	r := New(WithPromptDriver(&stubDriver{inputs: []string{"typed"}}))
	out, err := r.Render(context.Background(), loadPage(t, src), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"slug":"owned"}` {
		t.Fatalf("expected controlled value kept, got %s", out)
	}
}

func TestRenderShowsErrorsAndTitle(t *testing.T) {
	src := `
id: errs
title: Sign in
components:
  - type: input
    id: email
    props:
      label: Email
`
	driver := &stubDriver{inputs: []string{"a@b.c"}}
	r := New(WithPromptDriver(driver))
	_, err := r.Render(context.Background(), loadPage(t, src), render.RenderOptions{
		Errors: map[string][]string{"email": {"is taken"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"Sign in", "email: is taken"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSubmitTransformer(t *testing.T) {
	src := `
id: t
components:
  - type: switch
    id: notify
    props:
      label: Notify
      defaultChecked: true
`
	r := New(
		WithPromptDriver(&stubDriver{confirm: []bool{true}}),
		WithSubmitTransformer(func(values map[string]any) (map[string]any, error) {
			values["source"] = "cli"
			return values, nil
		}),
	)
	out, err := r.Render(context.Background(), loadPage(t, src), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"notify":"true","source":"cli"}` {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestRenderNoFields(t *testing.T) {
	src := `
id: empty
components:
  - type: alert
    props:
      title: Heads up
`
	r := New(WithPromptDriver(&stubDriver{}))
	_, err := r.Render(context.Background(), loadPage(t, src), render.RenderOptions{})
	if !errors.Is(err, ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(WithPromptDriver(&stubDriver{}))
	if _, err := r.Render(ctx, loadPage(t, profileYAML), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStateNestsDottedIDs(t *testing.T) {
	st := NewState(nil)
	if err := st.SetValue("a.b", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, ok := st.GetValue("a.b"); !ok || got != "1" {
		t.Fatalf("expected nested value, got %v %v", got, ok)
	}
	if err := st.SetValue("a.b.c", "2"); err == nil {
		t.Fatalf("expected conflict error")
	}
}

func TestParseOutputFormat(t *testing.T) {
	cases := map[string]OutputFormat{
		"":       OutputFormatJSON,
		"json":   OutputFormatJSON,
		"form":   OutputFormatFormURLEncoded,
		"pretty": OutputFormatPrettyText,
		"xml":    OutputFormatJSON,
	}
	for in, want := range cases {
		if got := ParseOutputFormat(in); got != want {
			t.Fatalf("ParseOutputFormat(%q) = %q, want %q", in, got, want)
		}
	}
}
