package orchestrator_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
)

func presetPage() model.Page {
	return model.Page{
		ID:    "signup",
		Title: "Sign up",
		Components: []model.Component{
			{Type: model.TypeInput, ID: "email", Props: map[string]any{"label": "Email", "placeholder": "old"}},
			{Type: model.TypeCard, ID: "extras", Children: []model.Component{
				{Type: model.TypeSwitch, ID: "news"},
			}},
		},
	}
}

func TestPresetTransformerYAML(t *testing.T) {
	preset := `
title: Join us
metadata:
  section: onboarding
components:
  email:
    props:
      label: Work email
    remove: [placeholder]
  news:
    props:
      defaultChecked: true
`
	transformer, err := orchestrator.NewPresetTransformer([]byte(preset))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}
	doc := presetPage()
	if err := transformer.Transform(context.Background(), &doc); err != nil {
		t.Fatalf("transform: %v", err)
	}

	if doc.Title != "Join us" {
		t.Fatalf("expected title patched, got %q", doc.Title)
	}
	if diff := cmp.Diff(map[string]string{"section": "onboarding"}, doc.Metadata); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"label": "Work email"}, doc.Components[0].Props); diff != "" {
		t.Fatalf("email props mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"defaultChecked": true}, doc.Components[1].Children[0].Props); diff != "" {
		t.Fatalf("nested props mismatch (-want +got):\n%s", diff)
	}
}

func TestPresetTransformerJSONFromFS(t *testing.T) {
	fsys := fstest.MapFS{"presets/signup.json": {Data: []byte(`{"components":{"email":{"props":{"label":"Login"}}}}`)}}
	transformer, err := orchestrator.NewPresetTransformerFromFS(fsys, "presets/signup.json")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	doc := presetPage()
	if err := transformer.Transform(context.Background(), &doc); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if got := doc.Components[0].Props["label"]; got != "Login" {
		t.Fatalf("expected label patched, got %v", got)
	}
}

func TestPresetTransformerErrors(t *testing.T) {
	if _, err := orchestrator.NewPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
	if _, err := orchestrator.NewPresetTransformerFromFS(nil, "x.json"); err == nil {
		t.Fatalf("expected nil fs error")
	}
	if _, err := orchestrator.NewPresetTransformerFromFS(fstest.MapFS{}, " "); err == nil {
		t.Fatalf("expected path error")
	}

	transformer, err := orchestrator.NewPresetTransformer([]byte(`{"components":{"ghost":{"props":{"a":1}}}}`))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}
	doc := presetPage()
	err = transformer.Transform(context.Background(), &doc)
	if err == nil || !strings.Contains(err.Error(), `"ghost"`) {
		t.Fatalf("expected missing component error, got %v", err)
	}
}

func TestPresetTransformerWiredIntoOrchestrator(t *testing.T) {
	transformer, err := orchestrator.NewPresetTransformer([]byte("components:\n  email:\n    props:\n      label: Work email\n"))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}
	orch := orchestrator.New(orchestrator.WithPagesFS(pagesFS()), orchestrator.WithTransformer(transformer))

	out, err := orch.Generate(context.Background(), orchestrator.Request{PageID: "signup"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "Work email") {
		t.Fatalf("expected patched label rendered, got %s", out)
	}
}
