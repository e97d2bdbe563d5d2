package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/pkg/model"
)

// Transformer mutates a page before it is rendered. Implementations can
// patch props, inject metadata or perform arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, doc *model.Page) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *model.Page) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *model.Page) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}

// PresetTransformer applies declarative overrides loaded from a JSON or
// YAML document. Page-level fields and per-component props are patched by
// component id:
//
//	title: Custom title
//	metadata:
//	  section: billing
//	components:
//	  email:
//	    props:
//	      label: Work email
//	      placeholder: you@company.com
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title       string                          `json:"title" yaml:"title"`
	Description string                          `json:"description" yaml:"description"`
	Theme       string                          `json:"theme" yaml:"theme"`
	Variant     string                          `json:"variant" yaml:"variant"`
	Metadata    map[string]string               `json:"metadata" yaml:"metadata"`
	Components  map[string]presetComponentPatch `json:"components" yaml:"components"`
}

type presetComponentPatch struct {
	Props  map[string]any `json:"props" yaml:"props"`
	Remove []string       `json:"remove" yaml:"remove"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML
// bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		document = presetDocument{}
		if yerr := yaml.Unmarshal(data, &document); yerr != nil {
			return nil, fmt.Errorf("preset transformer: parse document: %w", yerr)
		}
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied page.
func (t *PresetTransformer) Transform(ctx context.Context, doc *model.Page) error {
	if doc == nil {
		return errors.New("preset transformer: page is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		doc.Title = t.document.Title
	}
	if t.document.Description != "" {
		doc.Description = t.document.Description
	}
	if t.document.Theme != "" {
		doc.Theme = t.document.Theme
	}
	if t.document.Variant != "" {
		doc.Variant = t.document.Variant
	}
	if len(t.document.Metadata) > 0 {
		if doc.Metadata == nil {
			doc.Metadata = make(map[string]string, len(t.document.Metadata))
		}
		maps.Copy(doc.Metadata, t.document.Metadata)
	}

	for id, patch := range t.document.Components {
		component := findComponent(doc.Components, id)
		if component == nil {
			return fmt.Errorf("preset transformer: component %q not found", id)
		}
		if component.Props == nil {
			component.Props = make(map[string]any, len(patch.Props))
		}
		maps.Copy(component.Props, patch.Props)
		for _, key := range patch.Remove {
			delete(component.Props, key)
		}
	}
	return nil
}

func findComponent(components []model.Component, id string) *model.Component {
	for idx := range components {
		if components[idx].ID == id {
			return &components[idx]
		}
		if found := findComponent(components[idx].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// clonePage copies the component tree and props maps so transformers never
// touch documents held by the store.
func clonePage(doc model.Page) model.Page {
	doc.Metadata = maps.Clone(doc.Metadata)
	doc.Components = cloneComponents(doc.Components)
	return doc
}

func cloneComponents(in []model.Component) []model.Component {
	if in == nil {
		return nil
	}
	out := make([]model.Component, len(in))
	for i, component := range in {
		component.Props = maps.Clone(component.Props)
		component.Children = cloneComponents(component.Children)
		out[i] = component
	}
	return out
}
