package page

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type themeFile struct {
	Name      string                       `json:"name" yaml:"name"`
	Version   string                       `json:"version" yaml:"version"`
	Tokens    map[string]string            `json:"tokens" yaml:"tokens"`
	Templates map[string]string            `json:"templates" yaml:"templates"`
	Assets    themeAssets                  `json:"assets" yaml:"assets"`
	Variants  map[string]themeVariantEntry `json:"variants" yaml:"variants"`
}

type themeAssets struct {
	Prefix string            `json:"prefix" yaml:"prefix"`
	Files  map[string]string `json:"files" yaml:"files"`
}

type themeVariantEntry struct {
	Tokens    map[string]string `json:"tokens" yaml:"tokens"`
	Templates map[string]string `json:"templates" yaml:"templates"`
	Assets    themeAssets       `json:"assets" yaml:"assets"`
}

// ParseTheme decodes a JSON or YAML theme manifest: name, tokens, partial
// templates keyed by render.Partial* keys, assets and variants.
func ParseTheme(data []byte, source string) (*theme.Manifest, error) {
	var raw themeFile
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = themeFile{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("page: parse theme %s: %w", source, err)
		}
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("page: theme %s has no name", source)
	}

	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(raw.Name),
		Version:   raw.Version,
		Tokens:    raw.Tokens,
		Templates: raw.Templates,
		Assets:    theme.Assets{Prefix: raw.Assets.Prefix, Files: raw.Assets.Files},
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}

// LoadTheme reads a theme manifest from fsys.
func LoadTheme(fsys fs.FS, path string) (*theme.Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("page: read theme %s: %w", path, err)
	}
	return ParseTheme(data, path)
}
