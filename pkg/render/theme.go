package render

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// Partial keys looked up in theme.RendererConfig.Partials. A theme maps a
// key to a template name; the template receives the component payload and
// the builtin markup under "default".
const (
	PartialField        = "uikit.field"
	PartialErrorMessage = "uikit.error-message"
	PartialDialog       = "uikit.dialog"
	PartialCard         = "uikit.card"
	PartialTable        = "uikit.table"
	PartialTooltip      = "uikit.tooltip"
	PartialAccordion    = "uikit.accordion"
	PartialAlert        = "uikit.alert"
	PartialButton       = "uikit.button"
	PartialPage         = "uikit.page"
)

// PartialKeys lists every partial key components consult.
func PartialKeys() []string {
	return []string{
		PartialField, PartialErrorMessage, PartialDialog, PartialCard, PartialTable,
		PartialTooltip, PartialAccordion, PartialAlert, PartialButton, PartialPage,
	}
}

// ThemeFromSelection flattens a go-theme selection into renderer
// configuration: manifest templates become partials (variant wins, then
// base, then fallbacks), tokens merge the same way and are mirrored as CSS
// variables, and AssetURL resolves asset keys against the asset prefixes.
func ThemeFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string),
		Tokens:   make(map[string]string),
		CSSVars:  make(map[string]string),
	}
	for key, value := range fallbacks {
		cfg.Partials[key] = value
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}
	if cfg.Theme == "" {
		cfg.Theme = manifest.Name
	}

	variant, hasVariant := manifest.Variants[selection.Variant]
	for key, value := range manifest.Templates {
		cfg.Partials[key] = value
	}
	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}
	if hasVariant {
		for key, value := range variant.Templates {
			cfg.Partials[key] = value
		}
		for key, value := range variant.Tokens {
			cfg.Tokens[key] = value
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	base := manifest.Assets
	var over theme.Assets
	if hasVariant {
		over = variant.Assets
	}
	cfg.AssetURL = func(key string) string {
		if key == "" {
			return ""
		}
		prefix := base.Prefix
		if over.Prefix != "" {
			prefix = over.Prefix
		}
		if file, ok := over.Files[key]; ok {
			return joinAsset(prefix, file)
		}
		if file, ok := base.Files[key]; ok {
			return joinAsset(prefix, file)
		}
		return ""
	}
	return cfg
}

func joinAsset(prefix, file string) string {
	if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
		return file
	}
	joined := path.Join(prefix, file)
	if strings.HasPrefix(prefix, "/") && !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	return joined
}

// CSSVarsStyle renders CSS variables as a deterministic inline style.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}

// ManifestSelector serves go-theme selections from registered manifests.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector returns a selector falling back to the supplied
// default theme and variant when a request leaves them blank.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{
		manifests:      make(map[string]*theme.Manifest),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		_ = s.Add(manifest)
	}
	return s
}

// Add registers a manifest under its name.
func (s *ManifestSelector) Add(manifest *theme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("render: theme manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[strings.TrimSpace(manifest.Name)] = manifest
	return nil
}

// Select implements theme.ThemeSelector.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("render: theme %q not registered", name)
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
