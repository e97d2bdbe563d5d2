package page

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/pkg/model"
)

// Store holds documents loaded from a filesystem, keyed by page id.
type Store struct {
	pages map[string]model.Page
}

// LoadFS walks fsys and parses every JSON/YAML document. When fsys is nil
// or holds no documents the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{pages: make(map[string]model.Page)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("page: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		if _, exists := store.pages[doc.ID]; exists {
			return fmt.Errorf("page: duplicate page %q (file %s)", doc.ID, path)
		}
		store.pages[doc.ID] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile reads and parses a single document from disk.
func LoadFile(path string) (model.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Page{}, fmt.Errorf("page: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Page returns the document with the supplied id.
func (s *Store) Page(id string) (model.Page, bool) {
	if s == nil {
		return model.Page{}, false
	}
	doc, ok := s.pages[id]
	return doc, ok
}

// IDs returns the sorted page ids.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.pages))
	for id := range s.pages {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Empty reports whether the store holds any documents.
func (s *Store) Empty() bool {
	return s == nil || len(s.pages) == 0
}

// Parse decodes a JSON or YAML document and validates it. source names the
// document in errors.
func Parse(data []byte, source string) (model.Page, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.Page{}, fmt.Errorf("page: file %s is empty", source)
	}

	var doc model.Page
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = model.Page{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return model.Page{}, fmt.Errorf("page: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}
	doc.Source = source

	if err := Validate(doc); err != nil {
		return model.Page{}, fmt.Errorf("page: %s: %w", source, err)
	}
	return doc, nil
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
