package render

import (
	"strings"

	"github.com/goliatone/go-uikit/pkg/model"
)

// ComponentSubset narrows a render pass to components matching any of the
// listed ids or types. An empty subset matches everything.
type ComponentSubset struct {
	IDs   []string
	Types []model.ComponentType
}

// Empty reports whether the subset applies no filter.
func (s ComponentSubset) Empty() bool {
	return len(s.IDs) == 0 && len(s.Types) == 0
}

// ApplySubset keeps matching components. A matching component keeps its
// whole subtree; a non-matching parent is replaced by its matching
// descendants so nested dialogs can be re-rendered on their own.
func ApplySubset(page *model.Page, subset ComponentSubset) {
	if page == nil || subset.Empty() {
		return
	}
	ids := make(map[string]struct{}, len(subset.IDs))
	for _, id := range subset.IDs {
		if id = strings.TrimSpace(id); id != "" {
			ids[id] = struct{}{}
		}
	}
	types := make(map[model.ComponentType]struct{}, len(subset.Types))
	for _, typ := range subset.Types {
		types[typ] = struct{}{}
	}
	page.Components = filterComponents(page.Components, ids, types)
}

func filterComponents(list []model.Component, ids map[string]struct{}, types map[model.ComponentType]struct{}) []model.Component {
	var out []model.Component
	for _, component := range list {
		_, idMatch := ids[component.ID]
		_, typeMatch := types[component.Type]
		if (idMatch && component.ID != "") || typeMatch {
			out = append(out, component)
			continue
		}
		out = append(out, filterComponents(component.Children, ids, types)...)
	}
	return out
}
