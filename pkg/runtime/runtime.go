// Package runtime embeds the small browser script that drives the
// data-* attributes emitted by the components (dialog triggers, combobox
// popovers, accordion items).
package runtime

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.js
var embedded embed.FS

// ScriptName is the runtime bundle file name inside AssetsFS.
const ScriptName = "uikit.js"

// AssetsFS exposes the runtime bundle so applications can serve it without
// a JavaScript build step:
//
//	mux.Handle("/_uikit/", http.StripPrefix("/_uikit/", http.FileServerFS(runtime.AssetsFS())))
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return embedded
	}
	return sub
}
