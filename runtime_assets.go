package uikit

import (
	"io/fs"

	"github.com/goliatone/go-uikit/pkg/runtime"
)

// RuntimeAssetsFS exposes the browser runtime that drives dialog triggers,
// popovers and accordions so Go applications can serve it without a
// JavaScript build step.
//
// Typical mount:
//
//	mux.Handle("/_uikit/",
//	  http.StripPrefix("/_uikit/",
//	    http.FileServerFS(uikit.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return runtime.AssetsFS()
}
