package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-uikit/pkg/page"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts the preview for doc under basePath and returns the
// page pattern.
func RegisterRoutes(mux Mux, basePath string, doc *page.Document, fns ...OptionFn) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("server: missing mux")
	}
	srv, err := New(doc, fns...)
	if err != nil {
		return "", err
	}
	pattern := mountPath(basePath, "/")
	prefix := strings.TrimSuffix(pattern, "/")
	if prefix == "" {
		mux.Handle(pattern, srv)
	} else {
		mux.Handle(pattern, http.StripPrefix(prefix, srv))
	}
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
