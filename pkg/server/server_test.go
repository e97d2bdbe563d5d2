package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-uikit/pkg/page"
)

const previewYAML = `
id: preview
title: Preview
locale: en
components:
  - type: checkbox
    id: t
    props:
      label: Accept
  - type: select
    id: color
    props:
      label: Color
      items:
        - {value: red, label: Red}
        - {value: green, label: Green}
  - type: accordion
    id: faq
    props:
      items:
        - {value: one, title: One, content: First}
  - type: confirm-dialog
    id: remove
    props: {title: Remove?, actionLabel: Remove, trigger: Remove item}
`

func newDocument(t *testing.T) *page.Document {
	t.Helper()
	spec, err := page.Parse([]byte(previewYAML), "preview.yaml")
	require.NoError(t, err)
	doc, err := page.Build(context.Background(), page.NewDefaultRegistry(), spec)
	require.NoError(t, err)
	return doc
}

func postInteraction(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/interact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeValues(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body valuesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "preview", body.Page)
	return body.Values
}

func TestServePageRendersShell(t *testing.T) {
	srv, err := New(newDocument(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, `<!doctype html><html lang="en"><head><meta charset="utf-8">`))
	require.Contains(t, body, "<title>Preview</title>")
	require.Contains(t, body, `data-uikit-page`)
	require.Contains(t, body, `<script src="/_uikit/uikit.js" defer></script>`)
}

func TestInteractTogglesAndReportsValues(t *testing.T) {
	srv, err := New(newDocument(t))
	require.NoError(t, err)

	rec := postInteraction(t, srv, url.Values{"id": {"t"}, "action": {"toggle"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "true", decodeValues(t, rec)["t"])

	rec = postInteraction(t, srv, url.Values{"id": {"color"}, "action": {"select"}, "value": {"green"}})
	require.Equal(t, http.StatusOK, rec.Code)
	values := decodeValues(t, rec)
	require.Equal(t, "green", values["color"])
	require.Equal(t, "true", values["t"])
}

func TestInteractRerendersPage(t *testing.T) {
	srv, err := New(newDocument(t))
	require.NoError(t, err)

	form := url.Values{"id": {"faq"}, "action": {"toggle"}, "value": {"one"}}
	req := httptest.NewRequest(http.MethodPost, "/interact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `data-slot="accordion-item" data-state="open"`)
}

func TestInteractErrors(t *testing.T) {
	srv, err := New(newDocument(t))
	require.NoError(t, err)

	cases := []struct {
		name string
		form url.Values
		code int
	}{
		{"missing id", url.Values{"action": {"toggle"}}, http.StatusBadRequest},
		{"bad action", url.Values{"id": {"t"}, "action": {"explode"}}, http.StatusBadRequest},
		{"unknown target", url.Values{"id": {"nope"}, "action": {"toggle"}}, http.StatusNotFound},
		{"unknown option", url.Values{"id": {"color"}, "action": {"select"}, "value": {"blue"}}, http.StatusUnprocessableEntity},
		{"unsupported", url.Values{"id": {"t"}, "action": {"confirm"}}, http.StatusBadRequest},
		{"closed dialog", url.Values{"id": {"remove"}, "action": {"confirm"}}, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postInteraction(t, srv, tc.form)
			require.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}
}

func TestServesRuntimeAssets(t *testing.T) {
	srv, err := New(newDocument(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_uikit/uikit.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "javascript")
	require.NotEmpty(t, rec.Body.String())
}

func TestGuardRejects(t *testing.T) {
	srv, err := New(newDocument(t), WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("login required")}
	}))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "login required")
}

func TestRegisterRoutesUnderBasePath(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "preview/", newDocument(t))
	require.NoError(t, err)
	require.Equal(t, "/preview/", pattern)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview/values", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "false", decodeValues(t, rec)["t"])

	_, err = RegisterRoutes(nil, "/", newDocument(t))
	require.Error(t, err)
}

func TestNewRequiresDocument(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}
