// Package server previews a page over HTTP. GET renders the current state
// of the document; POSTed interactions are applied to the live components
// and the page is rendered again.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/dialog"
	"github.com/goliatone/go-uikit/pkg/components/display"
	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/runtime"
	"github.com/goliatone/go-uikit/pkg/state"
)

// HTTPError carries a response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError pairs an error with an HTTP status.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Server serves one live document.
type Server struct {
	doc  *page.Document
	opts Options
	mux  *http.ServeMux
}

var _ http.Handler = (*Server)(nil)

// New builds a preview server for doc.
func New(doc *page.Document, fns ...OptionFn) (*Server, error) {
	if doc == nil {
		return nil, errors.New("server: document is required")
	}
	opts := NewOptions(fns...)
	s := &Server{doc: doc, opts: opts, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /{$}", s.servePage)
	s.mux.HandleFunc("POST "+mountPath("", opts.InteractPath), s.serveInteract)
	s.mux.HandleFunc("GET "+mountPath("", opts.ValuesPath), s.serveValues)
	assets := mountPath("", opts.AssetsPath)
	if !strings.HasSuffix(assets, "/") {
		assets += "/"
	}
	s.mux.Handle("GET "+assets, http.StripPrefix(strings.TrimSuffix(assets, "/"), http.FileServerFS(runtime.AssetsFS())))
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.opts.Guard != nil {
		if err := s.opts.Guard(r); err != nil {
			writeError(w, err, http.StatusForbidden)
			return
		}
	}
	s.mux.ServeHTTP(w, r)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	s.writePage(r.Context(), w, http.StatusOK)
}

func (s *Server) serveInteract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, StatusError{Code: http.StatusBadRequest, Err: err}, http.StatusBadRequest)
		return
	}
	in, err := parseInteraction(r.PostForm)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	log := s.opts.Logger.With().Str("component", in.ID).Str("action", string(in.Action)).Logger()
	if err := s.doc.Interact(r.Context(), in); err != nil {
		code := interactionStatus(err)
		log.Warn().Err(err).Int("status", code).Msg("interaction rejected")
		writeError(w, StatusError{Code: code, Err: err}, code)
		return
	}
	log.Debug().Msg("interaction applied")

	if wantsJSON(r) {
		s.writeValues(w)
		return
	}
	s.writePage(r.Context(), w, http.StatusOK)
}

func (s *Server) serveValues(w http.ResponseWriter, _ *http.Request) {
	s.writeValues(w)
}

func (s *Server) writeValues(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(valuesResponse{Page: s.doc.Page.ID, Values: s.doc.Values()})
}

type valuesResponse struct {
	Page   string            `json:"page"`
	Values map[string]string `json:"values"`
}

func (s *Server) writePage(ctx context.Context, w http.ResponseWriter, code int) {
	fragment, err := s.opts.Renderer.RenderDocument(ctx, s.doc, s.opts.RenderOptions)
	if err != nil {
		s.opts.Logger.Error().Err(err).Str("page", s.doc.Page.ID).Msg("render failed")
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", s.opts.Renderer.ContentType())
	w.WriteHeader(code)
	_, _ = w.Write([]byte(shell(s.doc, fragment)))
}

func shell(doc *page.Document, fragment markup.HTML) markup.HTML {
	var b markup.Builder
	b.Raw("<!doctype html>")
	b.Open("html", markup.A("lang", doc.Page.Locale))
	b.Open("head")
	b.Void("meta", markup.A("charset", "utf-8"))
	b.Void("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1"))
	b.TextElement("title", doc.Page.Title)
	b.Close("head")
	b.Element("body", fragment, markup.Class("min-h-screen bg-background p-6 text-foreground"))
	b.Close("html")
	return b.HTML()
}

func parseInteraction(form url.Values) (page.Interaction, error) {
	id := strings.TrimSpace(form.Get("id"))
	if id == "" {
		return page.Interaction{}, StatusError{Code: http.StatusBadRequest, Err: errors.New("server: missing component id")}
	}
	action, err := page.ParseAction(form.Get("action"))
	if err != nil {
		return page.Interaction{}, StatusError{Code: http.StatusBadRequest, Err: err}
	}
	in := page.Interaction{ID: id, Action: action, Value: form.Get("value")}
	if action == page.ActionSubmit {
		in.Values = url.Values{}
		for key, values := range form {
			switch key {
			case "id", "action", "value":
				continue
			}
			in.Values[key] = append([]string(nil), values...)
		}
	}
	return in, nil
}

func interactionStatus(err error) int {
	switch {
	case errors.Is(err, page.ErrUnknownTarget):
		return http.StatusNotFound
	case errors.Is(err, page.ErrUnsupportedAction):
		return http.StatusBadRequest
	case errors.Is(err, field.ErrUnknownOption),
		errors.Is(err, field.ErrDateDisabled),
		errors.Is(err, field.ErrReadOnly),
		errors.Is(err, display.ErrUnknownItem),
		errors.Is(err, dialog.ErrNoAction),
		errors.Is(err, dialog.ErrClosed),
		errors.Is(err, state.ErrModeSwitch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}
	msg := http.StatusText(code)
	if err != nil && code < http.StatusInternalServerError {
		msg = err.Error()
	}
	http.Error(w, msg, code)
}
