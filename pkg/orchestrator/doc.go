// Package orchestrator wires the page pipeline: look up a document in a
// page store, apply transformers, resolve the theme through a go-theme
// selector and hand the result to a named renderer.
package orchestrator
