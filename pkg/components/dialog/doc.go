// Package dialog renders modal overlays: a plain dialog, a confirmation
// (alert) dialog, a form dialog driving a server action, and a read-only
// view dialog. Every variant keeps its open state in a state.Disclosure,
// controlled when the caller passes Open and uncontrolled otherwise.
package dialog
