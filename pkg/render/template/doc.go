// Package template defines the renderer contract used for theme partials.
// Components render builtin markup on their own; a theme may map a partial
// key to a template that wraps or replaces that markup.
package template
