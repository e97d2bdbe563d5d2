// Package page turns declarative YAML or JSON documents into rendered
// component trees.
//
// A document lists components by type with their props:
//
//	id: signup
//	title: Create account
//	components:
//	  - type: input
//	    id: email
//	    props: {label: Email, type: text}
//	  - type: checkbox
//	    id: terms
//	    props: {label: Accept terms}
//
// Parse or LoadFS read documents, Validate checks them, Build resolves each
// component through a Registry into live component values (a Document) that
// keep their state across interactions, and Renderer renders a Document as
// an HTML fragment.
package page
