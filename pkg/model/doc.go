// Package model defines the page documents consumed by the page renderer and
// the terminal prompt renderer. A Page is an ordered list of Components, each
// naming a registered component type plus a free-form props map that the
// type's builder decodes into typed component props. Children fill the
// primary slot of composite components such as cards and dialogs. Layout
// props (`labelCol`, `inputCol`, `colSpan`) are normalised to integers before
// decoding so documents may spell them as numbers or strings.
package model
