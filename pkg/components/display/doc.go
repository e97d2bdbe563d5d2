// Package display renders structural composites: cards, tables, tooltips,
// accordions and alerts. They hold no state apart from the accordion's
// open items.
package display
