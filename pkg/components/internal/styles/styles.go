// Package styles holds the utility class sets and inline icons shared by the
// component packages.
package styles

import (
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
)

// Variant names a button colour scheme.
type Variant string

const (
	VariantPrimary     Variant = "primary"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantLink        Variant = "link"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium h-9 px-4 py-2 transition-all disabled:pointer-events-none disabled:opacity-50 outline-none focus-visible:ring-[3px] focus-visible:ring-ring/50"

var variantClasses = map[Variant]string{
	VariantPrimary:     "bg-primary text-primary-foreground shadow-xs hover:bg-primary/90",
	VariantSecondary:   "bg-secondary text-secondary-foreground shadow-xs hover:bg-secondary/80",
	VariantDestructive: "bg-destructive text-white shadow-xs hover:bg-destructive/90",
	VariantOutline:     "border bg-background shadow-xs hover:bg-accent hover:text-accent-foreground",
	VariantGhost:       "hover:bg-accent hover:text-accent-foreground",
	VariantSuccess:     "bg-green-600 text-white shadow-xs hover:bg-green-600/90",
	VariantWarning:     "bg-yellow-500 text-white shadow-xs hover:bg-yellow-500/90",
	VariantLink:        "text-primary underline-offset-4 hover:underline",
}

// ParseVariant maps a variant name onto a known Variant, returning def for
// blank or unknown names.
func ParseVariant(name string, def Variant) Variant {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := variantClasses[v]; ok {
		return v
	}
	return def
}

// Button returns the full class list for a button of the given variant.
func Button(variant Variant, extra ...string) string {
	classes, ok := variantClasses[variant]
	if !ok {
		classes = variantClasses[VariantPrimary]
	}
	return markup.Classes(append([]string{buttonBase, classes}, extra...)...)
}

const (
	Label     = "flex items-center gap-2 text-sm leading-none font-medium select-none"
	Input     = "flex h-9 w-full min-w-0 rounded-md border border-input bg-transparent px-3 py-1 text-base shadow-xs md:text-sm read-only:bg-muted"
	Textarea  = "flex min-h-16 w-full rounded-md border border-input bg-transparent px-3 py-2 text-base shadow-xs md:text-sm read-only:bg-muted"
	Select    = "flex h-9 items-center justify-between gap-2 rounded-md border border-input bg-transparent px-3 py-2 text-sm shadow-xs"
	Checkbox  = "peer size-4 shrink-0 rounded-[4px] border border-input shadow-xs accent-primary"
	Switch    = "peer inline-flex h-[1.15rem] w-8 shrink-0 items-center rounded-full border border-transparent shadow-xs accent-primary"
	Radio     = "aspect-square size-4 shrink-0 rounded-full border border-input shadow-xs accent-primary"
	Popover   = "z-50 rounded-md border bg-popover text-popover-foreground shadow-md outline-hidden"
	Overlay   = "fixed inset-0 z-50 bg-black/50"
	Dialog    = "fixed top-[50%] left-[50%] z-50 grid w-full max-w-[calc(100%-2rem)] translate-x-[-50%] translate-y-[-50%] gap-4 rounded-lg border bg-background p-6 shadow-lg sm:max-w-lg"
	DlgHeader = "flex flex-col gap-2 text-center sm:text-left"
	DlgTitle  = "text-lg leading-none font-semibold"
	DlgDesc   = "text-sm text-muted-foreground"
	DlgFooter = "flex flex-col-reverse gap-2 sm:flex-row sm:justify-end"
	ErrorText = "text-sm text-red-500"
)

// Spinner is the pending indicator placed before loading content.
func Spinner() markup.HTML {
	return `<svg class="mr-2 h-4 w-4 animate-spin" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M21 12a9 9 0 1 1-6.219-8.56"/></svg>`
}

// ChevronsUpDown is the combobox trigger affordance.
func ChevronsUpDown() markup.HTML {
	return `<svg class="ml-2 h-4 w-4 shrink-0 opacity-50" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="m7 15 5 5 5-5"/><path d="m7 9 5-5 5 5"/></svg>`
}

// Check marks the selected combobox item. Hidden items keep the icon for
// alignment.
func Check(visible bool) markup.HTML {
	class := "mr-2 h-4 w-4 opacity-0"
	if visible {
		class = "mr-2 h-4 w-4 opacity-100"
	}
	return markup.HTML(`<svg class="` + class + `" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M20 6 9 17l-5-5"/></svg>`)
}

// Calendar is the date picker trigger icon.
func Calendar() markup.HTML {
	return `<svg class="mr-2 h-4 w-4" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><rect x="3" y="4" width="18" height="18" rx="2"/><path d="M16 2v4"/><path d="M8 2v4"/><path d="M3 10h18"/></svg>`
}

// ChevronDown is the accordion trigger affordance.
func ChevronDown() markup.HTML {
	return `<svg class="pointer-events-none size-4 shrink-0 text-muted-foreground transition-transform duration-200" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="m6 9 6 6 6-6"/></svg>`
}
