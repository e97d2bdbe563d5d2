package markup

import (
	"strconv"
	"strings"
)

// GridColumns is the width of the horizontal field grid.
const GridColumns = 12

// Classes merges class lists, dropping blanks and repeated tokens while
// keeping first-seen order.
func Classes(lists ...string) string {
	seen := make(map[string]struct{})
	keep := make([]string, 0, len(lists))
	for _, list := range lists {
		for _, token := range strings.Fields(list) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			keep = append(keep, token)
		}
	}
	return strings.Join(keep, " ")
}

// If returns class when cond holds, otherwise the empty string.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// ClampSpan keeps a column span inside 1..GridColumns. Zero and negative
// spans fall back to def.
func ClampSpan(span, def int) int {
	if span <= 0 {
		span = def
	}
	if span < 1 {
		return 1
	}
	if span > GridColumns {
		return GridColumns
	}
	return span
}

// GridSpan renders a breakpoint-prefixed column span class such as
// "md:col-span-3".
func GridSpan(breakpoint string, span int) string {
	class := "col-span-" + strconv.Itoa(ClampSpan(span, 1))
	if breakpoint = strings.TrimSpace(breakpoint); breakpoint != "" {
		return breakpoint + ":" + class
	}
	return class
}
