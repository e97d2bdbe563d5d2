package markup

import (
	"html"
	"strings"
)

// HTML is trusted markup. Values of this type are written verbatim, so only
// builders in this package, Text, Sanitize and Icon should produce them.
type HTML string

// Text escapes plain text for use as element content.
func Text(value string) HTML {
	return HTML(html.EscapeString(value))
}

// String implements fmt.Stringer.
func (h HTML) String() string {
	return string(h)
}

// Empty reports whether the markup has no visible content.
func (h HTML) Empty() bool {
	return strings.TrimSpace(string(h)) == ""
}

// Join concatenates fragments in order.
func Join(parts ...HTML) HTML {
	var builder strings.Builder
	for _, part := range parts {
		builder.WriteString(string(part))
	}
	return HTML(builder.String())
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
	// Keep writes the attribute even when Value is empty.
	Keep bool
	// Flag marks a boolean attribute written without a value.
	Flag bool
	skip bool
}

// A returns an attribute that is dropped when value is empty.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Keep returns an attribute written even when value is empty, e.g. an
// option whose value is "".
func Keep(name, value string) Attr {
	return Attr{Name: name, Value: value, Keep: true}
}

// Bool returns a boolean attribute written only when on is true.
func Bool(name string, on bool) Attr {
	return Attr{Name: name, Flag: true, skip: !on}
}

// Data returns a data-* attribute.
func Data(name, value string) Attr {
	return A("data-"+name, value)
}

// Aria returns an aria-* attribute.
func Aria(name, value string) Attr {
	return A("aria-"+name, value)
}

// Class returns a class attribute built from the merged class lists.
func Class(classes ...string) Attr {
	return A("class", Classes(classes...))
}

func (a Attr) write(builder *strings.Builder) {
	name := strings.TrimSpace(a.Name)
	if name == "" || a.skip {
		return
	}
	if a.Flag {
		builder.WriteByte(' ')
		builder.WriteString(name)
		return
	}
	if a.Value == "" && !a.Keep {
		return
	}
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(a.Value))
	builder.WriteByte('"')
}

// Builder accumulates markup. The zero value is ready to use.
type Builder struct {
	sb strings.Builder
}

// Open writes a start tag.
func (b *Builder) Open(tag string, attrs ...Attr) *Builder {
	b.sb.WriteByte('<')
	b.sb.WriteString(tag)
	for _, attr := range attrs {
		attr.write(&b.sb)
	}
	b.sb.WriteByte('>')
	return b
}

// Void writes a self-contained element such as input or br.
func (b *Builder) Void(tag string, attrs ...Attr) *Builder {
	return b.Open(tag, attrs...)
}

// Close writes an end tag.
func (b *Builder) Close(tag string) *Builder {
	b.sb.WriteString("</")
	b.sb.WriteString(tag)
	b.sb.WriteByte('>')
	return b
}

// Text writes escaped text.
func (b *Builder) Text(value string) *Builder {
	b.sb.WriteString(html.EscapeString(value))
	return b
}

// Raw writes trusted markup.
func (b *Builder) Raw(fragment HTML) *Builder {
	b.sb.WriteString(string(fragment))
	return b
}

// Element writes a complete element around trusted content.
func (b *Builder) Element(tag string, content HTML, attrs ...Attr) *Builder {
	return b.Open(tag, attrs...).Raw(content).Close(tag)
}

// TextElement writes a complete element around escaped text.
func (b *Builder) TextElement(tag, text string, attrs ...Attr) *Builder {
	return b.Open(tag, attrs...).Text(text).Close(tag)
}

// HTML returns the accumulated markup.
func (b *Builder) HTML() HTML {
	return HTML(b.sb.String())
}

// Len reports the number of bytes written so far.
func (b *Builder) Len() int {
	return b.sb.Len()
}
