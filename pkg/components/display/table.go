package display

import (
	"context"
	"strconv"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// EmptyRowClass styles the placeholder cell shown for empty tables.
const EmptyRowClass = "h-24 text-center"

// HeaderColumn is one header cell.
type HeaderColumn struct {
	Label string `json:"label" yaml:"label"`
	Class string `json:"className,omitempty" yaml:"className,omitempty"`
}

// Cell is one body cell. Content, when set, wins over Value.
type Cell struct {
	Value   string           `json:"value" yaml:"value"`
	Class   string           `json:"className,omitempty" yaml:"className,omitempty"`
	Content render.Component `json:"-" yaml:"-"`
}

// Row is one body row.
type Row struct {
	Cells []Cell `json:"value" yaml:"value"`
	Class string `json:"className,omitempty" yaml:"className,omitempty"`
}

// FooterCell is one footer cell spanning ColSpan columns.
type FooterCell struct {
	Value   string `json:"value" yaml:"value"`
	Class   string `json:"className,omitempty" yaml:"className,omitempty"`
	ColSpan int    `json:"colSpan,omitempty" yaml:"colSpan,omitempty"`
}

// Table renders caption, header, body and footer rows. Rows are rendered as
// given; a row whose cell count differs from the header is not padded or
// truncated.
type Table struct {
	ID         string         `json:"id,omitempty" yaml:"id,omitempty"`
	Caption    string         `json:"caption,omitempty" yaml:"caption,omitempty"`
	Header     []HeaderColumn `json:"headerRow" yaml:"headerRow"`
	Data       []Row          `json:"data" yaml:"data"`
	FooterRows [][]FooterCell `json:"footerRows,omitempty" yaml:"footerRows,omitempty"`
}

// Render implements render.Component.
func (t Table) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	var b markup.Builder
	b.Open("div", markup.Data("slot", "table-container"), markup.Class("relative w-full overflow-x-auto"))
	b.Open("table", markup.A("id", t.ID), markup.Data("slot", "table"), markup.Class("w-full caption-bottom text-sm"))
	if t.Caption != "" {
		b.TextElement("caption", t.Caption, markup.Class("mt-4 text-sm text-muted-foreground"))
	}

	b.Open("thead", markup.Class("[&_tr]:border-b")).Open("tr", markup.Class("border-b"))
	for _, col := range t.Header {
		b.TextElement("th", col.Label, markup.A("scope", "col"), markup.Class("h-10 px-2 text-left align-middle font-medium whitespace-nowrap", col.Class))
	}
	b.Close("tr").Close("thead")

	b.Open("tbody", markup.Class("[&_tr:last-child]:border-0"))
	if len(t.Data) == 0 {
		b.Open("tr", markup.Class("border-b"))
		b.TextElement("td", env.Message(render.MsgTableEmpty),
			markup.A("colspan", strconv.Itoa(len(t.Header))),
			markup.Class(EmptyRowClass),
		)
		b.Close("tr")
	}
	for i, row := range t.Data {
		if len(t.Header) > 0 && len(row.Cells) != len(t.Header) {
			env.Logger().Warn().
				Str("table", t.ID).
				Int("row", i).
				Int("cells", len(row.Cells)).
				Int("columns", len(t.Header)).
				Msg("table row cell count differs from header")
		}
		b.Open("tr", markup.Class("border-b transition-colors hover:bg-muted/50", row.Class))
		for _, cell := range row.Cells {
			content := markup.Text(cell.Value)
			if cell.Content != nil {
				out, err := cell.Content.Render(ctx, env)
				if err != nil {
					return "", err
				}
				content = out
			}
			b.Element("td", content, markup.Class("p-2 align-middle whitespace-nowrap", cell.Class))
		}
		b.Close("tr")
	}
	b.Close("tbody")

	if len(t.FooterRows) > 0 {
		b.Open("tfoot", markup.Class("border-t bg-muted/50 font-medium"))
		for _, row := range t.FooterRows {
			b.Open("tr")
			for _, cell := range row {
				span := ""
				if cell.ColSpan > 0 {
					span = strconv.Itoa(cell.ColSpan)
				}
				b.TextElement("td", cell.Value, markup.A("colspan", span), markup.Class("p-2 align-middle", cell.Class))
			}
			b.Close("tr")
		}
		b.Close("tfoot")
	}
	b.Close("table").Close("div")

	return env.Partial(render.PartialTable, map[string]any{
		"id":      t.ID,
		"caption": t.Caption,
		"header":  t.Header,
		"rows":    len(t.Data),
	}, b.HTML()), nil
}
