package display

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Tooltip defaults.
const (
	DefaultSide       = "top"
	DefaultSideOffset = 4
	DefaultAlign      = "center"
)

// Tooltip attaches floating content to a trigger. Placement is emitted as
// data attributes for the client-side positioner.
type Tooltip struct {
	ID          string           `json:"id" yaml:"id"`
	Text        string           `json:"content,omitempty" yaml:"content,omitempty"`
	Side        string           `json:"side,omitempty" yaml:"side,omitempty" validate:"omitempty,oneof=top right bottom left"`
	SideOffset  *int             `json:"sideOffset,omitempty" yaml:"sideOffset,omitempty"`
	Align       string           `json:"align,omitempty" yaml:"align,omitempty" validate:"omitempty,oneof=start center end"`
	AlignOffset int              `json:"alignOffset,omitempty" yaml:"alignOffset,omitempty"`
	Class       string           `json:"className,omitempty" yaml:"className,omitempty"`
	Trigger     render.Component `json:"-" yaml:"-"`
	Content     render.Component `json:"-" yaml:"-"`
}

// Placement returns side, side offset, align and align offset with
// defaults applied.
func (t Tooltip) Placement() (side string, sideOffset int, align string, alignOffset int) {
	side = DefaultSide
	switch s := strings.ToLower(strings.TrimSpace(t.Side)); s {
	case "top", "right", "bottom", "left":
		side = s
	}
	sideOffset = DefaultSideOffset
	if t.SideOffset != nil {
		sideOffset = *t.SideOffset
	}
	align = DefaultAlign
	switch a := strings.ToLower(strings.TrimSpace(t.Align)); a {
	case "start", "center", "end":
		align = a
	}
	return side, sideOffset, align, t.AlignOffset
}

// Render implements render.Component.
func (t Tooltip) Render(ctx context.Context, env *render.Env) (markup.HTML, error) {
	trigger, err := renderSlot(ctx, env, t.Trigger)
	if err != nil {
		return "", err
	}
	content := markup.Text(t.Text)
	if t.Content != nil {
		if content, err = t.Content.Render(ctx, env); err != nil {
			return "", err
		}
	}
	side, sideOffset, align, alignOffset := t.Placement()
	contentID := strings.TrimSpace(t.ID) + "-tooltip"

	var b markup.Builder
	b.Open("span", markup.Data("slot", "tooltip"), markup.Class("relative inline-flex"))
	b.Element("span", trigger, markup.Data("slot", "tooltip-trigger"), markup.Aria("describedby", contentID))
	b.Element("div", content,
		markup.A("id", contentID),
		markup.A("role", "tooltip"),
		markup.Data("side", side),
		markup.Data("side-offset", strconv.Itoa(sideOffset)),
		markup.Data("align", align),
		markup.Data("align-offset", strconv.Itoa(alignOffset)),
		markup.Class("z-50 w-fit rounded-md bg-primary px-3 py-1.5 text-xs text-balance text-primary-foreground", t.Class),
	)
	b.Close("span")

	return env.Partial(render.PartialTooltip, map[string]any{
		"id":          contentID,
		"side":        side,
		"sideOffset":  sideOffset,
		"align":       align,
		"alignOffset": alignOffset,
		"trigger":     string(trigger),
		"content":     string(content),
	}, b.HTML()), nil
}
