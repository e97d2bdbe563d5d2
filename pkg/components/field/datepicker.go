package field

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-uikit/pkg/components/internal/styles"
	"github.com/goliatone/go-uikit/pkg/markup"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/state"
)

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

// DatePickerProps configure a single date field with a calendar popover.
// Min and Max bound the selectable days, inclusive.
type DatePickerProps struct {
	Base          `yaml:",inline"`
	Value         *time.Time       `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue  *time.Time       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Min           *time.Time       `json:"min,omitempty" yaml:"min,omitempty"`
	Max           *time.Time       `json:"max,omitempty" yaml:"max,omitempty"`
	Month         *time.Time       `json:"month,omitempty" yaml:"month,omitempty"`
	Placeholder   string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	ButtonClass   string           `json:"buttonClassName,omitempty" yaml:"buttonClassName,omitempty"`
	Now           func() time.Time `json:"-" yaml:"-"`
	OnValueChange func(time.Time)  `json:"-" yaml:"-"`
}

// Day is one cell of the calendar grid.
type Day struct {
	Date     time.Time
	InMonth  bool
	Selected bool
	Disabled bool
	Today    bool
}

// DatePicker holds a date (the zero time meaning "no date") and the month
// shown by its calendar.
type DatePicker struct {
	props   DatePickerProps
	value   *state.Cell[time.Time]
	popover *state.Disclosure
	month   time.Time
}

// NewDatePicker builds a DatePicker. It is controlled when props.Value is
// set.
func NewDatePicker(props DatePickerProps) *DatePicker {
	var def time.Time
	if props.DefaultValue != nil {
		def = *props.DefaultValue
	}
	f := &DatePicker{
		props:   props,
		value:   state.Resolve(props.Value, def, props.OnValueChange),
		popover: state.NewDisclosure(state.DisclosureOptions{}),
	}
	switch {
	case props.Month != nil:
		f.month = firstOfMonth(*props.Month)
	case !f.value.Get().IsZero():
		f.month = firstOfMonth(f.value.Get())
	default:
		f.month = firstOfMonth(f.now())
	}
	return f
}

// ID returns the field id.
func (f *DatePicker) ID() string { return f.props.FieldID() }

// Value returns the selected date and whether one is set.
func (f *DatePicker) Value() (time.Time, bool) {
	v := f.value.Get()
	return v, !v.IsZero()
}

// Mode reports who owns the value.
func (f *DatePicker) Mode() state.Mode { return f.value.Mode() }

// Popover exposes the calendar open state.
func (f *DatePicker) Popover() *state.Disclosure { return f.popover }

// Month returns the first day of the displayed month.
func (f *DatePicker) Month() time.Time { return f.month }

// NextMonth advances the calendar by one month.
func (f *DatePicker) NextMonth() { f.month = f.month.AddDate(0, 1, 0) }

// PrevMonth moves the calendar back by one month.
func (f *DatePicker) PrevMonth() { f.month = f.month.AddDate(0, -1, 0) }

// Disabled reports whether d falls outside Min/Max.
func (f *DatePicker) Disabled(d time.Time) bool {
	day := dateOnly(d)
	if f.props.Min != nil && day.Before(dateOnly(*f.props.Min)) {
		return true
	}
	if f.props.Max != nil && day.After(dateOnly(*f.props.Max)) {
		return true
	}
	return false
}

// SelectDate picks d as a calendar click would: disabled days are
// rejected, clicking the selected day clears it, and the popover closes.
func (f *DatePicker) SelectDate(d time.Time) error {
	if f.Disabled(d) {
		return ErrDateDisabled
	}
	if current := f.value.Get(); !current.IsZero() && sameDay(current, d) {
		f.value.Set(time.Time{})
	} else {
		f.value.Set(d)
	}
	f.popover.Dismiss()
	return nil
}

// Clear removes the selection.
func (f *DatePicker) Clear() {
	f.value.Set(time.Time{})
}

// SetValue parses an RFC 3339 timestamp or a YYYY-MM-DD date and selects
// it. The empty string clears.
func (f *DatePicker) SetValue(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		f.Clear()
		return nil
	}
	d, err := ParseDate(v)
	if err != nil {
		return err
	}
	if f.Disabled(d) {
		return ErrDateDisabled
	}
	f.value.Set(d)
	f.month = firstOfMonth(d)
	return nil
}

// Sync applies a new caller-owned value to a controlled picker.
func (f *DatePicker) Sync(v time.Time) error { return f.value.Sync(v) }

// ParseDate accepts RFC 3339 timestamps and YYYY-MM-DD dates (UTC).
func ParseDate(v string) (time.Time, error) {
	if d, err := time.Parse(time.RFC3339, v); err == nil {
		return d, nil
	}
	return time.Parse(time.DateOnly, v)
}

// Calendar returns the displayed month as Sunday-first weeks, padded with
// days of the neighbouring months.
func (f *DatePicker) Calendar() [][7]Day {
	first := f.month
	start := first.AddDate(0, 0, -int(first.Weekday()))
	selected := f.value.Get()
	today := f.now()

	var weeks [][7]Day
	for day := start; ; {
		var week [7]Day
		for i := range week {
			week[i] = Day{
				Date:     day,
				InMonth:  day.Month() == first.Month() && day.Year() == first.Year(),
				Selected: !selected.IsZero() && sameDay(day, selected),
				Disabled: f.Disabled(day),
				Today:    sameDay(day, today),
			}
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
		if day.Month() != first.Month() {
			break
		}
	}
	return weeks
}

// Render implements render.Component.
func (f *DatePicker) Render(_ context.Context, env *render.Env) (markup.HTML, error) {
	id := f.props.FieldID()
	value, has := f.Value()
	open := f.popover.IsOpen()
	calendarID := id + "-calendar"

	var b markup.Builder
	b.Open("div", markup.Class("relative"), markup.Data("slot", "date-picker"), markup.Data("state", f.popover.StateName()))
	b.Open("button",
		markup.A("type", "button"),
		markup.A("id", id),
		markup.Aria("haspopup", "dialog"),
		markup.Aria("expanded", boolString(open)),
		markup.Aria("controls", calendarID),
		markup.Class(styles.Button(styles.VariantOutline, "w-[280px] justify-start text-left font-normal"), markup.If(!has, "text-muted-foreground"), f.props.ButtonClass),
	)
	b.Raw(styles.Calendar())
	if has {
		b.Text(value.Format(env.Message(render.MsgDatePickerLayout)))
	} else {
		b.TextElement("span", env.Or(f.props.Placeholder, render.MsgDatePickerPlaceholder))
	}
	b.Close("button")

	b.Open("div",
		markup.A("id", calendarID),
		markup.A("role", "dialog"),
		markup.Data("state", f.popover.StateName()),
		markup.Bool("hidden", !open),
		markup.Class(styles.Popover, "w-auto p-3"),
	)
	f.renderCalendar(&b, env)
	b.Close("div")
	b.Close("div")

	hidden := ""
	if has {
		hidden = value.UTC().Format(isoLayout)
	}
	b.Raw(hiddenInput(id, hidden))

	return wrap(env, "date-picker", f.props.Base, alignCenter, b.HTML()), nil
}

func (f *DatePicker) renderCalendar(b *markup.Builder, env *render.Env) {
	b.Open("table", markup.A("role", "grid"), markup.Class("w-full border-collapse"))
	b.TextElement("caption", f.month.Format(env.Message(render.MsgCalendarMonthLayout)), markup.Class("text-sm font-medium"))
	b.Open("thead").Open("tr")
	for _, name := range strings.Fields(env.Message(render.MsgCalendarWeekdays)) {
		b.TextElement("th", name, markup.A("scope", "col"), markup.Class("w-8 text-[0.8rem] font-normal text-muted-foreground"))
	}
	b.Close("tr").Close("thead")
	b.Open("tbody")
	for _, week := range f.Calendar() {
		b.Open("tr")
		for _, day := range week {
			b.Open("td", markup.Class("p-0 text-center text-sm"))
			b.TextElement("button", strconv.Itoa(day.Date.Day()),
				markup.A("type", "button"),
				markup.Data("date", day.Date.Format(time.DateOnly)),
				markup.Bool("disabled", day.Disabled),
				markup.Aria("selected", markup.If(day.Selected, "true")),
				markup.Data("outside", markup.If(!day.InMonth, "true")),
				markup.Data("today", markup.If(day.Today, "true")),
				markup.Class("size-8 rounded-md",
					markup.If(day.Selected, "bg-primary text-primary-foreground"),
					markup.If(!day.InMonth, "text-muted-foreground"),
					markup.If(day.Today && !day.Selected, "bg-accent text-accent-foreground"),
					markup.If(day.Disabled, "opacity-50"),
				),
			)
			b.Close("td")
		}
		b.Close("tr")
	}
	b.Close("tbody")
	b.Close("table")
}

func (f *DatePicker) now() time.Time {
	if f.props.Now != nil {
		return f.props.Now()
	}
	return time.Now()
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
