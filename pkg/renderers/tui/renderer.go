package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components/display"
	"github.com/goliatone/go-uikit/pkg/components/field"
	"github.com/goliatone/go-uikit/pkg/model"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Renderer implements render.Renderer for terminal sessions. Every field of
// the page becomes a prompt; answers are applied to the built document the
// same way browser events are, then the resulting values are serialized.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	registry          *page.Registry
	submitTransformer SubmitTransformer
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output,
// default component registry).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	if r.registry == nil {
		r.registry = page.NewDefaultRegistry()
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render builds doc, prompts for each field and returns the collected
// values.
func (r *Renderer) Render(ctx context.Context, doc model.Page, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !opts.Subset.Empty() {
		render.ApplySubset(&doc, opts.Subset)
	}
	built, err := page.Build(ctx, r.registry, doc)
	if err != nil {
		return nil, err
	}
	values, err := r.Prompt(ctx, built, opts.Errors)
	if err != nil {
		return nil, err
	}
	return r.serialize(values)
}

// Prompt walks the document and asks for every field value. Answers are
// applied as interactions, so controlled fields keep their value and only
// report the change through their callbacks. errs are shown next to the
// matching prompts.
func (r *Renderer) Prompt(ctx context.Context, doc *page.Document, errs map[string][]string) (map[string]any, error) {
	if doc == nil {
		return nil, errors.New("tui: document is nil")
	}
	st := NewState(errs)
	if title := strings.TrimSpace(doc.Page.Title); title != "" {
		if err := r.driver.Info(ctx, r.theme.Key.Render(title)); err != nil {
			return nil, err
		}
	}

	prompted := 0
	for _, entry := range doc.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id := entry.Spec.ID
		if id == "" || boolProp(entry.Spec, "isReadonly") || boolProp(entry.Spec, "disabled") {
			continue
		}
		asked, err := r.promptEntry(ctx, doc, entry, st)
		if err != nil {
			return nil, err
		}
		if asked {
			prompted++
		}
	}
	if prompted == 0 {
		return nil, ErrNoFields
	}

	for id, value := range doc.Values() {
		if err := st.SetValue(id, value); err != nil {
			return nil, err
		}
	}
	for _, entry := range doc.Entries() {
		acc, ok := entry.Component.(*display.Accordion)
		if !ok || entry.Spec.ID == "" || acc.Type() != display.AccordionMultiple {
			continue
		}
		open := make([]any, 0, len(acc.Items()))
		for _, value := range acc.OpenValues() {
			open = append(open, value)
		}
		if err := st.SetValue(entry.Spec.ID, open); err != nil {
			return nil, err
		}
	}
	values := st.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return values, nil
}

type optionField interface {
	Options() []field.Option
	Value() string
}

func (r *Renderer) promptEntry(ctx context.Context, doc *page.Document, entry page.Entry, st *State) (bool, error) {
	id := entry.Spec.ID
	message := label(entry.Spec)
	if err := r.showErrors(ctx, id, st.ErrorsFor(id)); err != nil {
		return false, err
	}
	help, _ := entry.Spec.Props["description"].(string)

	switch c := entry.Component.(type) {
	case *field.Input:
		cfg := InputConfig{
			Message:     message,
			Default:     c.Value(),
			Help:        help,
			Placeholder: stringProp(entry.Spec, "placeholder"),
		}
		ask := r.driver.Input
		if strings.EqualFold(stringProp(entry.Spec, "type"), "password") {
			ask = r.driver.Password
		}
		if strings.EqualFold(stringProp(entry.Spec, "type"), "number") {
			cfg.Validator = validateNumber
		}
		answer, err := ask(ctx, cfg)
		if err != nil {
			return false, err
		}
		return true, r.apply(ctx, doc, id, page.ActionSet, answer)

	case *field.Textarea:
		answer, err := r.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: c.Value(), Help: help})
		if err != nil {
			return false, err
		}
		return true, r.apply(ctx, doc, id, page.ActionSet, answer)

	case *field.Toggle:
		current := c.Checked()
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: current, Help: help})
		if err != nil {
			return false, err
		}
		if answer == current {
			return true, nil
		}
		return true, r.apply(ctx, doc, id, page.ActionSet, strconv.FormatBool(answer))

	case *field.DatePicker:
		current := ""
		if value, ok := c.Value(); ok {
			current = value.UTC().Format("2006-01-02")
		}
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     current,
			Help:        help,
			Placeholder: "YYYY-MM-DD",
			Validator:   dateValidator(c),
		})
		if err != nil {
			return false, err
		}
		return true, r.apply(ctx, doc, id, page.ActionSet, answer)

	case optionField:
		options := enabledOptions(c.Options())
		if len(options) == 0 {
			return false, nil
		}
		labels := make([]string, len(options))
		defaultIndex := -1
		for i, opt := range options {
			labels[i] = optionLabel(opt)
			if opt.Value == c.Value() && defaultIndex < 0 {
				defaultIndex = i
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{Message: message, Options: labels, DefaultIndex: defaultIndex, Help: help})
		if err != nil {
			return false, err
		}
		if idx < 0 || idx >= len(options) {
			return false, fmt.Errorf("tui: %s: selection %d out of range", id, idx)
		}
		return true, r.apply(ctx, doc, id, page.ActionSet, options[idx].Value)

	case *display.Accordion:
		if c.Type() != display.AccordionMultiple {
			return false, nil
		}
		return true, r.promptAccordion(ctx, doc, id, message, c)
	}
	return false, nil
}

func (r *Renderer) promptAccordion(ctx context.Context, doc *page.Document, id, message string, acc *display.Accordion) error {
	items := acc.Items()
	labels := make([]string, len(items))
	var defaults []int
	for i, item := range items {
		labels[i] = item.Title
		if acc.IsOpen(item.Value) {
			defaults = append(defaults, i)
		}
	}
	picked, err := r.driver.MultiSelect(ctx, SelectConfig{Message: message, Options: labels, Defaults: defaults})
	if err != nil {
		return err
	}
	want := make(map[int]bool, len(picked))
	for _, idx := range picked {
		want[idx] = true
	}
	for i, item := range items {
		if want[i] == acc.IsOpen(item.Value) {
			continue
		}
		if err := r.apply(ctx, doc, id, page.ActionToggle, item.Value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) apply(ctx context.Context, doc *page.Document, id string, action page.Action, value string) error {
	return doc.Interact(ctx, page.Interaction{ID: id, Action: action, Value: value})
}

func (r *Renderer) showErrors(ctx context.Context, id string, messages []string) error {
	for _, msg := range messages {
		if err := r.driver.Info(ctx, r.theme.Error.Render(id+": "+msg)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(r.prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func label(spec model.Component) string {
	if text := strings.TrimSpace(stringProp(spec, "label")); text != "" {
		return text
	}
	return spec.ID
}

func stringProp(spec model.Component, key string) string {
	value, _ := spec.Props[key].(string)
	return value
}

func boolProp(spec model.Component, key string) bool {
	switch v := spec.Props[key].(type) {
	case bool:
		return v
	case string:
		parsed, _ := strconv.ParseBool(v)
		return parsed
	}
	return false
}

func enabledOptions(options []field.Option) []field.Option {
	out := make([]field.Option, 0, len(options))
	for _, opt := range options {
		if !opt.Disabled {
			out = append(out, opt)
		}
	}
	return out
}

func optionLabel(opt field.Option) string {
	if opt.Label != "" {
		return opt.Label
	}
	return opt.Value
}

func validateNumber(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	return nil
}

func dateValidator(picker *field.DatePicker) func(string) error {
	return func(raw string) error {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		d, err := field.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("%q is not a date (YYYY-MM-DD)", raw)
		}
		if picker.Disabled(d) {
			return field.ErrDateDisabled
		}
		return nil
	}
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	flatten("", values, flattened)
	return flattened.Encode()
}

func flatten(prefix string, value any, out url.Values) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			flatten(next, val, out)
		}
	case []any:
		for _, val := range v {
			out.Add(prefix+"[]", fmt.Sprint(val))
		}
	default:
		out.Set(prefix, fmt.Sprint(v))
	}
}

func (r *Renderer) prettyPrint(values map[string]any) string {
	var b strings.Builder
	r.writePretty(&b, "", values)
	return b.String()
}

func (r *Renderer) writePretty(b *strings.Builder, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			r.writePretty(b, next, v[key])
		}
	case []any:
		for idx, val := range v {
			r.writePretty(b, fmt.Sprintf("%s[%d]", prefix, idx), val)
		}
	default:
		if prefix != "" {
			fmt.Fprintf(b, "%s = %s\n", r.theme.Key.Render(prefix), r.theme.Value.Render(fmt.Sprint(v)))
		}
	}
}
