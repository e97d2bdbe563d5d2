package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingTranslator is reported to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves localized messages.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the string used when key cannot be
// translated. params carries {"default": fallback} as its first element
// when a catalog fallback exists.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// Message keys for the fixed strings components render.
const (
	MsgTableEmpty            = "table.empty"
	MsgButtonLoading         = "button.loading"
	MsgButtonBack            = "button.back"
	MsgDialogCancel          = "dialog.cancel"
	MsgDialogClose           = "dialog.close"
	MsgDialogSubmit          = "dialog.submit"
	MsgComboboxPlaceholder   = "combobox.placeholder"
	MsgComboboxSearch        = "combobox.search"
	MsgComboboxEmpty         = "combobox.empty"
	MsgDatePickerPlaceholder = "datepicker.placeholder"
	MsgDatePickerLayout      = "datepicker.layout"
	MsgCalendarWeekdays      = "calendar.weekdays"
	MsgCalendarMonthLayout   = "calendar.month"
)

var catalog = map[string]map[string]string{
	"en": {
		MsgTableEmpty:            "No data to display.",
		MsgButtonLoading:         "Processing...",
		MsgButtonBack:            "Back",
		MsgDialogCancel:          "Cancel",
		MsgDialogClose:           "Close",
		MsgDialogSubmit:          "Submit",
		MsgComboboxPlaceholder:   "Select item...",
		MsgComboboxSearch:        "Search item...",
		MsgComboboxEmpty:         "No item found.",
		MsgDatePickerPlaceholder: "Pick a date",
		MsgDatePickerLayout:      "1/2/2006",
		MsgCalendarWeekdays:      "Su Mo Tu We Th Fr Sa",
		MsgCalendarMonthLayout:   "January 2006",
	},
	"ja": {
		MsgTableEmpty:            "表示するデータがありません。",
		MsgButtonLoading:         "処理中...",
		MsgButtonBack:            "戻る",
		MsgDialogCancel:          "キャンセル",
		MsgDialogClose:           "閉じる",
		MsgDialogSubmit:          "サブミット",
		MsgComboboxPlaceholder:   "項目を選択...",
		MsgComboboxSearch:        "項目を検索...",
		MsgComboboxEmpty:         "項目が見つかりません。",
		MsgDatePickerPlaceholder: "日付を選択",
		MsgDatePickerLayout:      "2006/1/2",
		MsgCalendarWeekdays:      "日 月 火 水 木 金 土",
		MsgCalendarMonthLayout:   "2006年1月",
	},
}

// CatalogMessage looks key up in the built-in catalog, trying the full
// locale, its base language, then English.
func CatalogMessage(locale, key string) (string, bool) {
	for _, candidate := range localeCandidates(locale) {
		if messages, ok := catalog[candidate]; ok {
			if msg, ok := messages[key]; ok {
				return msg, true
			}
		}
	}
	return "", false
}

// Locales lists the locales shipped in the built-in catalog.
func Locales() []string {
	return []string{"en", "ja"}
}

func localeCandidates(locale string) []string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	out := make([]string, 0, 3)
	if locale != "" {
		out = append(out, locale)
		if base, _, ok := strings.Cut(strings.ReplaceAll(locale, "_", "-"), "-"); ok && base != "" {
			out = append(out, base)
		}
	}
	return append(out, DefaultLocale)
}

// Message resolves a message key: the translator first, then the
// built-in catalog, then the missing translation handler.
func (e *Env) Message(key string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	locale := e.Locale()
	fallback, _ := CatalogMessage(locale, key)

	var (
		t         Translator
		onMissing = missingTranslationDefault
	)
	if e != nil {
		t = e.translator
		if e.onMissing != nil {
			onMissing = e.onMissing
		}
	}

	if t != nil {
		msg, err := t.Translate(locale, key, args...)
		if err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
		if fallback != "" {
			return formatMessage(fallback, args)
		}
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if fallback != "" {
		return formatMessage(fallback, args)
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
}

// Or returns value when non-blank, otherwise the localized message for key.
func (e *Env) Or(value, key string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return e.Message(key)
}

func formatMessage(msg string, args []any) string {
	if len(args) == 0 || !strings.Contains(msg, "%") {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}
