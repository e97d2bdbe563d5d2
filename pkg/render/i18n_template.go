package render

import (
	"fmt"
	"reflect"
	"strings"
)

// TemplateI18nConfig configures the translation helpers exposed to theme
// partials.
type TemplateI18nConfig struct {
	// LocaleKey selects the key used to read the locale from template data
	// when a map or struct is passed instead of a locale string.
	LocaleKey string
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helpers suitable for gotemplate.WithTemplateFunc
// so partials can localize strings the same way components do:
//
//	{{ translate(locale, "table.empty") }}
//
// The translator wins, then the built-in catalog, then OnMissing.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}

	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	options := []EnvOption{WithTranslator(t)}
	if cfg.OnMissing != nil {
		options = append(options, WithMissingTranslationHandler(cfg.OnMissing))
	}

	return map[string]any{
		translateName: func(localeSrc any, key string, params ...any) string {
			env := NewEnv(append(options, WithLocale(resolveLocale(localeSrc, localeKey)))...)
			return env.Message(key, params...)
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
	}
}

func resolveLocale(src any, key string) string {
	if src == nil {
		return ""
	}

	if str, ok := src.(string); ok {
		return str
	}

	switch data := src.(type) {
	case map[string]any:
		if v, ok := data[key]; ok {
			if str, ok := v.(string); ok {
				return str
			}
			return strings.TrimSpace(fmt.Sprint(v))
		}
		return ""
	case map[string]string:
		return data[key]
	}

	value := reflect.ValueOf(src)
	for value.IsValid() && value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.IsValid() && value.Kind() == reflect.Struct {
		field := value.FieldByName(key)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}
	return ""
}
