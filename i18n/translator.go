package i18n

import "strings"

// Translator retrieves localized messages for issue codes. data provides
// optional parameters to embed in the message (for example, "expected" or
// "min"); templates reference them as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. The "en"
// catalog carries the engine's canonical messages; combinators rely on these
// exact strings, so replacing the translator changes presentation only.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tmpl string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			tmpl = "{expected}が必要です"
		case "required":
			tmpl = "必須です"
		case "union_no_match":
			tmpl = "いずれの型にも一致しません"
		case "not_null":
			tmpl = "nullは許可されていません"
		case "not_undefined":
			tmpl = "undefinedは許可されていません"
		case "not_nullish":
			tmpl = "nullおよびundefinedは許可されていません"
		case "refine_failed":
			tmpl = "検証に失敗しました"
		}
	}
	if tmpl == "" {
		switch code {
		case "invalid_type":
			tmpl = "Expected {expected}"
		case "required":
			tmpl = "Required"
		case "union_no_match":
			tmpl = "Value does not match any type in union"
		case "variant_no_match":
			tmpl = "No matching variant for {key}={value}"
		case "not_null":
			tmpl = "Value cannot be null"
		case "not_undefined":
			tmpl = "Value cannot be undefined"
		case "not_nullish":
			tmpl = "Value cannot be null or undefined"
		case "refine_failed":
			tmpl = "Validation failed"
		case "transform_error":
			tmpl = "Transformation failed"
		case "invalid_length":
			tmpl = "Expected {want} items, got {got}"
		case "invalid_length_min":
			tmpl = "Expected at least {want} items, got {got}"
		case "invalid_key":
			tmpl = "Invalid key: {message}"
		case "too_short":
			tmpl = "Expected string of at least {min} characters"
		case "too_long":
			tmpl = "Expected string of at most {max} characters"
		case "too_small":
			tmpl = "Expected value >= {min}"
		case "too_big":
			tmpl = "Expected value <= {max}"
		case "pattern":
			tmpl = "Invalid format"
		case "invalid_enum":
			tmpl = "Expected one of: {values}"
		case "unknown_error":
			tmpl = "Unknown error"
		default:
			tmpl = code
		}
	}
	return expand(tmpl, data)
}

// expand substitutes {name} placeholders from data.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	out := tmpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T resolves a message for code via the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
