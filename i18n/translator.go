package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "tag" or "variant").
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalogue = map[string]map[string]string{
	"en": {
		"invalid_type":          "invalid type",
		"required":              "required field missing",
		"unknown_key":           "unknown key",
		"duplicate_key":         "duplicate key",
		"invalid_format":        "invalid format",
		"out_of_range":          "value out of range",
		"unknown_variant":       "unknown variant tag",
		"no_matching_variant":   "no variant matched",
		"discriminator_missing": "discriminator missing",
		"parse_error":           "parse error",
		"truncated":             "truncated",
	},
	"ja": {
		"invalid_type":          "型が不正です",
		"required":              "必須フィールドが不足しています",
		"unknown_key":           "未知のキーです",
		"duplicate_key":         "キーが重複しています",
		"invalid_format":        "形式が不正です",
		"out_of_range":          "値が範囲外です",
		"unknown_variant":       "未知のバリアントタグです",
		"no_matching_variant":   "一致するバリアントがありません",
		"discriminator_missing": "判別キーがありません",
		"parse_error":           "解析エラー",
		"truncated":             "打ち切られました",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	if msg, ok := catalogue[t.lang][code]; ok {
		if tag := data["tag"]; tag != "" {
			return msg + ": " + tag
		}
		return msg
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
