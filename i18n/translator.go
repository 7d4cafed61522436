package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "property" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須キーが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "pattern":
			return "値がパターンに一致しません"
		case "pattern_unmatched":
			return "必須パターンに一致するキーがありません"
		case "validator":
			return "バリデータが失敗しました"
		case "transform":
			return "変換に失敗しました"
		case "unknown_schema_key":
			return "未知のスキーマキーです"
		case "invalid_pattern":
			return "パターンが不正です"
		case "transformer_conflict":
			return "トランスフォーマが競合しています"
		case "property_conflict":
			return "プロパティが競合しています"
		case "merge_path":
			return "マージ先パスが見つかりません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required key missing"
		case "unknown_key":
			return "unknown key"
		case "pattern":
			return "value does not match pattern"
		case "pattern_unmatched":
			return "no key matches required pattern"
		case "validator":
			return "validator failed"
		case "transform":
			return "transform failed"
		case "unknown_schema_key":
			return "unknown schema key"
		case "invalid_pattern":
			return "invalid pattern"
		case "transformer_conflict":
			return "transformer conflict"
		case "property_conflict":
			return "conflicting property values"
		case "merge_path":
			return "merge path not found"
		}
	}
	return code
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

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
