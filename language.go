package ipapi

// Language selects the localization of textual response attributes
// such as country and city names. The zero value means the remote
// default, English.
type Language string

// All languages the remote API supports.
const (
	LangDE   Language = "de"    // Deutsch (German)
	LangEN   Language = "en"    // English (default)
	LangES   Language = "es"    // Español (Spanish)
	LangFR   Language = "fr"    // Français (French)
	LangJA   Language = "ja"    // 日本語 (Japanese)
	LangPtBR Language = "pt-BR" // Português - Brasil (Portuguese)
	LangRU   Language = "ru"    // Русский (Russian)
	LangZhCN Language = "zh-CN" // 中国 (Chinese)
)

// isDefault reports whether the lang parameter can be omitted from the
// query, which is the remote behavior for English.
func (l Language) isDefault() bool {
	return l == "" || l == LangEN
}
