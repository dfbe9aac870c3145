package shared

// Language is a customer-facing content language code
type Language string

const (
	LanguageAlbanian Language = "sq"
	LanguageEnglish  Language = "en"
)

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	return l == LanguageAlbanian || l == LanguageEnglish
}

// String returns the string representation of the language
func (l Language) String() string {
	return string(l)
}

// NormalizeLanguage maps an arbitrary code to a supported language,
// falling back to Albanian which is the shop's primary language.
func NormalizeLanguage(code string) Language {
	if Language(code) == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageAlbanian
}
