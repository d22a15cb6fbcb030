package schema

import "strings"

// Language is a programming language a respondent can name. The zero value means
// the language could not be determined from a record.
type Language int

const (
	LanguageUnknown Language = iota
	LanguagePHP
	LanguageJavaScript
	LanguageC
	LanguageCPP
	LanguageJava
	LanguageCSharp
	LanguagePython
	LanguageRuby
)

var languageNames = map[Language]string{
	LanguagePHP:        "PHP",
	LanguageJavaScript: "JavaScript",
	LanguageC:          "C",
	LanguageCPP:        "C++",
	LanguageJava:       "Java",
	LanguageCSharp:     "C#",
	LanguagePython:     "Python",
	LanguageRuby:       "Ruby",
}

// Languages lists the known languages in display order.
var Languages = []Language{
	LanguagePHP,
	LanguageJavaScript,
	LanguageC,
	LanguageCPP,
	LanguageJava,
	LanguageCSharp,
	LanguagePython,
	LanguageRuby,
}

// String returns the display name, or an empty string for LanguageUnknown.
func (l Language) String() string {
	return languageNames[l]
}

// LanguageNames returns the display names of all known languages.
func LanguageNames() []string {
	names := make([]string, len(Languages))
	for i, l := range Languages {
		names[i] = l.String()
	}
	return names
}

// ParseLanguage resolves a display name case-insensitively.
func ParseLanguage(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	for _, l := range Languages {
		if strings.EqualFold(l.String(), s) {
			return l, true
		}
	}
	return LanguageUnknown, false
}
