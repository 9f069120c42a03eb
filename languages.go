package lexiloc

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// RTLLanguages contains base language codes written right to left. The index
// page uses this to emit dir attributes.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// DisplayName returns the English name of a language code ("de_DE" →
// "German (Germany)" style output from the CLDR data). Falls back to the
// code itself if it cannot be parsed.
func DisplayName(langCode string) string {
	tag, err := language.Parse(ToHTMLLang(langCode))
	if err != nil {
		return langCode
	}
	return display.English.Tags().Name(tag)
}

// NativeName returns a language's own name for itself ("de" → "Deutsch"),
// used for the language index page. Falls back to the code itself.
func NativeName(langCode string) string {
	tag, err := language.Parse(ToHTMLLang(langCode))
	if err != nil {
		return langCode
	}
	name := display.Self.Name(tag)
	if name == "" {
		return langCode
	}
	return name
}

// GetDirection returns "rtl" for right-to-left languages, "ltr" otherwise.
func GetDirection(langCode string) string {
	base := strings.Split(langCode, "_")[0]
	base = strings.ToLower(base)

	if RTLLanguages[base] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL returns true if the language uses right-to-left text direction.
func IsRTL(langCode string) bool {
	return GetDirection(langCode) == "rtl"
}

// NormalizeLocale converts a language code to the standard format (e.g., "es-ES" → "es_ES").
func NormalizeLocale(langCode string) string {
	return strings.ReplaceAll(langCode, "-", "_")
}

// ToHTMLLang converts a locale code to HTML lang attribute format (e.g., "es_ES" → "es-ES").
func ToHTMLLang(langCode string) string {
	return strings.ReplaceAll(langCode, "_", "-")
}
