package schedule

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks and recomposes,
// so "miércoles" becomes "miercoles" and "ñ" becomes "n".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics, lower-cases and trims surrounding whitespace.
// Both questions and stored fields go through it, so matching is always
// accent-insensitive.
func Normalize(text string) string {
	out, _, _ := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(text)))
	return out
}

// CleanField prepares a record text field for storage: trimmed, title-cased
// per Spanish casing rules, accents stripped.
func CleanField(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	titled := cases.Title(language.Spanish).String(lowered)
	out, _, _ := transform.String(stripAccents, titled)
	return out
}
