// Package normalize reduces header and key strings to a canonical token form
// so that "Libellé Opération", "libelle  operation" and "LIBELLE_OPERATION"
// all compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Token normalizes s into a lowercase token: accents stripped, every run of
// characters that are not letters, digits or underscore squeezed to a single
// underscore, repeated underscores collapsed, leading and trailing
// underscores trimmed. Idempotent.
func Token(s string) string {
	if s == "" {
		return ""
	}

	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Ill-formed input: keep going with the original bytes.
		stripped = s
	}
	stripped = strings.ToLower(stripped)

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSep := false
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			// Underscore and everything else act as separators;
			// runs collapse and the edges are trimmed.
			pendingSep = true
		}
	}
	return b.String()
}
