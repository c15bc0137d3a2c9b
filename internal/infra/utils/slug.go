package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticsFolder = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Slugify derives a stable machine key from a human display name: lower-cased,
// diacritics stripped, every run of non-alphanumerics collapsed to a single
// underscore, with no leading or trailing underscore. The function is
// deterministic and idempotent, so the same display name always yields the
// same key.
//
// Examples:
//   - "Cor do Aparelho" -> "cor_do_aparelho"
//   - "Saúde da Bateria (%)" -> "saude_da_bateria"
//   - "ram" -> "ram" (unchanged)
func Slugify(s string) string {
	folded, _, err := transform.String(diacriticsFolder, s)
	if err != nil {
		folded = s
	}

	var result strings.Builder
	result.Grow(len(folded))

	pendingSeparator := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSeparator && result.Len() > 0 {
				result.WriteRune('_')
			}
			pendingSeparator = false
			result.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}

	return result.String()
}
