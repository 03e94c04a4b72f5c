package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicalizes a free-text store/sector name for comparison:
// accents are decomposed and stripped, then the result is uppercased.
// "São Paulo", "SAO PAULO" and "sao paulo" all normalize to "SAO PAULO".
// Idempotent; on a malformed input the string is uppercased as-is.
func NormalizeName(s string) string {
	// Transformers carry state, so build the chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}
