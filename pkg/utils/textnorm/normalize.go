package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// compound name delimiters in check order: space before hyphen before
// apostrophe
var nameDelimiters = []string{" ", "-", "'"}

// CollapseCompoundName joins a compound first or last name into a single
// alias-safe token. Only the first delimiter type found is removed, e.g.
// "Erin O'hara" becomes "ErinO'hara" on the space, not "ErinOhara".
func CollapseCompoundName(name string) string {
	for _, d := range nameDelimiters {
		if strings.Contains(name, d) {
			return strings.ReplaceAll(name, d, "")
		}
	}
	return name
}

// stripTransform decomposes to NFD, drops combining marks, and recomposes
var stripTransform = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripDiacritics renders text without diacritical marks by canonical
// decomposition and removal of non-spacing marks ("José" -> "Jose").
// It is Unicode-category aware rather than table-driven, and idempotent.
func StripDiacritics(text string) string {
	out, _, err := transform.String(stripTransform, text)
	if err != nil {
		return text
	}
	return out
}
