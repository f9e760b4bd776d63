// Package sanitize normalizes user-supplied movie titles before they are
// embedded in a prompt.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Title returns the NFC form of s with control characters and line breaks
// folded to single spaces. A title never spans lines inside the prompt.
func Title(s string) string {
	s = norm.NFC.String(s)

	folded := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(folded), " ")
}

// Titles applies Title to every entry, keeping order and count
func Titles(titles []string) []string {
	out := make([]string, len(titles))
	for i, t := range titles {
		out[i] = Title(t)
	}
	return out
}
