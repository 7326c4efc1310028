package wordbase

import (
	"strings"
	"unicode/utf8"
)

// subsliceTags returns the part of s that follows the first rune from opening
// and precedes the next rune from closing. An empty opening set starts at the
// beginning of s; an empty closing set runs to the end. When opening is not
// empty and none of its runes occur in s, the result is empty.
func subsliceTags(s, opening, closing string) string {
	if opening != "" {
		i := strings.IndexAny(s, opening)
		if i < 0 {
			return ""
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		s = s[i+size:]
	}
	if j := strings.IndexAny(s, closing); j >= 0 {
		s = s[:j]
	}
	return s
}
