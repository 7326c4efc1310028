package domain

import (
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// vowels is the fixed set of letters that can carry stress.
var vowels = map[rune]struct{}{
	'а': {}, 'у': {}, 'о': {}, 'и': {}, 'э': {},
	'ы': {}, 'я': {}, 'ю': {}, 'е': {}, 'ё': {},
}

// Compose returns s in Unicode NFC form. A letter typed as a base letter
// plus a combining mark (е + U+0308) becomes a single codepoint, which keeps
// emphasis positions stable.
func Compose(s string) string {
	return norm.NFC.String(s)
}

// Normalize composes s and lowercases it with Russian casing rules.
func Normalize(s string) string {
	// cases.Caser is stateful, so a fresh one is built per call.
	return cases.Lower(language.Russian).String(Compose(s))
}

// HashText returns the 64-bit fingerprint of s. Callers normalize s first.
func HashText(s string) uint64 {
	return xxhash.Sum64String(s)
}

// IsVowel reports whether r belongs to the stressable vowel set.
func IsVowel(r rune) bool {
	_, ok := vowels[unicode.ToLower(r)]
	return ok
}

// VowelPositions returns the codepoint indices of every vowel in s in
// ascending order.
func VowelPositions(s string) []int {
	var positions []int
	i := 0
	for _, r := range s {
		if IsVowel(r) {
			positions = append(positions, i)
		}
		i++
	}
	return positions
}

// FirstUppercase returns the codepoint index of the first uppercase letter in
// s, or -1 when there is none.
func FirstUppercase(s string) int {
	i := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			return i
		}
		i++
	}
	return -1
}

// UppercaseAt returns s with the letter at codepoint index pos uppercased.
func UppercaseAt(s string, pos int) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for _, r := range s {
		if i == pos {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}
