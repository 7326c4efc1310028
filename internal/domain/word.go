package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// WordHash is the stable identity of a word, derived from its normalized
// text. It keys both the catalog and the persisted statistics.
type WordHash uint64

// NewWordHash returns the hash of an already normalized word.
func NewWordHash(text string) WordHash {
	return WordHash(HashText(text))
}

// ParseWordHash parses the decimal string form produced by WordHash.String.
func ParseWordHash(s string) (WordHash, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWordHash, s)
	}
	return WordHash(v), nil
}

// String returns the decimal form of the hash.
func (h WordHash) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Group identifies a named stress rule and which side of it a word
// exemplifies. Words with equal groups illustrate the same rule; words with
// the same Rule and a different Inverted flag are its counterexamples.
type Group struct {
	Inverted bool
	Rule     uint64
}

// NewGroup builds a group from a rule name. The name is trimmed and
// normalized before hashing, so "ПРОВОД" and " провод " are the same rule.
func NewGroup(name string, inverted bool) Group {
	return Group{
		Inverted: inverted,
		Rule:     HashText(Normalize(strings.TrimSpace(name))),
	}
}

// Opposite returns the group on the other side of the same rule.
func (g Group) Opposite() Group {
	return Group{Inverted: !g.Inverted, Rule: g.Rule}
}

// Word is a catalog entry: a lowercased word together with the position of
// its correct emphasis and optional supporting information.
//
// Word is an immutable value. The With* methods return modified copies, and
// two words are equal when all of their fields are equal, so == can be used
// directly.
type Word struct {
	text        string
	hash        WordHash
	emphasis    int
	detail      string
	group       Group
	hasGroup    bool
	explanation string
}

// NewWord creates a word from text and the codepoint index of its stressed
// letter. The text is normalized to lowercase.
func NewWord(text string, emphasis int) Word {
	text = Normalize(text)
	return Word{
		text:     text,
		hash:     NewWordHash(text),
		emphasis: emphasis,
	}
}

// WithDetail returns a copy of w carrying a disambiguating detail such as a
// sense gloss. Blank details are ignored.
func (w Word) WithDetail(detail string) Word {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return w
	}
	w.detail = detail
	return w
}

// WithGroup returns a copy of w belonging to the named rule group.
func (w Word) WithGroup(name string, inverted bool) Word {
	w.group = NewGroup(name, inverted)
	w.hasGroup = true
	return w
}

// WithExplanation returns a copy of w carrying explanatory text shown after
// a wrong answer. Blank explanations are ignored.
func (w Word) WithExplanation(text string) Word {
	text = strings.TrimSpace(text)
	if text == "" {
		return w
	}
	w.explanation = text
	return w
}

// Text returns the normalized lowercase word.
func (w Word) Text() string { return w.text }

// Hash returns the identity hash of the word.
func (w Word) Hash() WordHash { return w.hash }

// Emphasis returns the codepoint index of the stressed letter.
func (w Word) Emphasis() int { return w.emphasis }

// Detail returns the disambiguating detail, or "" when there is none.
func (w Word) Detail() string { return w.detail }

// Group returns the rule group of the word and whether it has one.
func (w Word) Group() (Group, bool) { return w.group, w.hasGroup }

// Explanation returns the explanatory text, or "" when there is none.
func (w Word) Explanation() string { return w.explanation }

// Equal reports whether w and other are the same entry.
func (w Word) Equal(other Word) bool {
	return w == other
}

// Evaluate grades an answer that puts the stress at emphasis.
func (w Word) Evaluate(emphasis int) Outcome {
	if emphasis == w.emphasis {
		return OutcomeSolved
	}
	return OutcomeFailed
}

// Variants returns one answer choice per vowel of the word in ascending
// position order. The correct position is always among them, even when it
// is marked on a consonant.
func (w Word) Variants() []Variant {
	positions := VowelPositions(w.text)
	if !slices.Contains(positions, w.emphasis) {
		positions = append(positions, w.emphasis)
		slices.Sort(positions)
	}

	variants := make([]Variant, 0, len(positions))
	for _, pos := range positions {
		variants = append(variants, Variant{
			Emphasis: pos,
			Word:     w.text,
			Detail:   w.detail,
		})
	}
	return variants
}

// String renders the word with its stressed letter uppercased, followed by
// the detail when present.
func (w Word) String() string {
	return render(UppercaseAt(w.text, w.emphasis), w.detail)
}

func render(word, detail string) string {
	if detail == "" {
		return word
	}
	return word + " " + detail
}
