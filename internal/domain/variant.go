package domain

import "strings"

// Variant is a candidate, possibly wrong, placement of the emphasis on a
// word. Variants are derived from a Word and offered as answer choices.
type Variant struct {
	Emphasis int    `json:"emphasis"`
	Word     string `json:"word"`
	Detail   string `json:"detail,omitempty"`
}

// String renders the variant with the candidate letter uppercased. Every ё is
// shown as е first, since the letter itself would give the answer away.
func (v Variant) String() string {
	word := strings.ReplaceAll(v.Word, "ё", "е")
	return render(UppercaseAt(word, v.Emphasis), v.Detail)
}
