package domain

import "strings"

// Explanation binds a tag to the text explaining a stress rule. Word entries
// reference explanations by tag; only the resolved text is kept on the word.
type Explanation struct {
	Tag  string
	Text string
}

// NewExplanation creates an explanation with a normalized tag and trimmed
// text.
func NewExplanation(tag, text string) Explanation {
	return Explanation{
		Tag:  Normalize(strings.TrimSpace(tag)),
		Text: strings.TrimSpace(text),
	}
}
