// Package catalog holds the parsed words in insertion order and answers
// relation queries over their rule groups.
package catalog

import (
	"slices"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
)

// Catalog is an ordered, read-only collection of words.
type Catalog struct {
	words []domain.Word
}

// New creates a catalog over a copy of words. Duplicate entries are kept.
func New(words []domain.Word) *Catalog {
	return &Catalog{words: slices.Clone(words)}
}

// Len returns the number of words.
func (c *Catalog) Len() int {
	return len(c.words)
}

// Words returns a copy of all words in insertion order.
func (c *Catalog) Words() []domain.Word {
	return slices.Clone(c.words)
}

// At returns the word at index i.
func (c *Catalog) At(i int) domain.Word {
	return c.words[i]
}

// IndexOf returns the index of the first entry equal to w, or -1.
func (c *Catalog) IndexOf(w domain.Word) int {
	return slices.IndexFunc(c.words, w.Equal)
}

// Hashes returns the distinct word hashes in first-occurrence order.
func (c *Catalog) Hashes() []domain.WordHash {
	seen := make(map[domain.WordHash]struct{}, len(c.words))
	hashes := make([]domain.WordHash, 0, len(c.words))
	for _, w := range c.words {
		if _, ok := seen[w.Hash()]; ok {
			continue
		}
		seen[w.Hash()] = struct{}{}
		hashes = append(hashes, w.Hash())
	}
	return hashes
}

// ByHash returns every word with the given hash in insertion order. Several
// entries share a hash when they spell the same word, as homographs do.
func (c *Catalog) ByHash(hash domain.WordHash) []domain.Word {
	var out []domain.Word
	for _, w := range c.words {
		if w.Hash() == hash {
			out = append(out, w)
		}
	}
	return out
}

// SeeAlso returns the other words illustrating the same side of w's rule.
// It is empty when w has no group.
func (c *Catalog) SeeAlso(w domain.Word) []domain.Word {
	group, ok := w.Group()
	if !ok {
		return nil
	}
	return c.related(w, group)
}

// Opposite returns the words on the other side of w's rule. It is empty when
// w has no group.
func (c *Catalog) Opposite(w domain.Word) []domain.Word {
	group, ok := w.Group()
	if !ok {
		return nil
	}
	return c.related(w, group.Opposite())
}

func (c *Catalog) related(w domain.Word, group domain.Group) []domain.Word {
	var out []domain.Word
	for _, candidate := range c.words {
		if candidate.Equal(w) {
			continue
		}
		if g, ok := candidate.Group(); ok && g == group {
			out = append(out, candidate)
		}
	}
	return out
}
