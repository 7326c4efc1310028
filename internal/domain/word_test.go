package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWord(t *testing.T) {
	t.Parallel()

	w := NewWord("ОтЗыВ", 3)

	assert.Equal(t, "отзыв", w.Text())
	assert.Equal(t, 3, w.Emphasis())
	assert.Equal(t, NewWordHash("отзыв"), w.Hash())
	assert.Empty(t, w.Detail())
	assert.Empty(t, w.Explanation())
	_, ok := w.Group()
	assert.False(t, ok)
}

func TestWordHashIsPureFunctionOfText(t *testing.T) {
	t.Parallel()

	a := NewWord("отзыв", 3).WithDetail("(посла)")
	b := NewWord("ОТЗЫВ", 0).WithDetail("(о книге)")

	assert.Equal(t, a.Hash(), b.Hash(), "hash depends only on normalized text")
	assert.False(t, a.Equal(b), "words with different fields are not equal")
}

func TestWordWithChain(t *testing.T) {
	t.Parallel()

	base := NewWord("водопровод", 8)
	w := base.
		WithDetail("  (труба) ").
		WithGroup("ПРОВОД", false).
		WithExplanation(" Ударение на последний слог. ")

	assert.Equal(t, "(труба)", w.Detail())
	assert.Equal(t, "Ударение на последний слог.", w.Explanation())

	g, ok := w.Group()
	require.True(t, ok)
	assert.Equal(t, NewGroup("провод", false), g)
	assert.False(t, g.Inverted)

	// The original value is untouched.
	assert.Empty(t, base.Detail())
	_, ok = base.Group()
	assert.False(t, ok)
}

func TestWordWithBlankValues(t *testing.T) {
	t.Parallel()

	w := NewWord("отзыв", 3).
		WithDetail("(посла)").
		WithExplanation("Дипломатический.")

	blanked := w.WithDetail("   ").WithExplanation("")

	assert.Equal(t, "(посла)", blanked.Detail())
	assert.Equal(t, "Дипломатический.", blanked.Explanation())
	assert.True(t, blanked.Equal(w))
}

func TestWordEqual(t *testing.T) {
	t.Parallel()

	a := NewWord("газопровод", 8).WithGroup("провод", false)
	b := NewWord("газопровод", 8).WithGroup("ПРОВОД", false)
	c := NewWord("газопровод", 8).WithGroup("провод", true)

	assert.True(t, a.Equal(b))
	assert.True(t, a == b)
	assert.False(t, a.Equal(c))
}

func TestGroupOpposite(t *testing.T) {
	t.Parallel()

	g := NewGroup("провод", false)
	o := g.Opposite()

	assert.True(t, o.Inverted)
	assert.Equal(t, g.Rule, o.Rule)
	assert.Equal(t, g, o.Opposite())
}

func TestWordString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		word     Word
		expected string
	}{
		{
			name:     "without detail",
			word:     NewWord("слово", 2),
			expected: "слОво",
		},
		{
			name:     "with detail",
			word:     NewWord("отзыв", 3).WithDetail("(посла)"),
			expected: "отзЫв (посла)",
		},
		{
			name:     "first letter",
			word:     NewWord("отзыв", 0).WithDetail("(о книге)"),
			expected: "Отзыв (о книге)",
		},
		{
			name:     "yo stays visible on the correct word",
			word:     NewWord("всё", 2),
			expected: "всЁ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.word.String())
		})
	}
}

func TestWordEvaluate(t *testing.T) {
	t.Parallel()

	w := NewWord("торты", 1)
	assert.Equal(t, OutcomeSolved, w.Evaluate(1))
	assert.Equal(t, OutcomeFailed, w.Evaluate(4))
}

func TestWordVariants(t *testing.T) {
	t.Parallel()

	t.Run("one variant per vowel", func(t *testing.T) {
		t.Parallel()
		w := NewWord("слово", 2)

		variants := w.Variants()

		require.Len(t, variants, 2)
		assert.Equal(t, 2, variants[0].Emphasis)
		assert.Equal(t, 4, variants[1].Emphasis)
		for _, v := range variants {
			assert.Equal(t, "слово", v.Word)
			assert.Empty(t, v.Detail)
		}
	})

	t.Run("carries detail", func(t *testing.T) {
		t.Parallel()
		w := NewWord("отзыв", 3).WithDetail("(посла)")

		variants := w.Variants()

		require.Len(t, variants, 2)
		assert.Equal(t, []int{0, 3}, []int{variants[0].Emphasis, variants[1].Emphasis})
		for _, v := range variants {
			assert.Equal(t, "(посла)", v.Detail)
		}
	})

	t.Run("includes consonant emphasis", func(t *testing.T) {
		t.Parallel()
		w := NewWord("кол", 2)

		variants := w.Variants()

		require.Len(t, variants, 2)
		assert.Equal(t, 1, variants[0].Emphasis)
		assert.Equal(t, 2, variants[1].Emphasis)
	})
}

func TestVariantString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "слОво", Variant{Emphasis: 2, Word: "слово"}.String())
	assert.Equal(t, "отзЫв (посла)", Variant{Emphasis: 3, Word: "отзыв", Detail: "(посла)"}.String())
	assert.Equal(t, "вЕсь", Variant{Emphasis: 1, Word: "вёсь"}.String(), "ё is masked as е")
}

func TestParseWordHash(t *testing.T) {
	t.Parallel()

	h := NewWordHash("слово")
	parsed, err := ParseWordHash(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)

	_, err = ParseWordHash("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidWordHash)
}

func TestParseOutcome(t *testing.T) {
	t.Parallel()

	o, err := ParseOutcome("solved")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSolved, o)

	_, err = ParseOutcome("skipped")
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}
