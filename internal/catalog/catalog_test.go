package catalog

import (
	"testing"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/wordbase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabase = `
водопровОд : ПРОВОД
газопровОд : ПРОВОД
нефтепровОд : ПРОВОД
прОвод ! ПРОВОД
тОрты
звонИт : ИТЬ
отзЫв (посла)
Отзыв (о книге)
`

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	res := wordbase.Parse(testDatabase)
	require.Empty(t, res.Errors)
	return New(res.Words)
}

func texts(words []domain.Word) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, w.Text())
	}
	return out
}

func TestSeeAlso(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	assert.Equal(t, []string{"газопровод", "нефтепровод"}, texts(c.SeeAlso(c.At(0))))
	assert.Equal(t, []string{"водопровод", "нефтепровод"}, texts(c.SeeAlso(c.At(1))))
	assert.Empty(t, c.SeeAlso(c.At(3)), "the inverted side has a single word")
	assert.Empty(t, c.SeeAlso(c.At(5)), "a group with one member")
	assert.Empty(t, c.SeeAlso(c.At(4)), "word without group")
}

func TestOpposite(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	assert.Equal(t, []string{"провод"}, texts(c.Opposite(c.At(0))))
	assert.Equal(t, []string{"водопровод", "газопровод", "нефтепровод"}, texts(c.Opposite(c.At(3))))
	assert.Empty(t, c.Opposite(c.At(5)))
	assert.Empty(t, c.Opposite(c.At(4)))
}

func TestGroupSymmetry(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	for _, w := range c.Words() {
		for _, other := range c.SeeAlso(w) {
			assert.Contains(t, c.SeeAlso(other), w, "%s and %s", w, other)
		}
		for _, other := range c.Opposite(w) {
			assert.Contains(t, c.Opposite(other), w, "%s and %s", w, other)
		}
	}
}

func TestHashesAndByHash(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	hashes := c.Hashes()
	assert.Len(t, hashes, c.Len()-1, "homographs share one hash")

	homographs := c.ByHash(domain.NewWordHash("отзыв"))
	require.Len(t, homographs, 2)
	assert.Equal(t, "(посла)", homographs[0].Detail())
	assert.Equal(t, "(о книге)", homographs[1].Detail())
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	words := []domain.Word{domain.NewWord("торты", 1)}
	c := New(words)
	words[0] = domain.NewWord("банты", 1)

	assert.Equal(t, "торты", c.At(0).Text())

	out := c.Words()
	out[0] = domain.NewWord("банты", 1)
	assert.Equal(t, "торты", c.At(0).Text())
}

func TestEmptyCatalog(t *testing.T) {
	t.Parallel()

	c := New(nil)

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Hashes())
	assert.Empty(t, c.SeeAlso(domain.NewWord("торты", 1).WithGroup("x", false)))
}

func TestIndexOf(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	for i := range c.Len() {
		assert.Equal(t, i, c.IndexOf(c.At(i)))
	}
	assert.Equal(t, -1, c.IndexOf(domain.NewWord("щавель", 3)))
	assert.Equal(t, -1, c.IndexOf(domain.NewWord("отзыв", 3)), "detail is part of the entry")
}
