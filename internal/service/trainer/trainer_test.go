package trainer

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/phrazzld/emphasis-trainer/internal/catalog"
	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/platform/memory"
	"github.com/phrazzld/emphasis-trainer/internal/service/stats"
	"github.com/phrazzld/emphasis-trainer/internal/wordbase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler returns a fixed sequence of hashes and records answers.
type fakeScheduler struct {
	next      []domain.WordHash
	nextErr   error
	passedErr error
	answers   []domain.Outcome
}

func (s *fakeScheduler) Next() (domain.WordHash, error) {
	if s.nextErr != nil {
		return 0, s.nextErr
	}
	h := s.next[0]
	s.next = s.next[1:]
	return h, nil
}

func (s *fakeScheduler) Passed(_ context.Context, _ domain.WordHash, outcome domain.Outcome) error {
	s.answers = append(s.answers, outcome)
	return s.passedErr
}

func newTestTrainer(t *testing.T, text string) (*Trainer, *stats.Statistics) {
	t.Helper()

	res := wordbase.Parse(text)
	require.Empty(t, res.Errors)
	cat := catalog.New(res.Words)

	st, err := stats.New(context.Background(), cat.Hashes(), memory.NewKVStore(),
		stats.WithRand(rand.New(rand.NewPCG(3, 5))))
	require.NoError(t, err)

	return New(cat, st, WithRand(rand.New(rand.NewPCG(13, 17)))), st
}

func TestNextWithEmptyCatalog(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTrainer(t, "// nothing here\n")

	_, err := tr.Next()
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestNextNeverRepeatsWord(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
	}{
		{name: "default database", text: wordbase.DefaultText()},
		{name: "homographs only", text: "зАмок (дворец)\nзамОк (на двери)\n"},
		{name: "homographs and another word", text: "зАмок (дворец)\nзамОк (на двери)\nтОрты\n"},
		{name: "two words", text: "тОрты\nбАнты\n"},
		{name: "homographs differing in case", text: "отзЫв (посла)\nОтзыв (о книге)\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr, _ := newTestTrainer(t, tc.text)

			seen := make(map[int]bool)
			prev, err := tr.Next()
			require.NoError(t, err)
			for range 5000 {
				w, err := tr.Next()
				require.NoError(t, err)
				require.False(t, w.Equal(prev), "repeated %s", w)
				seen[tr.Catalog().IndexOf(w)] = true
				prev = w
			}
			assert.Len(t, seen, tr.Catalog().Len(), "every entry is asked")
		})
	}
}

func TestNextWithSingleWord(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTrainer(t, "щавЕль\n")

	for range 5 {
		w, err := tr.Next()
		require.NoError(t, err)
		assert.Equal(t, "щавЕль", w.String())
	}
}

func TestNextWithDuplicatedLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		text  string
		words int
	}{
		{name: "one line twice", text: "слОво\nслОво\n", words: 1},
		{name: "duplicate beside a homograph", text: "зАмок (дворец)\nзАмок (дворец)\nзамОк (на двери)\n", words: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr, _ := newTestTrainer(t, tc.text)

			seen := make(map[string]bool)
			var prev domain.Word
			for i := range 3000 {
				w, err := tr.Next()
				require.NoError(t, err, "call %d", i)
				if tc.words > 1 && i > 0 {
					require.False(t, w.Equal(prev), "repeated %s", w)
				}
				seen[w.String()] = true
				prev = w
			}
			assert.Len(t, seen, tc.words)
		})
	}
}

func TestNextSchedulerErrors(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]domain.Word{domain.NewWord("торты", 1)})

	t.Run("no entries maps to no words", func(t *testing.T) {
		t.Parallel()
		tr := New(cat, &fakeScheduler{nextErr: stats.ErrNoEntries})
		_, err := tr.Next()
		assert.ErrorIs(t, err, ErrNoWords)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		tr := New(cat, &fakeScheduler{nextErr: boom})
		_, err := tr.Next()
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrNoWords)
	})

	t.Run("unknown hash", func(t *testing.T) {
		t.Parallel()
		tr := New(cat, &fakeScheduler{next: []domain.WordHash{42}})
		_, err := tr.Next()
		assert.ErrorIs(t, err, ErrNoWords)
	})
}

func TestAnswer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tr, st := newTestTrainer(t, "тОрты\nбАнты\n")

	w, err := tr.Next()
	require.NoError(t, err)

	outcome, err := tr.Answer(ctx, w, w.Emphasis())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSolved, outcome)
	r, ok := st.Record(w.Hash())
	require.True(t, ok)
	assert.EqualValues(t, 1, r.Level)

	wrong := w.Variants()[len(w.Variants())-1].Emphasis
	require.NotEqual(t, w.Emphasis(), wrong)
	outcome, err = tr.Answer(ctx, w, wrong)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, outcome)
	r, _ = st.Record(w.Hash())
	assert.EqualValues(t, 0, r.Level)
}

func TestAnswerReturnsOutcomeOnRecordFailure(t *testing.T) {
	t.Parallel()

	w := domain.NewWord("торты", 1)
	boom := errors.New("boom")
	sched := &fakeScheduler{passedErr: boom}
	tr := New(catalog.New([]domain.Word{w}), sched)

	outcome, err := tr.Answer(context.Background(), w, 1)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.OutcomeSolved, outcome)
	assert.Equal(t, []domain.Outcome{domain.OutcomeSolved}, sched.answers)
}

func TestRelations(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTrainer(t, `
водопровОд : ПРОВОД
газопровОд : ПРОВОД
прОвод ! ПРОВОД
тОрты
`)
	words := tr.Catalog().Words()

	assert.Equal(t, []domain.Word{words[1]}, tr.SeeAlso(words[0]))
	assert.Equal(t, []domain.Word{words[2]}, tr.Opposite(words[0]))
	assert.Equal(t, []domain.Word{words[0], words[1]}, tr.Opposite(words[2]))
	assert.Empty(t, tr.SeeAlso(words[3]))
	assert.Empty(t, tr.Opposite(words[3]))
}

func TestNewPanicsOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(nil, &fakeScheduler{}) })
	assert.Panics(t, func() { New(catalog.New(nil), nil) })
}
