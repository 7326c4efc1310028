package trainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/phrazzld/emphasis-trainer/internal/catalog"
	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/platform/logger"
	"github.com/phrazzld/emphasis-trainer/internal/service/stats"
)

// Scheduler picks word hashes and records answers. *stats.Statistics
// implements it.
type Scheduler interface {
	Next() (domain.WordHash, error)
	Passed(ctx context.Context, hash domain.WordHash, outcome domain.Outcome) error
}

var _ Scheduler = (*stats.Statistics)(nil)

// Option configures a Trainer.
type Option func(*Trainer)

// WithRand sets the source used to choose among words sharing a hash.
func WithRand(rng *rand.Rand) Option {
	return func(t *Trainer) { t.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trainer) { t.logger = logger }
}

// Trainer is not safe for concurrent use.
type Trainer struct {
	catalog   *catalog.Catalog
	scheduler Scheduler
	rng       *rand.Rand
	logger    *slog.Logger

	previous    domain.Word
	hasPrevious bool
}

// New creates a trainer over cat. The scheduler must track the hashes of
// cat's words.
func New(cat *catalog.Catalog, scheduler Scheduler, opts ...Option) *Trainer {
	if cat == nil {
		panic("catalog cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}

	t := &Trainer{
		catalog:   cat,
		scheduler: scheduler,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	t.logger = t.logger.With(slog.String("component", "trainer"))
	return t
}

// Catalog returns the catalog the trainer draws from.
func (t *Trainer) Catalog() *catalog.Catalog {
	return t.catalog
}

// Next returns the word to ask about. Homographs share a hash, so the
// scheduler picks a hash and the word is chosen among its entries, skipping
// the previous word whenever a different entry exists.
func (t *Trainer) Next() (domain.Word, error) {
	if t.catalog.Len() == 0 {
		return domain.Word{}, ErrNoWords
	}

	hash, err := t.scheduler.Next()
	if err != nil {
		if errors.Is(err, stats.ErrNoEntries) {
			return domain.Word{}, ErrNoWords
		}
		return domain.Word{}, fmt.Errorf("failed to select next word: %w", err)
	}

	candidates := t.catalog.ByHash(hash)
	if t.hasPrevious && len(candidates) > 1 {
		var filtered []domain.Word
		for _, w := range candidates {
			if !w.Equal(t.previous) {
				filtered = append(filtered, w)
			}
		}
		// A line duplicated verbatim leaves nothing else to ask.
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	if len(candidates) == 0 {
		return domain.Word{}, fmt.Errorf("%w: hash %s is not in the catalog", ErrNoWords, hash)
	}

	w := candidates[t.rng.IntN(len(candidates))]
	t.previous = w
	t.hasPrevious = true
	return w, nil
}

// SeeAlso returns the other words illustrating the same side of w's rule.
func (t *Trainer) SeeAlso(w domain.Word) []domain.Word {
	return t.catalog.SeeAlso(w)
}

// Opposite returns the counterexamples of w's rule.
func (t *Trainer) Opposite(w domain.Word) []domain.Word {
	return t.catalog.Opposite(w)
}

// Passed records the outcome of asking about w.
func (t *Trainer) Passed(ctx context.Context, w domain.Word, outcome domain.Outcome) error {
	return t.scheduler.Passed(ctx, w.Hash(), outcome)
}

// Answer grades a chosen emphasis position for w, records the outcome and
// returns it. The outcome is returned even when recording fails.
func (t *Trainer) Answer(ctx context.Context, w domain.Word, emphasis int) (domain.Outcome, error) {
	log := logger.FromContextOrDefault(ctx, t.logger)

	outcome := w.Evaluate(emphasis)
	log.Debug("answer graded",
		slog.String("word", w.Text()),
		slog.Int("expected", w.Emphasis()),
		slog.Int("chosen", emphasis),
		slog.String("outcome", string(outcome)))

	if err := t.Passed(ctx, w, outcome); err != nil {
		return outcome, err
	}
	return outcome, nil
}
