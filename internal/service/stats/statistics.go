package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/domain/srs"
	"github.com/phrazzld/emphasis-trainer/internal/events"
	"github.com/phrazzld/emphasis-trainer/internal/platform/logger"
	"github.com/phrazzld/emphasis-trainer/internal/store"
)

// Statistics tracks one record per word hash and persists them through a
// store.KVStore. It is not safe for concurrent use.
type Statistics struct {
	store   store.KVStore
	srs     srs.Service
	key     string
	policy  FaultPolicy
	now     func() time.Time
	rng     *rand.Rand
	logger  *slog.Logger
	emitter events.EventEmitter

	// tracked holds the seeded hashes in seed order. Only these are
	// selected; records may also hold entries persisted by other instances.
	tracked   []domain.WordHash
	isTracked map[domain.WordHash]struct{}
	records   snapshot

	previous    domain.WordHash
	hasPrevious bool
}

// New tracks every distinct hash, seeding a default record for each one kv
// does not already hold, and synchronizes with kv. Under FaultPolicyFail a
// storage failure during construction is returned wrapped in ErrStorage.
func New(ctx context.Context, hashes []domain.WordHash, kv store.KVStore, opts ...Option) (*Statistics, error) {
	if kv == nil {
		panic("kv cannot be nil")
	}

	s := &Statistics{
		store:     kv,
		srs:       srs.NewDefaultService(),
		key:       DefaultKey,
		policy:    FaultPolicyFail,
		now:       time.Now,
		emitter:   events.NopEmitter{},
		isTracked: make(map[domain.WordHash]struct{}, len(hashes)),
		records:   make(snapshot, len(hashes)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With(slog.String("component", "stats"))

	// Seeds only fill gaps: progress persisted by an earlier run is adopted
	// instead of being overwritten by the sync below.
	persisted, err := s.load(ctx, s.logger)
	if err != nil {
		if err := s.fault(ctx, s.logger, "read", err); err != nil {
			return nil, err
		}
		persisted = make(snapshot)
	}

	for _, h := range hashes {
		if _, ok := s.isTracked[h]; ok {
			continue
		}
		s.isTracked[h] = struct{}{}
		s.tracked = append(s.tracked, h)
		if r, ok := persisted[h]; ok {
			s.records[h] = r
		} else {
			s.records[h] = srs.NewRecord()
		}
	}

	if err := s.Sync(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("statistics loaded",
		slog.Int("tracked", len(s.tracked)),
		slog.Int("persisted", len(s.records)),
		slog.String("key", s.key),
		slog.String("fault_policy", s.policy.String()))
	return s, nil
}

// Len returns the number of tracked hashes.
func (s *Statistics) Len() int {
	return len(s.tracked)
}

// Record returns the record of a tracked hash.
func (s *Statistics) Record(hash domain.WordHash) (srs.Record, bool) {
	if _, ok := s.isTracked[hash]; !ok {
		return srs.Record{}, false
	}
	return s.records[hash], true
}

// Levels counts tracked words per mastery level.
func (s *Statistics) Levels() [srs.LevelCount]int {
	var counts [srs.LevelCount]int
	for _, h := range s.tracked {
		counts[s.records[h].Level]++
	}
	return counts
}

// Due counts tracked words whose repetition interval has passed.
func (s *Statistics) Due() int {
	now := s.now()
	due := 0
	for _, h := range s.tracked {
		if s.srs.ShouldRepeat(s.records[h], now) {
			due++
		}
	}
	return due
}

// Next picks the hash to ask about and stamps it as shown now. Words that
// are due are preferred; otherwise the pick is uniform. With two or more
// tracked hashes the previous pick is never repeated.
func (s *Statistics) Next() (domain.WordHash, error) {
	if len(s.tracked) == 0 {
		return 0, ErrNoEntries
	}

	now := s.now()
	h := s.pick(now)

	s.records[h] = s.srs.Shown(s.records[h], now)
	s.previous = h
	s.hasPrevious = true
	return h, nil
}

func (s *Statistics) pick(now time.Time) domain.WordHash {
	excludePrevious := s.hasPrevious && len(s.tracked) > 1

	var due, rest []domain.WordHash
	for _, h := range s.tracked {
		if excludePrevious && h == s.previous {
			continue
		}
		if s.srs.ShouldRepeat(s.records[h], now) {
			due = append(due, h)
		} else {
			rest = append(rest, h)
		}
	}

	if len(due) > 0 {
		return due[s.rng.IntN(len(due))]
	}
	return rest[s.rng.IntN(len(rest))]
}

// Passed records an answer: a solved word is promoted, a failed one
// demoted. The change is then synchronized. Hashes that are not tracked are
// ignored.
func (s *Statistics) Passed(ctx context.Context, hash domain.WordHash, outcome domain.Outcome) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, ok := s.isTracked[hash]; !ok {
		log.Debug("ignoring answer for untracked word", slog.String("hash", hash.String()))
		return nil
	}

	before := s.records[hash]
	after, err := s.srs.Answer(before, outcome)
	if err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}
	s.records[hash] = after

	log.Debug("answer recorded",
		slog.String("hash", hash.String()),
		slog.String("outcome", string(outcome)),
		slog.Int("level_before", int(before.Level)),
		slog.Int("level_after", int(after.Level)))

	return s.Sync(ctx)
}

// Sync reads the persisted snapshot and, unless it already matches memory,
// writes the persisted entries overlaid with the in-memory ones and adopts
// the result.
func (s *Statistics) Sync(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	persisted, err := s.load(ctx, log)
	if err != nil {
		return s.fault(ctx, log, "read", err)
	}

	if persisted.equal(s.records) {
		log.Debug("statistics already in sync", slog.Int("entries", len(persisted)))
		return nil
	}

	merged := merge(persisted, s.records)
	data, err := encodeSnapshot(merged)
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}

	if err := s.store.Set(ctx, s.key, data); err != nil {
		return s.fault(ctx, log, "write", err)
	}
	s.records = merged

	log.Debug("statistics written",
		slog.Int("entries", len(merged)),
		slog.Int("bytes", len(data)))
	s.emitSynced(ctx, log, len(merged), len(data))
	return nil
}

func (s *Statistics) load(ctx context.Context, log *slog.Logger) (snapshot, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return make(snapshot), nil
		}
		return nil, err
	}
	return decodeSnapshot(data, log), nil
}

func (s *Statistics) fault(ctx context.Context, log *slog.Logger, op string, err error) error {
	if s.policy == FaultPolicyDegrade {
		log.ErrorContext(ctx, "statistics storage failed, continuing in memory",
			slog.String("operation", op),
			slog.String("key", s.key),
			slog.String("error", err.Error()))
		return nil
	}
	return fmt.Errorf("%w: %s %q: %w", ErrStorage, op, s.key, err)
}

func (s *Statistics) emitSynced(ctx context.Context, log *slog.Logger, entries, size int) {
	event, err := events.NewEvent(events.TypeStatsSynced, events.StatsSyncedPayload{
		Key:     s.key,
		Entries: entries,
		Bytes:   size,
	})
	if err != nil {
		log.Warn("failed to create sync event", slog.String("error", err.Error()))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit sync event", slog.String("error", err.Error()))
	}
}
