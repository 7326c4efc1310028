package stats

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/events"
	"github.com/phrazzld/emphasis-trainer/internal/platform/memory"
	"github.com/stretchr/testify/require"
)

var (
	hashTorty   = domain.NewWordHash("торты")
	hashBanty   = domain.NewWordHash("банты")
	hashShchav  = domain.NewWordHash("щавель")
	hashKvartal = domain.NewWordHash("квартал")
)

// faultyStore wraps the memory store and fails on demand.
type faultyStore struct {
	*memory.KVStore
	mu     sync.Mutex
	getErr error
	setErr error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{KVStore: memory.NewKVStore()}
}

func (s *faultyStore) failGet(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

func (s *faultyStore) failSet(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

func (s *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	err := s.getErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.KVStore.Get(ctx, key)
}

func (s *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	err := s.setErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.KVStore.Set(ctx, key, value)
}

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingEmitter keeps every emitted event.
type recordingEmitter struct {
	events []*events.Event
}

func (e *recordingEmitter) EmitEvent(_ context.Context, event *events.Event) error {
	e.events = append(e.events, event)
	return nil
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func newTestStatistics(
	t *testing.T,
	hashes []domain.WordHash,
	kv *faultyStore,
	clock *fakeClock,
	opts ...Option,
) *Statistics {
	t.Helper()

	all := append([]Option{WithClock(clock.Now), WithRand(seededRand())}, opts...)
	s, err := New(context.Background(), hashes, kv, all...)
	require.NoError(t, err)
	return s
}
