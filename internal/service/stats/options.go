package stats

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/phrazzld/emphasis-trainer/internal/domain/srs"
	"github.com/phrazzld/emphasis-trainer/internal/events"
)

// DefaultKey is the storage key of the persisted snapshot.
const DefaultKey = "words-stats"

// FaultPolicy decides what happens when the store fails with anything other
// than a missing key.
type FaultPolicy int

const (
	// FaultPolicyFail returns the failure wrapped in ErrStorage. In-memory
	// state is kept and nothing is retried.
	FaultPolicyFail FaultPolicy = iota

	// FaultPolicyDegrade logs the failure and carries on in memory for that
	// call.
	FaultPolicyDegrade
)

// String returns the configuration name of the policy.
func (p FaultPolicy) String() string {
	switch p {
	case FaultPolicyFail:
		return "fail"
	case FaultPolicyDegrade:
		return "degrade"
	default:
		return fmt.Sprintf("FaultPolicy(%d)", int(p))
	}
}

// ParseFaultPolicy converts a configuration name into a FaultPolicy.
func ParseFaultPolicy(name string) (FaultPolicy, error) {
	switch name {
	case "fail":
		return FaultPolicyFail, nil
	case "degrade":
		return FaultPolicyDegrade, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFaultPolicy, name)
	}
}

// Option configures a Statistics engine.
type Option func(*Statistics)

// WithKey sets the storage key. Defaults to DefaultKey.
func WithKey(key string) Option {
	return func(s *Statistics) { s.key = key }
}

// WithFaultPolicy sets the storage fault policy. Defaults to FaultPolicyFail.
func WithFaultPolicy(p FaultPolicy) Option {
	return func(s *Statistics) { s.policy = p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Statistics) { s.now = now }
}

// WithRand sets the source of randomness used for selection.
func WithRand(rng *rand.Rand) Option {
	return func(s *Statistics) { s.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Statistics) { s.logger = logger }
}

// WithEmitter sets the emitter that receives events.TypeStatsSynced after
// every write.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(s *Statistics) { s.emitter = emitter }
}

// WithService replaces the default repetition schedule.
func WithService(service srs.Service) Option {
	return func(s *Statistics) { s.srs = service }
}
