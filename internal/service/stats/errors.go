package stats

import "errors"

var (
	// ErrNoEntries is returned by Next when no words are tracked.
	ErrNoEntries = errors.New("no words are tracked")

	// ErrStorage wraps a read or write failure of the backing store under
	// FaultPolicyFail.
	ErrStorage = errors.New("statistics storage failure")

	// ErrInvalidFaultPolicy is returned for an unknown fault policy name.
	ErrInvalidFaultPolicy = errors.New("invalid fault policy")
)
