package srs

import (
	"time"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
)

// Service defines the interface for SRS algorithm operations
type Service interface {
	// Answer computes the record after the word was answered with outcome.
	Answer(record Record, outcome domain.Outcome) (Record, error)

	// Shown computes the record after the word was presented at now.
	Shown(record Record, now time.Time) Record

	// ShouldRepeat reports whether the record is due at now.
	ShouldRepeat(record Record, now time.Time) bool
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// Answer implements the Service interface
func (s *defaultService) Answer(record Record, outcome domain.Outcome) (Record, error) {
	if !outcome.Valid() {
		return record, ErrInvalidOutcome
	}
	return calculateNextRecord(record, outcome), nil
}

// Shown implements the Service interface
func (s *defaultService) Shown(record Record, now time.Time) Record {
	return markShown(record, now)
}

// ShouldRepeat implements the Service interface
func (s *defaultService) ShouldRepeat(record Record, now time.Time) bool {
	return shouldRepeat(record, now, s.params)
}
