package srs

import (
	"errors"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
)

// Common errors
var (
	ErrInvalidOutcome = domain.ErrInvalidOutcome
	ErrInvalidParams  = errors.New("invalid srs parameters")
)
