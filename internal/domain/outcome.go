package domain

import "fmt"

// Outcome represents the result of answering a quiz card.
type Outcome string

// Possible outcome values
const (
	OutcomeSolved Outcome = "solved"
	OutcomeFailed Outcome = "failed"
)

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	return o == OutcomeSolved || o == OutcomeFailed
}

// ParseOutcome converts a string into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
	}
	return o, nil
}
