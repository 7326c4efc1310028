package srs

import "fmt"

// Params defines the configurable parameters of the repetition schedule.
type Params struct {
	// RepetitionDays maps each level to the number of whole days after which
	// a word at that level is due again.
	RepetitionDays [LevelCount]int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero entries keep their defaults.
type ParamsConfig struct {
	RepetitionDays [LevelCount]int
}

// defaultRepetitionDays is the interval table for levels 0 through 7.
var defaultRepetitionDays = [LevelCount]int{1, 2, 3, 5, 10, 30, 60, 90}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{RepetitionDays: defaultRepetitionDays}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) (*Params, error) {
	params := NewDefaultParams()

	for i, days := range config.RepetitionDays {
		if days < 0 {
			return nil, fmt.Errorf("%w: level %d has %d days", ErrInvalidParams, i, days)
		}
		if days > 0 {
			params.RepetitionDays[i] = days
		}
	}

	// Intervals must not shrink as mastery grows.
	for i := 1; i < LevelCount; i++ {
		if params.RepetitionDays[i] < params.RepetitionDays[i-1] {
			return nil, fmt.Errorf(
				"%w: level %d interval %d is shorter than level %d interval %d",
				ErrInvalidParams, i, params.RepetitionDays[i], i-1, params.RepetitionDays[i-1],
			)
		}
	}

	return params, nil
}

// IntervalDays returns the repetition interval for level l.
func (p *Params) IntervalDays(l Level) int {
	return p.RepetitionDays[l.clamp()]
}
