package srs

// Level is a mastery level. Words start at MinLevel and move one step per
// answer, never leaving [MinLevel, MaxLevel].
type Level int

// Level bounds
const (
	MinLevel   Level = 0
	MaxLevel   Level = 7
	LevelCount       = int(MaxLevel) + 1
)

// Promote returns the level after a correct answer.
func (l Level) Promote() Level {
	if l >= MaxLevel {
		return MaxLevel
	}
	return l.clamp() + 1
}

// Demote returns the level after a wrong answer.
func (l Level) Demote() Level {
	if l <= MinLevel {
		return MinLevel
	}
	return l.clamp() - 1
}

// Valid reports whether l lies within [MinLevel, MaxLevel].
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// RepetitionDays returns the default repetition interval for l in days.
func (l Level) RepetitionDays() int {
	return defaultRepetitionDays[l.clamp()]
}

func (l Level) clamp() Level {
	switch {
	case l < MinLevel:
		return MinLevel
	case l > MaxLevel:
		return MaxLevel
	default:
		return l
	}
}
