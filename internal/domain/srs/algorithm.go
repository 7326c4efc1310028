package srs

import (
	"time"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
)

const day = 24 * time.Hour

// calculateNextLevel moves the level one step in the direction of the
// outcome, saturating at the bounds.
func calculateNextLevel(level Level, outcome domain.Outcome) Level {
	if outcome == domain.OutcomeSolved {
		return level.Promote()
	}
	return level.Demote()
}

// shouldRepeat reports whether a record is due for another look.
//
// A record is due when it has been shown before, that moment is not in the
// future relative to now, and the number of whole days since then exceeds
// the interval of its level. Records never shown are not due: they are new
// rather than forgotten.
func shouldRepeat(r Record, now time.Time, params *Params) bool {
	if r.LastOccurred == nil {
		return false
	}
	last := *r.LastOccurred
	if last.After(now) {
		return false
	}
	elapsedDays := int(now.Sub(last) / day)
	return elapsedDays > params.IntervalDays(r.Level)
}

// calculateNextRecord returns the record after an answer. The input is not
// modified.
func calculateNextRecord(r Record, outcome domain.Outcome) Record {
	next := r
	next.Level = calculateNextLevel(r.Level, outcome)
	return next
}

// markShown returns the record stamped as shown at now.
func markShown(r Record, now time.Time) Record {
	next := r
	t := now
	next.LastOccurred = &t
	return next
}
