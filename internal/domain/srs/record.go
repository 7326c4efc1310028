package srs

import (
	"encoding/json"
	"time"
)

// Record is the progress state of one word: its mastery level and when it
// was last shown.
type Record struct {
	LastOccurred *time.Time
	Level        Level
}

// NewRecord returns the state of a word that has never been shown.
func NewRecord() Record {
	return Record{Level: MinLevel}
}

// Equal reports whether r and other describe the same state. Timestamps are
// compared as instants, so a value that went through JSON compares equal to
// the original.
func (r Record) Equal(other Record) bool {
	if r.Level != other.Level {
		return false
	}
	if r.LastOccurred == nil || other.LastOccurred == nil {
		return r.LastOccurred == nil && other.LastOccurred == nil
	}
	return r.LastOccurred.Equal(*other.LastOccurred)
}

// ShouldRepeat reports whether the word is due under the default schedule.
func (r Record) ShouldRepeat(now time.Time) bool {
	return shouldRepeat(r, now, NewDefaultParams())
}

// recordJSON is the persisted layout of a Record.
type recordJSON struct {
	LastOccurred *time.Time `json:"last_occurred"`
	Level        Level      `json:"level"`
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{Level: r.Level}
	if r.LastOccurred != nil {
		t := r.LastOccurred.UTC()
		out.LastOccurred = &t
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. It never fails: every field
// that is missing or cannot be decoded keeps its default, and a level
// outside the valid range is clamped.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = NewRecord()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	if raw, ok := fields["last_occurred"]; ok {
		var t *time.Time
		if err := json.Unmarshal(raw, &t); err == nil && t != nil {
			r.LastOccurred = t
		}
	}

	if raw, ok := fields["level"]; ok {
		var level int
		if err := json.Unmarshal(raw, &level); err == nil {
			r.Level = Level(level).clamp()
		}
	}

	return nil
}
