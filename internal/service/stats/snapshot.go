package stats

import (
	"encoding/json"
	"log/slog"

	"github.com/phrazzld/emphasis-trainer/internal/domain"
	"github.com/phrazzld/emphasis-trainer/internal/domain/srs"
)

// snapshot maps word hashes to their records.
type snapshot map[domain.WordHash]srs.Record

// equal reports whether a and b hold the same keys with equal records.
func (a snapshot) equal(b snapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for h, r := range a {
		other, ok := b[h]
		if !ok || !r.Equal(other) {
			return false
		}
	}
	return true
}

// merge returns a copy of base overlaid with top.
func merge(base, top snapshot) snapshot {
	out := make(snapshot, len(base)+len(top))
	for h, r := range base {
		out[h] = r
	}
	for h, r := range top {
		out[h] = r
	}
	return out
}

// encodeSnapshot writes the persisted layout: an object keyed by the decimal
// hash.
func encodeSnapshot(s snapshot) ([]byte, error) {
	out := make(map[string]srs.Record, len(s))
	for h, r := range s {
		out[h.String()] = r
	}
	return json.Marshal(out)
}

// decodeSnapshot reads the persisted layout. It never fails: an undecodable
// blob yields an empty snapshot and undecodable keys are skipped.
func decodeSnapshot(data []byte, logger *slog.Logger) snapshot {
	out := make(snapshot)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("persisted statistics are unreadable, starting empty",
			slog.String("error", err.Error()),
			slog.Int("bytes", len(data)))
		return out
	}

	for key, value := range raw {
		h, err := domain.ParseWordHash(key)
		if err != nil {
			logger.Debug("skipping persisted entry with invalid key", slog.String("key", key))
			continue
		}
		var r srs.Record
		_ = json.Unmarshal(value, &r)
		out[h] = r
	}
	return out
}
