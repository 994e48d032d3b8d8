package model

import (
	"fmt"
	"time"

	"listo/internal/revive"
)

// Timestamp is a time.Time that serializes to the strict ISO-8601
// millisecond UTC form (2026-02-01T12:00:00.000Z). Values are truncated
// to millisecond precision at construction so that every timestamp
// round-trips losslessly through storage and export.
type Timestamp struct {
	time.Time
}

// At wraps t as a Timestamp, normalized to UTC millisecond precision.
func At(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// Now returns the current moment as a Timestamp.
func Now() Timestamp {
	return At(time.Now())
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(revive.Layout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("timestamp: not a JSON string: %s", b)
	}
	parsed, ok := revive.Time(string(b[1 : len(b)-1]))
	if !ok {
		return fmt.Errorf("timestamp: %s does not match %s", b, revive.Layout)
	}
	t.Time = parsed
	return nil
}
