// Package revive turns storage-safe timestamp strings back into native
// time values. JSON has no date type, so persisted collections carry
// ISO-8601 millisecond UTC strings; this package recognizes them after
// decoding and nothing else.
package revive

import (
	"regexp"
	"time"
)

// Layout is the one serialized form a timestamp may take on disk.
const Layout = "2006-01-02T15:04:05.000Z"

// Anchored start-to-end so strings that merely mention a date are left alone.
var isoMillis = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

// Time reports whether s is exactly an ISO-8601 millisecond UTC
// timestamp, and returns the parsed instant when it is.
func Time(s string) (time.Time, bool) {
	if !isoMillis.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Value walks a decoded JSON tree and replaces every string matching
// the timestamp pattern with its time.Time value. All other nodes pass
// through unchanged; key sets, array order and length are preserved.
// The input is never mutated.
func Value(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if t, ok := Time(x); ok {
			return t
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Value(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Value(e)
		}
		return out
	default:
		return v
	}
}
