// Package slug derives URL-safe checklist identifiers from titles.
package slug

import (
	"strconv"
	"strings"
	"time"
)

// Make builds a slug from a title: lower-cased, runs of anything
// outside [a-z0-9] collapsed to single dashes, trimmed, then suffixed
// with the creation instant in base36 millisecond resolution. Two lists
// with the same title created at different moments get different slugs.
func Make(title string, now time.Time) string {
	base := normalize(title)
	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// Unique is Make plus an explicit collision check: when the candidate
// is already taken (two creations inside the same millisecond), a
// counter is appended until a free slug is found.
func Unique(title string, now time.Time, taken func(string) bool) string {
	s := Make(title, now)
	if taken == nil || !taken(s) {
		return s
	}
	for i := 2; ; i++ {
		candidate := s + "-" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}

func normalize(title string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
