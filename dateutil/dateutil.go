// ABOUTME: Tolerant date parsing and formatting helpers
// ABOUTME: Guarantees a usable value for any input, never panics
package dateutil

import (
	"strings"
	"time"
)

// Epoch is the value DateSafely resolves unparseable input to, giving
// call sites a total order for sorting without nil checks.
var Epoch = time.Unix(0, 0).UTC()

// layouts tried in order after the strict RFC 3339 parse fails. The
// record store returns RFC 3339 timestamps, but legacy records and form
// inputs carry date-only and space-separated variants.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// FormatSafely formats a date value of unknown shape per layout,
// returning fallback for anything that cannot be interpreted as a date.
func FormatSafely(value any, layout, fallback string) string {
	t, ok := parse(value)
	if !ok {
		return fallback
	}
	return t.Format(layout)
}

// DateSafely resolves a date value of unknown shape to a time.Time,
// mapping every unparseable input exactly to the Unix epoch.
func DateSafely(value any) time.Time {
	t, ok := parse(value)
	if !ok {
		return Epoch
	}
	return t
}

func parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parseString(v)
	default:
		return time.Time{}, false
	}
}

func parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
