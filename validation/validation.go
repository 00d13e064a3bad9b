// ABOUTME: Pre-submit form validation rules
// ABOUTME: Pure functions mapping field values to per-field error messages
package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/trellis-crm/trellis/dateutil"
)

// Violations maps a field name to its error message. An empty map means
// the form is valid. Clearing a field's error on the next edit is the
// caller's concern.
type Violations map[string]string

// Empty reports whether the form passed validation.
func (v Violations) Empty() bool { return len(v) == 0 }

// Required records a violation when value is empty after trimming.
func Required(v Violations, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v[field] = message
	}
}

// NonNegativeNumber records a violation unless value parses as a number
// greater than or equal to zero. Empty values are accepted; required-ness
// is a separate rule.
func NonNegativeNumber(v Violations, field, value, message string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 {
		v[field] = message
	}
}

// IntInRange records a violation unless value parses as an integer
// inside [min, max]. Empty values are accepted.
func IntInRange(v Violations, field, value string, min, max int, message string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < min || n > max {
		v[field] = message
	}
}

// WebsiteURL records a violation unless value parses as a URL with a
// host. A missing scheme is tolerated by prefixing https:// before
// parsing, so "example.com" passes. Empty values are accepted.
func WebsiteURL(v Violations, field, value, message string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if !strings.Contains(value, "://") {
		value = "https://" + value
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || strings.ContainsAny(u.Host, " !") {
		v[field] = message
	}
}

// DateStrictlyAfter records a violation on laterField unless later is
// strictly after earlier. Runs only when both values parse as dates.
func DateStrictlyAfter(v Violations, laterField, earlier, later, message string) {
	earlierT := dateutil.DateSafely(earlier)
	laterT := dateutil.DateSafely(later)
	if earlierT.Equal(dateutil.Epoch) || laterT.Equal(dateutil.Epoch) {
		return
	}
	if !laterT.After(earlierT) {
		v[laterField] = message
	}
}
