// ABOUTME: Tests for tolerant date parsing and formatting
// ABOUTME: Covers valid inputs, garbage inputs, and the epoch guarantee
package dateutil

import (
	"testing"
	"time"
)

func TestFormatSafelyValidInputs(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"rfc3339 string", "2024-01-10T09:30:00Z", "Jan 10, 2024"},
		{"date only", "2024-01-10", "Jan 10, 2024"},
		{"space separated", "2024-01-10 09:30:00", "Jan 10, 2024"},
		{"time.Time", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Jan 10, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSafely(tt.value, "Jan 2, 2006", "Invalid date")
			if got != tt.want {
				t.Errorf("FormatSafely(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatSafelyFallback(t *testing.T) {
	values := []any{nil, "", "not a date", "2024-13-45", 42, struct{}{}, (*time.Time)(nil)}

	for _, v := range values {
		if got := FormatSafely(v, "Jan 2, 2006", "Invalid date"); got != "Invalid date" {
			t.Errorf("FormatSafely(%v) = %q, want fallback", v, got)
		}
	}
}

func TestDateSafelyUnparseableMapsToEpoch(t *testing.T) {
	values := []any{nil, "", "garbage", 3.14, time.Time{}}

	for _, v := range values {
		got := DateSafely(v)
		if !got.Equal(Epoch) {
			t.Errorf("DateSafely(%v) = %v, want epoch", v, got)
		}
	}
}

func TestDateSafelyOrdering(t *testing.T) {
	older := DateSafely("2023-06-01")
	newer := DateSafely("2024-06-01")
	missing := DateSafely(nil)

	if !older.Before(newer) {
		t.Error("expected 2023 date to sort before 2024 date")
	}
	if !missing.Before(older) {
		t.Error("expected unparseable date to sort before real dates")
	}
}

func TestDateSafelyPassthrough(t *testing.T) {
	now := time.Now()
	if got := DateSafely(now); !got.Equal(now) {
		t.Errorf("DateSafely(time.Time) = %v, want %v", got, now)
	}
	if got := DateSafely(&now); !got.Equal(now) {
		t.Errorf("DateSafely(*time.Time) = %v, want %v", got, now)
	}
}
