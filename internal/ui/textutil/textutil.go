// Package textutil provides text helpers for TUI rendering: unicode-aware
// padding and truncation, and the millisecond timestamp strings the interval
// chooser works with.
package textutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// TimestampLayout is the display layout for timestamps (YYYY-MM-DD HH:mm:ss).
const TimestampLayout = "2006-01-02 15:04:05"

// InvalidDate is shown in place of a timestamp that cannot be parsed.
const InvalidDate = "Invalid date"

// Truncate shortens s to at most maxWidth terminal columns, ending in an
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Timestamp serializes t as Unix milliseconds in decimal.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseTimestamp reads a Unix millisecond string.
func ParseTimestamp(ms string) (time.Time, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(ms), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(n), nil
}

// FormatTimestamp renders a Unix millisecond string in local time using
// TimestampLayout, or InvalidDate.
func FormatTimestamp(ms string) string {
	t, err := ParseTimestamp(ms)
	if err != nil {
		return InvalidDate
	}
	return t.Format(TimestampLayout)
}

// ShiftTimestamp adds d to a Unix millisecond string. Unparseable input is
// returned unchanged.
func ShiftTimestamp(ms string, d time.Duration) string {
	t, err := ParseTimestamp(ms)
	if err != nil {
		return ms
	}
	return Timestamp(t.Add(d))
}
