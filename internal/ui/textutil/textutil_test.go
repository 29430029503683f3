package textutil

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"CH4", 10, "CH4"},
		{"CH4", 3, "CH4"},
		{"methane", 4, "met…"},
		{"methane", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	ms := Timestamp(now)
	if ms != "1700000000123" {
		t.Fatalf("Timestamp = %q", ms)
	}
	got, err := ParseTimestamp(ms)
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if !got.Equal(now) {
		t.Errorf("ParseTimestamp = %v, want %v", got, now)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ms := "1700000000000"
	want := time.UnixMilli(1700000000000).Format("2006-01-02 15:04:05")
	if got := FormatTimestamp(ms); got != want {
		t.Errorf("FormatTimestamp = %q, want %q", got, want)
	}
	if got := FormatTimestamp("soon"); got != InvalidDate {
		t.Errorf("FormatTimestamp invalid = %q", got)
	}
}

func TestShiftTimestamp(t *testing.T) {
	if got := ShiftTimestamp("1000", time.Hour); got != "3601000" {
		t.Errorf("ShiftTimestamp hour = %q", got)
	}
	if got := ShiftTimestamp("3601000", -time.Hour); got != "1000" {
		t.Errorf("ShiftTimestamp back = %q", got)
	}
	if got := ShiftTimestamp("x", time.Hour); got != "x" {
		t.Errorf("ShiftTimestamp invalid = %q", got)
	}
}
