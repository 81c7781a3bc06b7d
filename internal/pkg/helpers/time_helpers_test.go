package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("15s", time.Minute); got != 15*time.Second {
		t.Fatalf("ParseDuration = %v, want 15s", got)
	}
	if got := ParseDuration("soon", time.Minute); got != time.Minute {
		t.Fatalf("ParseDuration fallback = %v, want 1m", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2005-04-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Location() != time.UTC {
		t.Fatalf("location = %v, want UTC", d.Location())
	}
	if got := FormatDate(d); got != "2005-04-01" {
		t.Fatalf("FormatDate = %q", got)
	}
	if _, err := ParseDate("01/04/2005"); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestFormatTimestampUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 5, 1, 15, 4, 5, 123000000, loc)
	if got, want := FormatTimestamp(ts), "2024-05-01T12:04:05.123Z"; got != want {
		t.Fatalf("FormatTimestamp = %q, want %q", got, want)
	}
}
