package util

import (
	"testing"
	"time"
)

func TestParseNseTimestamp(t *testing.T) {
	t.Parallel()

	got, err := ParseNseTimestamp("21-Aug-2026 15:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 21 {
		t.Errorf("wrong date: %v", got)
	}
	if got.Hour() != 15 || got.Minute() != 30 {
		t.Errorf("wrong time of day: %v", got)
	}
	if _, offset := got.Zone(); offset != 5*3600+30*60 {
		t.Errorf("expected IST offset, got %d", offset)
	}

	if _, err := ParseNseTimestamp("2026-08-21T15:30:00Z"); err == nil {
		t.Error("expected error for a non NSE layout")
	}
}

func TestAtMarketClose(t *testing.T) {
	t.Parallel()

	// 10:00 UTC is 15:30 IST on the same calendar day.
	in := time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)
	got := AtMarketClose(in)

	if got.Hour() != 15 || got.Minute() != 30 || got.Second() != 0 {
		t.Errorf("expected 15:30:00, got %v", got)
	}
	if got.Day() != 21 {
		t.Errorf("expected same IST calendar day, got %v", got)
	}

	// Late evening UTC rolls into the next IST day before pinning.
	late := time.Date(2026, 8, 21, 23, 0, 0, 0, time.UTC)
	if got := AtMarketClose(late); got.Day() != 22 {
		t.Errorf("expected IST day 22, got %v", got)
	}
}

func TestMarketPhase(t *testing.T) {
	t.Parallel()

	// 2026-08-17 is a Monday.
	monday := func(hour, minute int) time.Time {
		return time.Date(2026, 8, 17, hour, minute, 0, 0, IstLocation)
	}

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"before pre-open", monday(8, 59), "closed"},
		{"pre-open start", monday(9, 0), "pre-open"},
		{"pre-open end", monday(9, 14), "pre-open"},
		{"open bell", monday(9, 15), "open"},
		{"midday", monday(12, 30), "open"},
		{"last trading minute", monday(15, 29), "open"},
		{"close bell", monday(15, 30), "closed"},
		{"evening", monday(20, 0), "closed"},
		{"saturday", time.Date(2026, 8, 22, 12, 0, 0, 0, IstLocation), "weekend"},
		{"sunday", time.Date(2026, 8, 23, 12, 0, 0, 0, IstLocation), "weekend"},
		{"utc instant converted first", time.Date(2026, 8, 17, 4, 0, 0, 0, time.UTC), "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarketPhase(tt.at); got != tt.want {
				t.Errorf("MarketPhase(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}
