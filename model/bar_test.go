package model

import (
	"testing"
	"time"
)

func TestBarValid(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		bar  Bar
		want bool
	}{
		{
			name: "well formed bar",
			bar:  Bar{Ts: ts, Open: 100, High: 105, Low: 98, Close: 103, Volume: 5000},
			want: true,
		},
		{
			name: "flat snapshot bar",
			bar:  Bar{Ts: ts, Open: 412.5, High: 412.5, Low: 412.5, Close: 412.5, Volume: 0},
			want: true,
		},
		{
			name: "zero open",
			bar:  Bar{Ts: ts, Open: 0, High: 105, Low: 98, Close: 103, Volume: 5000},
			want: false,
		},
		{
			name: "negative close",
			bar:  Bar{Ts: ts, Open: 100, High: 105, Low: 98, Close: -1, Volume: 5000},
			want: false,
		},
		{
			name: "negative volume",
			bar:  Bar{Ts: ts, Open: 100, High: 105, Low: 98, Close: 103, Volume: -1},
			want: false,
		},
		{
			name: "low above open",
			bar:  Bar{Ts: ts, Open: 100, High: 105, Low: 101, Close: 103, Volume: 5000},
			want: false,
		},
		{
			name: "high below close",
			bar:  Bar{Ts: ts, Open: 100, High: 102, Low: 98, Close: 103, Volume: 5000},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bar.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeriesNormalize(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}

	in := Series{
		{Ts: day(12), Close: 2},
		{Ts: day(10), Close: 1},
		{Ts: day(12), Close: 3}, // duplicate timestamp, later value wins
		{Ts: day(11), Close: 4},
	}

	got := in.Normalize()

	if len(got) != 3 {
		t.Fatalf("expected 3 bars after dedupe, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Ts.Before(got[i].Ts) {
			t.Errorf("timestamps not strictly increasing at index %d: %v >= %v", i, got[i-1].Ts, got[i].Ts)
		}
	}
	if got[2].Close != 3 {
		t.Errorf("expected last duplicate to win, got close %v", got[2].Close)
	}

	// The input slice must not be reordered.
	if !in[0].Ts.Equal(day(12)) || in[0].Close != 2 {
		t.Error("Normalize mutated its receiver")
	}
}

func TestSeriesNormalize_ShortSeries(t *testing.T) {
	t.Parallel()

	if got := (Series{}).Normalize(); len(got) != 0 {
		t.Errorf("expected empty series, got %d bars", len(got))
	}

	single := Series{{Ts: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), Close: 1}}
	if got := single.Normalize(); len(got) != 1 {
		t.Errorf("expected single bar passthrough, got %d bars", len(got))
	}
}

func TestSeriesDelta(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("two closes", func(t *testing.T) {
		s := Series{{Ts: day(10), Close: 100}, {Ts: day(11), Close: 110}}
		change, percent, ok := s.Delta()
		if !ok {
			t.Fatal("expected ok for a two bar series")
		}
		if change != 10 || percent != 10 {
			t.Errorf("got change=%v percent=%v, want 10/10", change, percent)
		}
	})

	t.Run("single bar", func(t *testing.T) {
		s := Series{{Ts: day(10), Close: 100}}
		if _, _, ok := s.Delta(); ok {
			t.Error("expected ok=false for a single bar")
		}
	})

	t.Run("empty series", func(t *testing.T) {
		if _, _, ok := (Series{}).Delta(); ok {
			t.Error("expected ok=false for an empty series")
		}
	})

	t.Run("zero previous close", func(t *testing.T) {
		s := Series{{Ts: day(10), Close: 0}, {Ts: day(11), Close: 110}}
		if _, _, ok := s.Delta(); ok {
			t.Error("expected ok=false when the previous close is zero")
		}
	})
}
