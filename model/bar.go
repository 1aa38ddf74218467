package model

import (
	"sort"
	"time"
)

// Bar is one OHLCV candle. Timestamps are normalized to Asia/Kolkata
// before a bar leaves the client layer.
type Bar struct {
	Ts     time.Time `json:"ts"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Valid reports whether the bar satisfies the OHLC sanity bounds: positive
// prices, non-negative volume, low/high enclosing open and close.
func (b Bar) Valid() bool {
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return false
	}
	if b.Volume < 0 {
		return false
	}
	return b.Low <= min(b.Open, b.Close) && max(b.Open, b.Close) <= b.High
}

// Series is a time-ordered list of bars. A delivered series is never
// empty; timestamps strictly increase and are unique.
type Series []Bar

func (s Series) Last() (Bar, bool) {
	if len(s) == 0 {
		return Bar{}, false
	}
	return s[len(s)-1], true
}

func (s Series) Prev() (Bar, bool) {
	if len(s) < 2 {
		return Bar{}, false
	}
	return s[len(s)-2], true
}

// Delta returns the absolute and percent change between the last two
// bars. ok is false when the series is too short to compare, which is how
// single-snapshot results suppress misleading change figures.
func (s Series) Delta() (change float64, percent float64, ok bool) {
	last, hasLast := s.Last()
	prev, hasPrev := s.Prev()
	if !hasLast || !hasPrev || prev.Close == 0 {
		return 0, 0, false
	}
	change = last.Close - prev.Close
	percent = change / prev.Close * 100
	return change, percent, true
}

// Normalize sorts ascending by timestamp and collapses duplicates, keeping
// the last bar seen for each timestamp.
func (s Series) Normalize() Series {
	if len(s) < 2 {
		return s
	}

	out := make(Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ts.Before(out[j].Ts)
	})

	deduped := out[:0]
	for _, bar := range out {
		if n := len(deduped); n > 0 && deduped[n-1].Ts.Equal(bar.Ts) {
			deduped[n-1] = bar
			continue
		}
		deduped = append(deduped, bar)
	}
	return deduped
}
