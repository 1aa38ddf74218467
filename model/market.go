package model

import (
	"fmt"
	"slices"
	"time"
)

// --- PERIOD / INTERVAL ---

// Period is the lookback window of a history request.
type Period string

const (
	Period1d  Period = "1d"
	Period5d  Period = "5d"
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
	Period2y  Period = "2y"
)

// Interval is the bar granularity of a history request.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval1h  Interval = "1h"
	Interval1d  Interval = "1d"
)

var (
	Periods   = []Period{Period1d, Period5d, Period1mo, Period3mo, Period6mo, Period1y, Period2y}
	Intervals = []Interval{Interval1m, Interval5m, Interval15m, Interval1h, Interval1d}
)

func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !slices.Contains(Periods, p) {
		return "", fmt.Errorf("unknown period %q", s)
	}
	return p, nil
}

func ParseInterval(s string) (Interval, error) {
	i := Interval(s)
	if !slices.Contains(Intervals, i) {
		return "", fmt.Errorf("unknown interval %q", s)
	}
	return i, nil
}

// Intraday reports sub-daily granularity.
func (i Interval) Intraday() bool {
	return i != Interval1d
}

// maxPeriodFor caps how far back each granularity can reach upstream.
var maxPeriodFor = map[Interval]Period{
	Interval1m:  Period5d,
	Interval5m:  Period1mo,
	Interval15m: Period1mo,
	Interval1h:  Period2y,
	Interval1d:  Period2y,
}

// ClampPeriod degrades an unsupported period/interval pairing to the
// nearest window the granularity can serve, so odd combinations fetch a
// shorter series instead of failing outright.
func ClampPeriod(p Period, i Interval) Period {
	limit, ok := maxPeriodFor[i]
	if !ok {
		return p
	}
	if slices.Index(Periods, p) > slices.Index(Periods, limit) {
		return limit
	}
	return p
}

// --- FETCH REQUEST ---

// FetchRequest identifies one series fetch. Symbol is expected to be
// normalized (util.NormalizeSymbol) before the request reaches a client.
type FetchRequest struct {
	Symbol   string   `json:"symbol"`
	Period   Period   `json:"period"`
	Interval Interval `json:"interval"`
}

// CacheKey spans symbol, period and interval so a short window can never
// be served where a longer one was asked for.
func (r FetchRequest) CacheKey() string {
	return r.Symbol + "|" + string(r.Period) + "|" + string(r.Interval)
}

// --- QUOTE / SUMMARY ---

// Quote is the dashboard row for one symbol. Change fields are only
// populated when two closes were available to compare.
type Quote struct {
	Symbol        string    `json:"symbol" example:"RELIANCE.NS"`
	Name          string    `json:"name,omitempty" example:"RELIANCE"`
	Price         float64   `json:"price" example:"2894.5"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	PrevAvailable bool      `json:"prevAvailable"`
	Currency      string    `json:"currency" example:"INR"`
	AsOf          time.Time `json:"asOf"`
}

// SummaryEntry pairs a quote with a per-symbol failure so one dead symbol
// cannot sink the whole batch.
type SummaryEntry struct {
	Symbol string `json:"symbol"`
	Quote  *Quote `json:"quote,omitempty"`
	Error  string `json:"error,omitempty"`
}

// MarketStatus reports where the clock sits relative to the NSE session.
type MarketStatus struct {
	Open  bool      `json:"open"`
	Phase string    `json:"phase" enums:"pre-open,open,closed,weekend" example:"open"`
	Now   time.Time `json:"now"`
}

// HistoryResult is the payload of a successful history fetch.
type HistoryResult struct {
	Symbol   string   `json:"symbol"`
	Period   Period   `json:"period"`
	Interval Interval `json:"interval"`
	Source   string   `json:"source" example:"yahoo"`
	Bars     Series   `json:"bars"`
}
