package util

import (
	"strings"
	"time"
)

// IstLocation is the exchange timezone. Every bar timestamp is normalized
// into it before leaving the client layer.
var IstLocation = loadIst()

var nseTimestampLayout = "02-Jan-2006 15:04"

const (
	preOpenMinute     = 9 * 60
	marketOpenMinute  = 9*60 + 15
	marketCloseMinute = 15*60 + 30
)

func loadIst() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// containers without tzdata still get the right offset
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// ParseNseTimestamp turns the "02-Jan-2006 15:04" stamp NSE puts on its
// snapshots into a concrete IST time.
func ParseNseTimestamp(nseDate string) (time.Time, error) {
	cleanInput := strings.TrimSpace(nseDate)
	return time.ParseInLocation(nseTimestampLayout, cleanInput, IstLocation)
}

// AtMarketClose pins t's calendar day to the 15:30 IST session close.
func AtMarketClose(t time.Time) time.Time {
	t = t.In(IstLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 15, 30, 0, 0, IstLocation)
}

// MarketPhase classifies an instant against the NSE trading session.
// Phases: weekend, pre-open (09:00-09:15), open (09:15-15:30), closed.
func MarketPhase(t time.Time) string {
	t = t.In(IstLocation)

	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return "weekend"
	}

	minuteOfDay := t.Hour()*60 + t.Minute()
	switch {
	case minuteOfDay >= preOpenMinute && minuteOfDay < marketOpenMinute:
		return "pre-open"
	case minuteOfDay >= marketOpenMinute && minuteOfDay < marketCloseMinute:
		return "open"
	default:
		return "closed"
	}
}
