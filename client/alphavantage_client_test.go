package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketfeed/customerrors"
	"marketfeed/model"
)

func newAvTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) (*AlphaVantageClient, *int) {
	t.Helper()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	orig := alphaVantageUrl
	alphaVantageUrl = server.URL
	t.Cleanup(func() { alphaVantageUrl = orig })

	return NewAlphaVantageClient(apiKey, 5*time.Second), &hits
}

func TestAlphaVantageClient_DisabledWithoutKey(t *testing.T) {
	av, hits := newAvTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {})

	if av.Enabled() {
		t.Error("client without a key must report disabled")
	}

	_, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "RELIANCE.NS",
		Period:   model.Period1d,
		Interval: model.Interval5m,
	})
	if !errors.Is(err, customerrors.ErrUnsupportedCapability) {
		t.Fatalf("expected ErrUnsupportedCapability, got %v", err)
	}
	if *hits != 0 {
		t.Errorf("disabled client must not touch the network, got %d hits", *hits)
	}
}

func TestAlphaVantageClient_IndexSymbolsAreEmpty(t *testing.T) {
	av, hits := newAvTestClient(t, "demo", func(w http.ResponseWriter, r *http.Request) {})

	_, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "^NSEI",
		Period:   model.Period1d,
		Interval: model.Interval5m,
	})
	if !errors.Is(err, customerrors.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
	if *hits != 0 {
		t.Errorf("index requests must not touch the network, got %d hits", *hits)
	}
}

func TestAlphaVantageClient_IntradayCsv(t *testing.T) {
	av, _ := newAvTestClient(t, "demo", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("function"); got != "TIME_SERIES_INTRADAY" {
			t.Errorf("unexpected function %q", got)
		}
		if got := q.Get("symbol"); got != "RELIANCE.BSE" {
			t.Errorf("expected BSE spelling, got %q", got)
		}
		if got := q.Get("interval"); got != "5min" {
			t.Errorf("unexpected interval %q", got)
		}

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(
			"timestamp,open,high,low,close,volume\n" +
				"2026-08-21 10:05:00,101.0,101.5,100.5,101.2,1200\n" +
				"2026-08-21 10:00:00,100.0,101.0,99.5,100.9,1500\n"))
	})

	series, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "RELIANCE.NS",
		Period:   model.Period1d,
		Interval: model.Interval5m,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(series))
	}
	if !series[0].Ts.Before(series[1].Ts) {
		t.Error("bars must be sorted ascending")
	}
	if series[1].Close != 101.2 || series[1].Volume != 1200 {
		t.Errorf("unexpected last bar: %+v", series[1])
	}
	if _, offset := series[0].Ts.Zone(); offset != 5*3600+30*60 {
		t.Errorf("timestamps must be IST, got offset %d", offset)
	}
}

func TestAlphaVantageClient_JsonInCsvModeIsThrottling(t *testing.T) {
	av, _ := newAvTestClient(t, "demo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`))
	})

	_, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "RELIANCE.NS",
		Period:   model.Period1d,
		Interval: model.Interval1m,
	})

	var transient *customerrors.TransientError
	if !errors.As(err, &transient) {
		t.Fatalf("expected TransientError, got %v", err)
	}
	if transient.Provider != "alphavantage" {
		t.Errorf("unexpected provider %q", transient.Provider)
	}
}

func TestAlphaVantageClient_DailyUsesQuoteSnapshot(t *testing.T) {
	av, hits := newAvTestClient(t, "demo", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("daily interval should hit GLOBAL_QUOTE, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Global Quote": {
				"01. symbol": "RELIANCE.BSE",
				"05. price": "2894.5000",
				"06. volume": "123456",
				"07. latest trading day": "2026-08-21"
			}
		}`))
	})

	series, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "RELIANCE.NS",
		Period:   model.Period5d,
		Interval: model.Interval1d,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *hits != 1 {
		t.Errorf("expected a single upstream call, got %d", *hits)
	}

	if len(series) != 1 {
		t.Fatalf("expected a single snapshot bar, got %d", len(series))
	}
	bar := series[0]
	if bar.Open != bar.High || bar.High != bar.Low || bar.Low != bar.Close || bar.Close != 2894.5 {
		t.Errorf("expected a flat bar at the quoted price, got %+v", bar)
	}
	if bar.Volume != 123456 {
		t.Errorf("unexpected volume %d", bar.Volume)
	}
	if bar.Ts.Hour() != 15 || bar.Ts.Minute() != 30 || bar.Ts.Day() != 21 {
		t.Errorf("expected the session close of the latest trading day, got %v", bar.Ts)
	}
	if !bar.Valid() {
		t.Error("the snapshot bar must satisfy the OHLC bounds")
	}
}

func TestAlphaVantageClient_EmptyIntradayFallsBackToQuote(t *testing.T) {
	av, hits := newAvTestClient(t, "demo", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("function") {
		case "TIME_SERIES_INTRADAY":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("timestamp,open,high,low,close,volume\n"))
		case "GLOBAL_QUOTE":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Global Quote": {"05. price": "412.5", "07. latest trading day": "2026-08-21"}}`))
		default:
			t.Errorf("unexpected function %q", r.URL.Query().Get("function"))
		}
	})

	series, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "IDEA.NS",
		Period:   model.Period1d,
		Interval: model.Interval5m,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *hits != 2 {
		t.Errorf("expected intraday then quote, got %d calls", *hits)
	}
	if len(series) != 1 || series[0].Close != 412.5 {
		t.Errorf("unexpected series: %+v", series)
	}
}

func TestAlphaVantageClient_QuoteThrottleIsTransient(t *testing.T) {
	av, _ := newAvTestClient(t, "demo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Information": "Please consider optimizing your API call frequency."}`))
	})

	_, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "RELIANCE.NS",
		Period:   model.Period5d,
		Interval: model.Interval1d,
	})

	var transient *customerrors.TransientError
	if !errors.As(err, &transient) {
		t.Fatalf("expected TransientError, got %v", err)
	}
}

func TestAlphaVantageClient_UnknownSymbolIsEmpty(t *testing.T) {
	av, _ := newAvTestClient(t, "demo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Global Quote": {}}`))
	})

	_, err := av.FetchSeries(context.Background(), model.FetchRequest{
		Symbol:   "NOSUCH.NS",
		Period:   model.Period5d,
		Interval: model.Interval1d,
	})
	if !errors.Is(err, customerrors.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestBseSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOk bool
	}{
		{"RELIANCE.NS", "RELIANCE.BSE", true},
		{"TATAMOTORS.BO", "TATAMOTORS.BSE", true},
		{"SBIN", "SBIN.BSE", true},
		{"^NSEI", "", false},
	}

	for _, tt := range tests {
		got, ok := bseSymbol(tt.in)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("bseSymbol(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOk)
		}
	}
}
