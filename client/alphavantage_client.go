package client

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"marketfeed/customerrors"
	"marketfeed/model"
	"marketfeed/util"

	"github.com/go-resty/resty/v2"
)

var alphaVantageUrl = "https://www.alphavantage.co"

const avTimestampLayout = "2006-01-02 15:04:05"

// avIntervals maps our intraday granularities onto Alpha Vantage's.
var avIntervals = map[model.Interval]string{
	model.Interval1m:  "1min",
	model.Interval5m:  "5min",
	model.Interval15m: "15min",
	model.Interval1h:  "60min",
}

// AlphaVantageClient is the credential-gated secondary source. Intraday
// intervals go through the TIME_SERIES_INTRADAY csv endpoint; the daily
// interval, and any intraday window that comes back empty, degrades to a
// single flat bar built from the GLOBAL_QUOTE snapshot. Without an API
// key every call reports ErrUnsupportedCapability and touches nothing on
// the network, so the caller can treat the source as permanently absent.
type AlphaVantageClient struct {
	client *resty.Client
	apiKey string
}

func NewAlphaVantageClient(apiKey string, timeout time.Duration) *AlphaVantageClient {
	client := resty.New().
		SetBaseURL(alphaVantageUrl).
		SetTimeout(timeout).
		SetHeader("User-Agent", browserUserAgent)

	return &AlphaVantageClient{
		client: client,
		apiKey: apiKey,
	}
}

func (a *AlphaVantageClient) Name() string { return "alphavantage" }

// Enabled reports whether the API key is configured.
func (a *AlphaVantageClient) Enabled() bool { return a.apiKey != "" }

func (a *AlphaVantageClient) FetchSeries(ctx context.Context, req model.FetchRequest) (model.Series, error) {
	if !a.Enabled() {
		return nil, customerrors.ErrUnsupportedCapability
	}

	symbol, ok := bseSymbol(req.Symbol)
	if !ok {
		// indices have no BSE listing to query
		return nil, customerrors.ErrEmptyResult
	}

	if avInterval, intraday := avIntervals[req.Interval]; intraday {
		series, err := a.fetchIntraday(ctx, symbol, avInterval)
		if err != nil || len(series) > 0 {
			return series, err
		}
		// empty intraday window, fall back to the quote snapshot
	}

	return a.fetchQuoteBar(ctx, symbol)
}

func (a *AlphaVantageClient) fetchIntraday(ctx context.Context, symbol, avInterval string) (model.Series, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_INTRADAY",
			"symbol":     symbol,
			"interval":   avInterval,
			"outputsize": "compact",
			"datatype":   "csv",
			"apikey":     a.apiKey,
		}).
		Get("/query")

	if err != nil {
		return nil, customerrors.NewTransientError(a.Name(), err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewTransientError(a.Name(), fmt.Errorf("intraday request returned status %d", resp.StatusCode()))
	}

	body := resp.String()
	if strings.HasPrefix(strings.TrimSpace(body), "{") {
		// a JSON body in csv mode is a throttling note or error payload
		return nil, customerrors.NewTransientError(a.Name(), fmt.Errorf("intraday csv unavailable: %s", truncate(body, 120)))
	}

	return a.parseIntradayCsv(strings.NewReader(body))
}

// parseIntradayCsv maps the timestamp,open,high,low,close,volume layout
// onto bars. Timestamps arrive naive UTC and are converted to IST, same
// as every other source. A parseable file with zero usable rows returns
// (nil, nil) so the caller can degrade to the quote snapshot.
func (a *AlphaVantageClient) parseIntradayCsv(r io.Reader) (model.Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	tsIdx, ok := col["timestamp"]
	if !ok {
		return nil, nil
	}

	var series model.Series
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, customerrors.NewTransientError(a.Name(), fmt.Errorf("malformed csv: %w", err))
		}
		if tsIdx >= len(record) {
			continue
		}

		ts, err := time.ParseInLocation(avTimestampLayout, record[tsIdx], time.UTC)
		if err != nil {
			continue
		}

		bar := model.Bar{
			Ts:     ts.In(util.IstLocation),
			Open:   csvField(record, col, "open"),
			High:   csvField(record, col, "high"),
			Low:    csvField(record, col, "low"),
			Close:  csvField(record, col, "close"),
			Volume: int64(csvField(record, col, "volume")),
		}
		if !bar.Valid() {
			continue
		}
		series = append(series, bar)
	}

	if len(series) == 0 {
		return nil, nil
	}
	return series.Normalize(), nil
}

// fetchQuoteBar builds the degenerate single-bar series from the
// last-traded-price snapshot: open, high, low and close all collapse to
// the same price, stamped at that trading day's session close.
func (a *AlphaVantageClient) fetchQuoteBar(ctx context.Context, symbol string) (model.Series, error) {
	var quoteResponse model.GlobalQuoteResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "GLOBAL_QUOTE",
			"symbol":   symbol,
			"apikey":   a.apiKey,
		}).
		SetResult(&quoteResponse).
		Get("/query")

	if err != nil {
		return nil, customerrors.NewTransientError(a.Name(), err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewTransientError(a.Name(), fmt.Errorf("quote request returned status %d", resp.StatusCode()))
	}
	if quoteResponse.Note != "" || quoteResponse.Information != "" {
		return nil, customerrors.NewTransientError(a.Name(), fmt.Errorf("quote request throttled"))
	}
	if quoteResponse.ErrorMessage != "" {
		return nil, customerrors.ErrEmptyResult
	}

	q := quoteResponse.GlobalQuote
	price, err := strconv.ParseFloat(q.Price, 64)
	if err != nil || price <= 0 {
		return nil, customerrors.ErrEmptyResult
	}

	volume, _ := strconv.ParseInt(q.Volume, 10, 64)

	ts := util.AtMarketClose(time.Now())
	if day, parseErr := time.ParseInLocation("2006-01-02", q.LatestDay, util.IstLocation); parseErr == nil {
		ts = util.AtMarketClose(day)
	}

	bar := model.Bar{
		Ts:     ts,
		Open:   price,
		High:   price,
		Low:    price,
		Close:  price,
		Volume: volume,
	}
	return model.Series{bar}, nil
}

// bseSymbol rewrites an NSE-normalized symbol into the BSE spelling Alpha
// Vantage resolves. Index symbols have no such spelling.
func bseSymbol(symbol string) (string, bool) {
	if util.IsIndex(symbol) {
		return "", false
	}
	base := strings.TrimSuffix(symbol, ".NS")
	base = strings.TrimSuffix(base, ".BO")
	return base + ".BSE", true
}

func csvField(record []string, col map[string]int, name string) float64 {
	idx, ok := col[name]
	if !ok || idx >= len(record) {
		return 0
	}
	v, _ := strconv.ParseFloat(record[idx], 64)
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
