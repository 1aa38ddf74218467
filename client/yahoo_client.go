package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"marketfeed/customerrors"
	"marketfeed/model"
	"marketfeed/util"

	"github.com/go-resty/resty/v2"
)

var (
	yahooChartUrl    = "https://query1.finance.yahoo.com/v8/finance/chart"
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// YahooClient is the primary history source. It serves every supported
// period/interval pairing and performs exactly one upstream call per
// FetchSeries; the retry budget belongs to the caller, so resty-level
// retries stay off here.
type YahooClient struct {
	client *resty.Client
}

func NewYahooClient(timeout time.Duration) *YahooClient {
	client := resty.New().
		SetBaseURL(yahooChartUrl).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   browserUserAgent,
		})

	return &YahooClient{
		client: client,
	}
}

func (y *YahooClient) Name() string { return "yahoo" }

// FetchSeries pulls the chart for req and maps it onto the canonical bar
// schema: IST timestamps, two-decimal prices, ascending unique order.
// Null-padded rows from the chart payload are dropped, not delivered.
func (y *YahooClient) FetchSeries(ctx context.Context, req model.FetchRequest) (model.Series, error) {
	period := model.ClampPeriod(req.Period, req.Interval)

	var chartResponse model.YahooChartResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    string(period),
			"interval": string(req.Interval),
		}).
		SetResult(&chartResponse).
		Get("/" + req.Symbol)

	if err != nil {
		return nil, customerrors.NewTransientError(y.Name(), err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewTransientError(y.Name(), fmt.Errorf("chart request returned status %d", resp.StatusCode()))
	}
	if chartResponse.Chart.Error != nil {
		return nil, customerrors.NewTransientError(y.Name(), fmt.Errorf("chart error: %v", chartResponse.Chart.Error))
	}
	if len(chartResponse.Chart.Result) == 0 || len(chartResponse.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, customerrors.ErrEmptyResult
	}

	result := chartResponse.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	series := make(model.Series, 0, len(result.Timestamp))
	for i := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		bar := model.Bar{
			Ts:    time.Unix(result.Timestamp[i], 0).In(util.IstLocation),
			Open:  formatToTwo(quote.Open[i]),
			High:  formatToTwo(quote.High[i]),
			Low:   formatToTwo(quote.Low[i]),
			Close: formatToTwo(quote.Close[i]),
		}
		if i < len(quote.Volume) {
			bar.Volume = quote.Volume[i]
		}
		if !bar.Valid() {
			continue
		}
		series = append(series, bar)
	}

	if len(series) == 0 {
		return nil, customerrors.ErrEmptyResult
	}

	return series.Normalize(), nil
}

func formatToTwo(n float64) float64 {
	val, _ := strconv.ParseFloat(fmt.Sprintf("%.2f", n), 64)
	return val
}
