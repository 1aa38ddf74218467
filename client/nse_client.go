package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketfeed/customerrors"
	"marketfeed/middleware"
	"marketfeed/model"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

var (
	nseUrl         = "https://www.nseindia.com"
	nseUserAgent   = "Mozilla/5.0 (iPhone; CPU iPhone OS 18_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.5 Mobile/15E148 Safari/604.1"
	allIndicesPath = "/api/allIndices"
)

// NseClient talks to the exchange's own endpoints for the indices
// snapshot. NSE wants a warmed cookie jar, compresses replies regardless
// of Accept-Encoding, and bans aggressive callers, so every fetch is
// paced by a limiter. This client sits outside the orchestrated history
// chain, which is why resty-level retries are fine here.
type NseClient struct {
	client  *resty.Client
	limiter *rate.Limiter
}

func NewNseClient() *NseClient {
	client := resty.New().
		SetBaseURL(nseUrl).
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", nseUserAgent).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second)

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &NseClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 2),
	}
}

// WarmUp hits the homepage so the cookie jar carries a valid session
// before any API path is called.
func (n *NseClient) WarmUp(ctx context.Context) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Referer", "https://www.google.com/").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		Get("/")

	if err != nil || !resp.IsSuccess() {
		return fmt.Errorf("warmup failed: %v (status: %d)", err, resp.StatusCode())
	}
	return nil
}

func (n *NseClient) FetchAllIndices(ctx context.Context) (*model.AllIndicesResponse, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if err := n.WarmUp(ctx); err != nil {
		return nil, customerrors.NewTransientError("nse", err)
	}

	resp, err := n.setHeaders(n.client.R().SetContext(ctx), nseUrl+"/market-data/live-market-indices").
		Get(allIndicesPath)

	if err != nil || !resp.IsSuccess() {
		return nil, customerrors.NewTransientError("nse", fmt.Errorf("allIndices error: %v (status: %d)", err, resp.StatusCode()))
	}

	var data model.AllIndicesResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, customerrors.NewTransientError("nse", fmt.Errorf("allIndices decode error: %w", err))
	}

	return &data, nil
}

func (n *NseClient) setHeaders(req *resty.Request, referer string) *resty.Request {
	headers := map[string]string{
		"Accept":          "*/*",
		"Accept-Encoding": "gzip, deflate, br",
		"Referer":         referer,
		"sec-fetch-dest":  "empty",
		"sec-fetch-mode":  "cors",
		"sec-fetch-site":  "same-origin",
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}
