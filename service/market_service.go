package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketfeed/config"
	"marketfeed/customerrors"
	"marketfeed/model"
	"marketfeed/util"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SeriesFetcher is one upstream source in the fetch chain. FetchSeries
// returns a non-empty normalized series, or one of the classified
// failures from customerrors.
type SeriesFetcher interface {
	Name() string
	FetchSeries(ctx context.Context, req model.FetchRequest) (model.Series, error)
}

// capability is an optional SeriesFetcher extension for sources that can
// be switched off by configuration.
type capability interface {
	Enabled() bool
}

type MarketService interface {
	GetHistory(ctx context.Context, symbol string, period model.Period, interval model.Interval) (*model.HistoryResult, error)
	GetQuote(ctx context.Context, symbol string) (*model.Quote, error)
	GetSummary(ctx context.Context, symbols []string) []model.SummaryEntry
	FlushCache()
}

// MarketServiceImpl drives the fetch chain: primary with a bounded retry
// budget and linear backoff, then the secondary exactly once, then
// ErrExhausted. Results never merge across sources; each attempt stands
// alone. All tuning arrives at construction, nothing here is global.
type MarketServiceImpl struct {
	primary     SeriesFetcher
	secondary   SeriesFetcher
	tuning      config.FetchTuning
	seriesCache *cache.Cache
}

func NewMarketService(primary, secondary SeriesFetcher, tuning config.FetchTuning, seriesCache *cache.Cache) MarketService {
	if tuning.MaxRetries < 1 {
		tuning.MaxRetries = 1
	}
	return &MarketServiceImpl{
		primary:     primary,
		secondary:   secondary,
		tuning:      tuning,
		seriesCache: seriesCache,
	}
}

// GetHistory normalizes the symbol once, consults the TTL cache, and runs
// the source chain on a miss. Only delivered series are cached; absence
// is retried on the next request.
func (s *MarketServiceImpl) GetHistory(ctx context.Context, symbol string, period model.Period, interval model.Interval) (*model.HistoryResult, error) {
	req := model.FetchRequest{
		Symbol:   util.NormalizeSymbol(symbol),
		Period:   period,
		Interval: interval,
	}

	cacheKey := req.CacheKey()
	if cached, found := s.seriesCache.Get(cacheKey); found {
		return cached.(*model.HistoryResult), nil
	}

	series, source, err := s.fetchWithFallback(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &model.HistoryResult{
		Symbol:   req.Symbol,
		Period:   req.Period,
		Interval: req.Interval,
		Source:   source,
		Bars:     series,
	}
	s.seriesCache.Set(cacheKey, result, cache.DefaultExpiration)

	return result, nil
}

// fetchWithFallback is the source state machine. The primary gets the
// whole retry budget before the secondary is consulted at all; a disabled
// secondary is skipped without counting as an attempt.
func (s *MarketServiceImpl) fetchWithFallback(ctx context.Context, req model.FetchRequest) (model.Series, string, error) {
	for attempt := 1; attempt <= s.tuning.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, "", fmt.Errorf("fetch aborted: %w", err)
		}

		series, err := s.primary.FetchSeries(ctx, req)
		if err == nil {
			log.Info().
				Str("symbol", req.Symbol).
				Str("source", s.primary.Name()).
				Int("attempt", attempt).
				Int("bars", len(series)).
				Msg("history delivered")
			return series, s.primary.Name(), nil
		}

		if errors.Is(err, customerrors.ErrUnsupportedCapability) {
			log.Debug().
				Str("symbol", req.Symbol).
				Str("source", s.primary.Name()).
				Msg("primary cannot serve request")
			break
		}
		if !customerrors.Retryable(err) {
			return nil, "", err
		}

		log.Debug().
			Str("symbol", req.Symbol).
			Str("source", s.primary.Name()).
			Int("attempt", attempt).
			Int("maxRetries", s.tuning.MaxRetries).
			Str("outcome", outcomeLabel(err)).
			Msg("primary attempt failed")

		if attempt < s.tuning.MaxRetries {
			if err := s.backoff(ctx, attempt); err != nil {
				return nil, "", fmt.Errorf("fetch aborted: %w", err)
			}
		}
	}

	if !available(s.secondary) {
		log.Debug().Str("symbol", req.Symbol).Msg("fallback source not enabled")
		return nil, "", customerrors.ErrExhausted
	}

	log.Info().
		Str("symbol", req.Symbol).
		Str("source", s.secondary.Name()).
		Msg("falling back to secondary source")

	series, err := s.secondary.FetchSeries(ctx, req)
	if err == nil {
		log.Info().
			Str("symbol", req.Symbol).
			Str("source", s.secondary.Name()).
			Int("bars", len(series)).
			Msg("history delivered by fallback")
		return series, s.secondary.Name(), nil
	}

	log.Warn().
		Str("symbol", req.Symbol).
		Str("period", string(req.Period)).
		Str("interval", string(req.Interval)).
		Str("outcome", outcomeLabel(err)).
		Msg("all sources exhausted")

	return nil, "", customerrors.ErrExhausted
}

// backoff waits Backoff×attempt, so consecutive retries spread out
// linearly, and gives up early when the caller cancels.
func (s *MarketServiceImpl) backoff(ctx context.Context, attempt int) error {
	timer := time.NewTimer(s.tuning.Backoff * time.Duration(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetQuote derives the dashboard row from a short daily history through
// the same orchestrated path. Change figures stay zeroed unless two
// closes were available to compare.
func (s *MarketServiceImpl) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	history, err := s.GetHistory(ctx, symbol, model.Period5d, model.Interval1d)
	if err != nil {
		return nil, err
	}

	last, _ := history.Bars.Last()
	quote := &model.Quote{
		Symbol:   history.Symbol,
		Name:     util.DisplayName(history.Symbol),
		Price:    last.Close,
		Currency: "INR",
		AsOf:     last.Ts,
	}

	if change, percent, ok := history.Bars.Delta(); ok {
		quote.Change = change
		quote.ChangePercent = percent
		quote.PrevAvailable = true
	}

	return quote, nil
}

// GetSummary fans quote fetches out over a bounded worker group. One dead
// symbol degrades to an error entry instead of sinking the batch, and the
// result order matches the input order.
func (s *MarketServiceImpl) GetSummary(ctx context.Context, symbols []string) []model.SummaryEntry {
	entries := make([]model.SummaryEntry, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.tuning.MaxConcurrent)

	for i, symbol := range symbols {
		g.Go(func() error {
			entry := model.SummaryEntry{Symbol: util.NormalizeSymbol(symbol)}

			quote, err := s.GetQuote(gctx, symbol)
			if err != nil {
				entry.Error = summaryError(err)
			} else {
				entry.Quote = quote
			}

			entries[i] = entry
			return nil
		})
	}

	g.Wait()
	return entries
}

func (s *MarketServiceImpl) FlushCache() {
	s.seriesCache.Flush()
}

func available(f SeriesFetcher) bool {
	if f == nil {
		return false
	}
	if c, ok := f.(capability); ok {
		return c.Enabled()
	}
	return true
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, customerrors.ErrEmptyResult):
		return "empty"
	case errors.Is(err, customerrors.ErrUnsupportedCapability):
		return "unsupported"
	default:
		var transient *customerrors.TransientError
		if errors.As(err, &transient) {
			return "transient"
		}
		return "error"
	}
}

func summaryError(err error) string {
	if errors.Is(err, customerrors.ErrExhausted) {
		return "no data available"
	}
	return err.Error()
}
