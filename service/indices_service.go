package service

import (
	"context"
	"slices"
	"time"

	localCache "marketfeed/cache"
	"marketfeed/model"
	"marketfeed/util"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const indicesCacheKey = "all_indices"

// headlineIndices are pinned to the top of the dashboard, in this order.
var headlineIndices = []string{"NIFTY 50", "NIFTY BANK", "NIFTY NEXT 50"}

// IndicesFetcher pulls the exchange-wide indices snapshot.
type IndicesFetcher interface {
	FetchAllIndices(ctx context.Context) (*model.AllIndicesResponse, error)
}

type IndicesService interface {
	GetIndices(ctx context.Context) (*model.IndicesView, error)
	MarketStatus(now time.Time) model.MarketStatus
	FlushCache()
}

type IndicesServiceImpl struct {
	client IndicesFetcher
}

func NewIndicesService(client IndicesFetcher) IndicesService {
	return &IndicesServiceImpl{client: client}
}

// GetIndices serves the snapshot from a short cache; one upstream call a
// minute is all NSE tolerates comfortably.
func (s *IndicesServiceImpl) GetIndices(ctx context.Context) (*model.IndicesView, error) {
	if cached, found := localCache.IndicesCache.Get(indicesCacheKey); found {
		return cached.(*model.IndicesView), nil
	}

	snapshot, err := s.client.FetchAllIndices(ctx)
	if err != nil {
		return nil, err
	}

	view := buildIndicesView(snapshot)
	localCache.IndicesCache.Set(indicesCacheKey, view, cache.DefaultExpiration)
	return view, nil
}

func buildIndicesView(snapshot *model.AllIndicesResponse) *model.IndicesView {
	view := &model.IndicesView{All: snapshot.Data}

	for _, name := range headlineIndices {
		idx := slices.IndexFunc(snapshot.Data, func(row model.IndexSnapshot) bool {
			return row.Name == name
		})
		if idx >= 0 {
			view.Headline = append(view.Headline, snapshot.Data[idx])
		}
	}

	asOf, err := util.ParseNseTimestamp(snapshot.Timestamp)
	if err != nil {
		log.Debug().Str("timestamp", snapshot.Timestamp).Msg("unparsable snapshot timestamp")
		asOf = time.Now().In(util.IstLocation)
	}
	view.AsOf = asOf

	return view
}

// MarketStatus is a pure function of the given clock so callers (and
// tests) control the instant being classified.
func (s *IndicesServiceImpl) MarketStatus(now time.Time) model.MarketStatus {
	phase := util.MarketPhase(now)
	return model.MarketStatus{
		Open:  phase == "open",
		Phase: phase,
		Now:   now.In(util.IstLocation),
	}
}

func (s *IndicesServiceImpl) FlushCache() {
	localCache.IndicesCache.Flush()
}
