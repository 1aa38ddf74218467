package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketfeed/model"
	"marketfeed/service"
	"marketfeed/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockIndicesFetcher struct {
	FetchFunc func(ctx context.Context) (*model.AllIndicesResponse, error)
	Calls     int
}

func (m *mockIndicesFetcher) FetchAllIndices(ctx context.Context) (*model.AllIndicesResponse, error) {
	m.Calls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, errors.New("FetchFunc is not implemented")
}

func indicesSnapshot() *model.AllIndicesResponse {
	return &model.AllIndicesResponse{
		Timestamp: "21-Aug-2026 16:00",
		Data: []model.IndexSnapshot{
			{Name: "NIFTY NEXT 50", Last: 68000.10, PercentChange: -0.2},
			{Name: "NIFTY 50", Last: 24500.25, PercentChange: 0.45},
			{Name: "NIFTY MIDCAP 100", Last: 57000.00, PercentChange: 1.1},
		},
	}
}

func TestIndicesService_GetIndicesCachesSnapshot(t *testing.T) {
	fetcher := &mockIndicesFetcher{
		FetchFunc: func(ctx context.Context) (*model.AllIndicesResponse, error) {
			return indicesSnapshot(), nil
		},
	}
	svc := service.NewIndicesService(fetcher)
	svc.FlushCache()

	first, err := svc.GetIndices(context.Background())
	require.NoError(t, err)
	second, err := svc.GetIndices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.Calls, "second request should come from cache")
	assert.Same(t, first, second)
}

func TestIndicesService_HeadlineKeepsPinnedOrder(t *testing.T) {
	fetcher := &mockIndicesFetcher{
		FetchFunc: func(ctx context.Context) (*model.AllIndicesResponse, error) {
			return indicesSnapshot(), nil
		},
	}
	svc := service.NewIndicesService(fetcher)
	svc.FlushCache()

	view, err := svc.GetIndices(context.Background())
	require.NoError(t, err)

	// NIFTY BANK is absent from the snapshot, so only two headline rows.
	require.Len(t, view.Headline, 2)
	assert.Equal(t, "NIFTY 50", view.Headline[0].Name)
	assert.Equal(t, "NIFTY NEXT 50", view.Headline[1].Name)
	assert.Len(t, view.All, 3)

	assert.Equal(t, 2026, view.AsOf.Year())
	assert.Equal(t, 16, view.AsOf.In(util.IstLocation).Hour())
}

func TestIndicesService_UnparsableTimestampFallsBackToNow(t *testing.T) {
	fetcher := &mockIndicesFetcher{
		FetchFunc: func(ctx context.Context) (*model.AllIndicesResponse, error) {
			snap := indicesSnapshot()
			snap.Timestamp = "garbage"
			return snap, nil
		},
	}
	svc := service.NewIndicesService(fetcher)
	svc.FlushCache()

	view, err := svc.GetIndices(context.Background())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), view.AsOf, time.Minute)
}

func TestIndicesService_FetchErrorsAreNotCached(t *testing.T) {
	boom := errors.New("exchange unavailable")
	fetcher := &mockIndicesFetcher{FetchFunc: func(ctx context.Context) (*model.AllIndicesResponse, error) {
		return nil, boom
	}}
	svc := service.NewIndicesService(fetcher)
	svc.FlushCache()

	_, err := svc.GetIndices(context.Background())
	require.ErrorIs(t, err, boom)
	_, err = svc.GetIndices(context.Background())
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 2, fetcher.Calls, "failures must not be cached")
}

func TestIndicesService_MarketStatus(t *testing.T) {
	svc := service.NewIndicesService(&mockIndicesFetcher{})

	// 2026-08-17 is a Monday.
	open := svc.MarketStatus(time.Date(2026, 8, 17, 12, 0, 0, 0, util.IstLocation))
	assert.True(t, open.Open)
	assert.Equal(t, "open", open.Phase)

	preOpen := svc.MarketStatus(time.Date(2026, 8, 17, 9, 5, 0, 0, util.IstLocation))
	assert.False(t, preOpen.Open)
	assert.Equal(t, "pre-open", preOpen.Phase)

	weekend := svc.MarketStatus(time.Date(2026, 8, 22, 12, 0, 0, 0, util.IstLocation))
	assert.False(t, weekend.Open)
	assert.Equal(t, "weekend", weekend.Phase)
}
