package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"marketfeed/model"
	"marketfeed/repository"
	"marketfeed/util"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type catalogItem struct {
	symbol string
	name   string
}

// defaultCatalog seeds an empty watchlist collection: the NSE large caps
// the dashboard tracked from day one, plus the three headline indices.
var defaultCatalog = []catalogItem{
	{"RELIANCE.NS", "Reliance Industries"},
	{"TCS.NS", "Tata Consultancy Services"},
	{"HDFCBANK.NS", "HDFC Bank"},
	{"INFY.NS", "Infosys"},
	{"ICICIBANK.NS", "ICICI Bank"},
	{"SBIN.NS", "State Bank of India"},
	{"BAJFINANCE.NS", "Bajaj Finance"},
	{"BHARTIARTL.NS", "Bharti Airtel"},
	{"ITC.NS", "ITC"},
	{"KOTAKBANK.NS", "Kotak Mahindra Bank"},
	{"LT.NS", "Larsen & Toubro"},
	{"ASIANPAINT.NS", "Asian Paints"},
	{"AXISBANK.NS", "Axis Bank"},
	{"MARUTI.NS", "Maruti Suzuki"},
	{"TATAMOTORS.NS", "Tata Motors"},
	{"WIPRO.NS", "Wipro"},
	{"HCLTECH.NS", "HCL Technologies"},
	{"TECHM.NS", "Tech Mahindra"},
	{"ULTRACEMCO.NS", "UltraTech Cement"},
	{"SUNPHARMA.NS", "Sun Pharmaceutical"},
	{"^NSEI", "Nifty 50"},
	{"^BSESN", "Sensex"},
	{"^NSEBANK", "Bank Nifty"},
}

type WatchlistService interface {
	GetAll(ctx context.Context) ([]model.WatchlistEntry, error)
	Symbols(ctx context.Context) ([]string, error)
	Add(ctx context.Context, dto model.WatchlistEntryDto) (*model.WatchlistEntry, error)
	Rename(ctx context.Context, symbol, name string) (*model.WatchlistEntry, error)
	Remove(ctx context.Context, symbol string) error
	Reload(ctx context.Context) error
	ImportCsv(ctx context.Context, fileName string, file io.Reader) error
}

// WatchlistServiceImpl keeps the working set in an in-process store and
// treats Mongo as the durable copy, mirroring how the reload/import flows
// replace both together.
type WatchlistServiceImpl struct {
	repo  repository.WatchlistRepository
	store *cache.Cache
}

func NewWatchlistService(repo repository.WatchlistRepository) WatchlistService {
	s := &WatchlistServiceImpl{
		repo:  repo,
		store: cache.New(cache.NoExpiration, 0),
	}

	if err := s.Reload(context.Background()); err != nil {
		log.Warn().Err(err).Msg("initial watchlist load failed")
	}

	return s
}

func (s *WatchlistServiceImpl) GetAll(ctx context.Context) ([]model.WatchlistEntry, error) {
	if s.store.ItemCount() == 0 {
		if err := s.Reload(ctx); err != nil {
			return nil, err
		}
	}
	return s.sortedEntries(), nil
}

func (s *WatchlistServiceImpl) Symbols(ctx context.Context) ([]string, error) {
	entries, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(entries))
	for _, e := range entries {
		symbols = append(symbols, e.Symbol)
	}
	return symbols, nil
}

func (s *WatchlistServiceImpl) Add(ctx context.Context, dto model.WatchlistEntryDto) (*model.WatchlistEntry, error) {
	var entry model.WatchlistEntry
	if err := copier.Copy(&entry, &dto); err != nil {
		return nil, fmt.Errorf("failed to map watchlist entry: %w", err)
	}

	entry.Symbol = util.NormalizeSymbol(dto.Symbol)
	if strings.TrimSpace(entry.Name) == "" {
		entry.Name = util.DisplayName(entry.Symbol)
	}
	entry.Kind = model.KindEquity
	if util.IsIndex(entry.Symbol) {
		entry.Kind = model.KindIndex
	}
	entry.AddedAt = time.Now().In(util.IstLocation)

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.store.Set(entry.Symbol, entry, cache.NoExpiration)
	return &entry, nil
}

func (s *WatchlistServiceImpl) Rename(ctx context.Context, symbol, name string) (*model.WatchlistEntry, error) {
	normalized := util.NormalizeSymbol(symbol)

	entry, err := s.repo.UpdateName(ctx, normalized, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	s.store.Set(entry.Symbol, *entry, cache.NoExpiration)
	return entry, nil
}

func (s *WatchlistServiceImpl) Remove(ctx context.Context, symbol string) error {
	normalized := util.NormalizeSymbol(symbol)

	if err := s.repo.DeleteBySymbol(ctx, normalized); err != nil {
		return err
	}

	s.store.Delete(normalized)
	return nil
}

// Reload replaces the in-process store from Mongo, seeding the default
// catalog when the collection is empty.
func (s *WatchlistServiceImpl) Reload(ctx context.Context) error {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		entries = seedEntries()
		if err := s.repo.SaveAll(ctx, entries); err != nil {
			return fmt.Errorf("failed to seed watchlist: %w", err)
		}
		log.Info().Int("entries", len(entries)).Msg("seeded default watchlist")
	}

	s.store.Flush()
	for _, e := range entries {
		s.store.Set(e.Symbol, e, cache.NoExpiration)
	}
	return nil
}

// ImportCsv bulk-replaces the watchlist from an uploaded "symbol,name"
// file: rows are upserted, then entries missing from the file are pruned.
func (s *WatchlistServiceImpl) ImportCsv(ctx context.Context, fileName string, file io.Reader) error {
	if file == nil {
		return fmt.Errorf("file is empty")
	}
	if filepath.Ext(fileName) != ".csv" {
		return fmt.Errorf("invalid file type: must be .csv")
	}

	entries, err := util.ReadWatchlistCsv(file)
	if err != nil {
		return fmt.Errorf("csv parsing failed: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("csv contained no usable rows")
	}

	if err := s.repo.SaveAll(ctx, entries); err != nil {
		return fmt.Errorf("failed to save watchlist: %w", err)
	}

	symbols := make([]string, 0, len(entries))
	for _, e := range entries {
		symbols = append(symbols, e.Symbol)
	}

	deletedCount, err := s.repo.DeleteBySymbolNotIn(ctx, symbols)
	if err != nil {
		log.Error().Err(err).Msg("failed pruning replaced watchlist entries")
	}

	s.store.Flush()
	for _, e := range entries {
		s.store.Set(e.Symbol, e, cache.NoExpiration)
	}

	log.Info().
		Int("entries", len(entries)).
		Int64("pruned", deletedCount).
		Msg("watchlist imported from csv")
	return nil
}

func (s *WatchlistServiceImpl) sortedEntries() []model.WatchlistEntry {
	items := s.store.Items()
	entries := make([]model.WatchlistEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.Object.(model.WatchlistEntry))
	}

	slices.SortFunc(entries, func(a, b model.WatchlistEntry) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return entries
}

func seedEntries() []model.WatchlistEntry {
	now := time.Now().In(util.IstLocation)
	entries := make([]model.WatchlistEntry, 0, len(defaultCatalog))

	for _, item := range defaultCatalog {
		kind := model.KindEquity
		if util.IsIndex(item.symbol) {
			kind = model.KindIndex
		}
		entries = append(entries, model.WatchlistEntry{
			Symbol:  item.symbol,
			Name:    item.name,
			Kind:    kind,
			AddedAt: now,
		})
	}
	return entries
}
