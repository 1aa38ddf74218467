package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"marketfeed/model"
)

// ReadWatchlistCsv parses a "symbol,name" CSV into watchlist entries.
// io.Reader keeps it usable for file uploads, local files, or strings.
func ReadWatchlistCsv(r io.Reader) ([]model.WatchlistEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, name := range header {
		headerMap[strings.ToLower(strings.TrimSpace(name))] = i
	}

	symbolIdx, hasSymbol := headerMap["symbol"]
	if !hasSymbol {
		return nil, fmt.Errorf("missing required column: symbol")
	}
	nameIdx, hasName := headerMap["name"]

	now := time.Now().In(IstLocation)
	var entries []model.WatchlistEntry
	seen := make(map[string]bool)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}

		if symbolIdx >= len(record) {
			continue
		}
		symbol := NormalizeSymbol(record[symbolIdx])
		if symbol == "" || seen[symbol] {
			continue // skip blank and duplicate rows
		}
		seen[symbol] = true

		name := DisplayName(symbol)
		if hasName && nameIdx < len(record) && strings.TrimSpace(record[nameIdx]) != "" {
			name = strings.TrimSpace(record[nameIdx])
		}

		kind := model.KindEquity
		if IsIndex(symbol) {
			kind = model.KindIndex
		}

		entries = append(entries, model.WatchlistEntry{
			Symbol:  symbol,
			Name:    name,
			Kind:    kind,
			AddedAt: now,
		})
	}

	return entries, nil
}
