package model

import "time"

// --- ENUMS ---
type InstrumentKind string

const (
	KindEquity InstrumentKind = "equity"
	KindIndex  InstrumentKind = "index"
)

// --- WATCHLIST ---
// WatchlistEntry is the persisted watchlist document.
type WatchlistEntry struct {
	Symbol  string         `bson:"_id" json:"symbol"`
	Name    string         `bson:"name" json:"name"`
	Kind    InstrumentKind `bson:"kind" json:"kind"`
	AddedAt time.Time      `bson:"addedAt" json:"addedAt"`
}

// WatchlistEntryDto is the add-entry payload.
type WatchlistEntryDto struct {
	Symbol string `json:"symbol" binding:"required" example:"RELIANCE"`
	Name   string `json:"name" example:"Reliance Industries"`
}

// WatchlistRenameDto carries the new display name for an entry.
type WatchlistRenameDto struct {
	Name string `json:"name" binding:"required" example:"Reliance Industries"`
}
