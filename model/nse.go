package model

import "time"

// AllIndicesResponse is the NSE /api/allIndices envelope.
type AllIndicesResponse struct {
	Data      []IndexSnapshot `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// IndexSnapshot is one row of the exchange's indices table.
type IndexSnapshot struct {
	Key           string  `json:"key"`
	Name          string  `json:"index"`
	Symbol        string  `json:"indexSymbol"`
	Last          float64 `json:"last"`
	Variation     float64 `json:"variation"`
	PercentChange float64 `json:"percentChange"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	PreviousClose float64 `json:"previousClose"`
	YearHigh      float64 `json:"yearHigh"`
	YearLow       float64 `json:"yearLow"`
	Advances      string  `json:"advances"`
	Declines      string  `json:"declines"`
}

// IndicesView is what the dashboard renders: the headline trio first, then
// the full exchange table, stamped with the snapshot time.
type IndicesView struct {
	Headline []IndexSnapshot `json:"headline"`
	All      []IndexSnapshot `json:"all"`
	AsOf     time.Time       `json:"asOf"`
}
