package model

// HistoryRequest is the raw query of GET /market/history before
// validation and token parsing.
type HistoryRequest struct {
	Symbol   string `form:"symbol" json:"symbol" example:"RELIANCE"`
	Period   string `form:"period" json:"period" example:"1mo"`
	Interval string `form:"interval" json:"interval" example:"1d"`
}

// Request is a free-form Huma body for dynamically shaped payloads.
type Request struct {
	Body map[string]any
}
