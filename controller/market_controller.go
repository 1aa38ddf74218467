package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"marketfeed/customerrors"
	"marketfeed/model"
	"marketfeed/service"
	"marketfeed/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

type MarketController struct {
	marketSvc    service.MarketService
	watchlistSvc service.WatchlistService
}

func NewMarketController(ms service.MarketService, ws service.WatchlistService) *MarketController {
	return &MarketController{
		marketSvc:    ms,
		watchlistSvc: ws,
	}
}

// RegisterRoutes sets up the route group for market data retrieval.
func (ctrl *MarketController) RegisterRoutes(router *gin.RouterGroup) {
	marketGroup := router.Group("/market")
	{
		marketGroup.GET("/history", ctrl.GetHistory)
		marketGroup.GET("/quote/:symbol", ctrl.GetQuote)
		marketGroup.GET("/summary", ctrl.GetSummary)
	}
}

// GetHistory handles historical candle requests.
// @Summary      Get Historical Market Data
// @Description  Fetches OHLCV history for a symbol, falling back to the secondary provider when the primary is unavailable. Served from a short-lived time cache on repeat requests.
// @Tags         Market
// @Accept       json
// @Produce      json
// @Param        symbol    query     string  true   "Symbol (e.g. RELIANCE or ^NSEI)"
// @Param        period    query     string  false  "Lookback window: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y"  default(1mo)
// @Param        interval  query     string  false  "Candle interval: 1m, 5m, 15m, 1h, 1d"             default(1d)
// @Success      200       {object}  model.Response{data=model.HistoryResult}
// @Failure      400       {object}  model.Response
// @Failure      404       {object}  model.Response
// @Failure      500       {object}  model.Response
// @Router       /market/history [get]
func (ctrl *MarketController) GetHistory(c *gin.Context) {
	var req model.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Invalid request parameters",
			Error:   err.Error(),
		})
		return
	}
	if req.Period == "" {
		req.Period = string(model.Period1mo)
	}
	if req.Interval == "" {
		req.Interval = string(model.Interval1d)
	}

	queryValidation := zog.Struct(validator.SymbolShape).
		Extend(validator.HistoryTokensShape).
		TestFunc(validator.HistoryTokensTest)

	if err := queryValidation.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Invalid request parameters",
			Error:   fmt.Sprint(err),
		})
		return
	}

	period, _ := model.ParsePeriod(req.Period)
	interval, _ := model.ParseInterval(req.Interval)

	result, err := ctrl.marketSvc.GetHistory(c.Request.Context(), req.Symbol, period, interval)
	if err != nil {
		ctrl.handleError(c, "Failed to get history", err)
		return
	}

	ctrl.handleSuccess(c, "Fetch Success", result)
}

// GetQuote returns the latest quote for a single symbol.
// @Summary      Get Latest Quote
// @Description  Fetches the most recent close for a symbol with day-over-day change when at least two sessions are available.
// @Tags         Market
// @Produce      json
// @Param        symbol  path      string  true  "Symbol (e.g. RELIANCE or ^NSEI)"
// @Success      200     {object}  model.Response{data=model.Quote}
// @Failure      404     {object}  model.Response
// @Failure      500     {object}  model.Response
// @Router       /market/quote/{symbol} [get]
func (ctrl *MarketController) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")
	if strings.TrimSpace(symbol) == "" {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Symbol parameter is required",
		})
		return
	}

	quote, err := ctrl.marketSvc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		ctrl.handleError(c, "Failed to get quote", err)
		return
	}

	ctrl.handleSuccess(c, "Fetch Success", quote)
}

// GetSummary returns quotes for the tracked watchlist, or for an explicit
// comma-separated symbols parameter when one is supplied.
// @Summary      Get Watchlist Summary
// @Description  Fetches latest quotes for every tracked symbol concurrently. Per-symbol failures are reported inline without failing the whole request.
// @Tags         Market
// @Produce      json
// @Param        symbols  query     string  false  "Comma separated symbols overriding the watchlist"
// @Success      200      {object}  model.Response{data=[]model.SummaryEntry}
// @Failure      500      {object}  model.Response
// @Router       /market/summary [get]
func (ctrl *MarketController) GetSummary(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		var err error
		symbols, err = ctrl.watchlistSvc.Symbols(c.Request.Context())
		if err != nil {
			ctrl.handleError(c, "Failed to load watchlist", err)
			return
		}
	}

	entries := ctrl.marketSvc.GetSummary(c.Request.Context(), symbols)
	ctrl.handleSuccess(c, "Fetch Success", entries)
}

func splitSymbols(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			symbols = append(symbols, trimmed)
		}
	}
	return symbols
}

// --- Internal Response Helpers ---

func (ctrl *MarketController) handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (ctrl *MarketController) handleError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, customerrors.ErrExhausted), errors.Is(err, customerrors.ErrEmptyResult):
		status = http.StatusNotFound
		message = "No data available for the requested symbol"
	case errors.Is(err, customerrors.ErrUnsupportedCapability):
		status = http.StatusNotImplemented
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	c.JSON(status, model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
