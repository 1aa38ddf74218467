package controller

import (
	"net/http"
	"time"

	"marketfeed/model"
	"marketfeed/service"

	"github.com/gin-gonic/gin"
)

type IndicesController struct {
	indicesSvc service.IndicesService
}

func NewIndicesController(is service.IndicesService) *IndicesController {
	return &IndicesController{
		indicesSvc: is,
	}
}

// RegisterRoutes sets up the route group for exchange-wide index data.
func (ctrl *IndicesController) RegisterRoutes(router *gin.RouterGroup) {
	marketGroup := router.Group("/market")
	{
		marketGroup.GET("/indices", ctrl.GetIndices)
		marketGroup.GET("/status", ctrl.GetStatus)
	}
}

// GetIndices fetches all indices performance data.
// @Summary      Get All NSE Indices
// @Description  Fetches latest performance data for all indices using the warmup strategy. Uses a short time cache to avoid exchange rate limits.
// @Tags         Market
// @Produce      json
// @Success      200  {object}  model.Response{data=model.IndicesView}
// @Failure      500  {object}  model.Response
// @Router       /market/indices [get]
func (ctrl *IndicesController) GetIndices(c *gin.Context) {
	view, err := ctrl.indicesSvc.GetIndices(c.Request.Context())
	if err != nil {
		ctrl.handleError(c, "Failed to get indices data", err)
		return
	}

	ctrl.handleSuccess(c, "Fetch Success", view)
}

// GetStatus reports whether the exchange is currently trading.
// @Summary      Get Market Status
// @Description  Returns the current trading phase (pre-open, open, closed) in exchange time.
// @Tags         Market
// @Produce      json
// @Success      200  {object}  model.Response{data=model.MarketStatus}
// @Router       /market/status [get]
func (ctrl *IndicesController) GetStatus(c *gin.Context) {
	status := ctrl.indicesSvc.MarketStatus(time.Now())
	ctrl.handleSuccess(c, "Fetch Success", status)
}

// --- Internal Response Helpers ---

func (ctrl *IndicesController) handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (ctrl *IndicesController) handleError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
