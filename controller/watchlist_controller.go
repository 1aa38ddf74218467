package controller

import (
	"errors"
	"net/http"

	"marketfeed/customerrors"
	"marketfeed/model"
	"marketfeed/service"
	"marketfeed/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

type WatchlistController struct {
	watchlistService service.WatchlistService
}

func NewWatchlistController(ws service.WatchlistService) *WatchlistController {
	return &WatchlistController{
		watchlistService: ws,
	}
}

// RegisterRoutes sets up the watchlist route group.
func (ctrl *WatchlistController) RegisterRoutes(router *gin.RouterGroup) {
	watchlistGroup := router.Group("/watchlist")
	{
		watchlistGroup.GET("", ctrl.getWatchlist)
		watchlistGroup.POST("", ctrl.addEntry)
		watchlistGroup.PATCH("/:symbol", ctrl.renameEntry)
		watchlistGroup.DELETE("/:symbol", ctrl.removeEntry)
		watchlistGroup.GET("/reload", ctrl.reloadWatchlist)
		watchlistGroup.POST("/import", ctrl.importFromCsv)
	}
}

func (ctrl *WatchlistController) getWatchlist(c *gin.Context) {
	entries, err := ctrl.watchlistService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctrl *WatchlistController) addEntry(c *gin.Context) {
	var dto model.WatchlistEntryDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Symbol is required"})
		return
	}

	entryValidation := zog.Struct(validator.SymbolShape).
		Extend(validator.EntryNameShape)
	if err := entryValidation.Validate(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watchlist entry"})
		return
	}

	entry, err := ctrl.watchlistService.Add(c.Request.Context(), dto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctrl *WatchlistController) renameEntry(c *gin.Context) {
	symbol := c.Param("symbol")

	var dto model.WatchlistRenameDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	entry, err := ctrl.watchlistService.Rename(c.Request.Context(), symbol, dto.Name)
	if err != nil {
		if errors.Is(err, customerrors.ErrWatchlistEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No watchlist entry for symbol: " + symbol})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctrl *WatchlistController) removeEntry(c *gin.Context) {
	symbol := c.Param("symbol")

	err := ctrl.watchlistService.Remove(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, customerrors.ErrWatchlistEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No watchlist entry for symbol: " + symbol})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (ctrl *WatchlistController) reloadWatchlist(c *gin.Context) {
	err := ctrl.watchlistService.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (ctrl *WatchlistController) importFromCsv(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer file.Close()

	err = ctrl.watchlistService.ImportCsv(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}
