package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kallanseto/crypto-tracker/internal/market"
)

type MarketHandler struct {
	service  *market.Service
	notifier market.Notifier
}

func NewMarketHandler(service *market.Service, notifier market.Notifier) *MarketHandler {
	return &MarketHandler{
		service:  service,
		notifier: notifier,
	}
}

// GetMarkets returns the market table, filtered by the optional "q"
// query (case-insensitive match on name or symbol).
func (h *MarketHandler) GetMarkets(c *gin.Context) {
	query := c.Query("q")
	c.JSON(http.StatusOK, market.BuildTable(h.service.Snapshot(), query))
}

// GetMovers returns the top-5 gainers and losers panels.
func (h *MarketHandler) GetMovers(c *gin.Context) {
	c.JSON(http.StatusOK, market.BuildMovers(h.service.Snapshot()))
}

// GetStatus returns refresh loop health.
func (h *MarketHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// RefreshNow triggers a snapshot refresh outside the timer. It may
// overlap an in-flight timer refresh; the service keeps whichever
// completion is newer.
func (h *MarketHandler) RefreshNow(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		if h.notifier != nil {
			h.notifier.Error("Failed to load cryptocurrency data. Please try again later.")
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.service.Status())
}
