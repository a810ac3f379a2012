package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kallanseto/crypto-tracker/internal/chart"
	"github.com/kallanseto/crypto-tracker/internal/market"
)

const historyFailedMessage = "Failed to load historical data"

type ChartHandler struct {
	session  *chart.Session
	history  chart.HistoryFetcher
	service  *market.Service
	notifier market.Notifier
}

func NewChartHandler(session *chart.Session, history chart.HistoryFetcher, service *market.Service, notifier market.Notifier) *ChartHandler {
	return &ChartHandler{
		session:  session,
		history:  history,
		service:  service,
		notifier: notifier,
	}
}

// GetChart returns the current overlay state.
func (h *ChartHandler) GetChart(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Current())
}

// OpenChart opens the overlay for one coin, replacing whatever it showed
// before. A fetch failure leaves the overlay closed and raises a
// notification.
func (h *ChartHandler) OpenChart(c *gin.Context) {
	coinID := c.Param("id")

	coinName := coinID
	if coin, ok := h.service.Coin(coinID); ok {
		coinName = coin.Name
	}

	err := h.session.Open(c.Request.Context(), coinID, coinName)
	if errors.Is(err, chart.ErrSuperseded) {
		// A newer open or a close won the race; report whatever the
		// overlay shows now.
		c.JSON(http.StatusOK, h.session.Current())
		return
	}
	if err != nil {
		if h.notifier != nil {
			h.notifier.Error(historyFailedMessage)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.session.Current())
}

// CloseChart hides the overlay. Safe to call when already closed.
func (h *ChartHandler) CloseChart(c *gin.Context) {
	h.session.Close()
	c.Status(http.StatusNoContent)
}

// GetHistory returns the raw 7-day daily series for one coin, without
// touching overlay state.
func (h *ChartHandler) GetHistory(c *gin.Context) {
	coinID := c.Param("id")

	points, err := h.history.MarketChart(c.Request.Context(), coinID)
	if err != nil {
		if h.notifier != nil {
			h.notifier.Error(historyFailedMessage)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coin_id": coinID,
		"points":  points,
	})
}
