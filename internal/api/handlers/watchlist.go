package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kallanseto/crypto-tracker/internal/market"
	"github.com/kallanseto/crypto-tracker/internal/watchlist"
)

type WatchlistHandler struct {
	store   *watchlist.Store
	service *market.Service
}

func NewWatchlistHandler(store *watchlist.Store, service *market.Service) *WatchlistHandler {
	return &WatchlistHandler{
		store:   store,
		service: service,
	}
}

// WatchlistView is the watchlist panel payload: the raw id list plus the
// rendered rows for ids that exist in the current snapshot. Stale ids
// stay in coin_ids but produce no row.
type WatchlistView struct {
	CoinIDs []string              `json:"coin_ids"`
	Rows    []market.WatchlistRow `json:"rows"`
}

// PickerOption is one entry of the add-to-watchlist picker.
type PickerOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	ImageURL    string `json:"image_url"`
	InWatchlist bool   `json:"in_watchlist"`
}

type addRequest struct {
	CoinID string `json:"coin_id" binding:"required"`
}

func (h *WatchlistHandler) view() WatchlistView {
	ids := h.store.List()
	return WatchlistView{
		CoinIDs: ids,
		Rows:    market.BuildWatchlistRows(h.service.Snapshot(), ids),
	}
}

// GetWatchlist returns the watchlist panel.
func (h *WatchlistHandler) GetWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.view())
}

// GetOptions returns the picker over all known coins.
func (h *WatchlistHandler) GetOptions(c *gin.Context) {
	coins := h.service.Snapshot()
	options := make([]PickerOption, 0, len(coins))
	for _, coin := range coins {
		options = append(options, PickerOption{
			ID:          coin.ID,
			Name:        coin.Name,
			Symbol:      strings.ToUpper(coin.Symbol),
			ImageURL:    coin.ImageURL,
			InWatchlist: h.store.Contains(coin.ID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

// AddToWatchlist adds a coin id. Adding an existing member is a no-op.
func (h *WatchlistHandler) AddToWatchlist(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coin_id is required"})
		return
	}

	added := h.store.Add(req.CoinID)

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, h.view())
}

// RemoveFromWatchlist removes a coin id. Removing a non-member is a
// no-op and still succeeds.
func (h *WatchlistHandler) RemoveFromWatchlist(c *gin.Context) {
	h.store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, h.view())
}
