package models

import (
	"time"
)

// Coin is one entry of the market snapshot, refreshed wholesale every
// cycle. Percentage changes come back as null from the API for thinly
// traded coins, hence the pointers.
type Coin struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Symbol         string     `json:"symbol"`
	ImageURL       string     `json:"image"`
	CurrentPrice   float64    `json:"current_price"`
	PriceChange24h *float64   `json:"price_change_percentage_24h"`
	PriceChange7d  *float64   `json:"price_change_percentage_7d_in_currency"`
	MarketCap      float64    `json:"market_cap"`
	TotalVolume    float64    `json:"total_volume"`
	Sparkline7d    *Sparkline `json:"sparkline_in_7d,omitempty"`
	MarketCapRank  int        `json:"market_cap_rank,omitempty"`
}

// Sparkline holds the 7-day hourly price trace included in the markets
// response when sparkline=true.
type Sparkline struct {
	Price []float64 `json:"price"`
}

// PricePoint is one (timestamp, price) pair of a historical series.
// Timestamp is Unix milliseconds, as delivered by the API.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

// Time converts the millisecond timestamp to a time.Time.
func (p PricePoint) Time() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// MarketStatus reports refresh loop health for the dashboard status bar.
type MarketStatus struct {
	CoinCount       int        `json:"coin_count"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
	NextRefresh     *time.Time `json:"next_refresh,omitempty"`
	RefreshInterval string     `json:"refresh_interval"`
	LastError       string     `json:"last_error,omitempty"`
	LastErrorAt     *time.Time `json:"last_error_at,omitempty"`
}
