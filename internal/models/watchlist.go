package models

import (
	"time"
)

// WatchlistEntry is one persisted watchlist member. Position preserves
// insertion order across restarts.
type WatchlistEntry struct {
	CoinID    string    `json:"coin_id" gorm:"primaryKey"`
	Position  int       `json:"position" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
