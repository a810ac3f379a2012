package market

import (
	"strings"

	"github.com/kallanseto/crypto-tracker/internal/models"
)

// emptyTableMessage is the placeholder shown instead of a bare empty
// table when a search matches nothing.
const emptyTableMessage = "No cryptocurrencies found matching your search."

// Row is one rendered line of the main market table. Raw values ride
// along with their formatted counterparts so clients can sort locally
// without reparsing display strings.
type Row struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Symbol           string   `json:"symbol"`
	ImageURL         string   `json:"image_url"`
	Price            float64  `json:"price"`
	PriceDisplay     string   `json:"price_display"`
	Change24h        *float64 `json:"change_24h"`
	ChangeDisplay    string   `json:"change_display"`
	Direction        string   `json:"direction"`
	MarketCap        float64  `json:"market_cap"`
	MarketCapDisplay string   `json:"market_cap_display"`
	Volume           float64  `json:"volume"`
	VolumeDisplay    string   `json:"volume_display"`
}

// Table is the rendered market table. Message is set when there are no
// rows to show for a search.
type Table struct {
	Rows    []Row  `json:"rows"`
	Message string `json:"message,omitempty"`
}

// MoverRow is one line of a gainers/losers panel.
type MoverRow struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	ImageURL      string `json:"image_url"`
	ChangeDisplay string `json:"change_display"`
	Direction     string `json:"direction"`
}

// MoversView holds both movers panels.
type MoversView struct {
	Gainers []MoverRow `json:"gainers"`
	Losers  []MoverRow `json:"losers"`
}

// WatchlistRow is one line of the watchlist panel.
type WatchlistRow struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	ImageURL      string `json:"image_url"`
	PriceDisplay  string `json:"price_display"`
	ChangeDisplay string `json:"change_display"`
	Direction     string `json:"direction"`
}

func buildRow(c models.Coin) Row {
	return Row{
		ID:               c.ID,
		Name:             c.Name,
		Symbol:           strings.ToUpper(c.Symbol),
		ImageURL:         c.ImageURL,
		Price:            c.CurrentPrice,
		PriceDisplay:     FormatPrice(c.CurrentPrice),
		Change24h:        c.PriceChange24h,
		ChangeDisplay:    FormatChange(c.PriceChange24h, false),
		Direction:        ChangeDirection(c.PriceChange24h),
		MarketCap:        c.MarketCap,
		MarketCapDisplay: FormatMarketCap(c.MarketCap),
		Volume:           c.TotalVolume,
		VolumeDisplay:    FormatVolume(c.TotalVolume),
	}
}

// BuildTable projects a snapshot into the market table, optionally
// filtered by a search query. A search that matches nothing yields the
// empty-state message rather than a bare empty table.
func BuildTable(coins []models.Coin, query string) Table {
	filtered := Filter(coins, query)

	rows := make([]Row, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, buildRow(c))
	}

	table := Table{Rows: rows}
	if len(rows) == 0 && query != "" {
		table.Message = emptyTableMessage
	}
	return table
}

func buildMoverRow(c models.Coin) MoverRow {
	return MoverRow{
		ID:            c.ID,
		Symbol:        strings.ToUpper(c.Symbol),
		ImageURL:      c.ImageURL,
		ChangeDisplay: FormatChange(c.PriceChange24h, true),
		Direction:     ChangeDirection(c.PriceChange24h),
	}
}

// BuildMovers projects a snapshot into the gainers and losers panels.
func BuildMovers(coins []models.Coin) MoversView {
	gainers, losers := TopMovers(coins)

	view := MoversView{
		Gainers: make([]MoverRow, 0, len(gainers)),
		Losers:  make([]MoverRow, 0, len(losers)),
	}
	for _, c := range gainers {
		view.Gainers = append(view.Gainers, buildMoverRow(c))
	}
	for _, c := range losers {
		view.Losers = append(view.Losers, buildMoverRow(c))
	}
	return view
}

// BuildWatchlistRows renders the subset of the snapshot whose ids are on
// the watchlist, in snapshot order. Watchlist ids with no matching
// snapshot entry render nothing.
func BuildWatchlistRows(coins []models.Coin, coinIDs []string) []WatchlistRow {
	member := make(map[string]struct{}, len(coinIDs))
	for _, id := range coinIDs {
		member[id] = struct{}{}
	}

	rows := make([]WatchlistRow, 0, len(coinIDs))
	for _, c := range coins {
		if _, ok := member[c.ID]; !ok {
			continue
		}
		rows = append(rows, WatchlistRow{
			ID:            c.ID,
			Symbol:        strings.ToUpper(c.Symbol),
			ImageURL:      c.ImageURL,
			PriceDisplay:  FormatPrice(c.CurrentPrice),
			ChangeDisplay: FormatChange(c.PriceChange24h, false),
			Direction:     ChangeDirection(c.PriceChange24h),
		})
	}
	return rows
}
