package market

import (
	"testing"

	"github.com/kallanseto/crypto-tracker/internal/models"
)

func TestBuildTable(t *testing.T) {
	up := 2.51
	snapshot := []models.Coin{
		{
			ID:             "bitcoin",
			Name:           "Bitcoin",
			Symbol:         "btc",
			ImageURL:       "https://example.com/btc.png",
			CurrentPrice:   64250.12,
			PriceChange24h: &up,
			MarketCap:      1_260_000_000_000,
			TotalVolume:    31_000_000_000,
		},
	}

	table := BuildTable(snapshot, "")
	if table.Message != "" {
		t.Errorf("Expected no message for populated table, got %q", table.Message)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}

	row := table.Rows[0]
	if row.Symbol != "BTC" {
		t.Errorf("Expected upper-cased symbol BTC, got %q", row.Symbol)
	}
	if row.PriceDisplay != "64,250.12" {
		t.Errorf("Expected price display 64,250.12, got %q", row.PriceDisplay)
	}
	if row.ChangeDisplay != "2.51%" {
		t.Errorf("Expected change display 2.51%%, got %q", row.ChangeDisplay)
	}
	if row.Direction != "up" {
		t.Errorf("Expected direction up, got %q", row.Direction)
	}
	if row.MarketCapDisplay != "1.26T" {
		t.Errorf("Expected market cap display 1.26T, got %q", row.MarketCapDisplay)
	}
	if row.VolumeDisplay != "31.00B" {
		t.Errorf("Expected volume display 31.00B, got %q", row.VolumeDisplay)
	}
}

func TestBuildTableEmptySearch(t *testing.T) {
	table := BuildTable(sampleSnapshot(), "zzz")

	if len(table.Rows) != 0 {
		t.Fatalf("Expected 0 rows, got %d", len(table.Rows))
	}
	if table.Message == "" {
		t.Error("Expected empty-state message for a search with no matches")
	}
}

func TestBuildTableNoMessageWithoutQuery(t *testing.T) {
	table := BuildTable(nil, "")
	if table.Message != "" {
		t.Errorf("Expected no message for empty snapshot without query, got %q", table.Message)
	}
}

func TestBuildMoversSignedDisplay(t *testing.T) {
	gain := 5.0
	loss := -3.0
	snapshot := []models.Coin{
		coinWithChange("up", &gain),
		coinWithChange("down", &loss),
	}

	view := BuildMovers(snapshot)

	if len(view.Gainers) != 2 || len(view.Losers) != 2 {
		t.Fatalf("Expected 2 gainers and 2 losers, got %d and %d", len(view.Gainers), len(view.Losers))
	}
	if view.Gainers[0].ChangeDisplay != "+5.00%" {
		t.Errorf("Expected +5.00%%, got %q", view.Gainers[0].ChangeDisplay)
	}
	if view.Losers[0].ChangeDisplay != "-3.00%" {
		t.Errorf("Expected -3.00%%, got %q", view.Losers[0].ChangeDisplay)
	}
	if view.Losers[0].Direction != "down" {
		t.Errorf("Expected direction down, got %q", view.Losers[0].Direction)
	}
}

func TestBuildWatchlistRows(t *testing.T) {
	snapshot := sampleSnapshot()

	// Snapshot order wins, not watchlist order; unknown ids render nothing
	rows := BuildWatchlistRows(snapshot, []string{"dogecoin", "bitcoin", "gonecoin"})

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "bitcoin" || rows[1].ID != "dogecoin" {
		t.Errorf("Expected snapshot order [bitcoin dogecoin], got [%s %s]", rows[0].ID, rows[1].ID)
	}
}

func TestBuildWatchlistRowsExactlyOnce(t *testing.T) {
	snapshot := sampleSnapshot()

	rows := BuildWatchlistRows(snapshot, []string{"tether"})

	count := 0
	for _, r := range rows {
		if r.ID == "tether" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected tether to render exactly once, got %d", count)
	}
}

func TestBuildWatchlistRowsEmpty(t *testing.T) {
	if rows := BuildWatchlistRows(sampleSnapshot(), nil); len(rows) != 0 {
		t.Errorf("Expected 0 rows for empty watchlist, got %d", len(rows))
	}
}
