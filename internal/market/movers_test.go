package market

import (
	"testing"

	"github.com/kallanseto/crypto-tracker/internal/models"
)

func change(v float64) *float64 {
	return &v
}

func coinWithChange(id string, change *float64) models.Coin {
	return models.Coin{ID: id, Name: id, Symbol: id, PriceChange24h: change}
}

func ids(coins []models.Coin) []string {
	out := make([]string, len(coins))
	for i, c := range coins {
		out[i] = c.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTopMovers(t *testing.T) {
	snapshot := []models.Coin{
		coinWithChange("a", change(1.0)),
		coinWithChange("b", change(8.0)),
		coinWithChange("c", change(-4.0)),
		coinWithChange("d", change(3.0)),
		coinWithChange("e", change(-9.0)),
		coinWithChange("f", change(0.5)),
		coinWithChange("g", change(6.0)),
	}

	gainers, losers := TopMovers(snapshot)

	if len(gainers) != 5 || len(losers) != 5 {
		t.Fatalf("Expected 5 gainers and 5 losers, got %d and %d", len(gainers), len(losers))
	}

	wantGainers := []string{"b", "g", "d", "a", "f"}
	if !equalIDs(ids(gainers), wantGainers) {
		t.Errorf("Expected gainers %v, got %v", wantGainers, ids(gainers))
	}

	// Losers are the 5 smallest, most negative first
	wantLosers := []string{"e", "c", "f", "a", "d"}
	if !equalIDs(ids(losers), wantLosers) {
		t.Errorf("Expected losers %v, got %v", wantLosers, ids(losers))
	}

	for i := 1; i < len(gainers); i++ {
		if change24h(gainers[i]) > change24h(gainers[i-1]) {
			t.Errorf("Gainers not descending at index %d", i)
		}
	}
	for i := 1; i < len(losers); i++ {
		if change24h(losers[i]) < change24h(losers[i-1]) {
			t.Errorf("Losers not ascending at index %d", i)
		}
	}
}

func TestTopMoversFewerThanFive(t *testing.T) {
	snapshot := []models.Coin{
		coinWithChange("a", change(5.0)),
		coinWithChange("b", change(-3.0)),
		coinWithChange("c", change(1.0)),
	}

	gainers, losers := TopMovers(snapshot)

	wantGainers := []string{"a", "c", "b"}
	if !equalIDs(ids(gainers), wantGainers) {
		t.Errorf("Expected gainers %v, got %v", wantGainers, ids(gainers))
	}

	wantLosers := []string{"b", "c", "a"}
	if !equalIDs(ids(losers), wantLosers) {
		t.Errorf("Expected losers %v, got %v", wantLosers, ids(losers))
	}
}

func TestTopMoversEmpty(t *testing.T) {
	gainers, losers := TopMovers(nil)
	if len(gainers) != 0 || len(losers) != 0 {
		t.Errorf("Expected empty movers for empty snapshot, got %d and %d", len(gainers), len(losers))
	}
}

// Coins with no reported 24h change sort below every coin that has one.
func TestTopMoversAbsentChange(t *testing.T) {
	snapshot := []models.Coin{
		coinWithChange("a", nil),
		coinWithChange("b", change(-50.0)),
		coinWithChange("c", change(2.0)),
	}

	gainers, losers := TopMovers(snapshot)

	wantGainers := []string{"c", "b", "a"}
	if !equalIDs(ids(gainers), wantGainers) {
		t.Errorf("Expected gainers %v, got %v", wantGainers, ids(gainers))
	}

	if losers[0].ID != "a" {
		t.Errorf("Expected absent-change coin first in losers, got %v", ids(losers))
	}
}

// Ties keep snapshot (market-cap) order.
func TestTopMoversStableTies(t *testing.T) {
	snapshot := []models.Coin{
		coinWithChange("first", change(1.0)),
		coinWithChange("second", change(1.0)),
		coinWithChange("third", change(1.0)),
	}

	gainers, _ := TopMovers(snapshot)

	wantGainers := []string{"first", "second", "third"}
	if !equalIDs(ids(gainers), wantGainers) {
		t.Errorf("Expected stable order %v, got %v", wantGainers, ids(gainers))
	}
}
