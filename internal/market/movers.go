package market

import (
	"math"
	"sort"

	"github.com/kallanseto/crypto-tracker/internal/models"
)

// moversLimit is how many coins each movers panel shows.
const moversLimit = 5

// change24h returns the sort key for the movers ordering. A coin with no
// reported 24h change sorts below every coin that has one; ties keep
// snapshot (market-cap) order because the sort is stable.
func change24h(c models.Coin) float64 {
	if c.PriceChange24h == nil {
		return math.Inf(-1)
	}
	return *c.PriceChange24h
}

// TopMovers derives the gainers and losers panels from a snapshot.
// Gainers are the top min(5, n) coins by descending 24h change. Losers
// are the bottom min(5, n), ordered most negative first.
func TopMovers(coins []models.Coin) (gainers, losers []models.Coin) {
	sorted := make([]models.Coin, len(coins))
	copy(sorted, coins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return change24h(sorted[i]) > change24h(sorted[j])
	})

	n := len(sorted)
	limit := moversLimit
	if n < limit {
		limit = n
	}

	gainers = make([]models.Coin, limit)
	copy(gainers, sorted[:limit])

	losers = make([]models.Coin, limit)
	for i := 0; i < limit; i++ {
		losers[i] = sorted[n-1-i]
	}

	return gainers, losers
}
