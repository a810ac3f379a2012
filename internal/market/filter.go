package market

import (
	"strings"

	"github.com/kallanseto/crypto-tracker/internal/models"
)

// Filter returns the coins whose name or symbol contains the query,
// case-insensitively, preserving snapshot order. An empty query returns
// the full input unchanged.
func Filter(coins []models.Coin, query string) []models.Coin {
	if query == "" {
		return coins
	}

	q := strings.ToLower(query)
	filtered := make([]models.Coin, 0, len(coins))
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Symbol), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
