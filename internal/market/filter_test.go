package market

import (
	"testing"

	"github.com/kallanseto/crypto-tracker/internal/models"
)

func sampleSnapshot() []models.Coin {
	return []models.Coin{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc"},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth"},
		{ID: "tether", Name: "Tether", Symbol: "usdt"},
		{ID: "dogecoin", Name: "Dogecoin", Symbol: "doge"},
	}
}

func TestFilter(t *testing.T) {
	snapshot := sampleSnapshot()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query returns all in order", "", []string{"bitcoin", "ethereum", "tether", "dogecoin"}},
		{"name match", "ether", []string{"ethereum", "tether"}},
		{"symbol match", "usdt", []string{"tether"}},
		{"case insensitive", "BITCOIN", []string{"bitcoin"}},
		{"mixed case symbol", "DoGe", []string{"dogecoin"}},
		{"name or symbol", "eth", []string{"ethereum", "tether"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(snapshot, tt.query)
			if !equalIDs(ids(result), tt.expected) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, ids(result), tt.expected)
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	snapshot := sampleSnapshot()
	Filter(snapshot, "btc")

	if !equalIDs(ids(snapshot), []string{"bitcoin", "ethereum", "tether", "dogecoin"}) {
		t.Error("Filter mutated its input")
	}
}
