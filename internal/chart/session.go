// Package chart tracks the state of the historical price overlay: which
// coin it shows, its 7-day series, and whether it is open at all.
package chart

import (
	"context"
	"errors"
	"sync"

	"github.com/kallanseto/crypto-tracker/internal/metrics"
	"github.com/kallanseto/crypto-tracker/internal/models"
)

// ErrSuperseded is returned by Open when a newer Open or a Close landed
// while the history fetch was in flight. The fetched series is dropped.
var ErrSuperseded = errors.New("chart request superseded")

// HistoryFetcher supplies 7-day price series. Satisfied by
// *coingecko.Client.
type HistoryFetcher interface {
	MarketChart(ctx context.Context, coinID string) ([]models.PricePoint, error)
}

// View is the overlay state as rendered to clients.
type View struct {
	Open     bool                `json:"open"`
	CoinID   string              `json:"coin_id,omitempty"`
	CoinName string              `json:"coin_name,omitempty"`
	Points   []models.PricePoint `json:"points,omitempty"`
}

// Session is the overlay state machine. Every Open takes a token before
// fetching; the fetched series is applied only if no newer Open or Close
// has bumped the token since, so a slow fetch can neither mix data from
// two coins nor reopen a closed overlay.
type Session struct {
	fetcher HistoryFetcher

	mu       sync.Mutex
	seq      uint64
	open     bool
	coinID   string
	coinName string
	points   []models.PricePoint
}

// NewSession creates a closed chart session.
func NewSession(fetcher HistoryFetcher) *Session {
	return &Session{fetcher: fetcher}
}

// Open fetches the 7-day series for coinID and shows it in the overlay.
// On fetch failure the overlay stays closed. Opening a different coin
// while a fetch is in flight replaces it: the earlier fetch completes
// but its result is discarded with ErrSuperseded.
func (s *Session) Open(ctx context.Context, coinID, coinName string) error {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.mu.Unlock()

	points, err := s.fetcher.MarketChart(ctx, coinID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		metrics.HistoryFetchesTotal.WithLabelValues("superseded").Inc()
		return ErrSuperseded
	}

	if err != nil {
		s.open = false
		s.coinID = ""
		s.coinName = ""
		s.points = nil
		metrics.HistoryFetchesTotal.WithLabelValues("failure").Inc()
		return err
	}

	s.open = true
	s.coinID = coinID
	s.coinName = coinName
	s.points = points
	metrics.HistoryFetchesTotal.WithLabelValues("success").Inc()
	return nil
}

// Close hides the overlay and drops the series. Safe to call when
// already closed. Any in-flight Open becomes stale.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.open = false
	s.coinID = ""
	s.coinName = ""
	s.points = nil
}

// Current returns the overlay state.
func (s *Session) Current() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		Open:     s.open,
		CoinID:   s.coinID,
		CoinName: s.coinName,
	}
	if s.points != nil {
		view.Points = make([]models.PricePoint, len(s.points))
		copy(view.Points, s.points)
	}
	return view
}
