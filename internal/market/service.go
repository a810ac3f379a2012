package market

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/kallanseto/crypto-tracker/internal/metrics"
	"github.com/kallanseto/crypto-tracker/internal/models"
)

// Fetcher supplies market snapshots. Satisfied by *coingecko.Client.
type Fetcher interface {
	Markets(ctx context.Context) ([]models.Coin, error)
}

// Service owns the in-memory market snapshot. The snapshot is replaced
// wholesale on every successful refresh; a failed refresh leaves the
// prior snapshot untouched so the dashboard degrades to stale data
// instead of blanking.
//
// Concurrent refreshes (the timer and a manual trigger) are allowed to
// overlap. Each refresh takes a sequence token before fetching; a
// completion whose token is older than the applied one is discarded, so
// an earlier fetch that finishes late can never clobber newer data.
type Service struct {
	fetcher  Fetcher
	interval time.Duration

	mu          sync.RWMutex
	coins       []models.Coin
	lastUpdated time.Time
	lastErr     string
	lastErrAt   time.Time
	nextSeq     uint64
	appliedSeq  uint64
}

// NewService creates a market service. interval is the refresh cadence,
// used only for status reporting; the actual timer lives in Worker.
func NewService(fetcher Fetcher, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Service{
		fetcher:  fetcher,
		interval: interval,
	}
}

// Refresh fetches a new snapshot and applies it unless a newer refresh
// already landed. On failure the prior snapshot is kept and the error is
// recorded for the status endpoint.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	start := time.Now()
	coins, err := s.fetcher.Markets(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.lastErrAt = time.Now()
		s.mu.Unlock()

		metrics.RefreshTotal.WithLabelValues("failure").Inc()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.appliedSeq {
		// A refresh that started later already finished.
		metrics.RefreshTotal.WithLabelValues("stale").Inc()
		log.Printf("Market service: discarding stale snapshot (seq %d, applied %d)", seq, s.appliedSeq)
		return nil
	}

	s.appliedSeq = seq
	s.coins = coins
	s.lastUpdated = time.Now()
	s.lastErr = ""

	metrics.RefreshTotal.WithLabelValues("success").Inc()
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	metrics.SnapshotSize.Set(float64(len(coins)))

	return nil
}

// Snapshot returns a copy of the current snapshot in market-cap order.
func (s *Service) Snapshot() []models.Coin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coins := make([]models.Coin, len(s.coins))
	copy(coins, s.coins)
	return coins
}

// Coin looks up one snapshot entry by id.
func (s *Service) Coin(coinID string) (models.Coin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.coins {
		if c.ID == coinID {
			return c, true
		}
	}
	return models.Coin{}, false
}

// IconURL resolves a coin id to its icon URL from the snapshot.
func (s *Service) IconURL(coinID string) (string, bool) {
	c, ok := s.Coin(coinID)
	if !ok {
		return "", false
	}
	return c.ImageURL, true
}

// LastUpdated reports when the snapshot was last replaced. Zero when no
// refresh has succeeded yet.
func (s *Service) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Status reports refresh health for the dashboard status bar.
func (s *Service) Status() models.MarketStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := models.MarketStatus{
		CoinCount:       len(s.coins),
		RefreshInterval: s.interval.String(),
		LastError:       s.lastErr,
	}
	if !s.lastUpdated.IsZero() {
		lu := s.lastUpdated
		next := lu.Add(s.interval)
		status.LastUpdated = &lu
		status.NextRefresh = &next
	}
	if !s.lastErrAt.IsZero() {
		at := s.lastErrAt
		status.LastErrorAt = &at
	}
	return status
}
