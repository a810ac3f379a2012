// Package icons proxies coin icons so the dashboard does not hotlink
// the upstream image CDN on every render.
package icons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kallanseto/crypto-tracker/internal/metrics"
)

const (
	cacheSize    = 256
	fetchTimeout = 10 * time.Second
	maxIconBytes = 1 << 20 // 1 MiB, far above any real coin icon
	defaultType  = "image/png"
)

// ErrUnknownCoin is returned when the coin id has no snapshot entry to
// resolve an icon URL from.
var ErrUnknownCoin = errors.New("unknown coin")

// Resolver maps a coin id to its icon URL. Satisfied by *market.Service.
type Resolver interface {
	IconURL(coinID string) (string, bool)
}

type cachedIcon struct {
	data        []byte
	contentType string
}

// Service fetches coin icons once and serves them from an LRU cache.
type Service struct {
	client   *http.Client
	resolver Resolver
	cache    *lru.Cache[string, cachedIcon]
}

// NewService creates an icon proxy backed by the given resolver.
func NewService(resolver Resolver) (*Service, error) {
	cache, err := lru.New[string, cachedIcon](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Service{
		client: &http.Client{
			Timeout: fetchTimeout,
		},
		resolver: resolver,
		cache:    cache,
	}, nil
}

// Icon returns the icon bytes and content type for a coin id, fetching
// from the upstream URL on a cache miss.
func (s *Service) Icon(ctx context.Context, coinID string) ([]byte, string, error) {
	if icon, ok := s.cache.Get(coinID); ok {
		metrics.IconCacheHits.Inc()
		return icon.data, icon.contentType, nil
	}
	metrics.IconCacheMisses.Inc()

	iconURL, ok := s.resolver.IconURL(coinID)
	if !ok || iconURL == "" {
		return nil, "", ErrUnknownCoin
	}

	req, err := http.NewRequestWithContext(ctx, "GET", iconURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create icon request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch icon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("icon fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read icon body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultType
	}

	s.cache.Add(coinID, cachedIcon{data: data, contentType: contentType})
	return data, contentType, nil
}
