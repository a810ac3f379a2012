// Package metrics provides Prometheus metrics for the crypto tracker.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Refresh Loop Metrics
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_refresh_total",
			Help: "Total number of snapshot refresh cycles by result",
		},
		[]string{"result"}, // "success", "failure", "stale"
	)

	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crypto_refresh_duration_seconds",
			Help:    "Time taken to fetch and apply a market snapshot",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	SnapshotSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crypto_snapshot_size",
			Help: "Number of coins in the current market snapshot",
		},
	)

	SnapshotAge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crypto_snapshot_age_seconds",
			Help: "Seconds since the snapshot was last replaced",
		},
	)

	// CoinGecko API Metrics
	CoinGeckoRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_coingecko_requests_total",
			Help: "Total number of CoinGecko API requests made",
		},
	)

	CoinGeckoRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_coingecko_rate_limited_total",
			Help: "Responses with HTTP 429 from the CoinGecko API",
		},
	)

	// History / Chart Metrics
	HistoryFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_history_fetches_total",
			Help: "Historical series fetches by result",
		},
		[]string{"result"}, // "success", "failure", "superseded"
	)

	// Watchlist Metrics
	WatchlistSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crypto_watchlist_size",
			Help: "Number of coins on the watchlist",
		},
	)

	WatchlistPersistErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_watchlist_persist_errors_total",
			Help: "Failed watchlist writes to the database (state stays in memory)",
		},
	)

	// Icon Cache Metrics
	IconCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_icon_cache_hits_total",
			Help: "Icon proxy cache hit count",
		},
	)

	IconCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_icon_cache_misses_total",
			Help: "Icon proxy cache miss count",
		},
	)

	// Notification Metrics
	NotificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_notifications_total",
			Help: "Error notifications raised",
		},
	)
)
