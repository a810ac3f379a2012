package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/kallanseto/crypto-tracker/internal/metrics"
	"github.com/kallanseto/crypto-tracker/internal/models"
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	defaultTimeout = 10 * time.Second

	// snapshotPageSize is the number of coins requested per snapshot,
	// ordered by descending market cap.
	snapshotPageSize = 100

	// historyDays is the window of the daily price series.
	historyDays = 7
)

// ErrFetchFailed is the single error kind raised by the client. Network
// failures, non-2xx statuses and malformed bodies all wrap it so callers
// can degrade uniformly with errors.Is.
var ErrFetchFailed = errors.New("fetch failed")

// Client calls the CoinGecko v3 REST API.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	apiKey  string
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// RequestsPerMinute caps outbound calls; the public API allows
	// roughly 30 per minute without a key.
	RequestsPerMinute int
}

// NewClient creates a CoinGecko API client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 30
	}

	return &Client{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), opts.RequestsPerMinute),
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
	}
}

// Markets fetches the market snapshot: up to 100 coins ordered by
// descending market cap, with 24h/7d change and sparkline data, in USD.
func (c *Client) Markets(ctx context.Context) ([]models.Coin, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", fmt.Sprintf("%d", snapshotPageSize))
	params.Set("page", "1")
	params.Set("sparkline", "true")
	params.Set("price_change_percentage", "24h,7d")

	reqURL := fmt.Sprintf("%s/coins/markets?%s", c.baseURL, params.Encode())

	var coins []models.Coin
	if err := c.getJSON(ctx, reqURL, &coins); err != nil {
		return nil, err
	}

	return coins, nil
}

// marketChartResponse mirrors the /market_chart payload; each entry is a
// [timestamp_ms, value] pair.
type marketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}

// MarketChart fetches the 7-day daily price series for one coin in USD.
// The returned points are ascending in time.
func (c *Client) MarketChart(ctx context.Context, coinID string) ([]models.PricePoint, error) {
	if coinID == "" {
		return nil, fmt.Errorf("coin id is required: %w", ErrFetchFailed)
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", fmt.Sprintf("%d", historyDays))
	params.Set("interval", "daily")

	reqURL := fmt.Sprintf("%s/coins/%s/market_chart?%s", c.baseURL, url.PathEscape(coinID), params.Encode())

	var chart marketChartResponse
	if err := c.getJSON(ctx, reqURL, &chart); err != nil {
		return nil, err
	}

	points := make([]models.PricePoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		if len(pair) < 2 {
			continue
		}
		points = append(points, models.PricePoint{
			Timestamp: int64(pair[0]),
			Price:     pair[1],
		})
	}

	return points, nil
}

// getJSON performs a rate-limited GET and decodes the response body.
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %v: %w", err, ErrFetchFailed)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v: %w", err, ErrFetchFailed)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	metrics.CoinGeckoRequestsTotal.Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v: %w", err, ErrFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.CoinGeckoRateLimitedTotal.Inc()
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko returned status %d: %w", resp.StatusCode, ErrFetchFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v: %w", err, ErrFetchFailed)
	}

	return nil
}
