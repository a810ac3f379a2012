package chart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kallanseto/crypto-tracker/internal/models"
)

type fakeHistory struct {
	points []models.PricePoint
	err    error
}

func (f *fakeHistory) MarketChart(ctx context.Context, coinID string) ([]models.PricePoint, error) {
	return f.points, f.err
}

// gatedHistory blocks each MarketChart call until released, so the test
// can interleave overlapping opens deterministically.
type gatedHistory struct {
	mu      sync.Mutex
	waiting []chan []models.PricePoint
	started chan struct{}
}

func newGatedHistory() *gatedHistory {
	return &gatedHistory{started: make(chan struct{}, 8)}
}

func (f *gatedHistory) MarketChart(ctx context.Context, coinID string) ([]models.PricePoint, error) {
	ch := make(chan []models.PricePoint)
	f.mu.Lock()
	f.waiting = append(f.waiting, ch)
	f.mu.Unlock()
	f.started <- struct{}{}
	return <-ch, nil
}

func (f *gatedHistory) release(call int, points []models.PricePoint) {
	f.mu.Lock()
	ch := f.waiting[call]
	f.mu.Unlock()
	ch <- points
}

func samplePoints() []models.PricePoint {
	return []models.PricePoint{
		{Timestamp: 1700000000000, Price: 42000},
		{Timestamp: 1700086400000, Price: 43150.5},
	}
}

func TestOpenShowsSeries(t *testing.T) {
	session := NewSession(&fakeHistory{points: samplePoints()})

	if err := session.Open(context.Background(), "bitcoin", "Bitcoin"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	view := session.Current()
	if !view.Open {
		t.Fatal("Expected overlay open")
	}
	if view.CoinID != "bitcoin" || view.CoinName != "Bitcoin" {
		t.Errorf("Expected bitcoin view, got %q %q", view.CoinID, view.CoinName)
	}
	if len(view.Points) != 2 {
		t.Errorf("Expected 2 points, got %d", len(view.Points))
	}
}

func TestOpenFailureLeavesClosed(t *testing.T) {
	session := NewSession(&fakeHistory{err: errors.New("fetch failed")})

	if err := session.Open(context.Background(), "bitcoin", "Bitcoin"); err == nil {
		t.Fatal("Expected error from failed open")
	}

	view := session.Current()
	if view.Open {
		t.Error("Expected overlay closed after failed fetch")
	}
	if view.CoinID != "" || len(view.Points) != 0 {
		t.Errorf("Expected empty view, got %q with %d points", view.CoinID, len(view.Points))
	}
}

// Opening a second coin while the first fetch is still in flight must
// show the second coin, even when the first fetch finishes afterwards.
func TestOpenSupersededByNewerOpen(t *testing.T) {
	fetcher := newGatedHistory()
	session := NewSession(fetcher)

	errs := make(chan error, 2)
	go func() { errs <- session.Open(context.Background(), "bitcoin", "Bitcoin") }() // call 0
	<-fetcher.started
	go func() { errs <- session.Open(context.Background(), "ethereum", "Ethereum") }() // call 1
	<-fetcher.started

	fetcher.release(1, samplePoints())
	if err := <-errs; err != nil {
		t.Fatalf("Newer open returned error: %v", err)
	}

	fetcher.release(0, []models.PricePoint{{Timestamp: 1, Price: 1}})
	if err := <-errs; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("Expected ErrSuperseded from stale open, got: %v", err)
	}

	view := session.Current()
	if view.CoinID != "ethereum" {
		t.Errorf("Expected ethereum view to survive, got %q", view.CoinID)
	}
	if len(view.Points) != 2 {
		t.Errorf("Expected newer series, got %d points", len(view.Points))
	}
}

// A Close issued while a fetch is in flight wins: the late completion
// must not reopen the overlay.
func TestCloseInvalidatesInFlightOpen(t *testing.T) {
	fetcher := newGatedHistory()
	session := NewSession(fetcher)

	errs := make(chan error, 1)
	go func() { errs <- session.Open(context.Background(), "bitcoin", "Bitcoin") }()
	<-fetcher.started

	session.Close()

	fetcher.release(0, samplePoints())
	if err := <-errs; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("Expected ErrSuperseded after close, got: %v", err)
	}

	if session.Current().Open {
		t.Error("Expected overlay to stay closed")
	}
}

func TestCloseIdempotent(t *testing.T) {
	session := NewSession(&fakeHistory{points: samplePoints()})

	if err := session.Open(context.Background(), "bitcoin", "Bitcoin"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	session.Close()
	session.Close()

	view := session.Current()
	if view.Open || view.CoinID != "" || len(view.Points) != 0 {
		t.Errorf("Expected closed empty view, got %+v", view)
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	session := NewSession(&fakeHistory{points: samplePoints()})

	if err := session.Open(context.Background(), "bitcoin", "Bitcoin"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	view := session.Current()
	view.Points[0].Price = -1

	if session.Current().Points[0].Price != 42000 {
		t.Error("Current must return a copy of the series")
	}
}
