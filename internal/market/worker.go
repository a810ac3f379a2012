package market

import (
	"context"
	"log"
	"time"

	"github.com/kallanseto/crypto-tracker/internal/metrics"
)

// snapshotFailedMessage is the user-facing banner text for a failed
// refresh cycle.
const snapshotFailedMessage = "Failed to load cryptocurrency data. Please try again later."

// Notifier receives user-visible error banners. Satisfied by
// *notify.Center.
type Notifier interface {
	Error(message string) string
}

// Worker drives the refresh loop: one refresh immediately on start, then
// one per interval for the lifetime of the process. A failed cycle is
// logged and surfaced as a notification; the next tick simply retries.
// No backoff, no jitter.
type Worker struct {
	service  *Service
	notifier Notifier
	interval time.Duration
}

// NewWorker creates a refresh worker. The default interval is 60s.
func NewWorker(service *Service, notifier Notifier, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{
		service:  service,
		notifier: notifier,
		interval: interval,
	}
}

// Start runs the refresh loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	log.Printf("Refresh worker started: snapshot refresh every %v", w.interval)

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Refresh worker stopping...")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *Worker) refresh(ctx context.Context) {
	if err := w.service.Refresh(ctx); err != nil {
		log.Printf("Refresh worker: snapshot refresh failed: %v", err)
		if w.notifier != nil {
			w.notifier.Error(snapshotFailedMessage)
		}
	}

	if lu := w.service.LastUpdated(); !lu.IsZero() {
		metrics.SnapshotAge.Set(time.Since(lu).Seconds())
	}
}
