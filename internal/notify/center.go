// Package notify holds the auto-dismissing error banners the dashboard
// shows when a fetch fails.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kallanseto/crypto-tracker/internal/metrics"
	"github.com/kallanseto/crypto-tracker/internal/models"
)

// defaultTTL matches the banner timeout of the dashboard.
const defaultTTL = 5 * time.Second

// Center collects active notifications. Entries expire after the TTL or
// when dismissed explicitly.
type Center struct {
	mu    sync.Mutex
	ttl   time.Duration
	items []models.Notification
}

// NewCenter creates a notification center with the given TTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Center{ttl: ttl}
}

// Error raises a notification and returns its id.
func (c *Center) Error(message string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.pruneLocked(now)

	n := models.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.items = append(c.items, n)
	metrics.NotificationsTotal.Inc()
	return n.ID
}

// Active returns the unexpired notifications, oldest first.
func (c *Center) Active() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(time.Now())
	items := make([]models.Notification, len(c.items))
	copy(items, c.items)
	return items
}

// Dismiss removes a notification before its TTL. Reports whether it was
// still present.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(time.Now())
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Center) pruneLocked(now time.Time) {
	kept := c.items[:0]
	for _, n := range c.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept
}
