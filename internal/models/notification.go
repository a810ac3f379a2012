package models

import (
	"time"
)

// Notification is a user-visible, auto-expiring error banner entry.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
