package notify

import (
	"testing"
	"time"
)

func TestErrorAndActive(t *testing.T) {
	center := NewCenter(time.Minute)

	first := center.Error("Failed to load cryptocurrency data. Please try again later.")
	second := center.Error("Failed to load historical data")
	if first == "" || second == "" {
		t.Fatal("Expected notification ids")
	}
	if first == second {
		t.Fatal("Expected distinct notification ids")
	}

	active := center.Active()
	if len(active) != 2 {
		t.Fatalf("Expected 2 active notifications, got %d", len(active))
	}
	if active[0].ID != first || active[1].ID != second {
		t.Error("Expected notifications oldest first")
	}
}

func TestDismiss(t *testing.T) {
	center := NewCenter(time.Minute)

	id := center.Error("Failed to load historical data")
	if !center.Dismiss(id) {
		t.Error("Expected dismiss to remove the notification")
	}
	if center.Dismiss(id) {
		t.Error("Expected second dismiss to report not present")
	}
	if len(center.Active()) != 0 {
		t.Errorf("Expected no active notifications, got %d", len(center.Active()))
	}
}

func TestDismissUnknownID(t *testing.T) {
	center := NewCenter(time.Minute)

	if center.Dismiss("no-such-id") {
		t.Error("Expected dismissing an unknown id to report not present")
	}
}

func TestExpiry(t *testing.T) {
	center := NewCenter(20 * time.Millisecond)

	center.Error("Failed to load cryptocurrency data. Please try again later.")
	if len(center.Active()) != 1 {
		t.Fatalf("Expected 1 active notification, got %d", len(center.Active()))
	}

	time.Sleep(40 * time.Millisecond)

	if len(center.Active()) != 0 {
		t.Errorf("Expected notification expired, got %d active", len(center.Active()))
	}
}
