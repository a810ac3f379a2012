// Package watchlist keeps the user-curated set of coin ids. In-memory
// state is authoritative for the session; every mutation is persisted
// best-effort so the list survives restarts.
package watchlist

import (
	"log"
	"sync"

	"gorm.io/gorm"

	"github.com/kallanseto/crypto-tracker/internal/metrics"
	"github.com/kallanseto/crypto-tracker/internal/models"
)

// Store is an ordered, deduplicated set of coin ids. A nil db disables
// persistence, which keeps the store usable in tests.
type Store struct {
	mu     sync.RWMutex
	ids    []string
	member map[string]struct{}
	db     *gorm.DB
}

// NewStore creates a watchlist store, loading any persisted entries in
// insertion order. A load failure starts the session with an empty list.
func NewStore(db *gorm.DB) *Store {
	s := &Store{
		member: make(map[string]struct{}),
		db:     db,
	}

	if db != nil {
		var entries []models.WatchlistEntry
		if err := db.Order("position ASC").Find(&entries).Error; err != nil {
			log.Printf("Watchlist: failed to load persisted entries: %v", err)
		} else {
			for _, e := range entries {
				if _, ok := s.member[e.CoinID]; ok {
					continue
				}
				s.ids = append(s.ids, e.CoinID)
				s.member[e.CoinID] = struct{}{}
			}
		}
	}

	metrics.WatchlistSize.Set(float64(len(s.ids)))
	return s
}

// Add appends a coin id. Idempotent: adding a member is a no-op.
// Reports whether the list changed.
func (s *Store) Add(coinID string) bool {
	if coinID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.member[coinID]; ok {
		return false
	}

	s.ids = append(s.ids, coinID)
	s.member[coinID] = struct{}{}
	s.persistLocked()
	metrics.WatchlistSize.Set(float64(len(s.ids)))
	return true
}

// Remove deletes a coin id. Idempotent: removing a non-member is a
// no-op. Reports whether the list changed.
func (s *Store) Remove(coinID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.member[coinID]; !ok {
		return false
	}

	delete(s.member, coinID)
	for i, id := range s.ids {
		if id == coinID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	s.persistLocked()
	metrics.WatchlistSize.Set(float64(len(s.ids)))
	return true
}

// Contains reports membership.
func (s *Store) Contains(coinID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.member[coinID]
	return ok
}

// List returns the coin ids in insertion order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// persistLocked rewrites the persisted list to match memory. A failure
// (disk full, locked database) is logged and swallowed: the in-memory
// state stays authoritative for the session.
func (s *Store) persistLocked() {
	if s.db == nil {
		return
	}

	entries := make([]models.WatchlistEntry, len(s.ids))
	for i, id := range s.ids {
		entries[i] = models.WatchlistEntry{CoinID: id, Position: i}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM watchlist_entries").Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		log.Printf("Watchlist: failed to persist %d entries (keeping in-memory state): %v", len(entries), err)
		metrics.WatchlistPersistErrors.Inc()
	}
}
