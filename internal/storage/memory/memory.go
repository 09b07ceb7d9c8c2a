// Package memory is a Storage kept in process memory. It backs the server
// when no database is configured, and the tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/akashipov/brcode/internal/storage"
	"github.com/akashipov/brcode/internal/storage/charge"
)

type Storage struct {
	mu      sync.RWMutex
	charges map[string]charge.Charge
	history map[string]time.Time
}

var _ storage.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		charges: make(map[string]charge.Charge),
		history: make(map[string]time.Time),
	}
}

func (s *Storage) AddCharge(_ context.Context, ch *charge.Charge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charges[ch.ID]; ok {
		return fmt.Errorf("charge '%s': %w", ch.ID, storage.ErrAlreadyExists)
	}
	s.charges[ch.ID] = *ch
	s.history[ch.ID] = ch.CreatedAt
	return nil
}

func (s *Storage) GetChargeByID(_ context.Context, id string) (*charge.Charge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.charges[id]
	if !ok {
		return nil, fmt.Errorf("charge '%s': %w", id, storage.ErrNotFound)
	}
	return &ch, nil
}

func (s *Storage) TouchCharge(_ context.Context, id string, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charges[id]; !ok {
		return fmt.Errorf("charge '%s': %w", id, storage.ErrNotFound)
	}
	s.history[id] = t
	return nil
}

func (s *Storage) GetRecentChargeIDs(_ context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.history))
	for id := range s.history {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.history[ids[i]].After(s.history[ids[j]])
	})
	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *Storage) DeleteChargeByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charges[id]; !ok {
		return fmt.Errorf("charge '%s': %w", id, storage.ErrNotFound)
	}
	delete(s.charges, id)
	delete(s.history, id)
	return nil
}
