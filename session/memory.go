package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory, the default when no Redis
// address is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.ID] = rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, ErrNoSession
	}
	return &rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recs[id]; !ok {
		return ErrNoSession
	}
	delete(s.recs, id)
	return nil
}

// Sweep blocks, periodically dropping expired records. Run it on its own
// goroutine; expired records are rejected on read either way.
func (s *MemoryStore) Sweep(interval time.Duration) {
	for range time.Tick(interval) {
		now := time.Now()
		s.mu.Lock()
		for id, rec := range s.recs {
			if now.After(rec.ExpiresAt) {
				delete(s.recs, id)
			}
		}
		s.mu.Unlock()
	}
}
