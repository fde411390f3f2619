package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps statistics for the lifetime of the process only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]SessionStats
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]SessionStats)}
}

func (ms *MemoryStore) Save(_ context.Context, stats *SessionStats) error {
	if stats == nil {
		return nil
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.sessions[stats.SessionID] = *stats
	return nil
}

func (ms *MemoryStore) Load(_ context.Context, sessionID string) (*SessionStats, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	s, ok := ms.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (ms *MemoryStore) Top(_ context.Context, limit int) ([]*LeaderboardEntry, error) {
	ms.mu.RLock()
	all := make([]*SessionStats, 0, len(ms.sessions))
	for _, s := range ms.sessions {
		all = append(all, &s)
	}
	ms.mu.RUnlock()
	return rankEntries(all, limit), nil
}

func (ms *MemoryStore) Close() error { return nil }
