//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/pontoon/internal/storage"
)

// MockStore 统计存储 mock
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, stats *storage.SessionStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStore) Load(ctx context.Context, sessionID string) (*storage.SessionStats, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.SessionStats), args.Error(1)
}

func (m *MockStore) Top(ctx context.Context, limit int) ([]*storage.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.LeaderboardEntry), args.Error(1)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
