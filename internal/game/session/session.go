// Package session owns a player's sequence of rounds and their statistics.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/logger"
	"github.com/palemoky/pontoon/internal/storage"
)

const defaultStoreTimeout = 500 * time.Millisecond

// Session 游戏会话
type Session struct {
	ID         string
	PlayerName string
	StartedAt  time.Time
	Stats      Statistics

	store   storage.Store
	timeout time.Duration
}

// New 创建会话. store may be nil, in which case statistics stay in memory only.
func New(playerName string, store storage.Store, timeout time.Duration) *Session {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &Session{
		ID:         uuid.NewString(),
		PlayerName: playerName,
		StartedAt:  time.Now(),
		store:      store,
		timeout:    timeout,
	}
}

// Apply folds a finished round into the statistics without touching the store.
func (s *Session) Apply(r round.Result) Statistics {
	s.Stats = s.Stats.Record(r)
	logger.L().Info("round finished",
		"session", s.ID,
		"round", s.Stats.RoundsPlayed,
		"outcome", r.Outcome.String(),
		"player", r.Player.String(),
		"banker", r.Banker.String(),
		"banker_played", r.BankerPlayed)
	return s.Stats
}

// Save writes snap to the store, bounded by the session's store timeout.
func (s *Session) Save(ctx context.Context, snap *storage.SessionStats) error {
	if s.store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("save stats for session %s: %w", s.ID, err)
	}
	return nil
}

// Record applies a finished round and saves the new snapshot. A failing
// store is logged and otherwise ignored.
func (s *Session) Record(ctx context.Context, r round.Result) Statistics {
	stats := s.Apply(r)
	if err := s.Save(ctx, s.Snapshot()); err != nil {
		logger.LogError("%v", err)
	}
	return stats
}

// Snapshot converts the statistics into their stored form.
func (s *Session) Snapshot() *storage.SessionStats {
	return &storage.SessionStats{
		SessionID:            s.ID,
		PlayerName:           s.PlayerName,
		RoundsPlayed:         s.Stats.RoundsPlayed,
		PlayerWins:           s.Stats.PlayerWins,
		BankerWins:           s.Stats.BankerWins,
		PlayerPontoons:       s.Stats.PlayerPontoons,
		PlayerFiveCardTricks: s.Stats.PlayerFiveCardTricks,
		StartedAt:            s.StartedAt.Unix(),
		UpdatedAt:            time.Now().Unix(),
	}
}

// Leaderboard returns the best sessions known to the store.
func (s *Session) Leaderboard(ctx context.Context, limit int) ([]*storage.LeaderboardEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.Top(ctx, limit)
}

// Run plays rounds until the player declines another. It stops early, with
// the error, if a round violates an invariant. A round finished after ctx is
// cancelled is not recorded.
func (s *Session) Run(ctx context.Context, ctl *round.Controller, deck round.Dealer) error {
	for {
		res, err := ctl.PlayRound(deck)
		if err != nil {
			logger.LogError("session %s: round aborted: %v", s.ID, err)
			return err
		}
		if ctx.Err() != nil {
			logger.LogInfo("session %s: interrupted, last round not counted", s.ID)
			return nil
		}
		s.Record(ctx, res)

		if !ctl.PlayAgain() {
			return nil
		}
	}
}
