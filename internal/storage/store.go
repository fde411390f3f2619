// Package storage keeps the running statistics of game sessions.
package storage

import (
	"context"
	"errors"
	"sort"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown statistics backend")

// SessionStats 会话统计数据
type SessionStats struct {
	SessionID  string `json:"session_id"`
	PlayerName string `json:"player_name"`

	RoundsPlayed         int `json:"rounds_played"`
	PlayerWins           int `json:"player_wins"`
	BankerWins           int `json:"banker_wins"`
	PlayerPontoons       int `json:"player_pontoons"`
	PlayerFiveCardTricks int `json:"player_five_card_tricks"`

	StartedAt int64 `json:"started_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// WinRate returns the player's win percentage.
func (s *SessionStats) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.RoundsPlayed) * 100
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	SessionID  string  `json:"session_id"`
	PlayerName string  `json:"player_name"`
	Wins       int     `json:"wins"`
	Rounds     int     `json:"rounds"`
	WinRate    float64 `json:"win_rate"`
}

// Store 统计存储
type Store interface {
	// Save replaces the snapshot kept for stats.SessionID.
	Save(ctx context.Context, stats *SessionStats) error
	// Load returns nil, nil when the session is unknown.
	Load(ctx context.Context, sessionID string) (*SessionStats, error)
	// Top returns up to limit sessions ordered by player wins.
	Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
	Close() error
}

// rankEntries orders sessions by wins, then by win rate, and numbers them.
func rankEntries(all []*SessionStats, limit int) []*LeaderboardEntry {
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].PlayerWins != all[j].PlayerWins {
			return all[i].PlayerWins > all[j].PlayerWins
		}
		return all[i].WinRate() > all[j].WinRate()
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	entries := make([]*LeaderboardEntry, len(all))
	for i, s := range all {
		entries[i] = &LeaderboardEntry{
			Rank:       i + 1,
			SessionID:  s.SessionID,
			PlayerName: s.PlayerName,
			Wins:       s.PlayerWins,
			Rounds:     s.RoundsPlayed,
			WinRate:    s.WinRate(),
		}
	}
	return entries
}
