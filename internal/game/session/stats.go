package session

import (
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/rule"
)

// Statistics 统计数据. It is a value: Record returns an updated copy and the
// counters only ever grow.
type Statistics struct {
	RoundsPlayed         int
	PlayerWins           int
	BankerWins           int
	PlayerPontoons       int
	PlayerFiveCardTricks int
}

// Record folds one finished round into the counters.
func (s Statistics) Record(r round.Result) Statistics {
	s.RoundsPlayed++
	if r.Outcome == rule.PlayerWins {
		s.PlayerWins++
	} else {
		s.BankerWins++
	}
	if r.PlayerPontoon() {
		s.PlayerPontoons++
	}
	if r.PlayerFiveCardTrick() {
		s.PlayerFiveCardTricks++
	}
	return s
}

// WinRate returns the player's win percentage.
func (s Statistics) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.RoundsPlayed) * 100
}
