package sound

import (
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/rule"
)

// Cue names, matched against file base names in the sound directory.
const (
	CueDeal    = "deal"
	CueShuffle = "shuffle"
	CueWin     = "win"
	CueLose    = "lose"
	CuePontoon = "pontoon"
	CueBust    = "bust"
)

// extensions in lookup order
var extensions = []string{".mp3", ".wav"}

// Cues lists every cue the game plays.
func Cues() []string {
	return []string{CueDeal, CueShuffle, CueWin, CueLose, CuePontoon, CueBust}
}

// ForResult picks the cue announcing a finished round.
func ForResult(r round.Result) string {
	switch {
	case r.Outcome == rule.PlayerWins && r.PlayerPontoon():
		return CuePontoon
	case r.Outcome == rule.PlayerWins:
		return CueWin
	case r.Player.Type == rule.Bust:
		return CueBust
	default:
		return CueLose
	}
}
