package common

import (
	"fmt"

	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/rule"
)

// GameRules returns the rules text shown by both front ends.
func GameRules() string {
	var sb string

	sb += "【Goal】\n"
	sb += fmt.Sprintf("Get closer to %d than the banker without going over.\n\n", card.Target)

	sb += "【Card values】\n"
	sb += "• 2-10: face value\n"
	sb += "• Jack, Queen, King: 10\n"
	sb += "• Ace: 1 or 11, whichever helps\n\n"

	sb += "【Hands, best first】\n"
	sb += fmt.Sprintf("• Pontoon: %d with two cards (an Ace and a ten-valued card)\n", card.Target)
	sb += fmt.Sprintf("• Five Card Trick: %d cards without going bust\n", card.MaxCards)
	sb += fmt.Sprintf("• Normal: higher total wins, %d at most\n", card.Target)
	sb += fmt.Sprintf("• Bust: over %d, always loses\n\n", card.Target)

	sb += "【Play】\n"
	sb += "1. You and the banker get two cards each; one banker card stays hidden\n"
	sb += "2. Twist to take a card or Stick to stop\n"
	sb += fmt.Sprintf("3. The banker twists below %d and sticks otherwise\n", rule.BankerStickValue)
	sb += "4. Ties go to the banker\n\n"

	sb += "【Keys】\n"
	sb += "T: twist   S: stick   N/Enter: next round\n"
	sb += "?: rules   Q: quit"

	return sb
}

// OutcomeText is the one-line announcement of a finished round.
func OutcomeText(r round.Result) string {
	switch {
	case r.Outcome == rule.PlayerWins && r.PlayerPontoon():
		return "🎉 Pontoon! You win!"
	case r.Outcome == rule.PlayerWins && r.PlayerFiveCardTrick():
		return "🎉 Five Card Trick! You win!"
	case r.Outcome == rule.PlayerWins:
		return "🎉 You win!"
	case r.Player.Type == rule.Bust:
		return "💥 Bust! The banker wins."
	default:
		return "🎩 The banker wins."
	}
}
