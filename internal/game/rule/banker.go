package rule

import "github.com/palemoky/pontoon/internal/game/card"

// BankerStickValue is the total at which the banker stops drawing.
const BankerStickValue = 17

// ShouldTwist is the banker's fixed strategy: draw on 16 or less, but never on a
// made Pontoon and never into a sixth card.
func ShouldTwist(h *card.Hand) bool {
	return h.Value() < BankerStickValue && h.Count() < card.MaxCards && !h.IsPontoon()
}
