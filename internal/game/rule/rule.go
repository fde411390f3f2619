package rule

import (
	"fmt"

	"github.com/palemoky/pontoon/internal/game/card"
)

// HandType 定义牌型. Higher values beat lower ones.
type HandType int

const (
	Bust          HandType = iota + 1 // 爆牌
	Normal                            // 普通点数
	FiveCardTrick                     // 五小龙
	Pontoon                           // Ace + 10-valued card
)

// handTypeNames 牌型名称映射表
var handTypeNames = map[HandType]string{
	Bust:          "Bust",
	Normal:        "Normal",
	FiveCardTrick: "Five Card Trick",
	Pontoon:       "Pontoon",
}

func (t HandType) String() string {
	if name, ok := handTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Outcome is the result of a round. Ties go to the banker, so there is no push.
type Outcome int

const (
	BankerWins Outcome = iota
	PlayerWins
)

func (o Outcome) String() string {
	if o == PlayerWins {
		return "Player wins"
	}
	return "Banker wins"
}

// Classify 判断牌型
func Classify(h *card.Hand) HandType {
	switch {
	case h.IsBust():
		return Bust
	case h.IsPontoon():
		return Pontoon
	case h.IsFiveCardTrick():
		return FiveCardTrick
	default:
		return Normal
	}
}

// ParsedHand is a hand reduced to what the comparison needs.
type ParsedHand struct {
	Type  HandType
	Value int
}

// Parse 解析手牌
func Parse(h *card.Hand) ParsedHand {
	return ParsedHand{Type: Classify(h), Value: h.Value()}
}

// Beats reports whether p strictly outranks other. Equal hands never beat each other.
func (p ParsedHand) Beats(other ParsedHand) bool {
	if p.Type == Bust {
		return false
	}
	if p.Type != other.Type {
		return p.Type > other.Type
	}
	// Only Normal hands are split by value.
	return p.Type == Normal && p.Value > other.Value
}

// Compare decides a finished round. The player has to beat the banker outright:
// a bust player always loses, and every tie, both-bust included, goes to the banker.
func Compare(player, banker *card.Hand) Outcome {
	if Parse(player).Beats(Parse(banker)) {
		return PlayerWins
	}
	return BankerWins
}

// String renders the classification for display, e.g. "Five Card Trick (19)".
func (p ParsedHand) String() string {
	switch p.Type {
	case Pontoon:
		return p.Type.String()
	case Normal:
		return fmt.Sprintf("%d", p.Value)
	default:
		return fmt.Sprintf("%s (%d)", p.Type, p.Value)
	}
}

// Describe renders a hand's classification, see ParsedHand.String.
func Describe(h *card.Hand) string {
	return Parse(h).String()
}
